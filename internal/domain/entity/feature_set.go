package entity

import (
	"slices"

	"catalog/internal/domain/vo"
	"catalog/internal/errors"
)

// FeatureSet is an immutable collection of features, unique by FeatureID, in insertion order.
type FeatureSet struct {
	items []Feature
}

// NewFeatureSet builds a set from features. A nil feature or a repeated FeatureID fails.
func NewFeatureSet(features ...Feature) (FeatureSet, error) {
	items := make([]Feature, 0, len(features))
	for _, f := range features {
		if isNilFeature(f) {
			return FeatureSet{}, errors.Missing("feature")
		}
		if slices.ContainsFunc(items, f.SameIdentity) {
			return FeatureSet{}, errors.Invalid("features", "duplicate feature %s", f.ID())
		}
		items = append(items, f)
	}

	return FeatureSet{items: items}, nil
}

// Len returns the number of features.
func (s FeatureSet) Len() int { return len(s.items) }

// All returns a copy of the features in order.
func (s FeatureSet) All() []Feature { return slices.Clone(s.items) }

// Get returns the feature with id.
func (s FeatureSet) Get(id vo.FeatureID) (Feature, bool) {
	for _, f := range s.items {
		if f.ID().Equals(id) {
			return f, true
		}
	}

	return nil, false
}

// Contains reports whether a feature with id is present.
func (s FeatureSet) Contains(id vo.FeatureID) bool {
	_, ok := s.Get(id)

	return ok
}

// With returns a new set that also holds f.
func (s FeatureSet) With(f Feature) (FeatureSet, error) {
	return NewFeatureSet(append(s.All(), f)...)
}

// Without returns a new set lacking the feature with id. Removing an absent id is a no-op.
func (s FeatureSet) Without(id vo.FeatureID) FeatureSet {
	items := slices.DeleteFunc(s.All(), func(f Feature) bool { return f.ID().Equals(id) })

	return FeatureSet{items: items}
}

// Equal compares both sets field by field, ignoring order.
func (s FeatureSet) Equal(other FeatureSet) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, f := range s.items {
		o, ok := other.Get(f.ID())
		if !ok || !f.Equal(o) {
			return false
		}
	}

	return true
}
