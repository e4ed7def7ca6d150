package vo

import (
	"strconv"

	"catalog/internal/errors"
)

// Version is the optimistic concurrency token of an aggregate.
type Version struct {
	value int64
}

// InitialVersion is the version of a freshly created aggregate.
var InitialVersion = Version{value: 0}

// NewVersion validates raw as a version.
func NewVersion(raw int64) (Version, error) {
	if raw < 0 {
		return Version{}, errors.Invalid("version", "must not be negative")
	}

	return Version{value: raw}, nil
}

// Value returns the numeric version.
func (v Version) Value() int64 { return v.value }

// Next returns the version following v.
func (v Version) Next() Version { return Version{value: v.value + 1} }

// Equals reports structural equality.
func (v Version) Equals(other Version) bool { return v.value == other.value }

func (v Version) String() string { return strconv.FormatInt(v.value, 10) }
