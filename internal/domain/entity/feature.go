package entity

import (
	"catalog/internal/domain/vo"
	"catalog/internal/errors"

	"github.com/shopspring/decimal"
)

// FeatureKind discriminates the closed set of feature variants.
type FeatureKind string

const (
	FeatureKindBasic        FeatureKind = "BASIC"
	FeatureKindFixedPrice   FeatureKind = "FIXED_PRICE"
	FeatureKindScalingPrice FeatureKind = "SCALING_PRICE"
)

// ParseFeatureKind parses an exact kind name.
func ParseFeatureKind(raw string) (FeatureKind, error) {
	kind := FeatureKind(raw)
	switch kind {
	case FeatureKindBasic, FeatureKindFixedPrice, FeatureKindScalingPrice:
		return kind, nil
	default:
		return "", errors.Invalid("type", "unknown feature type %q", raw)
	}
}

func (k FeatureKind) String() string { return string(k) }

// fixedPriceScale is the number of fractional digits kept for fixed and computed feature prices.
const fixedPriceScale = 2

// Feature is an optional trait attached to a variant. The set of implementations is closed:
// *BasicFeature, *FixedPriceFeature and *ScalingPriceFeature.
type Feature interface {
	ID() vo.FeatureID
	Name() vo.Name
	Label() vo.Label
	Description() vo.Description
	Kind() FeatureKind
	Info() FeatureInfo
	// SameIdentity reports whether both features carry the same FeatureID.
	SameIdentity(other Feature) bool
	// Equal reports whether both features are of the same kind with identical fields.
	Equal(other Feature) bool

	// isNil reports a nil concrete pointer held in the interface.
	isNil() bool
}

// isNilFeature reports whether f is nil or wraps a nil pointer.
func isNilFeature(f Feature) bool {
	return f == nil || f.isNil()
}

// FeatureInfo holds the fields shared by every feature kind.
type FeatureInfo struct {
	ID          vo.FeatureID
	Name        vo.Name
	Label       vo.Label
	Description vo.Description
}

type featureBase struct {
	id          vo.FeatureID
	name        vo.Name
	label       vo.Label
	description vo.Description
}

func newFeatureBase(info FeatureInfo) (featureBase, error) {
	switch {
	case info.ID.IsZero():
		return featureBase{}, errors.Missing("featureId")
	case info.Name.IsZero():
		return featureBase{}, errors.Missing("name")
	case info.Label.IsZero():
		return featureBase{}, errors.Missing("label")
	case info.Description.IsZero():
		return featureBase{}, errors.Missing("description")
	}

	return featureBase{
		id:          info.ID,
		name:        info.Name,
		label:       info.Label,
		description: info.Description,
	}, nil
}

func (b featureBase) ID() vo.FeatureID            { return b.id }
func (b featureBase) Name() vo.Name               { return b.name }
func (b featureBase) Label() vo.Label             { return b.label }
func (b featureBase) Description() vo.Description { return b.description }

func (b featureBase) SameIdentity(other Feature) bool {
	return !isNilFeature(other) && b.id.Equals(other.ID())
}

// Info returns the shared fields.
func (b featureBase) Info() FeatureInfo {
	return FeatureInfo{ID: b.id, Name: b.name, Label: b.label, Description: b.description}
}

func (b featureBase) equalBase(other featureBase) bool {
	return b.id.Equals(other.id) &&
		b.name.Equals(other.name) &&
		b.label.Equals(other.label) &&
		b.description.Equals(other.description)
}

// AsFeature adapts a concrete feature constructor to the Feature interface. A failed
// constructor yields a nil interface rather than one wrapping a nil pointer.
func AsFeature[F Feature](f F, err error) (Feature, error) {
	if err != nil {
		return nil, err
	}

	return f, nil
}

// BasicFeature carries no price effect.
type BasicFeature struct {
	featureBase
}

// NewBasicFeature builds a feature without price effect.
func NewBasicFeature(info FeatureInfo) (*BasicFeature, error) {
	base, err := newFeatureBase(info)
	if err != nil {
		return nil, err
	}

	return &BasicFeature{featureBase: base}, nil
}

func (*BasicFeature) Kind() FeatureKind { return FeatureKindBasic }

func (f *BasicFeature) isNil() bool { return f == nil }

func (f *BasicFeature) Equal(other Feature) bool {
	o, ok := other.(*BasicFeature)

	return ok && o != nil && f.equalBase(o.featureBase)
}

// FixedPriceFeature adds a fixed amount to the variant price.
type FixedPriceFeature struct {
	featureBase
	price decimal.Decimal
}

// NewFixedPriceFeature builds a fixed price feature. The price is rounded half-up to 2 places.
func NewFixedPriceFeature(info FeatureInfo, price decimal.Decimal) (*FixedPriceFeature, error) {
	base, err := newFeatureBase(info)
	if err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, errors.Invalid("price", "must not be negative")
	}

	return &FixedPriceFeature{featureBase: base, price: price.Round(fixedPriceScale)}, nil
}

func (*FixedPriceFeature) Kind() FeatureKind { return FeatureKindFixedPrice }

func (f *FixedPriceFeature) isNil() bool { return f == nil }

// Price returns the normalized fixed amount.
func (f *FixedPriceFeature) Price() decimal.Decimal { return f.price }

func (f *FixedPriceFeature) Equal(other Feature) bool {
	o, ok := other.(*FixedPriceFeature)

	return ok && o != nil && f.equalBase(o.featureBase) && f.price.Equal(o.price)
}

// ScalingPriceFeature prices a quantity of some unit: base + increment × quantity.
type ScalingPriceFeature struct {
	featureBase
	unit        vo.MeasurementUnit
	baseAmount  decimal.Decimal
	increment   decimal.Decimal
	maxQuantity int
}

// ScalingPrice holds the payload of a ScalingPriceFeature.
type ScalingPrice struct {
	Unit        vo.MeasurementUnit
	BaseAmount  decimal.Decimal
	Increment   decimal.Decimal
	MaxQuantity int
}

// NewScalingPriceFeature builds a scaling price feature.
func NewScalingPriceFeature(info FeatureInfo, payload ScalingPrice) (*ScalingPriceFeature, error) {
	base, err := newFeatureBase(info)
	if err != nil {
		return nil, err
	}

	switch {
	case payload.Unit.IsZero():
		return nil, errors.Missing("measurementUnit")
	case payload.BaseAmount.IsNegative():
		return nil, errors.Invalid("baseAmount", "must not be negative")
	case payload.Increment.IsNegative():
		return nil, errors.Invalid("incrementAmount", "must not be negative")
	case payload.MaxQuantity < 1:
		return nil, errors.Invalid("maxQuantity", "must be positive")
	}

	return &ScalingPriceFeature{
		featureBase: base,
		unit:        payload.Unit,
		baseAmount:  payload.BaseAmount,
		increment:   payload.Increment,
		maxQuantity: payload.MaxQuantity,
	}, nil
}

func (*ScalingPriceFeature) Kind() FeatureKind { return FeatureKindScalingPrice }

func (f *ScalingPriceFeature) isNil() bool { return f == nil }

// Unit returns the measurement unit the quantity is counted in.
func (f *ScalingPriceFeature) Unit() vo.MeasurementUnit { return f.unit }

// BaseAmount returns the amount charged regardless of quantity.
func (f *ScalingPriceFeature) BaseAmount() decimal.Decimal { return f.baseAmount }

// Increment returns the amount charged per unit.
func (f *ScalingPriceFeature) Increment() decimal.Decimal { return f.increment }

// MaxQuantity returns the largest quantity that can be priced.
func (f *ScalingPriceFeature) MaxQuantity() int { return f.maxQuantity }

// Payload returns the kind-specific fields.
func (f *ScalingPriceFeature) Payload() ScalingPrice {
	return ScalingPrice{Unit: f.unit, BaseAmount: f.baseAmount, Increment: f.increment, MaxQuantity: f.maxQuantity}
}

// CalculateTotalPrice returns base + increment × quantity rounded half-up to 2 places.
// quantity must lie in [1, MaxQuantity].
func (f *ScalingPriceFeature) CalculateTotalPrice(quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Decimal{}, errors.Invalid("quantity", "must be at least 1")
	}
	if quantity > f.maxQuantity {
		return decimal.Decimal{}, errors.Invalid("quantity", "must not exceed %d", f.maxQuantity)
	}

	total := f.baseAmount.Add(f.increment.Mul(decimal.NewFromInt(int64(quantity))))

	return total.Round(fixedPriceScale), nil
}

func (f *ScalingPriceFeature) Equal(other Feature) bool {
	o, ok := other.(*ScalingPriceFeature)

	return ok && o != nil &&
		f.equalBase(o.featureBase) &&
		f.unit.Equals(o.unit) &&
		f.baseAmount.Equal(o.baseAmount) &&
		f.increment.Equal(o.increment) &&
		f.maxQuantity == o.maxQuantity
}
