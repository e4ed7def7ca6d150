package vo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"catalog/internal/errors"
)

// textRule is the shared gate for whitelist-validated string value objects.
type textRule struct {
	field   string
	min     int
	max     int
	pattern *regexp.Regexp
}

func (r textRule) apply(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.Invalid(r.field, "must not be blank")
	}

	length := utf8.RuneCountInString(value)
	if r.min > 0 && length < r.min {
		return "", errors.Invalid(r.field, "must be at least %d characters", r.min)
	}
	if length > r.max {
		return "", errors.Invalid(r.field, "must not exceed %d characters", r.max)
	}
	if !r.pattern.MatchString(value) {
		return "", errors.Invalid(r.field, "contains invalid characters")
	}

	return value, nil
}

var (
	categoryRule = textRule{
		field:   "category",
		max:     50,
		pattern: regexp.MustCompile(`^[\p{L}\p{N} &',./-]+$`),
	}
	nameRule = textRule{
		field:   "name",
		max:     100,
		pattern: regexp.MustCompile(`^[\p{L}\p{N} &'(),./_-]+$`),
	}
	labelRule = textRule{
		field:   "label",
		max:     50,
		pattern: regexp.MustCompile(`^[\p{L}\p{N} ',._-]+$`),
	}
	measurementUnitRule = textRule{
		field:   "measurementUnit",
		max:     20,
		pattern: regexp.MustCompile(`^[\p{L}\p{N} %./_-]+$`),
	}
	skuRule = textRule{
		field:   "sku",
		max:     50,
		pattern: regexp.MustCompile(`^[A-Za-z0-9_-]+$`),
	}
)

// Category is the merchandising category of a product.
type Category struct {
	value string
}

// NewCategory validates raw as a category.
func NewCategory(raw string) (Category, error) {
	value, err := categoryRule.apply(raw)
	if err != nil {
		return Category{}, err
	}

	return Category{value: value}, nil
}

func (c Category) String() string { return c.value }

// IsZero reports whether the category was never set.
func (c Category) IsZero() bool { return c.value == "" }

// Equals reports structural equality.
func (c Category) Equals(other Category) bool { return c.value == other.value }

// Name is the display name of a feature.
type Name struct {
	value string
}

// NewName validates raw as a name.
func NewName(raw string) (Name, error) {
	value, err := nameRule.apply(raw)
	if err != nil {
		return Name{}, err
	}

	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// IsZero reports whether the name was never set.
func (n Name) IsZero() bool { return n.value == "" }

// Equals reports structural equality.
func (n Name) Equals(other Name) bool { return n.value == other.value }

// Label is a short tag shown next to a feature.
type Label struct {
	value string
}

// NewLabel validates raw as a label.
func NewLabel(raw string) (Label, error) {
	value, err := labelRule.apply(raw)
	if err != nil {
		return Label{}, err
	}

	return Label{value: value}, nil
}

func (l Label) String() string { return l.value }

// IsZero reports whether the label was never set.
func (l Label) IsZero() bool { return l.value == "" }

// Equals reports structural equality.
func (l Label) Equals(other Label) bool { return l.value == other.value }

// MeasurementUnit names the unit a scaling price is charged in, e.g. "cm" or "letter".
type MeasurementUnit struct {
	value string
}

// NewMeasurementUnit validates raw as a measurement unit.
func NewMeasurementUnit(raw string) (MeasurementUnit, error) {
	value, err := measurementUnitRule.apply(raw)
	if err != nil {
		return MeasurementUnit{}, err
	}

	return MeasurementUnit{value: value}, nil
}

func (u MeasurementUnit) String() string { return u.value }

// IsZero reports whether the unit was never set.
func (u MeasurementUnit) IsZero() bool { return u.value == "" }

// Equals reports structural equality.
func (u MeasurementUnit) Equals(other MeasurementUnit) bool { return u.value == other.value }

// SKU is the stock keeping unit of a variant.
type SKU struct {
	value string
}

// NewSKU validates raw as a SKU.
func NewSKU(raw string) (SKU, error) {
	value, err := skuRule.apply(raw)
	if err != nil {
		return SKU{}, err
	}

	return SKU{value: value}, nil
}

func (s SKU) String() string { return s.value }

// IsZero reports whether the SKU was never set.
func (s SKU) IsZero() bool { return s.value == "" }

// Equals reports structural equality.
func (s SKU) Equals(other SKU) bool { return s.value == other.value }
