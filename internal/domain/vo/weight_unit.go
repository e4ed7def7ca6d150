package vo

import (
	"strings"

	"catalog/internal/errors"

	"github.com/shopspring/decimal"
)

// ConversionScale is the number of fractional digits kept when converting out of grams.
const ConversionScale = 8

// WeightUnit is one of the supported mass units. Every unit converts through grams.
type WeightUnit string

const (
	Gram      WeightUnit = "GRAM"
	Kilogram  WeightUnit = "KILOGRAM"
	Pound     WeightUnit = "POUND"
	Ounce     WeightUnit = "OUNCE"
	Carat     WeightUnit = "CARAT"
	TroyOunce WeightUnit = "TROY_OUNCE"
)

// gramsPerUnit holds the exact conversion factors.
var gramsPerUnit = map[WeightUnit]decimal.Decimal{
	Gram:      decimal.NewFromInt(1),
	Kilogram:  decimal.NewFromInt(1000),
	Pound:     decimal.RequireFromString("453.59237"),
	Ounce:     decimal.RequireFromString("28.349523125"),
	Carat:     decimal.RequireFromString("0.2"),
	TroyOunce: decimal.RequireFromString("31.1034768"),
}

// WeightUnits returns every supported unit.
func WeightUnits() []WeightUnit {
	return []WeightUnit{Gram, Kilogram, Pound, Ounce, Carat, TroyOunce}
}

// ParseWeightUnit parses a unit name, case-insensitive. Unknown names fail.
func ParseWeightUnit(raw string) (WeightUnit, error) {
	unit := WeightUnit(strings.ToUpper(strings.TrimSpace(raw)))
	if !unit.IsValid() {
		return "", errors.Invalid("weightUnit", "unknown unit %q", raw)
	}

	return unit, nil
}

// IsValid checks if the unit is supported.
func (u WeightUnit) IsValid() bool {
	_, ok := gramsPerUnit[u]

	return ok
}

func (u WeightUnit) String() string { return string(u) }

// GramsPerUnit returns the conversion factor of u.
func (u WeightUnit) GramsPerUnit() decimal.Decimal {
	return gramsPerUnit[u]
}

// ToGrams converts value expressed in u to grams, keeping 16 significant digits.
func (u WeightUnit) ToGrams(value decimal.Decimal) decimal.Decimal {
	if u == Gram {
		return value
	}

	return roundSignificant(value.Mul(u.GramsPerUnit()), multiplicationPrecision)
}

// FromGrams converts grams into u, rounded half-up to ConversionScale with trailing zeros stripped.
func (u WeightUnit) FromGrams(grams decimal.Decimal) decimal.Decimal {
	return u.fromGrams(grams, ConversionScale)
}

func (u WeightUnit) fromGrams(grams decimal.Decimal, scale int32) decimal.Decimal {
	if u == Gram {
		return stripTrailingZeros(roundHalfUp(grams, scale))
	}

	return stripTrailingZeros(grams.DivRound(u.GramsPerUnit(), scale))
}

// ConvertTo converts value from u into target. A same-unit conversion returns the
// input with trailing zeros stripped and never passes through grams.
func (u WeightUnit) ConvertTo(value decimal.Decimal, target WeightUnit) decimal.Decimal {
	if u == target {
		return stripTrailingZeros(value)
	}

	return target.FromGrams(u.ToGrams(value))
}
