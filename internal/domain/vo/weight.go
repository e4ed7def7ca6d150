package vo

import (
	"fmt"

	"catalog/internal/errors"

	"github.com/shopspring/decimal"
)

// WeightScale is the number of fractional digits a stored weight keeps.
const WeightScale = 4

// MaxWeightGrams is the heaviest weight accepted, in grams.
var MaxWeightGrams = decimal.NewFromInt(100_000)

// Weight is a non-negative mass no heavier than MaxWeightGrams.
// The amount is rounded half-up to WeightScale with trailing zeros stripped.
type Weight struct {
	amount decimal.Decimal
	unit   WeightUnit
}

// NewWeight builds a weight; zero is accepted.
func NewWeight(amount decimal.Decimal, unit WeightUnit) (Weight, error) {
	return newWeight(amount, unit, true)
}

// NewPositiveWeight builds a weight that must be strictly greater than zero.
func NewPositiveWeight(amount decimal.Decimal, unit WeightUnit) (Weight, error) {
	return newWeight(amount, unit, false)
}

func newWeight(amount decimal.Decimal, unit WeightUnit, allowZero bool) (Weight, error) {
	if unit == "" {
		return Weight{}, errors.Missing("weightUnit")
	}
	if !unit.IsValid() {
		return Weight{}, errors.Invalid("weightUnit", "unknown unit %q", unit)
	}
	if amount.IsNegative() {
		return Weight{}, errors.Invalid("weight", "must not be negative")
	}
	if !allowZero && amount.IsZero() {
		return Weight{}, errors.Invalid("weight", "must be greater than zero")
	}

	normalized := stripTrailingZeros(roundHalfUp(amount, WeightScale))
	if unit.ToGrams(normalized).GreaterThan(MaxWeightGrams) {
		return Weight{}, errors.Invalid("weight", "must not exceed %s grams", MaxWeightGrams)
	}

	return Weight{amount: normalized, unit: unit}, nil
}

// OfGrams builds a weight in grams.
func OfGrams(amount decimal.Decimal) (Weight, error) { return NewWeight(amount, Gram) }

// OfKilograms builds a weight in kilograms.
func OfKilograms(amount decimal.Decimal) (Weight, error) { return NewWeight(amount, Kilogram) }

// OfPounds builds a weight in pounds.
func OfPounds(amount decimal.Decimal) (Weight, error) { return NewWeight(amount, Pound) }

// OfOunces builds a weight in ounces.
func OfOunces(amount decimal.Decimal) (Weight, error) { return NewWeight(amount, Ounce) }

// OfCarats builds a weight in carats.
func OfCarats(amount decimal.Decimal) (Weight, error) { return NewWeight(amount, Carat) }

// OfTroyOunces builds a weight in troy ounces.
func OfTroyOunces(amount decimal.Decimal) (Weight, error) { return NewWeight(amount, TroyOunce) }

// Amount returns the normalized amount.
func (w Weight) Amount() decimal.Decimal { return w.amount }

// Unit returns the unit of the amount.
func (w Weight) Unit() WeightUnit { return w.unit }

// IsZero reports whether the weight was never set.
func (w Weight) IsZero() bool { return w.unit == "" }

// InGrams returns the weight expressed in grams.
func (w Weight) InGrams() decimal.Decimal {
	return w.unit.ToGrams(w.amount)
}

// ConvertTo expresses the weight in target. Converting to the current unit returns w unchanged.
// An amount that would round half-up past MaxWeightGrams is truncated at WeightScale instead.
func (w Weight) ConvertTo(target WeightUnit) (Weight, error) {
	if !target.IsValid() {
		return Weight{}, errors.Invalid("weightUnit", "unknown unit %q", target)
	}
	if w.unit == target {
		return w, nil
	}

	grams := w.InGrams()
	amount := target.fromGrams(grams, WeightScale)
	if target.ToGrams(amount).GreaterThan(MaxWeightGrams) {
		amount = stripTrailingZeros(grams.DivRound(target.GramsPerUnit(), ConversionScale).RoundDown(WeightScale))
	}

	return newWeight(amount, target, true)
}

// Add returns the sum of both weights, in grams. A zero sum is accepted; use Policy.AddWeights
// to apply AllowZeroWeight.
func (w Weight) Add(other Weight) (Weight, error) {
	return w.add(other, true)
}

// Subtract returns w minus other, in grams. The result must not be negative; a zero difference
// is accepted. Use Policy.SubtractWeights to apply AllowZeroWeight.
func (w Weight) Subtract(other Weight) (Weight, error) {
	return w.subtract(other, true)
}

func (w Weight) add(other Weight, allowZero bool) (Weight, error) {
	sum := w.InGrams().Add(other.InGrams())
	if sum.GreaterThan(MaxWeightGrams) {
		return Weight{}, errors.Invalid("weight", "sum must not exceed %s grams", MaxWeightGrams)
	}

	return newWeight(sum, Gram, allowZero)
}

func (w Weight) subtract(other Weight, allowZero bool) (Weight, error) {
	diff := w.InGrams().Sub(other.InGrams())
	if diff.IsNegative() {
		return Weight{}, errors.Invalid("weight", "difference must not be negative")
	}

	return newWeight(diff, Gram, allowZero)
}

// Compare returns -1, 0 or +1 comparing both weights in grams.
func (w Weight) Compare(other Weight) int {
	return w.InGrams().Cmp(other.InGrams())
}

// Equals reports structural equality of amount and unit.
func (w Weight) Equals(other Weight) bool {
	return w.unit == other.unit && w.amount.Equal(other.amount)
}

func (w Weight) String() string {
	return fmt.Sprintf("%s %s", w.amount.String(), w.unit)
}
