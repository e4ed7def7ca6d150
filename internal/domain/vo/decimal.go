package vo

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// multiplicationPrecision is the number of significant digits kept by unit-factor multiplication.
const multiplicationPrecision = 16

var bigTen = big.NewInt(10)

// stripTrailingZeros returns d with the smallest exponent that represents the same value.
func stripTrailingZeros(d decimal.Decimal) decimal.Decimal {
	coefficient := d.Coefficient()
	exponent := d.Exponent()
	if coefficient.Sign() == 0 {
		return decimal.Zero
	}

	quotient, remainder := new(big.Int), new(big.Int)
	for {
		quotient.QuoRem(coefficient, bigTen, remainder)
		if remainder.Sign() != 0 {
			break
		}
		coefficient = new(big.Int).Set(quotient)
		exponent++
	}

	return decimal.NewFromBigInt(coefficient, exponent)
}

// roundSignificant rounds d half-up to the given number of significant digits.
func roundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}

	numDigits := int32(d.NumDigits())
	if numDigits <= digits {
		return d
	}

	// integer digits = numDigits + exponent; keep digits - integerDigits fractional places.
	places := digits - (numDigits + d.Exponent())

	return d.Round(places)
}

// roundHalfUp rounds d to scale fractional digits. Amounts handled here are never negative,
// so shopspring's half-away-from-zero rounding is half-up.
func roundHalfUp(d decimal.Decimal, scale int32) decimal.Decimal {
	return d.Round(scale)
}
