package vo

import (
	"fmt"
	"regexp"
	"strings"

	"catalog/internal/errors"

	"github.com/shopspring/decimal"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 alphabetic currency code.
type Currency struct {
	code string
}

// NewCurrency validates raw as a three-letter currency code. Input is upper-cased.
func NewCurrency(raw string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return Currency{}, errors.Invalid("currency", "must not be blank")
	}
	if !currencyPattern.MatchString(code) {
		return Currency{}, errors.Invalid("currency", "must be a three-letter ISO 4217 code")
	}

	return Currency{code: code}, nil
}

// Code returns the currency code.
func (c Currency) Code() string { return c.code }

func (c Currency) String() string { return c.code }

// IsZero reports whether the currency was never set.
func (c Currency) IsZero() bool { return c.code == "" }

// Equals reports structural equality.
func (c Currency) Equals(other Currency) bool { return c.code == other.code }

// Price is a non-negative monetary amount with a display precision.
// Two prices are equal only if amount, precision and currency all match.
type Price struct {
	amount    decimal.Decimal
	precision int32
	currency  Currency
}

// NewPrice validates the parts of a price.
func NewPrice(amount decimal.Decimal, precision int32, currency Currency) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errors.Invalid("amount", "must not be negative")
	}
	if precision < 0 {
		return Price{}, errors.Invalid("precision", "must not be negative")
	}
	if currency.IsZero() {
		return Price{}, errors.Missing("currency")
	}

	return Price{amount: amount, precision: precision, currency: currency}, nil
}

// Amount returns the exact amount.
func (p Price) Amount() decimal.Decimal { return p.amount }

// Precision returns the display precision.
func (p Price) Precision() int32 { return p.precision }

// Currency returns the currency.
func (p Price) Currency() Currency { return p.currency }

// IsZero reports whether the price was never set.
func (p Price) IsZero() bool { return p.currency.IsZero() }

// SameCurrency reports whether both prices use the same currency.
func (p Price) SameCurrency(other Price) bool { return p.currency.Equals(other.currency) }

// Rounded returns the amount rounded half-up to the display precision.
func (p Price) Rounded() decimal.Decimal { return roundHalfUp(p.amount, p.precision) }

// Equals reports structural equality.
func (p Price) Equals(other Price) bool {
	return p.amount.Equal(other.amount) &&
		p.precision == other.precision &&
		p.currency.Equals(other.currency)
}

func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.Rounded().StringFixed(p.precision), p.currency.code)
}
