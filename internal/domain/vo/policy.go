package vo

import (
	"github.com/shopspring/decimal"
)

// Policy carries the validation choices that differ between catalog deployments.
// The zero value is not usable; start from DefaultPolicy.
type Policy struct {
	// AllowZeroWeight accepts a zero weight amount when true.
	AllowZeroWeight bool
	// BusinessIDFormat selects the business identifier validator.
	BusinessIDFormat BusinessIDFormat
	// ForbiddenTerms extends the built-in forbidden description terms.
	ForbiddenTerms []string
	// SkipUnchangedContent makes content updates with identical input a no-op.
	SkipUnchangedContent bool
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		AllowZeroWeight:  true,
		BusinessIDFormat: BusinessIDFormatAny,
	}
}

// Weight builds a weight honouring AllowZeroWeight.
func (p Policy) Weight(amount decimal.Decimal, unit WeightUnit) (Weight, error) {
	return newWeight(amount, unit, p.AllowZeroWeight)
}

// AddWeights sums both weights in grams, honouring AllowZeroWeight.
func (p Policy) AddWeights(a, b Weight) (Weight, error) {
	return a.add(b, p.AllowZeroWeight)
}

// SubtractWeights subtracts b from a in grams, honouring AllowZeroWeight.
func (p Policy) SubtractWeights(a, b Weight) (Weight, error) {
	return a.subtract(b, p.AllowZeroWeight)
}

// BusinessID builds a business identifier honouring BusinessIDFormat.
func (p Policy) BusinessID(raw string) (BusinessID, error) {
	format := p.BusinessIDFormat
	if format == "" {
		format = BusinessIDFormatAny
	}

	return ParseBusinessID(raw, format)
}

// Description builds a description rejecting built-in and configured forbidden terms.
func (p Policy) Description(raw string) (Description, error) {
	if len(p.ForbiddenTerms) == 0 {
		return NewDescription(raw)
	}

	terms := append(DefaultForbiddenTerms(), p.ForbiddenTerms...)

	return newDescription(raw, terms)
}
