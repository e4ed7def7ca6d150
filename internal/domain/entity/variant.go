package entity

import (
	stderrors "errors"
	"fmt"

	"catalog/internal/domain/vo"
	"catalog/internal/errors"
)

// ErrCurrencyMismatch is wrapped by every failure caused by mixing currencies within a variant.
var ErrCurrencyMismatch = stderrors.New("currency mismatch")

// VariantParams holds the fields of a variant.
type VariantParams struct {
	ID               vo.VariantID
	SKU              vo.SKU
	BasePrice        vo.Price
	CurrentPrice     vo.Price
	Features         FeatureSet
	CareInstructions vo.CareInstruction
	Weight           vo.Weight
	Status           vo.VariantStatus
}

// Variant is a sellable configuration of a product. Variants are values: every
// change returns a new Variant and leaves the receiver untouched.
type Variant struct {
	id               vo.VariantID
	sku              vo.SKU
	basePrice        vo.Price
	currentPrice     vo.Price
	features         FeatureSet
	careInstructions vo.CareInstruction
	weight           vo.Weight
	status           vo.VariantStatus
}

// NewVariant validates params. Base and current price must share a currency.
func NewVariant(params VariantParams) (Variant, error) {
	switch {
	case params.ID.IsZero():
		return Variant{}, errors.Missing("variantId")
	case params.SKU.IsZero():
		return Variant{}, errors.Missing("sku")
	case params.BasePrice.IsZero():
		return Variant{}, errors.Missing("basePrice")
	case params.CurrentPrice.IsZero():
		return Variant{}, errors.Missing("currentPrice")
	case params.CareInstructions.IsZero():
		return Variant{}, errors.Missing("careInstructions")
	case params.Weight.IsZero():
		return Variant{}, errors.Missing("weight")
	case params.Status == "":
		return Variant{}, errors.Missing("status")
	}
	if !params.Status.IsValid() {
		return Variant{}, errors.Invalid("status", "unknown variant status %q", params.Status)
	}
	if !params.BasePrice.SameCurrency(params.CurrentPrice) {
		return Variant{}, currencyMismatch(params.BasePrice, params.CurrentPrice)
	}

	return Variant{
		id:               params.ID,
		sku:              params.SKU,
		basePrice:        params.BasePrice,
		currentPrice:     params.CurrentPrice,
		features:         params.Features,
		careInstructions: params.CareInstructions,
		weight:           params.Weight,
		status:           params.Status,
	}, nil
}

func currencyMismatch(base, current vo.Price) error {
	return &errors.DomainError{
		Kind:    errors.KindInvalidArgument,
		Field:   "currentPrice",
		Message: fmt.Sprintf("currency %s does not match base price currency %s", current.Currency(), base.Currency()),
		Err:     ErrCurrencyMismatch,
	}
}

func (v Variant) ID() vo.VariantID                     { return v.id }
func (v Variant) SKU() vo.SKU                          { return v.sku }
func (v Variant) BasePrice() vo.Price                  { return v.basePrice }
func (v Variant) CurrentPrice() vo.Price               { return v.currentPrice }
func (v Variant) Features() FeatureSet                 { return v.features }
func (v Variant) CareInstructions() vo.CareInstruction { return v.careInstructions }
func (v Variant) Weight() vo.Weight                    { return v.weight }
func (v Variant) Status() vo.VariantStatus             { return v.status }

// Params returns the fields of v, suitable for building a modified copy through NewVariant.
func (v Variant) Params() VariantParams {
	return VariantParams{
		ID:               v.id,
		SKU:              v.sku,
		BasePrice:        v.basePrice,
		CurrentPrice:     v.currentPrice,
		Features:         v.features,
		CareInstructions: v.careInstructions,
		Weight:           v.weight,
		Status:           v.status,
	}
}

// IsActive reports whether the variant can be sold.
func (v Variant) IsActive() bool { return v.status == vo.StatusActive }

// WithStatus moves the variant to target. DISCONTINUED is terminal and no variant
// goes back to DRAFT once it left it. Setting the current status is a no-op.
func (v Variant) WithStatus(target vo.VariantStatus) (Variant, error) {
	if !target.IsValid() {
		return Variant{}, errors.Invalid("status", "unknown variant status %q", target)
	}
	if target == v.status {
		return v, nil
	}
	if v.status.IsTerminal() {
		return Variant{}, errors.IllegalState("variant %s is %s and cannot become %s", v.id, v.status, target)
	}
	if target == vo.StatusDraft {
		return Variant{}, errors.IllegalState("variant %s cannot return to %s from %s", v.id, vo.StatusDraft, v.status)
	}

	next := v
	next.status = target

	return next, nil
}

// Activate moves the variant to ACTIVE.
func (v Variant) Activate() (Variant, error) { return v.WithStatus(vo.StatusActive) }

// Deactivate moves the variant to INACTIVE.
func (v Variant) Deactivate() (Variant, error) { return v.WithStatus(vo.StatusInactive) }

// Discontinue moves the variant to DISCONTINUED.
func (v Variant) Discontinue() (Variant, error) { return v.WithStatus(vo.StatusDiscontinued) }

// WithCurrentPrice replaces the current price. The currency must match the base price.
func (v Variant) WithCurrentPrice(price vo.Price) (Variant, error) {
	if price.IsZero() {
		return Variant{}, errors.Missing("currentPrice")
	}
	if !v.basePrice.SameCurrency(price) {
		return Variant{}, currencyMismatch(v.basePrice, price)
	}

	next := v
	next.currentPrice = price

	return next, nil
}

// WithFeature attaches f. A feature with the same id must not be attached already.
func (v Variant) WithFeature(f Feature) (Variant, error) {
	features, err := v.features.With(f)
	if err != nil {
		return Variant{}, err
	}

	next := v
	next.features = features

	return next, nil
}

// WithoutFeature detaches the feature with id.
func (v Variant) WithoutFeature(id vo.FeatureID) Variant {
	next := v
	next.features = v.features.Without(id)

	return next
}

// Equal compares every field.
func (v Variant) Equal(other Variant) bool {
	return v.id.Equals(other.id) &&
		v.sku.Equals(other.sku) &&
		v.basePrice.Equals(other.basePrice) &&
		v.currentPrice.Equals(other.currentPrice) &&
		v.features.Equal(other.features) &&
		v.careInstructions.Equals(other.careInstructions) &&
		v.weight.Equals(other.weight) &&
		v.status == other.status
}
