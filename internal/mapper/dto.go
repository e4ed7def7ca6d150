// Package mapper translates between the catalog aggregate and flat, behaviour-free
// structures used by transports.
package mapper

import (
	"github.com/shopspring/decimal"
)

// PriceDTO is the flat form of vo.Price.
type PriceDTO struct {
	Amount    decimal.Decimal `json:"amount"`
	Precision int32           `json:"precision"`
	Currency  string          `json:"currency"`
}

// WeightDTO is the flat form of vo.Weight.
type WeightDTO struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

// FeatureDTO is the flat form of every feature kind. Type selects which optional fields apply:
// FIXED_PRICE uses Price; SCALING_PRICE uses Unit, BaseAmount, IncrementAmount and MaxQuantity.
type FeatureDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`

	Price *decimal.Decimal `json:"price,omitempty"`

	Unit            string           `json:"unit,omitempty"`
	BaseAmount      *decimal.Decimal `json:"base_amount,omitempty"`
	IncrementAmount *decimal.Decimal `json:"increment_amount,omitempty"`
	MaxQuantity     *int             `json:"max_quantity,omitempty"`
}

// VariantDTO is the flat form of entity.Variant.
type VariantDTO struct {
	ID               string       `json:"id"`
	SKU              string       `json:"sku"`
	BasePrice        PriceDTO     `json:"base_price"`
	CurrentPrice     PriceDTO     `json:"current_price"`
	Features         []FeatureDTO `json:"features"`
	CareInstructions string       `json:"care_instructions"`
	Weight           WeightDTO    `json:"weight"`
	Status           string       `json:"status"`
}

// ProductDTO is the flat form of entity.Product.
type ProductDTO struct {
	ID          string       `json:"id"`
	BusinessID  string       `json:"business_id"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Gallery     []string     `json:"gallery"`
	Variants    []VariantDTO `json:"variants"`
	Version     int64        `json:"version"`
	Deleted     bool         `json:"deleted"`
	Publishable bool         `json:"publishable"`
}
