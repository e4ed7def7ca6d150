// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/mapper"

	"github.com/shopspring/decimal"
)

// Target identifies the product a mutating call acts on and who is acting.
type Target struct {
	ProductID string
	// BusinessID is the caller's business, taken from the access token.
	BusinessID string
	// ExpectedVersion rejects the call with a conflict when the stored version differs.
	ExpectedVersion *int64
}

// CreateProductInput represents the input for creating a product
type CreateProductInput struct {
	BusinessID  string
	Category    string
	Description string
	Gallery     []string
	Variants    []mapper.VariantDTO
}

// ListProductsInput represents the filter for listing the products of a business
type ListProductsInput struct {
	BusinessID     string
	Category       *string
	IncludeDeleted bool
	Limit          int
	Offset         int

	// RequesterBusinessID is the caller's business from an optional access token.
	// Listing deleted products requires it to match BusinessID.
	RequesterBusinessID string
}

// RestoreProductInput restores a deleted product, optionally replacing its description.
type RestoreProductInput struct {
	Target
	Description *string
}

// UpdateDescriptionInput represents the input for replacing a product description
type UpdateDescriptionInput struct {
	Target
	Description string
}

// UpdateContentInput represents the input for replacing description and gallery together
type UpdateContentInput struct {
	Target
	Description string
	Gallery     []string
}

// ChangeCategoryInput represents the input for moving a product to another category
type ChangeCategoryInput struct {
	Target
	Category string
}

// AddVariantInput represents the input for adding a variant. A blank variant id is generated.
type AddVariantInput struct {
	Target
	Variant mapper.VariantDTO
}

// ChangeVariantStatusInput represents the input for a variant lifecycle transition
type ChangeVariantStatusInput struct {
	Target
	VariantID string
	Status    string
}

// ChangeVariantPriceInput represents the input for replacing a variant's current price
type ChangeVariantPriceInput struct {
	Target
	VariantID string
	Price     mapper.PriceDTO
}

// QuoteFeatureInput asks for the total of a scaling-price feature at a quantity.
type QuoteFeatureInput struct {
	ProductID string
	VariantID string
	FeatureID string
	Quantity  int
}

// FeatureQuote is the priced result of QuoteFeature.
type FeatureQuote struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id"`
	FeatureID string          `json:"feature_id"`
	Unit      string          `json:"unit"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
}

// ProductUsecase defines the interface for product catalog use cases
type ProductUsecase interface {
	// Queries
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	ListBusinessProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	QuoteFeature(ctx context.Context, input *QuoteFeatureInput) (*FeatureQuote, error)

	// Product lifecycle
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, target Target) (*entity.Product, error)
	RestoreProduct(ctx context.Context, input *RestoreProductInput) (*entity.Product, error)

	// Content
	UpdateDescription(ctx context.Context, input *UpdateDescriptionInput) (*entity.Product, error)
	UpdateContent(ctx context.Context, input *UpdateContentInput) (*entity.Product, error)
	ChangeCategory(ctx context.Context, input *ChangeCategoryInput) (*entity.Product, error)

	// Variants
	AddVariant(ctx context.Context, input *AddVariantInput) (*entity.Product, error)
	ChangeVariantStatus(ctx context.Context, input *ChangeVariantStatusInput) (*entity.Product, error)
	ChangeVariantPrice(ctx context.Context, input *ChangeVariantPriceInput) (*entity.Product, error)
}
