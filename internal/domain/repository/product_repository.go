// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/vo"
)

var (
	// ErrProductNotFound is returned by writes that target a product row that does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrVersionConflict is returned when the stored version differs from the expected one.
	ErrVersionConflict = errors.New("product version conflict")
	// ErrProductAlreadyExists is returned when creating a product whose id is taken.
	ErrProductAlreadyExists = errors.New("product already exists")
)

// ProductFilter narrows FindByBusiness.
type ProductFilter struct {
	// IncludeDeleted also returns soft-deleted products.
	IncludeDeleted bool
	// Category keeps only products in this category when set.
	Category *vo.Category
	Limit    int
	Offset   int
}

// ProductRepository persists product aggregates together with their variants and features.
type ProductRepository interface {
	// Create stores a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update stores product only if the stored version still equals expected.
	Update(ctx context.Context, product *entity.Product, expected vo.Version) error

	// FindByID loads a product. A missing product is reported as ok == false with a nil error.
	FindByID(ctx context.Context, id vo.ProductID) (product *entity.Product, ok bool, err error)

	// FindByBusiness lists the products owned by a business, oldest first.
	FindByBusiness(ctx context.Context, businessID vo.BusinessID, filter ProductFilter) ([]*entity.Product, error)
}
