package service

import (
	"catalog/internal/domain/entity"
	"catalog/internal/domain/vo"
	"catalog/internal/errors"
)

// ProductCoordinator provides compound product transitions that no single aggregate
// method exposes. It holds no state besides its policy and is safe for concurrent use.
type ProductCoordinator struct {
	skipUnchangedContent bool
}

// NewProductCoordinator creates a coordinator honouring policy.
func NewProductCoordinator(policy vo.Policy) *ProductCoordinator {
	return &ProductCoordinator{skipUnchangedContent: policy.SkipUnchangedContent}
}

// UpdateDescription replaces the description. An equal description returns product itself
// without a version bump. The deleted flag is left as is.
func (c *ProductCoordinator) UpdateDescription(product *entity.Product, description vo.Description) (*entity.Product, error) {
	if product == nil {
		return nil, errors.Missing("product")
	}
	if description.IsZero() {
		return nil, errors.Missing("description")
	}
	if product.Description().Equals(description) {
		return product, nil
	}

	return product.Revise(entity.ProductRevision{Description: &description})
}

// RestoreWithNewDescription restores a deleted product and sets its description in a single
// transition (one version bump). A live product only gets UpdateDescription.
func (c *ProductCoordinator) RestoreWithNewDescription(product *entity.Product, description vo.Description) (*entity.Product, error) {
	if product == nil {
		return nil, errors.Missing("product")
	}
	if !product.IsDeleted() {
		return c.UpdateDescription(product, description)
	}
	if description.IsZero() {
		return nil, errors.Missing("description")
	}

	deleted := false

	return product.Revise(entity.ProductRevision{Description: &description, Deleted: &deleted})
}

// UpdateContent replaces description and gallery. With SkipUnchangedContent enabled an
// unchanged input returns product itself; otherwise the aggregate always bumps the version.
func (c *ProductCoordinator) UpdateContent(product *entity.Product, description vo.Description, gallery vo.Gallery) (*entity.Product, error) {
	if product == nil {
		return nil, errors.Missing("product")
	}
	if c.skipUnchangedContent &&
		product.Description().Equals(description) &&
		product.Gallery().Equals(gallery) {
		return product, nil
	}

	return product.UpdateContent(description, gallery)
}
