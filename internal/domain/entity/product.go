// Package entity contains the catalog aggregate and the entities it owns.
// Every transition returns a new instance; the receiver is never modified.
package entity

import (
	"slices"

	"catalog/internal/domain/vo"
	"catalog/internal/errors"
)

// NewProductParams holds the input of NewProduct.
type NewProductParams struct {
	ID          vo.ProductID
	BusinessID  vo.BusinessID
	Category    vo.Category
	Description vo.Description
	Gallery     vo.Gallery
	Variants    []Variant
}

// ProductParams holds every persisted field of a product.
type ProductParams struct {
	ID          vo.ProductID
	BusinessID  vo.BusinessID
	Category    vo.Category
	Description vo.Description
	Gallery     vo.Gallery
	Variants    []Variant
	Version     vo.Version
	Deleted     bool
}

// Product is the catalog aggregate: a business-owned product with at least one variant.
type Product struct {
	id          vo.ProductID
	businessID  vo.BusinessID
	category    vo.Category
	description vo.Description
	gallery     vo.Gallery
	variants    []Variant
	version     vo.Version
	deleted     bool
}

// NewProduct creates a product at the initial version, not deleted.
func NewProduct(params NewProductParams) (*Product, error) {
	return ReconstructProduct(ProductParams{
		ID:          params.ID,
		BusinessID:  params.BusinessID,
		Category:    params.Category,
		Description: params.Description,
		Gallery:     params.Gallery,
		Variants:    params.Variants,
		Version:     vo.InitialVersion,
	})
}

// ReconstructProduct rebuilds a stored product, enforcing the same invariants as NewProduct.
func ReconstructProduct(params ProductParams) (*Product, error) {
	switch {
	case params.ID.IsZero():
		return nil, errors.Missing("productId")
	case params.BusinessID.IsZero():
		return nil, errors.Missing("businessId")
	case params.Category.IsZero():
		return nil, errors.Missing("category")
	case params.Description.IsZero():
		return nil, errors.Missing("description")
	case params.Gallery.IsZero():
		return nil, errors.Missing("gallery")
	}
	if err := validateVariants(params.Variants); err != nil {
		return nil, err
	}

	return &Product{
		id:          params.ID,
		businessID:  params.BusinessID,
		category:    params.Category,
		description: params.Description,
		gallery:     params.Gallery,
		variants:    slices.Clone(params.Variants),
		version:     params.Version,
		deleted:     params.Deleted,
	}, nil
}

func validateVariants(variants []Variant) error {
	if len(variants) == 0 {
		return errors.Invalid("variants", "must contain at least one variant")
	}

	seen := make(map[vo.VariantID]struct{}, len(variants))
	for _, v := range variants {
		if v.ID().IsZero() {
			return errors.Missing("variant")
		}
		if _, dup := seen[v.ID()]; dup {
			return errors.Invalid("variants", "duplicate variant %s", v.ID())
		}
		seen[v.ID()] = struct{}{}
	}

	return nil
}

func (p *Product) ID() vo.ProductID            { return p.id }
func (p *Product) BusinessID() vo.BusinessID   { return p.businessID }
func (p *Product) Category() vo.Category       { return p.category }
func (p *Product) Description() vo.Description { return p.description }
func (p *Product) Gallery() vo.Gallery         { return p.gallery }
func (p *Product) Version() vo.Version         { return p.version }
func (p *Product) IsDeleted() bool             { return p.deleted }

// Variants returns a copy of the variants in order.
func (p *Product) Variants() []Variant { return slices.Clone(p.variants) }

// Variant returns the variant with id.
func (p *Product) Variant(id vo.VariantID) (Variant, bool) {
	i := p.variantIndex(id)
	if i < 0 {
		return Variant{}, false
	}

	return p.variants[i], true
}

// Params returns every field of p.
func (p *Product) Params() ProductParams {
	return ProductParams{
		ID:          p.id,
		BusinessID:  p.businessID,
		Category:    p.category,
		Description: p.description,
		Gallery:     p.gallery,
		Variants:    p.Variants(),
		Version:     p.version,
		Deleted:     p.deleted,
	}
}

func (p *Product) variantIndex(id vo.VariantID) int {
	return slices.IndexFunc(p.variants, func(v Variant) bool { return v.ID().Equals(id) })
}

// IsPublishable reports whether the product may be shown to buyers: not deleted,
// with images and at least one ACTIVE variant.
func (p *Product) IsPublishable() bool {
	if p.deleted {
		return false
	}

	return p.HasMinimumImages() && p.HasActiveVariants()
}

// HasMinimumImages reports whether the gallery holds enough images to publish.
func (p *Product) HasMinimumImages() bool {
	return p.gallery.Len() >= vo.MinGalleryImages
}

// HasActiveVariants reports whether at least one variant is ACTIVE.
func (p *Product) HasActiveVariants() bool {
	return slices.ContainsFunc(p.variants, Variant.IsActive)
}

// AllVariantsAreDraft reports whether every variant is still DRAFT.
func (p *Product) AllVariantsAreDraft() bool {
	for _, v := range p.variants {
		if v.Status() != vo.StatusDraft {
			return false
		}
	}

	return true
}

// next returns a copy of p at the following version.
func (p *Product) next() *Product {
	n := *p
	n.variants = slices.Clone(p.variants)
	n.version = p.version.Next()

	return &n
}

// SoftDelete marks the product deleted. Deleting a deleted product returns p.
func (p *Product) SoftDelete() *Product {
	if p.deleted {
		return p
	}

	n := p.next()
	n.deleted = true

	return n
}

// Restore clears the deleted flag. Restoring a live product returns p.
func (p *Product) Restore() *Product {
	if !p.deleted {
		return p
	}

	n := p.next()
	n.deleted = false

	return n
}

// UpdateContent replaces description and gallery. The version is always bumped,
// even when both values are unchanged.
func (p *Product) UpdateContent(description vo.Description, gallery vo.Gallery) (*Product, error) {
	if description.IsZero() {
		return nil, errors.Missing("description")
	}
	if gallery.IsZero() {
		return nil, errors.Missing("gallery")
	}

	n := p.next()
	n.description = description
	n.gallery = gallery

	return n, nil
}

// ChangeCategory moves the product to category. An unchanged category returns p.
func (p *Product) ChangeCategory(category vo.Category) (*Product, error) {
	if category.IsZero() {
		return nil, errors.Missing("category")
	}
	if category.Equals(p.category) {
		return p, nil
	}

	n := p.next()
	n.category = category

	return n, nil
}

// AddVariant appends v. Its id must not be taken by another variant.
func (p *Product) AddVariant(v Variant) (*Product, error) {
	if v.ID().IsZero() {
		return nil, errors.Missing("variant")
	}
	if p.variantIndex(v.ID()) >= 0 {
		return nil, errors.Invalid("variants", "duplicate variant %s", v.ID())
	}

	n := p.next()
	n.variants = append(n.variants, v)

	return n, nil
}

// ChangeVariantStatus moves the variant with id to status. Setting the current status returns p.
func (p *Product) ChangeVariantStatus(id vo.VariantID, status vo.VariantStatus) (*Product, error) {
	return p.replaceVariant(id, func(v Variant) (Variant, error) { return v.WithStatus(status) })
}

// ChangeVariantPrice sets the current price of the variant with id. The currency must match
// the variant base price. Setting an equal price returns p.
func (p *Product) ChangeVariantPrice(id vo.VariantID, price vo.Price) (*Product, error) {
	return p.replaceVariant(id, func(v Variant) (Variant, error) { return v.WithCurrentPrice(price) })
}

func (p *Product) replaceVariant(id vo.VariantID, change func(Variant) (Variant, error)) (*Product, error) {
	i := p.variantIndex(id)
	if i < 0 {
		return nil, errors.Invalid("variantId", "variant %s does not belong to product %s", id, p.id)
	}

	updated, err := change(p.variants[i])
	if err != nil {
		return nil, err
	}
	if updated.Equal(p.variants[i]) {
		return p, nil
	}

	n := p.next()
	n.variants[i] = updated

	return n, nil
}

// ProductRevision lists the fields to change in one transition. Nil fields are kept.
type ProductRevision struct {
	Category    *vo.Category
	Description *vo.Description
	Gallery     *vo.Gallery
	Deleted     *bool
}

// Revise applies every non-nil field of r as a single transition with one version bump.
func (p *Product) Revise(r ProductRevision) (*Product, error) {
	n := p.next()
	if r.Category != nil {
		if r.Category.IsZero() {
			return nil, errors.Missing("category")
		}
		n.category = *r.Category
	}
	if r.Description != nil {
		if r.Description.IsZero() {
			return nil, errors.Missing("description")
		}
		n.description = *r.Description
	}
	if r.Gallery != nil {
		if r.Gallery.IsZero() {
			return nil, errors.Missing("gallery")
		}
		n.gallery = *r.Gallery
	}
	if r.Deleted != nil {
		n.deleted = *r.Deleted
	}

	return n, nil
}
