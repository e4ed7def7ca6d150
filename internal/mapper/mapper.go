package mapper

import (
	"fmt"
	"strings"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/vo"
	"catalog/internal/errors"
)

// Mapper converts DTOs to domain objects under a validation policy, and back.
// Domain to DTO conversion cannot fail; DTO to domain returns the first validation error.
type Mapper struct {
	policy vo.Policy
}

// New creates a mapper bound to policy.
func New(policy vo.Policy) *Mapper {
	return &Mapper{policy: policy}
}

// Policy returns the validation policy of m.
func (m *Mapper) Policy() vo.Policy { return m.policy }

// ProductToDTO flattens p.
func (m *Mapper) ProductToDTO(p *entity.Product) ProductDTO {
	variants := p.Variants()
	dtos := make([]VariantDTO, 0, len(variants))
	for _, v := range variants {
		dtos = append(dtos, m.VariantToDTO(v))
	}

	return ProductDTO{
		ID:          p.ID().String(),
		BusinessID:  p.BusinessID().String(),
		Category:    p.Category().String(),
		Description: p.Description().String(),
		Gallery:     p.Gallery().Images(),
		Variants:    dtos,
		Version:     p.Version().Value(),
		Deleted:     p.IsDeleted(),
		Publishable: p.IsPublishable(),
	}
}

// ProductsToDTO flattens every product of products.
func (m *Mapper) ProductsToDTO(products []*entity.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, m.ProductToDTO(p))
	}

	return dtos
}

// VariantToDTO flattens v.
func (m *Mapper) VariantToDTO(v entity.Variant) VariantDTO {
	features := v.Features().All()
	dtos := make([]FeatureDTO, 0, len(features))
	for _, f := range features {
		dtos = append(dtos, m.FeatureToDTO(f))
	}

	return VariantDTO{
		ID:               v.ID().String(),
		SKU:              v.SKU().String(),
		BasePrice:        PriceToDTO(v.BasePrice()),
		CurrentPrice:     PriceToDTO(v.CurrentPrice()),
		Features:         dtos,
		CareInstructions: v.CareInstructions().String(),
		Weight:           WeightToDTO(v.Weight()),
		Status:           v.Status().String(),
	}
}

// FeatureToDTO flattens f. Every feature kind is handled; anything else is a programming
// error and panics.
func (m *Mapper) FeatureToDTO(f entity.Feature) FeatureDTO {
	if f == nil {
		panic("mapper: nil feature")
	}

	info := f.Info()
	dto := FeatureDTO{
		ID:          info.ID.String(),
		Type:        f.Kind().String(),
		Name:        info.Name.String(),
		Label:       info.Label.String(),
		Description: info.Description.String(),
	}

	switch feature := f.(type) {
	case *entity.BasicFeature:
	case *entity.FixedPriceFeature:
		price := feature.Price()
		dto.Price = &price
	case *entity.ScalingPriceFeature:
		base, increment, maxQuantity := feature.BaseAmount(), feature.Increment(), feature.MaxQuantity()
		dto.Unit = feature.Unit().String()
		dto.BaseAmount = &base
		dto.IncrementAmount = &increment
		dto.MaxQuantity = &maxQuantity
	default:
		panic(fmt.Sprintf("mapper: unhandled feature type %T", f))
	}

	return dto
}

// PriceToDTO flattens p.
func PriceToDTO(p vo.Price) PriceDTO {
	return PriceDTO{Amount: p.Amount(), Precision: p.Precision(), Currency: p.Currency().Code()}
}

// WeightToDTO flattens w.
func WeightToDTO(w vo.Weight) WeightDTO {
	return WeightDTO{Amount: w.Amount(), Unit: w.Unit().String()}
}

// Product rebuilds a stored product through the checked constructor.
func (m *Mapper) Product(dto ProductDTO) (*entity.Product, error) {
	id, err := vo.NewProductID(dto.ID)
	if err != nil {
		return nil, err
	}
	businessID, err := m.policy.BusinessID(dto.BusinessID)
	if err != nil {
		return nil, err
	}
	category, err := vo.NewCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	description, err := m.policy.Description(dto.Description)
	if err != nil {
		return nil, err
	}
	gallery, err := vo.NewGallery(dto.Gallery)
	if err != nil {
		return nil, err
	}
	version, err := vo.NewVersion(dto.Version)
	if err != nil {
		return nil, err
	}
	variants, err := m.Variants(dto.Variants)
	if err != nil {
		return nil, err
	}

	return entity.ReconstructProduct(entity.ProductParams{
		ID:          id,
		BusinessID:  businessID,
		Category:    category,
		Description: description,
		Gallery:     gallery,
		Variants:    variants,
		Version:     version,
		Deleted:     dto.Deleted,
	})
}

// Variants rebuilds every variant of dtos.
func (m *Mapper) Variants(dtos []VariantDTO) ([]entity.Variant, error) {
	variants := make([]entity.Variant, 0, len(dtos))
	for i, dto := range dtos {
		v, err := m.Variant(dto)
		if err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("variants[%d]", i))
		}
		variants = append(variants, v)
	}

	return variants, nil
}

// Variant rebuilds a variant. A blank id is replaced by a generated one, so new
// variants can be submitted without an id.
func (m *Mapper) Variant(dto VariantDTO) (entity.Variant, error) {
	id, err := variantID(dto.ID)
	if err != nil {
		return entity.Variant{}, err
	}
	sku, err := vo.NewSKU(dto.SKU)
	if err != nil {
		return entity.Variant{}, err
	}
	basePrice, err := Price(dto.BasePrice)
	if err != nil {
		return entity.Variant{}, errors.WithMessage(err, "basePrice")
	}
	currentPrice, err := Price(dto.CurrentPrice)
	if err != nil {
		return entity.Variant{}, errors.WithMessage(err, "currentPrice")
	}
	care, err := vo.NewCareInstruction(dto.CareInstructions)
	if err != nil {
		return entity.Variant{}, err
	}
	weight, err := m.Weight(dto.Weight)
	if err != nil {
		return entity.Variant{}, err
	}
	status, err := vo.ParseVariantStatus(dto.Status)
	if err != nil {
		return entity.Variant{}, err
	}

	features := make([]entity.Feature, 0, len(dto.Features))
	for i, fdto := range dto.Features {
		f, err := m.Feature(fdto)
		if err != nil {
			return entity.Variant{}, errors.WithMessage(err, fmt.Sprintf("features[%d]", i))
		}
		features = append(features, f)
	}
	set, err := entity.NewFeatureSet(features...)
	if err != nil {
		return entity.Variant{}, err
	}

	return entity.NewVariant(entity.VariantParams{
		ID:               id,
		SKU:              sku,
		BasePrice:        basePrice,
		CurrentPrice:     currentPrice,
		Features:         set,
		CareInstructions: care,
		Weight:           weight,
		Status:           status,
	})
}

// Feature rebuilds the concrete feature kind named by dto.Type. A blank id is generated.
func (m *Mapper) Feature(dto FeatureDTO) (entity.Feature, error) {
	kind, err := entity.ParseFeatureKind(strings.TrimSpace(dto.Type))
	if err != nil {
		return nil, err
	}
	info, err := m.featureInfo(dto)
	if err != nil {
		return nil, err
	}

	switch kind {
	case entity.FeatureKindBasic:
		return entity.AsFeature(entity.NewBasicFeature(info))
	case entity.FeatureKindFixedPrice:
		if dto.Price == nil {
			return nil, errors.Missing("price")
		}

		return entity.AsFeature(entity.NewFixedPriceFeature(info, *dto.Price))
	case entity.FeatureKindScalingPrice:
		payload, err := scalingPayload(dto)
		if err != nil {
			return nil, err
		}

		return entity.AsFeature(entity.NewScalingPriceFeature(info, payload))
	default:
		return nil, errors.Invalid("type", "unknown feature type %q", dto.Type)
	}
}

func (m *Mapper) featureInfo(dto FeatureDTO) (entity.FeatureInfo, error) {
	id, err := featureID(dto.ID)
	if err != nil {
		return entity.FeatureInfo{}, err
	}
	name, err := vo.NewName(dto.Name)
	if err != nil {
		return entity.FeatureInfo{}, err
	}
	label, err := vo.NewLabel(dto.Label)
	if err != nil {
		return entity.FeatureInfo{}, err
	}
	description, err := m.policy.Description(dto.Description)
	if err != nil {
		return entity.FeatureInfo{}, err
	}

	return entity.FeatureInfo{ID: id, Name: name, Label: label, Description: description}, nil
}

func scalingPayload(dto FeatureDTO) (entity.ScalingPrice, error) {
	switch {
	case dto.BaseAmount == nil:
		return entity.ScalingPrice{}, errors.Missing("baseAmount")
	case dto.IncrementAmount == nil:
		return entity.ScalingPrice{}, errors.Missing("incrementAmount")
	case dto.MaxQuantity == nil:
		return entity.ScalingPrice{}, errors.Missing("maxQuantity")
	}

	unit, err := vo.NewMeasurementUnit(dto.Unit)
	if err != nil {
		return entity.ScalingPrice{}, err
	}

	return entity.ScalingPrice{
		Unit:        unit,
		BaseAmount:  *dto.BaseAmount,
		Increment:   *dto.IncrementAmount,
		MaxQuantity: *dto.MaxQuantity,
	}, nil
}

// Price builds a price from dto.
func Price(dto PriceDTO) (vo.Price, error) {
	currency, err := vo.NewCurrency(dto.Currency)
	if err != nil {
		return vo.Price{}, err
	}

	return vo.NewPrice(dto.Amount, dto.Precision, currency)
}

// Weight builds a weight from dto under the zero-weight policy.
func (m *Mapper) Weight(dto WeightDTO) (vo.Weight, error) {
	unit, err := vo.ParseWeightUnit(dto.Unit)
	if err != nil {
		return vo.Weight{}, err
	}

	return m.policy.Weight(dto.Amount, unit)
}

func variantID(raw string) (vo.VariantID, error) {
	if strings.TrimSpace(raw) == "" {
		return vo.GenerateVariantID(), nil
	}

	return vo.NewVariantID(raw)
}

func featureID(raw string) (vo.FeatureID, error) {
	if strings.TrimSpace(raw) == "" {
		return vo.GenerateFeatureID(), nil
	}

	return vo.NewFeatureID(raw)
}
