package postgres

import (
	"fmt"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/vo"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
)

// fromProductDomain flattens a product into its table rows.
func fromProductDomain(p *entity.Product) (model.ProductModel, []model.VariantModel, []model.FeatureModel) {
	productM := model.ProductModel{
		ID:          p.ID().String(),
		BusinessID:  p.BusinessID().String(),
		Category:    p.Category().String(),
		Description: p.Description().String(),
		Gallery:     p.Gallery().Images(),
		Version:     p.Version().Value(),
		Deleted:     p.IsDeleted(),
	}

	var (
		variantMs []model.VariantModel
		featureMs []model.FeatureModel
	)
	for i, v := range p.Variants() {
		variantMs = append(variantMs, model.VariantModel{
			ProductID:          productM.ID,
			ID:                 v.ID().String(),
			Position:           i,
			SKU:                v.SKU().String(),
			BasePriceAmount:    v.BasePrice().Amount(),
			BasePrecision:      v.BasePrice().Precision(),
			CurrentPriceAmount: v.CurrentPrice().Amount(),
			CurrentPrecision:   v.CurrentPrice().Precision(),
			Currency:           v.CurrentPrice().Currency().Code(),
			CareInstructions:   v.CareInstructions().String(),
			WeightAmount:       v.Weight().Amount(),
			WeightUnit:         v.Weight().Unit().String(),
			Status:             v.Status().String(),
		})

		for j, f := range v.Features().All() {
			featureMs = append(featureMs, fromFeatureDomain(productM.ID, v.ID().String(), j, f))
		}
	}

	return productM, variantMs, featureMs
}

func fromFeatureDomain(productID, variantID string, position int, f entity.Feature) model.FeatureModel {
	info := f.Info()
	featureM := model.FeatureModel{
		ProductID:   productID,
		VariantID:   variantID,
		ID:          info.ID.String(),
		Position:    position,
		Kind:        f.Kind().String(),
		Name:        info.Name.String(),
		Label:       info.Label.String(),
		Description: info.Description.String(),
	}

	switch feature := f.(type) {
	case *entity.FixedPriceFeature:
		featureM.Price = decimal.NewNullDecimal(feature.Price())
	case *entity.ScalingPriceFeature:
		unit := feature.Unit().String()
		maxQuantity := feature.MaxQuantity()
		featureM.MeasurementUnit = &unit
		featureM.BaseAmount = decimal.NewNullDecimal(feature.BaseAmount())
		featureM.IncrementAmount = decimal.NewNullDecimal(feature.Increment())
		featureM.MaxQuantity = &maxQuantity
	}

	return featureM
}

// toProductDomain rebuilds a product from its rows through the checked constructors.
// Stored rows are trusted to satisfy the configurable policy they were written under,
// so only the unconditional rules are applied here.
func toProductDomain(productM model.ProductModel, variantMs []model.VariantModel, featureMs []model.FeatureModel) (*entity.Product, error) {
	id, err := vo.NewProductID(productM.ID)
	if err != nil {
		return nil, err
	}
	businessID, err := vo.NewBusinessID(productM.BusinessID)
	if err != nil {
		return nil, err
	}
	category, err := vo.NewCategory(productM.Category)
	if err != nil {
		return nil, err
	}
	description, err := vo.NewDescription(productM.Description)
	if err != nil {
		return nil, err
	}
	gallery, err := vo.NewGallery(productM.Gallery)
	if err != nil {
		return nil, err
	}
	version, err := vo.NewVersion(productM.Version)
	if err != nil {
		return nil, err
	}

	byVariant := make(map[string][]model.FeatureModel, len(variantMs))
	for _, featureM := range featureMs {
		byVariant[featureM.VariantID] = append(byVariant[featureM.VariantID], featureM)
	}

	variants := make([]entity.Variant, 0, len(variantMs))
	for _, variantM := range variantMs {
		v, err := toVariantDomain(variantM, byVariant[variantM.ID])
		if err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("variant %s", variantM.ID))
		}
		variants = append(variants, v)
	}

	return entity.ReconstructProduct(entity.ProductParams{
		ID:          id,
		BusinessID:  businessID,
		Category:    category,
		Description: description,
		Gallery:     gallery,
		Variants:    variants,
		Version:     version,
		Deleted:     productM.Deleted,
	})
}

func toVariantDomain(variantM model.VariantModel, featureMs []model.FeatureModel) (entity.Variant, error) {
	id, err := vo.NewVariantID(variantM.ID)
	if err != nil {
		return entity.Variant{}, err
	}
	sku, err := vo.NewSKU(variantM.SKU)
	if err != nil {
		return entity.Variant{}, err
	}
	currency, err := vo.NewCurrency(variantM.Currency)
	if err != nil {
		return entity.Variant{}, err
	}
	basePrice, err := vo.NewPrice(variantM.BasePriceAmount, variantM.BasePrecision, currency)
	if err != nil {
		return entity.Variant{}, err
	}
	currentPrice, err := vo.NewPrice(variantM.CurrentPriceAmount, variantM.CurrentPrecision, currency)
	if err != nil {
		return entity.Variant{}, err
	}
	care, err := vo.NewCareInstruction(variantM.CareInstructions)
	if err != nil {
		return entity.Variant{}, err
	}
	unit, err := vo.ParseWeightUnit(variantM.WeightUnit)
	if err != nil {
		return entity.Variant{}, err
	}
	weight, err := vo.NewWeight(variantM.WeightAmount, unit)
	if err != nil {
		return entity.Variant{}, err
	}
	status, err := vo.ParseVariantStatus(variantM.Status)
	if err != nil {
		return entity.Variant{}, err
	}

	features := make([]entity.Feature, 0, len(featureMs))
	for _, featureM := range featureMs {
		f, err := toFeatureDomain(featureM)
		if err != nil {
			return entity.Variant{}, errors.WithMessage(err, fmt.Sprintf("feature %s", featureM.ID))
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

func toFeatureDomain(featureM model.FeatureModel) (entity.Feature, error) {
	id, err := vo.NewFeatureID(featureM.ID)
	if err != nil {
		return nil, err
	}
	name, err := vo.NewName(featureM.Name)
	if err != nil {
		return nil, err
	}
	label, err := vo.NewLabel(featureM.Label)
	if err != nil {
		return nil, err
	}
	description, err := vo.NewDescription(featureM.Description)
	if err != nil {
		return nil, err
	}
	info := entity.FeatureInfo{ID: id, Name: name, Label: label, Description: description}

	kind, err := entity.ParseFeatureKind(featureM.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case entity.FeatureKindBasic:
		return entity.AsFeature(entity.NewBasicFeature(info))
	case entity.FeatureKindFixedPrice:
		if !featureM.Price.Valid {
			return nil, errors.Missing("price")
		}

		return entity.AsFeature(entity.NewFixedPriceFeature(info, featureM.Price.Decimal))
	case entity.FeatureKindScalingPrice:
		if featureM.MeasurementUnit == nil || !featureM.BaseAmount.Valid ||
			!featureM.IncrementAmount.Valid || featureM.MaxQuantity == nil {
			return nil, errors.Missing("scaling price")
		}
		unit, err := vo.NewMeasurementUnit(*featureM.MeasurementUnit)
		if err != nil {
			return nil, err
		}

		return entity.AsFeature(entity.NewScalingPriceFeature(info, entity.ScalingPrice{
			Unit:        unit,
			BaseAmount:  featureM.BaseAmount.Decimal,
			Increment:   featureM.IncrementAmount.Decimal,
			MaxQuantity: *featureM.MaxQuantity,
		}))
	default:
		return nil, errors.Invalid("kind", "unknown feature kind %q", featureM.Kind)
	}
}
