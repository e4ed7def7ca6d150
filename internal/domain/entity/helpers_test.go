package entity

import (
	"testing"

	"catalog/internal/domain/vo"

	"github.com/shopspring/decimal"
)

// must unwraps fixtures built from literals known to be valid.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

func testFeatureInfo(t *testing.T) FeatureInfo {
	t.Helper()

	return FeatureInfo{
		ID:          vo.GenerateFeatureID(),
		Name:        must(vo.NewName("Gift wrap")),
		Label:       must(vo.NewLabel("Extras")),
		Description: must(vo.NewDescription("Wrapped in recycled paper with a ribbon")),
	}
}

func testPrice(t *testing.T, amount, currency string) vo.Price {
	t.Helper()

	c := must(vo.NewCurrency(currency))

	return must(vo.NewPrice(decimal.RequireFromString(amount), 2, c))
}

func testVariant(t *testing.T, status vo.VariantStatus) Variant {
	t.Helper()

	return must(NewVariant(VariantParams{
		ID:               vo.GenerateVariantID(),
		SKU:              must(vo.NewSKU("TEE-RED-M")),
		BasePrice:        testPrice(t, "19.99", "EUR"),
		CurrentPrice:     testPrice(t, "17.99", "EUR"),
		CareInstructions: must(vo.NewCareInstruction("* Machine wash cold")),
		Weight:           must(vo.OfGrams(decimal.NewFromInt(180))),
		Status:           status,
	}))
}

func testProduct(t *testing.T, variants ...Variant) *Product {
	t.Helper()

	if len(variants) == 0 {
		variants = []Variant{testVariant(t, vo.StatusActive)}
	}

	return must(NewProduct(NewProductParams{
		ID:          vo.GenerateProductID(),
		BusinessID:  must(vo.NewBusinessID("ACME")),
		Category:    must(vo.NewCategory("Apparel")),
		Description: must(vo.NewDescription("Organic cotton t-shirt, regular fit")),
		Gallery:     must(vo.NewGallery([]string{"https://cdn.example.com/tee.jpg"})),
		Variants:    variants,
	}))
}
