package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/domain/vo"
	"catalog/internal/mapper"
	mockRepo "catalog/internal/mocks/repository"
	"catalog/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testBusinessID     = "ACME"
	testProductID      = "5f0c6b1e-8d2a-4b7c-9e3f-1a2b3c4d5e6f"
	testVariantID      = "a1b2c3d4-e5f6-4789-8abc-def012345678"
	testBasicFeatureID = "b1b2c3d4-e5f6-4789-8abc-def012345678"
	testScaleFeatureID = "c1b2c3d4-e5f6-4789-8abc-def012345678"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	mapper      *mapper.Mapper
}

func createTestProductService(t *testing.T) productServiceFixtures {
	return createTestProductServiceWithPolicy(t, vo.DefaultPolicy())
}

func createTestProductServiceWithPolicy(t *testing.T, policy vo.Policy) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	m := mapper.New(policy)

	svc := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Coordinator: service.NewProductCoordinator(policy),
		Mapper:      m,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     svc,
		txManager:   txManager,
		productRepo: productRepo,
		mapper:      m,
	}
}

// expectTx makes the next Execute call run fn against txRepo and return fn's result.
func (f productServiceFixtures) expectTx(t *testing.T, txRepo *mockRepo.MockProductRepository) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().ProductRepo().Return(txRepo)

			return fn(mockFactory)
		})
}

func testProductDTO(status string) mapper.ProductDTO {
	eur := mapper.PriceDTO{Amount: decimal.RequireFromString("24.90"), Precision: 2, Currency: "EUR"}

	return mapper.ProductDTO{
		ID:          testProductID,
		BusinessID:  testBusinessID,
		Category:    "Stationery",
		Description: "Hardcover notebook with dotted pages",
		Gallery: []string{
			"https://cdn.example.com/notebook-1.jpg",
			"https://cdn.example.com/notebook-2.jpg",
		},
		Variants: []mapper.VariantDTO{{
			ID:               testVariantID,
			SKU:              "NOTE-A5-DOT",
			BasePrice:        eur,
			CurrentPrice:     eur,
			CareInstructions: "* Keep away from moisture",
			Weight:           mapper.WeightDTO{Amount: decimal.RequireFromString("320"), Unit: "GRAM"},
			Status:           status,
			Features: []mapper.FeatureDTO{
				{
					ID: testBasicFeatureID, Type: "BASIC",
					Name: "Ribbon", Label: "Included", Description: "Two satin ribbon bookmarks",
				},
				{
					ID: testScaleFeatureID, Type: "SCALING_PRICE",
					Name: "Embossing", Label: "Custom", Description: "Gold foil embossing on the cover",
					Unit:            "letter",
					BaseAmount:      ptr(decimal.RequireFromString("5.00")),
					IncrementAmount: ptr(decimal.RequireFromString("0.75")),
					MaxQuantity:     ptr(20),
				},
			},
		}},
	}
}

func newTestProduct(t *testing.T, status string) *entity.Product {
	t.Helper()

	product, err := mapper.New(vo.DefaultPolicy()).Product(testProductDTO(status))
	require.NoError(t, err)

	return product
}

func testTarget() usecase.Target {
	return usecase.Target{ProductID: testProductID, BusinessID: testBusinessID}
}

func testProductIDValue(t *testing.T) vo.ProductID {
	t.Helper()

	id, err := vo.NewProductID(testProductID)
	require.NoError(t, err)

	return id
}

func ptr[T any](v T) *T { return &v }
