package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/response"
	"catalog/internal/delivery/api/router"
	"catalog/internal/delivery/api/router/handler"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/domain/vo"
	"catalog/internal/errors"
	"catalog/internal/infra/auth"
	"catalog/internal/mapper"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testProductID = "5f0c6b1e-8d2a-4b7c-9e3f-1a2b3c4d5e6f"
	testVariantID = "a1b2c3d4-e5f6-4789-8abc-def012345678"
	testFeatureID = "c1b2c3d4-e5f6-4789-8abc-def012345678"
)

type apiFixtures struct {
	server    *echo.Echo
	productUC *mockUsecase.MockProductUsecase
	tokenSvc  service.TokenService
	product   *entity.Product
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func createTestAPI(t *testing.T) *apiFixtures {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Minute}}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Access = "api_test_access_secret_key"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := mapper.New(vo.DefaultPolicy())
	productUC := mockUsecase.NewMockProductUsecase(t)

	r := router.NewRouter(router.RouterParams{
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: productUC,
			Mapper:    m,
			Logger:    logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})

	product, err := m.Product(mapper.ProductDTO{
		ID:          testProductID,
		BusinessID:  "ACME",
		Category:    "Footwear",
		Description: "Insulated hiking boots with a waterproof membrane",
		Gallery:     []string{"https://cdn.example.com/boots.jpg"},
		Variants: []mapper.VariantDTO{{
			ID:               testVariantID,
			SKU:              "BOOT-42",
			BasePrice:        mapper.PriceDTO{Amount: decimal.RequireFromString("129.99"), Precision: 2, Currency: "USD"},
			CurrentPrice:     mapper.PriceDTO{Amount: decimal.RequireFromString("129.99"), Precision: 2, Currency: "USD"},
			CareInstructions: "1. Brush off dirt after use",
			Weight:           mapper.WeightDTO{Amount: decimal.RequireFromString("1.35"), Unit: "KILOGRAM"},
			Status:           "ACTIVE",
		}},
		Version: 3,
	})
	require.NoError(t, err)

	return &apiFixtures{
		server:    newEcho(cfg, logger, r),
		productUC: productUC,
		tokenSvc:  tokenSvc,
		product:   product,
	}
}

func (f *apiFixtures) token(t *testing.T, roles ...string) string {
	t.Helper()

	token, err := f.tokenSvc.GenerateAccessToken("ACME", roles)
	require.NoError(t, err)

	return token
}

func (f *apiFixtures) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func TestAPI_HealthCheck(t *testing.T) {
	f := createTestAPI(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "req-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-1", env.Meta.RequestID)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestAPI_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().GetProduct(mock.Anything, testProductID).Return(f.product, nil).Once()

		rec, env := f.do(t, http.MethodGet, "/products/"+testProductID, "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `"3"`, rec.Header().Get("ETag"))
		var dto mapper.ProductDTO
		require.NoError(t, json.Unmarshal(env.Data, &dto))
		assert.Equal(t, testProductID, dto.ID)
		assert.Equal(t, int64(3), dto.Version)
		require.Len(t, dto.Variants, 1)
		assert.Equal(t, "BOOT-42", dto.Variants[0].SKU)
	})

	t.Run("absent", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().GetProduct(mock.Anything, testProductID).Return(nil, domainerrors.ErrProductNotFound).Once()

		rec, env := f.do(t, http.MethodGet, "/products/"+testProductID, "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
	})

	t.Run("unexpected failure hides details", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().GetProduct(mock.Anything, testProductID).Return(nil, errors.New("connection refused")).Once()

		rec, env := f.do(t, http.MethodGet, "/products/"+testProductID, "", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestAPI_ListBusinessProducts(t *testing.T) {
	t.Run("authenticated owner may include deleted", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			ListBusinessProducts(mock.Anything, mock.MatchedBy(func(in *usecase.ListProductsInput) bool {
				return in.BusinessID == "ACME" &&
					in.Category != nil && *in.Category == "Footwear" &&
					in.IncludeDeleted && in.Limit == 5 && in.Offset == 10 &&
					in.RequesterBusinessID == "ACME"
			})).
			Return([]*entity.Product{f.product}, nil).
			Once()

		rec, env := f.do(t, http.MethodGet, "/businesses/ACME/products?category=Footwear&include_deleted=true&limit=5&offset=10", "", bearer(f.token(t)))

		require.Equal(t, http.StatusOK, rec.Code)
		var dtos []mapper.ProductDTO
		require.NoError(t, json.Unmarshal(env.Data, &dtos))
		assert.Len(t, dtos, 1)
	})

	t.Run("anonymous caller has no requester", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			ListBusinessProducts(mock.Anything, mock.MatchedBy(func(in *usecase.ListProductsInput) bool {
				return in.RequesterBusinessID == "" && in.Limit == 100
			})).
			Return([]*entity.Product{}, nil).
			Once()

		rec, _ := f.do(t, http.MethodGet, "/businesses/ACME/products", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous request for deleted products is unauthorized", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			ListBusinessProducts(mock.Anything, mock.AnythingOfType("*usecase.ListProductsInput")).
			Return(nil, domainerrors.ErrUnauthorized.WithDetails("listing deleted products requires an access token")).
			Once()

		rec, env := f.do(t, http.MethodGet, "/businesses/ACME/products?include_deleted=true", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("bad token is rejected", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodGet, "/businesses/ACME/products", "", bearer(f.token(t)+"x"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		f.productUC.AssertNotCalled(t, "ListBusinessProducts", mock.Anything, mock.Anything)
	})
}

func TestAPI_ListBusinessProducts_LimitTooLarge(t *testing.T) {
	f := createTestAPI(t)

	rec, env := f.do(t, http.MethodGet, "/businesses/ACME/products?limit=500", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestAPI_QuoteFeature(t *testing.T) {
	path := "/products/" + testProductID + "/variants/" + testVariantID + "/features/" + testFeatureID + "/quote"

	t.Run("priced", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			QuoteFeature(mock.Anything, &usecase.QuoteFeatureInput{
				ProductID: testProductID,
				VariantID: testVariantID,
				FeatureID: testFeatureID,
				Quantity:  4,
			}).
			Return(&usecase.FeatureQuote{
				ProductID: testProductID,
				VariantID: testVariantID,
				FeatureID: testFeatureID,
				Unit:      "letter",
				Quantity:  4,
				Total:     decimal.RequireFromString("8.75"),
				Currency:  "USD",
			}, nil).
			Once()

		rec, env := f.do(t, http.MethodGet, path+"?quantity=4", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var quote usecase.FeatureQuote
		require.NoError(t, json.Unmarshal(env.Data, &quote))
		assert.True(t, decimal.RequireFromString("8.75").Equal(quote.Total))
		assert.Equal(t, "letter", quote.Unit)
	})

	t.Run("quantity missing", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodGet, path, "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("quantity out of range", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().QuoteFeature(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("quantity: must not exceed 20")).
			Once()

		rec, env := f.do(t, http.MethodGet, path+"?quantity=21", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "quantity: must not exceed 20", env.Error.Details)
	})
}

const createProductBody = `{
	"category": "Footwear",
	"description": "Insulated hiking boots with a waterproof membrane",
	"gallery": ["https://cdn.example.com/boots.jpg"],
	"variants": [{
		"sku": "BOOT-42",
		"base_price": {"amount": "129.99", "precision": 2, "currency": "USD"},
		"current_price": {"amount": "129.99", "precision": 2, "currency": "USD"},
		"care_instructions": "1. Brush off dirt after use",
		"weight": {"amount": "1.35", "unit": "KILOGRAM"},
		"status": "DRAFT"
	}]
}`

func TestAPI_CreateProduct(t *testing.T) {
	t.Run("created for the token business", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
				return in.BusinessID == "ACME" &&
					in.Category == "Footwear" &&
					len(in.Variants) == 1 &&
					in.Variants[0].Weight.Amount.Equal(decimal.RequireFromString("1.35"))
			})).
			Return(f.product, nil).
			Once()

		rec, _ := f.do(t, http.MethodPost, "/products", createProductBody, bearer(f.token(t, router.RoleEditor)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodPost, "/products", createProductBody, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodPost, "/products", createProductBody, bearer(f.token(t, router.RoleEditor)+"x"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodPost, "/products", createProductBody, bearer(f.token(t, "viewer")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "PERMISSION_DENIED", env.Error.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodPost, "/products", `{"description": "x", "gallery": [], "variants": []}`, bearer(f.token(t, router.RoleEditor)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Contains(t, env.Error.Details, "category is required")
	})
}

func TestAPI_DeleteProduct(t *testing.T) {
	t.Run("expected version from If-Match", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			DeleteProduct(mock.Anything, mock.MatchedBy(func(target usecase.Target) bool {
				return target.ProductID == testProductID &&
					target.BusinessID == "ACME" &&
					target.ExpectedVersion != nil && *target.ExpectedVersion == 3
			})).
			Return(nil, domainerrors.ErrVersionConflict).
			Once()

		headers := bearer(f.token(t, router.RoleEditor))
		headers[handler.HeaderIfMatch] = `"3"`
		rec, env := f.do(t, http.MethodDelete, "/products/"+testProductID, "", headers)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "VERSION_CONFLICT", env.Error.Code)
	})

	t.Run("malformed If-Match", func(t *testing.T) {
		f := createTestAPI(t)

		headers := bearer(f.token(t, router.RoleEditor))
		headers[handler.HeaderIfMatch] = "latest"
		rec, env := f.do(t, http.MethodDelete, "/products/"+testProductID, "", headers)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("other business", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().DeleteProduct(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrProductOwnership).Once()

		rec, env := f.do(t, http.MethodDelete, "/products/"+testProductID, "", bearer(f.token(t, router.RoleEditor)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestAPI_VariantWrites(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			ChangeVariantStatus(mock.Anything, mock.MatchedBy(func(in *usecase.ChangeVariantStatusInput) bool {
				return in.VariantID == testVariantID && in.Status == "DISCONTINUED" && in.BusinessID == "ACME"
			})).
			Return(f.product, nil).
			Once()

		rec, _ := f.do(t, http.MethodPatch, "/products/"+testProductID+"/variants/"+testVariantID+"/status",
			`{"status": "DISCONTINUED"}`, bearer(f.token(t, router.RoleEditor)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := createTestAPI(t)

		rec, env := f.do(t, http.MethodPatch, "/products/"+testProductID+"/variants/"+testVariantID+"/status",
			`{"status": "RETIRED"}`, bearer(f.token(t, router.RoleEditor)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("price", func(t *testing.T) {
		f := createTestAPI(t)
		f.productUC.EXPECT().
			ChangeVariantPrice(mock.Anything, mock.MatchedBy(func(in *usecase.ChangeVariantPriceInput) bool {
				return in.VariantID == testVariantID &&
					in.Price.Currency == "EUR" &&
					in.Price.Amount.Equal(decimal.RequireFromString("99.5"))
			})).
			Return(nil, domainerrors.ErrCurrencyMismatch.WithDetails("current price currency EUR differs from base price currency USD")).
			Once()

		rec, env := f.do(t, http.MethodPatch, "/products/"+testProductID+"/variants/"+testVariantID+"/price",
			`{"price": {"amount": 99.5, "precision": 2, "currency": "EUR"}}`, bearer(f.token(t, router.RoleEditor)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "CURRENCY_MISMATCH", env.Error.Code)
	})
}

func TestAPI_RestoreProduct(t *testing.T) {
	f := createTestAPI(t)
	f.productUC.EXPECT().
		RestoreProduct(mock.Anything, mock.MatchedBy(func(in *usecase.RestoreProductInput) bool {
			return in.Description == nil && in.ProductID == testProductID
		})).
		Return(f.product, nil).
		Once()

	rec, _ := f.do(t, http.MethodPost, "/products/"+testProductID+"/restore", "", bearer(f.token(t, router.RoleEditor)))

	assert.Equal(t, http.StatusOK, rec.Code)
}
