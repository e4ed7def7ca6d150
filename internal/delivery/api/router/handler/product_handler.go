package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/response"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/mapper"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	maxPageSize = 100

	// HeaderIfMatch carries the expected product version on writes.
	HeaderIfMatch = "If-Match"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Mapper    *mapper.Mapper
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	mapper    *mapper.Mapper
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		mapper:    params.Mapper,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Category    string              `json:"category" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Gallery     []string            `json:"gallery" validate:"required,min=1,dive,required"`
	Variants    []mapper.VariantDTO `json:"variants" validate:"required,min=1"`
}

// ListProductsQuery represents the query parameters for listing products
type ListProductsQuery struct {
	Category       string `query:"category"`
	IncludeDeleted bool   `query:"include_deleted"`
	Limit          int    `query:"limit" validate:"min=0,max=100"`
	Offset         int    `query:"offset" validate:"min=0"`
}

// RestoreProductRequest represents the optional body of a restore
type RestoreProductRequest struct {
	Description *string `json:"description"`
}

// UpdateDescriptionRequest represents the request body for replacing the description
type UpdateDescriptionRequest struct {
	Description string `json:"description" validate:"required"`
}

// UpdateContentRequest represents the request body for replacing description and gallery
type UpdateContentRequest struct {
	Description string   `json:"description" validate:"required"`
	Gallery     []string `json:"gallery" validate:"required,min=1,dive,required"`
}

// ChangeCategoryRequest represents the request body for moving a product to another category
type ChangeCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// ChangeVariantStatusRequest represents the request body for a variant lifecycle transition
type ChangeVariantStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT ACTIVE INACTIVE DISCONTINUED"`
}

// ChangeVariantPriceRequest represents the request body for replacing a variant price
type ChangeVariantPriceRequest struct {
	Price mapper.PriceDTO `json:"price"`
}

// GetProduct handles retrieving a single product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// ListBusinessProducts handles listing the products of a business
func (h *ProductHandler) ListBusinessProducts(c echo.Context) error {
	var query ListProductsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ListProductsInput{
		BusinessID:     c.Param("businessId"),
		IncludeDeleted: query.IncludeDeleted,
		Limit:          query.Limit,
		Offset:         query.Offset,
	}
	if input.Limit == 0 {
		input.Limit = maxPageSize
	}
	if query.Category != "" {
		input.Category = &query.Category
	}
	if businessID, ok := middleware.GetBusinessID(c); ok {
		input.RequesterBusinessID = businessID
	}

	products, err := h.productUC.ListBusinessProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.mapper.ProductsToDTO(products))
}

// QuoteFeature handles pricing a scaling feature for a quantity
func (h *ProductHandler) QuoteFeature(c echo.Context) error {
	var quantity int
	if err := echo.QueryParamsBinder(c).MustInt("quantity", &quantity).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "quantity must be an integer")
	}

	quote, err := h.productUC.QuoteFeature(c.Request().Context(), &usecase.QuoteFeatureInput{
		ProductID: c.Param("id"),
		VariantID: c.Param("variantId"),
		FeatureID: c.Param("featureId"),
		Quantity:  quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// CreateProduct handles creating a product for the caller's business
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid business ID in token")
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		BusinessID:  businessID,
		Category:    req.Category,
		Description: req.Description,
		Gallery:     req.Gallery,
		Variants:    req.Variants,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusCreated, product)
}

// DeleteProduct handles soft-deleting a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.DeleteProduct(c.Request().Context(), target)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// RestoreProduct handles restoring a deleted product
func (h *ProductHandler) RestoreProduct(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RestoreProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restore input")
	}

	product, err := h.productUC.RestoreProduct(c.Request().Context(), &usecase.RestoreProductInput{
		Target:      target,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// UpdateDescription handles replacing a product description
func (h *ProductHandler) UpdateDescription(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateDescriptionRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateDescription(c.Request().Context(), &usecase.UpdateDescriptionInput{
		Target:      target,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// UpdateContent handles replacing description and gallery together
func (h *ProductHandler) UpdateContent(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateContentRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateContent(c.Request().Context(), &usecase.UpdateContentInput{
		Target:      target,
		Description: req.Description,
		Gallery:     req.Gallery,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// ChangeCategory handles moving a product to another category
func (h *ProductHandler) ChangeCategory(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeCategoryRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.ChangeCategory(c.Request().Context(), &usecase.ChangeCategoryInput{
		Target:   target,
		Category: req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// AddVariant handles adding a variant to a product
func (h *ProductHandler) AddVariant(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req mapper.VariantDTO
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}

	product, err := h.productUC.AddVariant(c.Request().Context(), &usecase.AddVariantInput{
		Target:  target,
		Variant: req,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusCreated, product)
}

// ChangeVariantStatus handles a variant lifecycle transition
func (h *ProductHandler) ChangeVariantStatus(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeVariantStatusRequest
	if err := h.bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.ChangeVariantStatus(c.Request().Context(), &usecase.ChangeVariantStatusInput{
		Target:    target,
		VariantID: c.Param("variantId"),
		Status:    req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// ChangeVariantPrice handles replacing the current price of a variant
func (h *ProductHandler) ChangeVariantPrice(c echo.Context) error {
	target, err := h.target(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeVariantPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price input")
	}

	product, err := h.productUC.ChangeVariantPrice(c.Request().Context(), &usecase.ChangeVariantPriceInput{
		Target:    target,
		VariantID: c.Param("variantId"),
		Price:     req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, product)
}

// target collects the product, caller and expected version of a write.
func (h *ProductHandler) target(c echo.Context) (usecase.Target, error) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		return usecase.Target{}, domainerrors.ErrUnauthorized.WithDetails("invalid business id in token")
	}

	target := usecase.Target{ProductID: c.Param("id"), BusinessID: businessID}

	if raw := c.Request().Header.Get(HeaderIfMatch); raw != "" {
		version, err := strconv.ParseInt(strings.Trim(strings.TrimPrefix(raw, "W/"), `"`), 10, 64)
		if err != nil || version < 0 {
			return usecase.Target{}, domainerrors.ErrValidationFailed.WithDetails("If-Match must carry a product version")
		}
		target.ExpectedVersion = &version
	}

	return target, nil
}

// bind decodes and validates a request body.
func (h *ProductHandler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func (h *ProductHandler) respond(c echo.Context, status int, product *entity.Product) error {
	c.Response().Header().Set("ETag", strconv.Quote(product.Version().String()))

	return response.Success(c, status, h.mapper.ProductToDTO(product))
}
