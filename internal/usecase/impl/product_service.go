// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/domain/vo"
	"catalog/internal/errors"
	"catalog/internal/mapper"
	"catalog/internal/usecase"

	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	coordinator *service.ProductCoordinator
	mapper      *mapper.Mapper
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Coordinator *service.ProductCoordinator
	Mapper      *mapper.Mapper
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		coordinator: params.Coordinator,
		mapper:      params.Mapper,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// transition computes the next state of a loaded product. Returning the same version
// means nothing changed and nothing is written.
type transition func(current *entity.Product) (*entity.Product, error)

// GetProduct loads a single live product. A soft-deleted product is reported as not found.
func (srv *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	id, err := vo.NewProductID(productID)
	if err != nil {
		return nil, srv.fail(ctx, "get product", err)
	}

	product, ok, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.fail(ctx, "get product", err)
	}
	if !ok || product.IsDeleted() {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// ListBusinessProducts lists the products of a business. Deleted products are only listed
// for the business itself.
func (srv *productService) ListBusinessProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	policy := srv.mapper.Policy()
	businessID, err := policy.BusinessID(input.BusinessID)
	if err != nil {
		return nil, srv.fail(ctx, "list products", err)
	}

	if input.IncludeDeleted {
		if input.RequesterBusinessID == "" {
			return nil, domainerrors.ErrUnauthorized.WithDetails("listing deleted products requires an access token")
		}
		requester, err := policy.BusinessID(input.RequesterBusinessID)
		if err != nil {
			return nil, domainerrors.ErrUnauthorized.WithDetails("invalid business id in token")
		}
		if !requester.Equals(businessID) {
			return nil, domainerrors.ErrProductOwnership
		}
	}

	filter := repository.ProductFilter{
		IncludeDeleted: input.IncludeDeleted,
		Limit:          input.Limit,
		Offset:         input.Offset,
	}
	if input.Category != nil {
		category, err := vo.NewCategory(*input.Category)
		if err != nil {
			return nil, srv.fail(ctx, "list products", err)
		}
		filter.Category = &category
	}

	products, err := srv.productRepo.FindByBusiness(ctx, businessID, filter)
	if err != nil {
		return nil, srv.fail(ctx, "list products", err)
	}

	return products, nil
}

// QuoteFeature prices a scaling-price feature of a live product for a quantity.
func (srv *productService) QuoteFeature(ctx context.Context, input *usecase.QuoteFeatureInput) (*usecase.FeatureQuote, error) {
	product, err := srv.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	variantID, err := vo.NewVariantID(input.VariantID)
	if err != nil {
		return nil, srv.fail(ctx, "quote feature", err)
	}
	variant, ok := product.Variant(variantID)
	if !ok {
		return nil, domainerrors.ErrVariantNotFound
	}

	featureID, err := vo.NewFeatureID(input.FeatureID)
	if err != nil {
		return nil, srv.fail(ctx, "quote feature", err)
	}
	feature, ok := variant.Features().Get(featureID)
	if !ok {
		return nil, domainerrors.ErrFeatureNotFound
	}

	scaling, ok := feature.(*entity.ScalingPriceFeature)
	if !ok {
		return nil, domainerrors.ErrFeatureNotQuotable.WithDetails(fmt.Sprintf("feature %s is %s", featureID, feature.Kind()))
	}

	total, err := scaling.CalculateTotalPrice(input.Quantity)
	if err != nil {
		return nil, srv.fail(ctx, "quote feature", err)
	}

	return &usecase.FeatureQuote{
		ProductID: product.ID().String(),
		VariantID: variantID.String(),
		FeatureID: featureID.String(),
		Unit:      scaling.Unit().String(),
		Quantity:  input.Quantity,
		Total:     total,
		Currency:  variant.CurrentPrice().Currency().Code(),
	}, nil
}

// CreateProduct validates the input and stores a new product at the initial version.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product, err := srv.buildProduct(input)
	if err != nil {
		return nil, srv.fail(ctx, "create product", err)
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	}); err != nil {
		return nil, srv.fail(ctx, "create product", err)
	}

	srv.log(ctx).Info("product created",
		slog.String("product_id", product.ID().String()),
		slog.String("business_id", product.BusinessID().String()),
		slog.Int("variants", len(product.Variants())),
	)

	return product, nil
}

func (srv *productService) buildProduct(input *usecase.CreateProductInput) (*entity.Product, error) {
	policy := srv.mapper.Policy()

	businessID, err := policy.BusinessID(input.BusinessID)
	if err != nil {
		return nil, err
	}
	category, err := vo.NewCategory(input.Category)
	if err != nil {
		return nil, err
	}
	description, err := policy.Description(input.Description)
	if err != nil {
		return nil, err
	}
	gallery, err := vo.NewGallery(input.Gallery)
	if err != nil {
		return nil, err
	}
	variants, err := srv.mapper.Variants(input.Variants)
	if err != nil {
		return nil, err
	}

	return entity.NewProduct(entity.NewProductParams{
		ID:          vo.GenerateProductID(),
		BusinessID:  businessID,
		Category:    category,
		Description: description,
		Gallery:     gallery,
		Variants:    variants,
	})
}

// DeleteProduct soft-deletes a product. Deleting a deleted product changes nothing.
func (srv *productService) DeleteProduct(ctx context.Context, target usecase.Target) (*entity.Product, error) {
	return srv.mutate(ctx, "delete product", target, func(current *entity.Product) (*entity.Product, error) {
		return current.SoftDelete(), nil
	})
}

// RestoreProduct restores a deleted product. With a description the restore and the new
// description are applied as one transition.
func (srv *productService) RestoreProduct(ctx context.Context, input *usecase.RestoreProductInput) (*entity.Product, error) {
	if input.Description == nil {
		return srv.mutate(ctx, "restore product", input.Target, func(current *entity.Product) (*entity.Product, error) {
			return current.Restore(), nil
		})
	}

	description, err := srv.mapper.Policy().Description(*input.Description)
	if err != nil {
		return nil, srv.fail(ctx, "restore product", err)
	}

	return srv.mutate(ctx, "restore product", input.Target, func(current *entity.Product) (*entity.Product, error) {
		return srv.coordinator.RestoreWithNewDescription(current, description)
	})
}

// UpdateDescription replaces the description of a product.
func (srv *productService) UpdateDescription(ctx context.Context, input *usecase.UpdateDescriptionInput) (*entity.Product, error) {
	description, err := srv.mapper.Policy().Description(input.Description)
	if err != nil {
		return nil, srv.fail(ctx, "update description", err)
	}

	return srv.mutate(ctx, "update description", input.Target, func(current *entity.Product) (*entity.Product, error) {
		return srv.coordinator.UpdateDescription(current, description)
	})
}

// UpdateContent replaces description and gallery together.
func (srv *productService) UpdateContent(ctx context.Context, input *usecase.UpdateContentInput) (*entity.Product, error) {
	description, err := srv.mapper.Policy().Description(input.Description)
	if err != nil {
		return nil, srv.fail(ctx, "update content", err)
	}
	gallery, err := vo.NewGallery(input.Gallery)
	if err != nil {
		return nil, srv.fail(ctx, "update content", err)
	}

	return srv.mutate(ctx, "update content", input.Target, func(current *entity.Product) (*entity.Product, error) {
		return srv.coordinator.UpdateContent(current, description, gallery)
	})
}

// ChangeCategory moves a product to another category.
func (srv *productService) ChangeCategory(ctx context.Context, input *usecase.ChangeCategoryInput) (*entity.Product, error) {
	category, err := vo.NewCategory(input.Category)
	if err != nil {
		return nil, srv.fail(ctx, "change category", err)
	}

	return srv.mutate(ctx, "change category", input.Target, func(current *entity.Product) (*entity.Product, error) {
		return current.ChangeCategory(category)
	})
}

// AddVariant appends a variant to a product.
func (srv *productService) AddVariant(ctx context.Context, input *usecase.AddVariantInput) (*entity.Product, error) {
	variant, err := srv.mapper.Variant(input.Variant)
	if err != nil {
		return nil, srv.fail(ctx, "add variant", errors.WithMessage(err, "variant"))
	}

	return srv.mutate(ctx, "add variant", input.Target, func(current *entity.Product) (*entity.Product, error) {
		return current.AddVariant(variant)
	})
}

// ChangeVariantStatus moves a variant through its lifecycle.
func (srv *productService) ChangeVariantStatus(ctx context.Context, input *usecase.ChangeVariantStatusInput) (*entity.Product, error) {
	variantID, err := vo.NewVariantID(input.VariantID)
	if err != nil {
		return nil, srv.fail(ctx, "change variant status", err)
	}
	status, err := vo.ParseVariantStatus(input.Status)
	if err != nil {
		return nil, srv.fail(ctx, "change variant status", err)
	}

	return srv.mutate(ctx, "change variant status", input.Target, func(current *entity.Product) (*entity.Product, error) {
		if _, ok := current.Variant(variantID); !ok {
			return nil, domainerrors.ErrVariantNotFound
		}

		return current.ChangeVariantStatus(variantID, status)
	})
}

// ChangeVariantPrice replaces the current price of a variant.
func (srv *productService) ChangeVariantPrice(ctx context.Context, input *usecase.ChangeVariantPriceInput) (*entity.Product, error) {
	variantID, err := vo.NewVariantID(input.VariantID)
	if err != nil {
		return nil, srv.fail(ctx, "change variant price", err)
	}
	price, err := mapper.Price(input.Price)
	if err != nil {
		return nil, srv.fail(ctx, "change variant price", err)
	}

	return srv.mutate(ctx, "change variant price", input.Target, func(current *entity.Product) (*entity.Product, error) {
		if _, ok := current.Variant(variantID); !ok {
			return nil, domainerrors.ErrVariantNotFound
		}

		return current.ChangeVariantPrice(variantID, price)
	})
}

// mutate loads the target product inside a transaction, checks ownership and the expected
// version, applies change and stores the result keyed on the loaded version.
func (srv *productService) mutate(ctx context.Context, operation string, target usecase.Target, change transition) (*entity.Product, error) {
	id, err := vo.NewProductID(target.ProductID)
	if err != nil {
		return nil, srv.fail(ctx, operation, err)
	}
	caller, err := srv.mapper.Policy().BusinessID(target.BusinessID)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid business id in token")
	}

	var (
		result  *entity.Product
		written bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		current, ok, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}
		if !ok {
			return domainerrors.ErrProductNotFound
		}
		if !current.BusinessID().Equals(caller) {
			return domainerrors.ErrProductOwnership
		}
		if target.ExpectedVersion != nil && *target.ExpectedVersion != current.Version().Value() {
			return domainerrors.ErrVersionConflict.WithDetails(
				fmt.Sprintf("expected version %d, stored version %s", *target.ExpectedVersion, current.Version()))
		}

		next, err := change(current)
		if err != nil {
			return err
		}
		if next.Version().Equals(current.Version()) {
			result = current

			return nil
		}

		if err := productRepo.Update(ctx, next, current.Version()); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		result, written = next, true

		return nil
	})
	if err != nil {
		return nil, srv.fail(ctx, operation, err)
	}

	if written {
		srv.log(ctx).Info("product updated",
			slog.String("operation", operation),
			slog.String("product_id", result.ID().String()),
			slog.Int64("version", result.Version().Value()),
		)
	} else {
		srv.log(ctx).Debug("product unchanged",
			slog.String("operation", operation),
			slog.String("product_id", result.ID().String()),
		)
	}

	return result, nil
}

// fail turns err into an AppError when it can be classified. Anything else is logged and
// returned wrapped, which the error middleware reports as an internal error.
func (srv *productService) fail(ctx context.Context, operation string, err error) error {
	appErr := toAppError(err)
	if appErr != nil && appErr.HTTPCode() < http.StatusInternalServerError {
		return appErr
	}

	srv.log(ctx).Error("product operation failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	if appErr != nil {
		return appErr
	}

	return errors.Wrapf(err, "failed to %s", operation)
}

func toAppError(err error) domainerrors.AppError {
	if appErr := domainerrors.FromDomain(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrVersionConflict
	case errors.Is(err, repository.ErrProductAlreadyExists):
		return domainerrors.ErrProductAlreadyExists
	default:
		return nil
	}
}
