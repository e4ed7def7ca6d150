package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/vo"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
// Variants and features live in child tables and are rewritten as a whole on every update.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product with its variants and features.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, variantMs, featureMs := fromProductDomain(product)

	return repo.inTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&productM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrProductAlreadyExists
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
		}

		return insertChildren(tx, variantMs, featureMs)
	})
}

// Update stores product only if the stored row still carries the expected version.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product, expected vo.Version) error {
	productM, variantMs, featureMs := fromProductDomain(product)

	return repo.inTransaction(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&model.ProductModel{}).
			Where("id = ? AND version = ?", productM.ID, expected.Value()).
			Updates(map[string]any{
				"business_id": productM.BusinessID,
				"category":    productM.Category,
				"description": productM.Description,
				"gallery":     productM.Gallery,
				"version":     productM.Version,
				"deleted":     productM.Deleted,
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.ProductModel{}).Where("id = ?", productM.ID).Count(&count).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to check product existence")
			}
			if count == 0 {
				return repository.ErrProductNotFound
			}

			return repository.ErrVersionConflict
		}

		if err := tx.Where("product_id = ?", productM.ID).Delete(&model.FeatureModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete variant features")
		}
		if err := tx.Where("product_id = ?", productM.ID).Delete(&model.VariantModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete product variants")
		}

		return insertChildren(tx, variantMs, featureMs)
	})
}

// FindByID loads a product with its variants and features.
func (repo *productRepository) FindByID(ctx context.Context, id vo.ProductID) (*entity.Product, bool, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Where("id = ?", id.String()).Take(&productM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find product by id")
	}

	products, err := repo.hydrate(ctx, []model.ProductModel{productM})
	if err != nil {
		return nil, false, err
	}

	return products[0], true, nil
}

// FindByBusiness lists the products of a business, oldest first.
func (repo *productRepository) FindByBusiness(ctx context.Context, businessID vo.BusinessID, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID.String()).
		Order("created_at ASC").
		Order("id ASC")
	if !filter.IncludeDeleted {
		query = query.Where("deleted = ?", false)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var productMs []model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by business")
	}

	return repo.hydrate(ctx, productMs)
}

// hydrate loads the child rows of productMs and rebuilds the aggregates in the same order.
func (repo *productRepository) hydrate(ctx context.Context, productMs []model.ProductModel) ([]*entity.Product, error) {
	if len(productMs) == 0 {
		return []*entity.Product{}, nil
	}

	ids := make([]string, 0, len(productMs))
	for _, productM := range productMs {
		ids = append(ids, productM.ID)
	}

	var variantMs []model.VariantModel
	if err := repo.db.WithContext(ctx).
		Where("product_id IN ?", ids).
		Order("position ASC").
		Find(&variantMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find product variants")
	}

	var featureMs []model.FeatureModel
	if err := repo.db.WithContext(ctx).
		Where("product_id IN ?", ids).
		Order("position ASC").
		Find(&featureMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variant features")
	}

	variantsByProduct := make(map[string][]model.VariantModel, len(productMs))
	for _, variantM := range variantMs {
		variantsByProduct[variantM.ProductID] = append(variantsByProduct[variantM.ProductID], variantM)
	}
	featuresByProduct := make(map[string][]model.FeatureModel, len(productMs))
	for _, featureM := range featureMs {
		featuresByProduct[featureM.ProductID] = append(featuresByProduct[featureM.ProductID], featureM)
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		product, err := toProductDomain(productM, variantsByProduct[productM.ID], featuresByProduct[productM.ID])
		if err != nil {
			return nil, errors.Wrapf(err, "stored product %s is invalid", productM.ID)
		}
		products = append(products, product)
	}

	return products, nil
}

// inTransaction reuses an enclosing transaction when the repository is bound to one.
func (repo *productRepository) inTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db := repo.db.WithContext(ctx)
	if isTransaction(repo.db) {
		return fn(db)
	}

	return db.Transaction(fn)
}

func insertChildren(tx *gorm.DB, variantMs []model.VariantModel, featureMs []model.FeatureModel) error {
	if len(variantMs) > 0 {
		if err := tx.Create(&variantMs).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to insert product variants")
		}
	}
	if len(featureMs) > 0 {
		if err := tx.Create(&featureMs).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to insert variant features")
		}
	}

	return nil
}
