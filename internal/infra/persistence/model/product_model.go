// Package model holds the GORM persistence models of the catalog tables.
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Version is the optimistic lock.
type ProductModel struct {
	ID          string                      `gorm:"type:uuid;primaryKey"`
	BusinessID  string                      `gorm:"type:varchar(64);not null;index:idx_products_business"`
	Category    string                      `gorm:"type:varchar(50);not null"`
	Description string                      `gorm:"type:text;not null"`
	Gallery     datatypes.JSONSlice[string] `gorm:"not null"`
	Version     int64                       `gorm:"not null"`
	Deleted     bool                        `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel mirrors the 'product_variants' table. Position keeps the variant order of the aggregate.
type VariantModel struct {
	ProductID          string          `gorm:"type:uuid;primaryKey"`
	ID                 string          `gorm:"type:uuid;primaryKey"`
	Position           int             `gorm:"not null"`
	SKU                string          `gorm:"column:sku;type:varchar(50);not null"`
	BasePriceAmount    decimal.Decimal `gorm:"type:numeric;not null"`
	CurrentPriceAmount decimal.Decimal `gorm:"type:numeric;not null"`
	BasePrecision      int32           `gorm:"not null"`
	CurrentPrecision   int32           `gorm:"not null"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	CareInstructions   string          `gorm:"type:text;not null"`
	WeightAmount       decimal.Decimal `gorm:"type:numeric;not null"`
	WeightUnit         string          `gorm:"type:varchar(16);not null"`
	Status             string          `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "product_variants"
}

// FeatureModel mirrors the 'variant_features' table. Kind discriminates the feature type;
// the price columns are only set for the kinds that carry them.
type FeatureModel struct {
	ProductID       string              `gorm:"type:uuid;primaryKey"`
	VariantID       string              `gorm:"type:uuid;primaryKey"`
	ID              string              `gorm:"type:uuid;primaryKey"`
	Position        int                 `gorm:"not null"`
	Kind            string              `gorm:"type:varchar(20);not null"`
	Name            string              `gorm:"type:varchar(100);not null"`
	Label           string              `gorm:"type:varchar(50);not null"`
	Description     string              `gorm:"type:text;not null"`
	Price           decimal.NullDecimal `gorm:"type:numeric"`
	MeasurementUnit *string             `gorm:"type:varchar(20)"`
	BaseAmount      decimal.NullDecimal `gorm:"type:numeric"`
	IncrementAmount decimal.NullDecimal `gorm:"type:numeric"`
	MaxQuantity     *int
}

// TableName explicitly sets the table name for GORM.
func (FeatureModel) TableName() string {
	return "variant_features"
}

// All lists every catalog model in migration order.
func All() []any {
	return []any{&ProductModel{}, &VariantModel{}, &FeatureModel{}}
}
