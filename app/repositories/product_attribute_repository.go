package repositories

import (
	"context"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
)

type ProductAttributeRepositoryImpl interface {
	CreateBatch(ctx context.Context, attributes []models.ProductAttribute) error
	DeleteByProduct(ctx context.Context, productID string) error
}

type productAttributeRepository struct {
	db *gorm.DB
}

func NewProductAttributeRepository(db *gorm.DB) ProductAttributeRepositoryImpl {
	return &productAttributeRepository{db: db}
}

func (r *productAttributeRepository) CreateBatch(ctx context.Context, attributes []models.ProductAttribute) error {
	if len(attributes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&attributes).Error
}

func (r *productAttributeRepository) DeleteByProduct(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductAttribute{}).Error
}
