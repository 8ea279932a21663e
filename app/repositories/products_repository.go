package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows a product search. Zero-valued fields do not filter.
type ProductFilter struct {
	Query         string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	CategoryID    string
	SubCategoryID string
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SubCategory").
		Preload("ProductAttributes", orderByCreated).
		Preload("InventoryItem")
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := withDetails(p.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := p.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := withDetails(p.db.WithContext(ctx)).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) Search(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := withDetails(p.db.WithContext(ctx)).Model(&models.Product{})

	if filter.Query != "" {
		query = query.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}

	switch {
	case filter.SubCategoryID != "":
		query = query.Where("products.sub_category_id = ?", filter.SubCategoryID)
	case filter.CategoryID != "":
		subIDs := p.db.Model(&models.SubCategory{}).Select("id").Where("category_id = ?", filter.CategoryID)
		query = query.Where("products.sub_category_id IN (?)", subIDs)
	}

	var products []models.Product
	if err := query.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).
		Model(product).
		Omit(clause.Associations).
		Updates(map[string]interface{}{
			"name":            product.Name,
			"description":     product.Description,
			"price":           product.Price,
			"brand":           product.Brand,
			"image_url":       product.ImageURL,
			"weight_volume":   product.WeightVolume,
			"sub_category_id": product.SubCategoryID,
		}).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
