package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryItemRepositoryImpl interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id string) (*models.InventoryItem, error)
	GetByProductID(ctx context.Context, productID string) (*models.InventoryItem, error)
	GetAll(ctx context.Context) ([]models.InventoryItem, error)
	GetLowStock(ctx context.Context) ([]models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id string) error
	DeleteByProduct(ctx context.Context, productID string) error
}

type inventoryItemRepository struct {
	db *gorm.DB
}

func NewInventoryItemRepository(db *gorm.DB) InventoryItemRepositoryImpl {
	return &inventoryItemRepository{db: db}
}

func withProductSummary(db *gorm.DB) *gorm.DB {
	return db.Preload("Product", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "brand", "price")
	})
}

func (r *inventoryItemRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *inventoryItemRepository) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := withProductSummary(r.db.WithContext(ctx)).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryItemRepository) GetByProductID(ctx context.Context, productID string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "product_id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryItemRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := withProductSummary(r.db.WithContext(ctx)).Order("created_at ASC").Find(&items).Error
	return items, err
}

// GetLowStock returns items whose quantity has fallen to or below their threshold.
func (r *inventoryItemRepository) GetLowStock(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := withProductSummary(r.db.WithContext(ctx)).
		Where("quantity <= min_threshold").
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryItemRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).
		Model(item).
		Omit(clause.Associations).
		Updates(map[string]interface{}{
			"quantity":          item.Quantity,
			"min_threshold":     item.MinThreshold,
			"location":          item.Location,
			"last_restock_date": item.LastRestockDate,
		}).Error
}

func (r *inventoryItemRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryItemRepository) DeleteByProduct(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.InventoryItem{}).Error
}
