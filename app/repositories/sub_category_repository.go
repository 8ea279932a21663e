package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-catalog/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubCategoryRepositoryImpl interface {
	Create(ctx context.Context, sub *models.SubCategory) error
	GetByID(ctx context.Context, id string) (*models.SubCategory, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.SubCategory, error)
	Update(ctx context.Context, sub *models.SubCategory) error
	Delete(ctx context.Context, id string) error
	DeleteByCategory(ctx context.Context, categoryID string) error
	CountProducts(ctx context.Context, id string) (int64, error)
}

type subCategoryRepository struct {
	db *gorm.DB
}

func NewSubCategoryRepository(db *gorm.DB) SubCategoryRepositoryImpl {
	return &subCategoryRepository{db: db}
}

func (r *subCategoryRepository) Create(ctx context.Context, sub *models.SubCategory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(sub).Error
}

func (r *subCategoryRepository) GetByID(ctx context.Context, id string) (*models.SubCategory, error) {
	var sub models.SubCategory
	err := r.db.WithContext(ctx).
		Preload("Products", orderByCreated).
		First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subCategoryRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.SubCategory, error) {
	var subs []models.SubCategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *subCategoryRepository) Update(ctx context.Context, sub *models.SubCategory) error {
	return r.db.WithContext(ctx).
		Model(sub).
		Omit(clause.Associations).
		Updates(map[string]interface{}{
			"name":        sub.Name,
			"description": sub.Description,
		}).Error
}

func (r *subCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.SubCategory{}, "id = ?", id).Error
}

func (r *subCategoryRepository) DeleteByCategory(ctx context.Context, categoryID string) error {
	return r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&models.SubCategory{}).Error
}

func (r *subCategoryRepository) CountProducts(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("sub_category_id = ?", id).
		Count(&count).Error
	return count, err
}
