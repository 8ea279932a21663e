package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type SubCategoryInput struct {
	ID          string
	Name        string
	Description string
}

// CategoryInput is the desired state of a category. A nil SubCategories
// leaves existing sub-categories untouched on update.
type CategoryInput struct {
	Name          string
	Description   string
	SubCategories []SubCategoryInput
}

type ReconcileWarning struct {
	SubCategoryID string `json:"sub_category_id"`
	ProductCount  int64  `json:"product_count,omitempty"`
	Message       string `json:"message"`
}

type CategoryResult struct {
	*models.Category
	Warnings []ReconcileWarning `json:"warnings,omitempty"`
}

type CategoryService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepositoryImpl
	subRepo      repositories.SubCategoryRepositoryImpl
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		db:           db,
		categoryRepo: repositories.NewCategoryRepository(db),
		subRepo:      repositories.NewSubCategoryRepository(db),
	}
}

func (s *CategoryService) List(ctx context.Context, includeProducts bool) ([]models.Category, error) {
	if includeProducts {
		return s.categoryRepo.GetAllWithProducts(ctx)
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create stores the category and its initial sub-categories atomically.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	category := &models.Category{Name: in.Name, Description: in.Description}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewCategoryRepository(tx).Create(ctx, category); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		subRepo := repositories.NewSubCategoryRepository(tx)
		for _, in := range in.SubCategories {
			sub := &models.SubCategory{Name: in.Name, Description: in.Description, CategoryID: category.ID}
			if err := subRepo.Create(ctx, sub); err != nil {
				return fmt.Errorf("failed to create sub-category %q: %w", in.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("CategoryService.Create: %v", err)
		return nil, err
	}

	return s.Get(ctx, category.ID)
}

// Update applies the new fields and reconciles sub-categories against the
// desired list in one transaction. Stored sub-categories missing from the
// list are deleted unless they still own products; those are kept and
// reported as warnings.
func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (*CategoryResult, error) {
	var warnings []ReconcileWarning

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryRepo := repositories.NewCategoryRepository(tx)
		subRepo := repositories.NewSubCategoryRepository(tx)

		category, err := categoryRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load category: %w", err)
		}
		if category == nil {
			return ErrNotFound
		}

		category.Name = in.Name
		category.Description = in.Description
		if err := categoryRepo.Update(ctx, category); err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}

		if in.SubCategories == nil {
			return nil
		}

		current, err := subRepo.GetByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load sub-categories: %w", err)
		}
		warnings, err = reconcileSubCategories(ctx, subRepo, id, current, in.SubCategories)
		return err
	})
	if err != nil {
		logUnexpected("CategoryService.Update", err)
		return nil, err
	}

	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CategoryResult{Category: category, Warnings: warnings}, nil
}

func reconcileSubCategories(ctx context.Context, subRepo repositories.SubCategoryRepositoryImpl, categoryID string, current []models.SubCategory, desired []SubCategoryInput) ([]ReconcileWarning, error) {
	var warnings []ReconcileWarning

	stored := make(map[string]*models.SubCategory, len(current))
	for i := range current {
		stored[current[i].ID] = &current[i]
	}
	keep := make(map[string]bool, len(desired))

	for _, d := range desired {
		if d.ID == "" {
			sub := &models.SubCategory{Name: d.Name, Description: d.Description, CategoryID: categoryID}
			if err := subRepo.Create(ctx, sub); err != nil {
				return nil, fmt.Errorf("failed to create sub-category %q: %w", d.Name, err)
			}
			continue
		}

		sub, ok := stored[d.ID]
		if !ok {
			warnings = append(warnings, ReconcileWarning{
				SubCategoryID: d.ID,
				Message:       "sub-category does not belong to this category, ignored",
			})
			continue
		}
		keep[d.ID] = true
		sub.Name = d.Name
		sub.Description = d.Description
		if err := subRepo.Update(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to update sub-category %s: %w", sub.ID, err)
		}
	}

	for _, sub := range current {
		if keep[sub.ID] {
			continue
		}
		count, err := subRepo.CountProducts(ctx, sub.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count products of sub-category %s: %w", sub.ID, err)
		}
		if count > 0 {
			warnings = append(warnings, ReconcileWarning{
				SubCategoryID: sub.ID,
				ProductCount:  count,
				Message:       fmt.Sprintf("sub-category %q kept: it still has %d product(s)", sub.Name, count),
			})
			continue
		}
		if err := subRepo.Delete(ctx, sub.ID); err != nil {
			return nil, fmt.Errorf("failed to delete sub-category %s: %w", sub.ID, err)
		}
	}

	return warnings, nil
}

// Delete removes the category and its sub-categories, refusing while any
// of them still owns a product.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryRepo := repositories.NewCategoryRepository(tx)

		category, err := categoryRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load category: %w", err)
		}
		if category == nil {
			return ErrNotFound
		}

		count, err := categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		if count > 0 {
			return &ConflictError{
				Message: fmt.Sprintf("cannot delete category: it still has %d product(s) in its sub-categories", count),
			}
		}

		if err := repositories.NewSubCategoryRepository(tx).DeleteByCategory(ctx, id); err != nil {
			return fmt.Errorf("failed to delete sub-categories: %w", err)
		}
		if err := categoryRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	logUnexpected("CategoryService.Delete", err)
	return err
}

func (s *CategoryService) GetSubCategory(ctx context.Context, id string) (*models.SubCategory, error) {
	sub, err := s.subRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sub-category: %w", err)
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}

func (s *CategoryService) DeleteSubCategory(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subRepo := repositories.NewSubCategoryRepository(tx)

		sub, err := subRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load sub-category: %w", err)
		}
		if sub == nil {
			return ErrNotFound
		}
		if n := len(sub.Products); n > 0 {
			return &ConflictError{
				Message: fmt.Sprintf("cannot delete sub-category: it still has %d product(s)", n),
			}
		}
		return subRepo.Delete(ctx, id)
	})
}
