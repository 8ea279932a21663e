package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AttributeInput struct {
	Name  string
	Value string
}

// ProductInput is the full desired state of a product. A nil Attributes
// leaves stored attributes untouched on update; an empty one clears them.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Brand         string
	ImageURL      string
	WeightVolume  string
	SubCategoryID string
	Attributes    []AttributeInput
}

type ProductService struct {
	db          *gorm.DB
	productRepo repositories.ProductRepositoryImpl
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		db:          db,
		productRepo: repositories.NewProductRepository(db),
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) Search(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, NewValidationError("minPrice", "minPrice must not exceed maxPrice")
	}
	products, err := s.productRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func validateProduct(in ProductInput) error {
	if in.Price.IsNegative() {
		return NewValidationError("price", "price must be greater than or equal to 0")
	}
	return nil
}

func ensureSubCategory(ctx context.Context, tx *gorm.DB, id string) error {
	sub, err := repositories.NewSubCategoryRepository(tx).GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check sub-category: %w", err)
	}
	if sub == nil {
		return &ReferenceError{Message: fmt.Sprintf("sub-category %s does not exist", id)}
	}
	return nil
}

func replaceAttributes(ctx context.Context, tx *gorm.DB, productID string, attrs []AttributeInput) error {
	attrRepo := repositories.NewProductAttributeRepository(tx)
	if err := attrRepo.DeleteByProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to clear attributes: %w", err)
	}

	rows := make([]models.ProductAttribute, 0, len(attrs))
	for _, a := range attrs {
		rows = append(rows, models.ProductAttribute{Name: a.Name, Value: a.Value, ProductID: productID})
	}
	if err := attrRepo.CreateBatch(ctx, rows); err != nil {
		return fmt.Errorf("failed to create attributes: %w", err)
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Brand:         in.Brand,
		ImageURL:      in.ImageURL,
		WeightVolume:  in.WeightVolume,
		SubCategoryID: in.SubCategoryID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSubCategory(ctx, tx, in.SubCategoryID); err != nil {
			return err
		}
		if err := repositories.NewProductRepository(tx).Create(ctx, product); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return replaceAttributes(ctx, tx, product.ID, in.Attributes)
	})
	if err != nil {
		logUnexpected("ProductService.Create", err)
		return nil, err
	}

	return s.Get(ctx, product.ID)
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productRepo := repositories.NewProductRepository(tx)

		exists, err := productRepo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load product: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		if err := ensureSubCategory(ctx, tx, in.SubCategoryID); err != nil {
			return err
		}

		product := &models.Product{
			ID:            id,
			Name:          in.Name,
			Description:   in.Description,
			Price:         in.Price,
			Brand:         in.Brand,
			ImageURL:      in.ImageURL,
			WeightVolume:  in.WeightVolume,
			SubCategoryID: in.SubCategoryID,
		}
		if err := productRepo.Update(ctx, product); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}

		if in.Attributes == nil {
			return nil
		}
		return replaceAttributes(ctx, tx, id, in.Attributes)
	})
	if err != nil {
		logUnexpected("ProductService.Update", err)
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the product together with its attributes and inventory item.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productRepo := repositories.NewProductRepository(tx)

		exists, err := productRepo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load product: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		if err := repositories.NewProductAttributeRepository(tx).DeleteByProduct(ctx, id); err != nil {
			return fmt.Errorf("failed to delete attributes: %w", err)
		}
		if err := repositories.NewInventoryItemRepository(tx).DeleteByProduct(ctx, id); err != nil {
			return fmt.Errorf("failed to delete inventory item: %w", err)
		}
		if err := productRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	logUnexpected("ProductService.Delete", err)
	return err
}
