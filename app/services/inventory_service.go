package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type StockInput struct {
	ProductID    string
	Quantity     int
	MinThreshold int
}

// InventoryItemInput drives direct item writes. A nil MinThreshold keeps the
// stored value (or the default on create); an empty Location keeps the stored one.
type InventoryItemInput struct {
	ProductID    string
	Quantity     int
	MinThreshold *int
	Location     string
}

type InventoryInput struct {
	Name        string
	Address     string
	Description string
}

type InventoryService struct {
	db            *gorm.DB
	itemRepo      repositories.InventoryItemRepositoryImpl
	inventoryRepo repositories.InventoryRepositoryImpl
	now           func() time.Time
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{
		db:            db,
		itemRepo:      repositories.NewInventoryItemRepository(db),
		inventoryRepo: repositories.NewInventoryRepository(db),
		now:           time.Now,
	}
}

func validateQuantities(quantity int, threshold *int) error {
	verr := &ValidationError{}
	if quantity < 0 {
		verr.Details = append(verr.Details, FieldError{Message: "quantity cannot be negative", Field: "quantity"})
	}
	if threshold != nil && *threshold < 0 {
		verr.Details = append(verr.Details, FieldError{Message: "min_threshold cannot be negative", Field: "min_threshold"})
	}
	if len(verr.Details) > 0 {
		return verr
	}
	return nil
}

func ensureProduct(ctx context.Context, tx *gorm.DB, id string) error {
	exists, err := repositories.NewProductRepository(tx).Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if !exists {
		return &ReferenceError{Message: fmt.Sprintf("product %s does not exist", id)}
	}
	return nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *InventoryService) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.itemRepo.GetLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return items, nil
}

// UpdateStock upserts the single inventory item of a product and stamps the
// restock date. Repeated calls for one product keep exactly one row.
func (s *InventoryService) UpdateStock(ctx context.Context, in StockInput) (*models.InventoryItem, bool, error) {
	if err := validateQuantities(in.Quantity, &in.MinThreshold); err != nil {
		return nil, false, err
	}

	var (
		id      string
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureProduct(ctx, tx, in.ProductID); err != nil {
			return err
		}

		itemRepo := repositories.NewInventoryItemRepository(tx)
		item, err := itemRepo.GetByProductID(ctx, in.ProductID)
		if err != nil {
			return fmt.Errorf("failed to load inventory item: %w", err)
		}

		restocked := s.now()
		if item == nil {
			item = &models.InventoryItem{
				ProductID:       in.ProductID,
				Quantity:        in.Quantity,
				MinThreshold:    in.MinThreshold,
				LastRestockDate: &restocked,
			}
			created = true
			if err := itemRepo.Create(ctx, item); err != nil {
				return fmt.Errorf("failed to create inventory item: %w", err)
			}
		} else {
			item.Quantity = in.Quantity
			item.MinThreshold = in.MinThreshold
			item.LastRestockDate = &restocked
			if err := itemRepo.Update(ctx, item); err != nil {
				return fmt.Errorf("failed to update inventory item: %w", err)
			}
		}
		id = item.ID
		return nil
	})
	if err != nil {
		logUnexpected("InventoryService.UpdateStock", err)
		return nil, false, err
	}

	item, err := s.GetItem(ctx, id)
	return item, created, err
}

func (s *InventoryService) CreateItem(ctx context.Context, in InventoryItemInput) (*models.InventoryItem, error) {
	if err := validateQuantities(in.Quantity, in.MinThreshold); err != nil {
		return nil, err
	}

	threshold := models.DefaultMinThreshold
	if in.MinThreshold != nil {
		threshold = *in.MinThreshold
	}

	restocked := s.now()
	item := &models.InventoryItem{
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		MinThreshold:    threshold,
		Location:        in.Location,
		LastRestockDate: &restocked,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureProduct(ctx, tx, in.ProductID); err != nil {
			return err
		}

		itemRepo := repositories.NewInventoryItemRepository(tx)
		existing, err := itemRepo.GetByProductID(ctx, in.ProductID)
		if err != nil {
			return fmt.Errorf("failed to load inventory item: %w", err)
		}
		if existing != nil {
			return &ConflictError{Message: "an inventory item already exists for this product"}
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create inventory item: %w", err)
		}
		return nil
	})
	if err != nil {
		logUnexpected("InventoryService.CreateItem", err)
		return nil, err
	}

	return s.GetItem(ctx, item.ID)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id string, in InventoryItemInput) (*models.InventoryItem, error) {
	if err := validateQuantities(in.Quantity, in.MinThreshold); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	restocked := s.now()
	item.Quantity = in.Quantity
	if in.MinThreshold != nil {
		item.MinThreshold = *in.MinThreshold
	}
	if in.Location != "" {
		item.Location = in.Location
	}
	item.LastRestockDate = &restocked

	if err := s.itemRepo.Update(ctx, item); err != nil {
		logUnexpected("InventoryService.UpdateItem", err)
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return s.GetItem(ctx, id)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load inventory item: %w", err)
	}
	if item == nil {
		return ErrNotFound
	}
	return s.itemRepo.Delete(ctx, id)
}

func (s *InventoryService) ListLocations(ctx context.Context) ([]models.Inventory, error) {
	inventories, err := s.inventoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventories: %w", err)
	}
	return inventories, nil
}

func (s *InventoryService) GetLocation(ctx context.Context, id string) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if inventory == nil {
		return nil, ErrNotFound
	}
	return inventory, nil
}

func (s *InventoryService) CreateLocation(ctx context.Context, in InventoryInput) (*models.Inventory, error) {
	inventory := &models.Inventory{Name: in.Name, Address: in.Address, Description: in.Description}
	if err := s.inventoryRepo.Create(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	return inventory, nil
}

func (s *InventoryService) UpdateLocation(ctx context.Context, id string, in InventoryInput) (*models.Inventory, error) {
	inventory, err := s.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	inventory.Name = in.Name
	inventory.Address = in.Address
	inventory.Description = in.Description
	if err := s.inventoryRepo.Update(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	return inventory, nil
}

func (s *InventoryService) DeleteLocation(ctx context.Context, id string) error {
	if _, err := s.GetLocation(ctx, id); err != nil {
		return err
	}
	return s.inventoryRepo.Delete(ctx, id)
}
