package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultMinThreshold = 10

type InventoryItem struct {
	ID              string          `gorm:"size:36;not null;primaryKey" json:"id"`
	ProductID       string          `gorm:"size:36;not null;uniqueIndex" json:"product_id"`
	Quantity        int             `gorm:"not null;default:0" json:"quantity"`
	MinThreshold    int             `gorm:"not null" json:"min_threshold"`
	Location        string          `gorm:"size:255" json:"location"`
	LastRestockDate *time.Time      `json:"last_restock_date"`
	Product         *ProductSummary `gorm:"foreignKey:ProductID;-:migration" json:"Product,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinThreshold
}
