package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID                string             `gorm:"size:36;not null;primaryKey" json:"id"`
	Name              string             `gorm:"size:200;not null" json:"name"`
	Description       string             `gorm:"type:text" json:"description"`
	Price             decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"price"`
	Brand             string             `gorm:"size:100" json:"brand"`
	ImageURL          string             `gorm:"size:500" json:"image_url"`
	WeightVolume      string             `gorm:"size:50" json:"weight_volume"`
	SubCategoryID     string             `gorm:"size:36;not null;index" json:"sub_category_id"`
	SubCategory       *SubCategory       `gorm:"foreignKey:SubCategoryID" json:"SubCategory,omitempty"`
	ProductAttributes []ProductAttribute `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"ProductAttributes,omitempty"`
	InventoryItem     *InventoryItem     `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"InventoryItem,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// ProductSummary is the trimmed product view attached to inventory rows.
type ProductSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	// loaded for stock valuation only
	Price decimal.Decimal `json:"-"`
}

func (ProductSummary) TableName() string {
	return "products"
}
