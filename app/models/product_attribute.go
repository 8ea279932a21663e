package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductAttribute struct {
	ID        string    `gorm:"size:36;not null;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Value     string    `gorm:"type:text" json:"value"`
	ProductID string    `gorm:"size:36;not null;index" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *ProductAttribute) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
