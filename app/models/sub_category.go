package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubCategory owns products; it can only be removed once it owns none.
type SubCategory struct {
	ID          string    `gorm:"size:36;not null;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  string    `gorm:"size:36;not null;index" json:"category_id"`
	Products    []Product `gorm:"foreignKey:SubCategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"Products,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
