package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products for navigation; color drives the dashboard badge.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Color     string    `json:"color" gorm:"size:20"`
	Image     string    `json:"image,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
