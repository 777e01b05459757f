package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog item managed through the dashboard. Image fields hold
// CDN URLs; the binary assets themselves never touch this service.
type Product struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string          `json:"name" gorm:"size:100;not null;index"`
	Description   string          `json:"description" gorm:"size:1000"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Categories    []string        `json:"categories" gorm:"serializer:json"`
	Stock         int             `json:"stock" gorm:"default:0"`
	FrontImage    string          `json:"frontImage" gorm:"size:512"`
	BackImage     string          `json:"backImage" gorm:"size:512"`
	GalleryImages []string        `json:"galleryImages" gorm:"serializer:json"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
