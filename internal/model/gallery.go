package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImage is a CDN-hosted image tracked for the media gallery. PublicID
// is the CDN-side identifier needed to sign a delete request.
type GalleryImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	URL       string    `json:"url" gorm:"size:512;not null"`
	Name      string    `json:"name" gorm:"size:255;not null;default:'Untitled'"`
	PublicID  string    `json:"publicId,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
