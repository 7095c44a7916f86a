package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryCategories are the accepted values for GalleryImage.Category.
var GalleryCategories = []string{"grooming", "bathing", "styling", "before-after", "other"}

type GalleryImage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`

	// Public path of the stored file, e.g. /uploads/image-<uuid>.jpg.
	// Set by the upload handler, never by the client.
	ImageURL string `gorm:"not null" json:"imageUrl"`

	Category     string `gorm:"type:varchar(20);default:'other'" json:"category"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
	DisplayOrder int    `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
