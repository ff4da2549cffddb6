package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Picture represents a catalog entry. Every picture has exactly one
// owning user, fixed at creation; only the owner or an admin may
// mutate or delete it.
type Picture struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Artist      string          `json:"artist" gorm:"size:255"`
	ArtistID    *uuid.UUID      `json:"artistId" gorm:"type:char(36);index"`
	UserID      uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	Year        int             `json:"year"`
	Description string          `json:"description" gorm:"type:text"`
	ImageURL    string          `json:"imageUrl" gorm:"size:2048;not null"`
	Style       string          `json:"style" gorm:"size:100"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(14,2)"`
	Size        string          `json:"size" gorm:"size:100"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Read enrichment, populated on responses only.
	ArtistRef *Artist `json:"artistDetails,omitempty" gorm:"foreignKey:ArtistID"`
	Owner     *Owner  `json:"owner,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Picture) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
