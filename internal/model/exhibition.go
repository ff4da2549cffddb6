package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exhibition groups pictures shown together at a venue. No routes
// expose it yet; the schema exists for seeded and future data.
type Exhibition struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   time.Time `json:"startDate" gorm:"not null"`
	EndDate     time.Time `json:"endDate" gorm:"not null"`
	Location    string    `json:"location" gorm:"size:255"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Pictures []Picture `json:"pictures,omitempty" gorm:"many2many:exhibition_pictures;"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Exhibition) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
