package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist represents a painter referenced by catalog pictures.
// Read-only from the API surface.
type Artist struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string     `json:"name" gorm:"size:255;not null;index"`
	Bio         string     `json:"bio" gorm:"type:text"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	DeathDate   *time.Time `json:"deathDate,omitempty"`
	Nationality string     `json:"nationality" gorm:"size:100"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
