package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of authorization roles.
type Role string

const (
	// RoleUser is the default role assigned on registration.
	RoleUser Role = "user"
	// RoleAdmin may mutate any picture and list all users.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account in the catalog.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:30;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:20;not null;default:'user'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Owner is a read-only projection of User carrying only the fields
// safe to attach to picture responses.
type Owner struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username string    `json:"username" gorm:"size:30"`
}

// TableName maps the projection onto the users table.
func (Owner) TableName() string { return "users" }

// UserSummary is the admin listing row: a user plus how many pictures
// they own.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	PictureCount int64     `json:"pictureCount"`
}
