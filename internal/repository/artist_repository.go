package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"galleria/internal/model"
)

// ArtistRepository defines artist persistence operations.
type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	List(ctx context.Context) ([]model.Artist, error)
	Count(ctx context.Context) (int64, error)
}

type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a new artist repository.
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) List(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.WithContext(ctx).Order("name").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Artist{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
