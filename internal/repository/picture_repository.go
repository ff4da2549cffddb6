package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"galleria/internal/model"
)

// PictureRepository defines picture persistence operations. Reads come
// back enriched with the referenced artist and the owner's username.
// Mutations are conditional: a non-nil ownerID restricts the write to
// rows owned by that user, so the ownership predicate is enforced by
// the store itself rather than by a separate read.
type PictureRepository interface {
	Create(ctx context.Context, picture *model.Picture) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Picture, error)
	List(ctx context.Context) ([]model.Picture, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.Picture, error)
	UpdateOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type pictureRepository struct {
	db *gorm.DB
}

// NewPictureRepository creates a new picture repository.
func NewPictureRepository(db *gorm.DB) PictureRepository {
	return &pictureRepository{db: db}
}

func (r *pictureRepository) Create(ctx context.Context, picture *model.Picture) error {
	return r.db.WithContext(ctx).Create(picture).Error
}

func (r *pictureRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Picture, error) {
	var picture model.Picture
	err := r.enriched(ctx).Where("id = ?", id).First(&picture).Error
	if err != nil {
		return nil, err
	}
	return &picture, nil
}

func (r *pictureRepository) List(ctx context.Context) ([]model.Picture, error) {
	var pictures []model.Picture
	if err := r.enriched(ctx).Order("created_at").Find(&pictures).Error; err != nil {
		return nil, err
	}
	return pictures, nil
}

func (r *pictureRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.Picture, error) {
	var pictures []model.Picture
	err := r.enriched(ctx).Where("artist_id = ?", artistID).Order("created_at").Find(&pictures).Error
	if err != nil {
		return nil, err
	}
	return pictures, nil
}

// UpdateOwned applies fields to one picture and reports rows affected.
// user_id is never part of fields: ownership is fixed at creation.
func (r *pictureRepository) UpdateOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, fields map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Picture{}).Where("id = ?", id)
	if ownerID != nil {
		tx = tx.Where("user_id = ?", *ownerID)
	}
	res := tx.Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteOwned removes one picture and reports rows affected.
func (r *pictureRepository) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id)
	if ownerID != nil {
		tx = tx.Where("user_id = ?", *ownerID)
	}
	res := tx.Delete(&model.Picture{})
	return res.RowsAffected, res.Error
}

func (r *pictureRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Picture{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *pictureRepository) enriched(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ArtistRef").
		Preload("Owner")
}
