package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"galleria/internal/auth"
	errs "galleria/internal/errors"
	"galleria/internal/model"
	"galleria/internal/repository"
)

// PictureInput carries the mutable fields of a picture. The owning
// user is never part of it: ownership comes from the session at
// creation and is immutable afterwards.
type PictureInput struct {
	Title       string
	Artist      string
	ArtistID    *uuid.UUID
	Year        int
	Description string
	ImageURL    string
	Style       string
	Price       decimal.Decimal
	Size        string
}

// PictureService handles catalog reads and guarded mutations.
type PictureService interface {
	List(ctx context.Context) ([]model.Picture, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Picture, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.Picture, error)
	Create(ctx context.Context, sess *auth.Session, input *PictureInput) (*model.Picture, error)
	Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input *PictureInput) (*model.Picture, error)
	Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error
}

type pictureService struct {
	pictures repository.PictureRepository
}

// NewPictureService creates a new picture service.
func NewPictureService(pictures repository.PictureRepository) PictureService {
	return &pictureService{pictures: pictures}
}

func (s *pictureService) List(ctx context.Context) ([]model.Picture, error) {
	return s.pictures.List(ctx)
}

func (s *pictureService) Get(ctx context.Context, id uuid.UUID) (*model.Picture, error) {
	picture, err := s.pictures.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPictureNotFound
		}
		return nil, fmt.Errorf("load picture: %w", err)
	}
	return picture, nil
}

func (s *pictureService) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.Picture, error) {
	return s.pictures.ListByArtist(ctx, artistID)
}

// Create stores a new picture owned by the session user and returns it
// enriched with artist and owner data.
func (s *pictureService) Create(ctx context.Context, sess *auth.Session, input *PictureInput) (*model.Picture, error) {
	if sess == nil {
		return nil, errs.ErrUnauthorized
	}
	if input.Title == "" || input.ImageURL == "" {
		return nil, errs.ErrMissingFields
	}
	if input.Price.IsNegative() {
		return nil, errs.ErrMissingFields
	}

	picture := &model.Picture{
		Title:       input.Title,
		Artist:      input.Artist,
		ArtistID:    input.ArtistID,
		UserID:      sess.UserID,
		Year:        input.Year,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Style:       input.Style,
		Price:       input.Price,
		Size:        input.Size,
	}
	if err := s.pictures.Create(ctx, picture); err != nil {
		return nil, fmt.Errorf("create picture: %w", err)
	}
	return s.Get(ctx, picture.ID)
}

// Update replaces the mutable fields of a picture. Only the owner or
// an admin may do so; authorization is settled before the payload is
// even looked at, so a non-owner gets Forbidden no matter what they
// send. The write itself is conditioned on ownership for non-admins,
// so a racing request cannot slip past the check.
func (s *pictureService) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input *PictureInput) (*model.Picture, error) {
	if sess == nil {
		return nil, errs.ErrUnauthorized
	}

	picture, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanModify(sess, picture.UserID) {
		return nil, errs.ErrForbidden
	}

	if input.Title == "" || input.ImageURL == "" {
		return nil, errs.ErrMissingFields
	}
	if input.Price.IsNegative() {
		return nil, errs.ErrMissingFields
	}

	rows, err := s.pictures.UpdateOwned(ctx, id, s.ownerCondition(sess), map[string]interface{}{
		"title":       input.Title,
		"artist":      input.Artist,
		"artist_id":   input.ArtistID,
		"year":        input.Year,
		"description": input.Description,
		"image_url":   input.ImageURL,
		"style":       input.Style,
		"price":       input.Price,
		"size":        input.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("update picture: %w", err)
	}
	if rows == 0 {
		// Ownership is immutable, so zero rows after the check above
		// means the picture was removed concurrently.
		return nil, errs.ErrPictureNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes a picture. Only the owner or an admin may do so.
func (s *pictureService) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if sess == nil {
		return errs.ErrUnauthorized
	}

	picture, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModify(sess, picture.UserID) {
		return errs.ErrForbidden
	}

	rows, err := s.pictures.DeleteOwned(ctx, id, s.ownerCondition(sess))
	if err != nil {
		return fmt.Errorf("delete picture: %w", err)
	}
	if rows == 0 {
		return errs.ErrPictureNotFound
	}
	return nil
}

// ownerCondition restricts writes to the session user's rows unless
// the session is an admin.
func (s *pictureService) ownerCondition(sess *auth.Session) *uuid.UUID {
	if sess.Role == model.RoleAdmin {
		return nil
	}
	owner := sess.UserID
	return &owner
}
