package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"galleria/internal/cache"
	errs "galleria/internal/errors"
	"galleria/internal/model"
	"galleria/internal/repository"
)

const artistCacheTTL = 5 * time.Minute

// ArtistService exposes read-only artist operations. Artists change
// only through seeding, so single-artist reads are cached.
type ArtistService interface {
	List(ctx context.Context) ([]model.Artist, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Artist, error)
}

type artistService struct {
	artists repository.ArtistRepository
	cache   *cache.Client
}

// NewArtistService builds an ArtistService with repository and cache.
func NewArtistService(artists repository.ArtistRepository, cache *cache.Client) ArtistService {
	return &artistService{artists: artists, cache: cache}
}

func (s *artistService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("artist:%s", id)
}

func (s *artistService) List(ctx context.Context) ([]model.Artist, error) {
	return s.artists.List(ctx)
}

func (s *artistService) Get(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Artist
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrArtistNotFound
		}
		return nil, fmt.Errorf("load artist: %w", err)
	}

	if payload, err := json.Marshal(artist); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, artistCacheTTL)
	}
	return artist, nil
}
