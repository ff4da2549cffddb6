package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"galleria/internal/cache"
	errs "galleria/internal/errors"
	"galleria/internal/model"
)

// MockArtistRepository is a mock implementation of ArtistRepository.
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *model.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(ctx context.Context) ([]model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestArtistService_Get(t *testing.T) {
	t.Run("returns the artist", func(t *testing.T) {
		artistID := uuid.New()
		mockRepo := new(MockArtistRepository)
		mockRepo.On("FindByID", mock.Anything, artistID).Return(&model.Artist{
			ID:   artistID,
			Name: "Vincent van Gogh",
		}, nil)

		svc := NewArtistService(mockRepo, cache.New(nil))
		artist, err := svc.Get(context.Background(), artistID)

		assert.NoError(t, err)
		assert.Equal(t, "Vincent van Gogh", artist.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("maps a missing artist to the domain error", func(t *testing.T) {
		mockRepo := new(MockArtistRepository)
		mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArtistService(mockRepo, cache.New(nil))
		_, err := svc.Get(context.Background(), uuid.New())

		assert.ErrorIs(t, err, errs.ErrArtistNotFound)
	})
}

func TestArtistService_List(t *testing.T) {
	mockRepo := new(MockArtistRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Artist{
		{Name: "Leonardo da Vinci"},
		{Name: "Pablo Picasso"},
		{Name: "Vincent van Gogh"},
	}, nil)

	svc := NewArtistService(mockRepo, cache.New(nil))
	artists, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, artists, 3)
}
