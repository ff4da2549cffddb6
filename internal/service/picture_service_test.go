package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"galleria/internal/auth"
	errs "galleria/internal/errors"
	"galleria/internal/model"
)

// MockPictureRepository is a mock implementation of PictureRepository.
type MockPictureRepository struct {
	mock.Mock
}

func (m *MockPictureRepository) Create(ctx context.Context, picture *model.Picture) error {
	args := m.Called(ctx, picture)
	return args.Error(0)
}

func (m *MockPictureRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Picture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Picture), args.Error(1)
}

func (m *MockPictureRepository) List(ctx context.Context) ([]model.Picture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Picture), args.Error(1)
}

func (m *MockPictureRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]model.Picture, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Picture), args.Error(1)
}

func (m *MockPictureRepository) UpdateOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, ownerID, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPictureRepository) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPictureRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func userSession(userID uuid.UUID) *auth.Session {
	return &auth.Session{Token: uuid.NewString(), UserID: userID, Username: "someone", Role: model.RoleUser}
}

func adminSession() *auth.Session {
	return &auth.Session{Token: uuid.NewString(), UserID: uuid.New(), Username: "Admin", Role: model.RoleAdmin}
}

func ownedBy(owner uuid.UUID) func(*uuid.UUID) bool {
	return func(id *uuid.UUID) bool { return id != nil && *id == owner }
}

func unconditional(id *uuid.UUID) bool { return id == nil }

func validInput() *PictureInput {
	return &PictureInput{Title: "T", ImageURL: "http://x"}
}

func TestPictureService_Create(t *testing.T) {
	t.Run("rejects anonymous callers before touching storage", func(t *testing.T) {
		mockRepo := new(MockPictureRepository)

		svc := NewPictureService(mockRepo)
		picture, err := svc.Create(context.Background(), nil, validInput())

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, picture)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing required fields before touching storage", func(t *testing.T) {
		mockRepo := new(MockPictureRepository)

		svc := NewPictureService(mockRepo)
		_, err := svc.Create(context.Background(), userSession(uuid.New()), &PictureInput{Title: "T"})

		assert.ErrorIs(t, err, errs.ErrMissingFields)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("owner comes from the session", func(t *testing.T) {
		ownerID := uuid.New()
		mockRepo := new(MockPictureRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Picture) bool {
			return p.UserID == ownerID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Picture).ID = uuid.New()
		}).Return(nil)
		mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(&model.Picture{
			Title:    "T",
			ImageURL: "http://x",
			UserID:   ownerID,
			Owner:    &model.Owner{ID: ownerID, Username: "someone"},
		}, nil)

		svc := NewPictureService(mockRepo)
		picture, err := svc.Create(context.Background(), userSession(ownerID), validInput())

		assert.NoError(t, err)
		assert.Equal(t, ownerID, picture.UserID)
		assert.NotNil(t, picture.Owner)
		mockRepo.AssertExpectations(t)
	})
}

func TestPictureService_Update(t *testing.T) {
	pictureID := uuid.New()
	ownerID := uuid.New()
	stored := func() *model.Picture {
		return &model.Picture{ID: pictureID, Title: "T", ImageURL: "http://x", UserID: ownerID}
	}

	tests := []struct {
		name          string
		sess          *auth.Session
		input         *PictureInput
		setupMock     func(*MockPictureRepository)
		expectedError error
	}{
		{
			name: "owner may update, write is owner-conditioned",
			sess: userSession(ownerID),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
				m.On("UpdateOwned", mock.Anything, pictureID, mock.MatchedBy(ownedBy(ownerID)), mock.Anything).
					Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "admin may update anything, write is unconditional",
			sess: adminSession(),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
				m.On("UpdateOwned", mock.Anything, pictureID, mock.MatchedBy(unconditional), mock.Anything).
					Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "non-owner is forbidden regardless of payload",
			sess: userSession(uuid.New()),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
			},
			expectedError: errs.ErrForbidden,
		},
		{
			name:  "non-owner is forbidden even when the payload is invalid",
			sess:  userSession(uuid.New()),
			input: &PictureInput{},
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
			},
			expectedError: errs.ErrForbidden,
		},
		{
			name:  "owner with missing fields gets a validation error",
			sess:  userSession(ownerID),
			input: &PictureInput{Title: "T"},
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
			},
			expectedError: errs.ErrMissingFields,
		},
		{
			name: "missing picture",
			sess: userSession(ownerID),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrPictureNotFound,
		},
		{
			name: "picture removed between check and write",
			sess: userSession(ownerID),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
				m.On("UpdateOwned", mock.Anything, pictureID, mock.Anything, mock.Anything).
					Return(int64(0), nil)
			},
			expectedError: errs.ErrPictureNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPictureRepository)
			tt.setupMock(mockRepo)

			input := tt.input
			if input == nil {
				input = validInput()
			}

			svc := NewPictureService(mockRepo)
			picture, err := svc.Update(context.Background(), tt.sess, pictureID, input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, picture)
				mockRepo.AssertNotCalled(t, "UpdateOwned", mock.Anything, pictureID, mock.MatchedBy(unconditional), mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, picture)
			}
			if tt.expectedError == errs.ErrForbidden {
				mockRepo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPictureService_Delete(t *testing.T) {
	pictureID := uuid.New()
	ownerID := uuid.New()
	stored := func() *model.Picture {
		return &model.Picture{ID: pictureID, Title: "T", ImageURL: "http://x", UserID: ownerID}
	}

	tests := []struct {
		name          string
		sess          *auth.Session
		setupMock     func(*MockPictureRepository)
		expectedError error
	}{
		{
			name: "owner may delete",
			sess: userSession(ownerID),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
				m.On("DeleteOwned", mock.Anything, pictureID, mock.MatchedBy(ownedBy(ownerID))).
					Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "admin may delete anything",
			sess: adminSession(),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
				m.On("DeleteOwned", mock.Anything, pictureID, mock.MatchedBy(unconditional)).
					Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "non-owner is forbidden",
			sess: userSession(uuid.New()),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(stored(), nil)
			},
			expectedError: errs.ErrForbidden,
		},
		{
			name:          "anonymous is unauthorized",
			sess:          nil,
			setupMock:     func(m *MockPictureRepository) {},
			expectedError: errs.ErrUnauthorized,
		},
		{
			name: "missing picture",
			sess: userSession(ownerID),
			setupMock: func(m *MockPictureRepository) {
				m.On("FindByID", mock.Anything, pictureID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrPictureNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPictureRepository)
			tt.setupMock(mockRepo)

			svc := NewPictureService(mockRepo)
			err := svc.Delete(context.Background(), tt.sess, pictureID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedError == errs.ErrForbidden || tt.expectedError == errs.ErrUnauthorized {
				mockRepo.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPictureService_Get(t *testing.T) {
	mockRepo := new(MockPictureRepository)
	mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewPictureService(mockRepo)
	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, errs.ErrPictureNotFound)
}
