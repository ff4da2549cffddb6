package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"galleria/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ListWithPictureCounts(ctx context.Context) ([]model.UserSummary, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListWithPictureCounts returns every user together with how many
// pictures they own, sorted by id.
func (r *userRepository) ListWithPictureCounts(ctx context.Context) ([]model.UserSummary, error) {
	var summaries []model.UserSummary
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("users.id, users.username, users.role, users.created_at, COUNT(pictures.id) AS picture_count").
		Joins("LEFT JOIN pictures ON pictures.user_id = users.id").
		Group("users.id").
		Order("users.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
