package service

import (
	"context"

	"galleria/internal/model"
	"galleria/internal/repository"
)

// UserService exposes the admin-only user listing.
type UserService interface {
	ListWithPictureCounts(ctx context.Context) ([]model.UserSummary, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) ListWithPictureCounts(ctx context.Context) ([]model.UserSummary, error) {
	return s.users.ListWithPictureCounts(ctx)
}
