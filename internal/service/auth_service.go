package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"galleria/internal/auth"
	errs "galleria/internal/errors"
	"galleria/internal/model"
	"galleria/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, *auth.Session, error)
	Login(ctx context.Context, username, password string) (*model.User, *auth.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	sessions auth.SessionStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions auth.SessionStore) AuthService {
	return &authService{users: users, sessions: sessions}
}

// Register creates a new user with the default role and logs them in.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, *auth.Session, error) {
	if username == "" || password == "" {
		return nil, nil, errs.ErrMissingFields
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, nil, errs.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	sess, err := s.sessions.Create(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	return user, sess, nil
}

// Login verifies credentials and creates a session. An unknown
// username and a wrong password both yield ErrInvalidCredentials so
// the response never reveals which one failed.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, *auth.Session, error) {
	if username == "" || password == "" {
		return nil, nil, errs.ErrMissingFields
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, errs.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	return user, sess, nil
}

// Logout destroys the session for the given token. A missing or empty
// token is a no-op so logout stays idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
