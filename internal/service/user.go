package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidamzz/blogging-app/internal/domain"
)

// UserService handles user registration, lookup, and account deletion.
type UserService struct {
	users domain.UserRepository
	auth  *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

// Register creates a new user account. Username and email are pre-checked
// for duplicates; a concurrent insert racing past the pre-check still
// surfaces the same typed error from the store.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email, and password are required", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their ID.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Delete removes a user account. Only the account owner may delete it.
// Posts and comments authored by the user are removed by cascade.
func (s *UserService) Delete(ctx context.Context, callerID, id string) error {
	if callerID != id {
		return domain.ErrForbidden
	}
	return s.users.Delete(ctx, id)
}
