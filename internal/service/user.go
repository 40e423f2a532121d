package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmelim/userlist/internal/domain"
)

// UserService handles user registration and listing.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register validates the submitted fields and persists a new user. On
// validation failure it returns a *domain.ValidationError and leaves the
// store untouched. Duplicate name/email pairs are permitted; each successful
// call creates exactly one new record.
func (s *UserService) Register(ctx context.Context, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if fields := ValidateUser(name, email); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}

	user := &domain.User{Name: name, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// List returns all registered users in insertion order. An empty store
// yields an empty slice, not an error.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
