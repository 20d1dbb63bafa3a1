package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
	"github.com/aussiebroadwan/timeclock/pkg/idx"
)

// UserService manages the directory of people allowed to clock in. Identity
// itself lives with the external IdP; this is only the local roster shifts
// attach to.
type UserService struct {
	Store store.Store

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateUser registers a new user. Duplicate emails return
// store.ErrAlreadyExists.
func (s *UserService) CreateUser(ctx context.Context, email, name, role string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("%w: email must be a valid address", ErrInvalidInput)
	}
	if name == "" {
		return domain.User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	switch role {
	case "":
		role = domain.RoleStaff
	case domain.RoleStaff, domain.RoleAdmin:
	default:
		return domain.User{}, fmt.Errorf("%w: role must be %q or %q", ErrInvalidInput, domain.RoleStaff, domain.RoleAdmin)
	}

	now := s.now().UTC()
	user := domain.User{
		ID:        idx.New().String(),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// ListUsers returns every registered user, oldest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// DeleteUser removes a user from the roster. Their shift records are kept;
// the ledger outlives the roster entry.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.Store.Users().DeleteUser(ctx, userID)
}
