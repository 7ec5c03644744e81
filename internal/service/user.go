package service

import (
	"context"

	"cardbot/internal/repository"
)

// UserService handles user registration and privileges
type UserService struct {
	userRepo repository.UserRepository
	admins   map[int64]struct{}
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, adminIDs []int64) *UserService {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &UserService{
		userRepo: userRepo,
		admins:   admins,
	}
}

// EnsureUserExists creates user record if doesn't exist
func (s *UserService) EnsureUserExists(ctx context.Context, userID int64, username string) error {
	return s.userRepo.EnsureUser(ctx, userID, username)
}

// IsAdmin reports whether the user may delete words globally
func (s *UserService) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}
