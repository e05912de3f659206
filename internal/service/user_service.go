package service

import (
	"context"
	"fmt"
	"time"

	"gatepass/internal/cache"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
	"gatepass/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user lookups.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache. cache may
// be nil.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUser resolves a user id. An id that no longer resolves is
// ErrUserNotFound.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("find user", err, apperrors.ErrUserNotFound)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("list users", err)
	}
	return users, nil
}
