package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propfinder/internal/cache"
	"propfinder/internal/errors"
	"propfinder/internal/model"
	"propfinder/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService handles user registration and balance reads.
type UserService interface {
	Register(ctx context.Context, username, walletAddress string) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// Register creates a user with a zero token balance. Usernames are unique;
// a repeated registration fails rather than producing a second identity.
func (s *userService) Register(ctx context.Context, username, walletAddress string) (*model.User, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find username: %w", err)
	}
	if existing != nil {
		return nil, errors.ErrUsernameTaken
	}

	user := &model.User{
		Username:      username,
		WalletAddress: walletAddress,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// The lookup above races with concurrent registrations; the unique
		// index is the authority.
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID with caching. The balance endpoint returns
// the full record, so stale cache entries are bounded by the TTL and every
// token award invalidates the key.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, userCacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, userCacheKey(id), user, userCacheTTL)
	return user, nil
}
