package service

import (
	"context"
	"time"

	"propfinder/internal/cache"
	"propfinder/internal/model"
	"propfinder/internal/repository"
)

const (
	propertyListCacheKey = "properties:all"
	propertyListCacheTTL = 30 * time.Second
)

// PropertyService exposes listing reads.
type PropertyService interface {
	ListProperties(ctx context.Context) ([]model.Property, error)
	SearchProperties(ctx context.Context, query string) ([]model.Property, error)
}

type propertyService struct {
	repo  repository.PropertyRepository
	cache *cache.Client
}

// NewPropertyService creates a new property service.
func NewPropertyService(repo repository.PropertyRepository, cache *cache.Client) PropertyService {
	return &propertyService{repo: repo, cache: cache}
}

// ListProperties returns all listings, newest first. The full list is cached
// briefly; uploads invalidate the key.
func (s *propertyService) ListProperties(ctx context.Context) ([]model.Property, error) {
	var cached []model.Property
	if s.cache.GetJSON(ctx, propertyListCacheKey, &cached) {
		return cached, nil
	}

	properties, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		// An empty table must still serialize as [], not null.
		properties = []model.Property{}
	}

	s.cache.SetJSON(ctx, propertyListCacheKey, properties, propertyListCacheTTL)
	return properties, nil
}

// SearchProperties runs an uncached substring search over the listings.
func (s *propertyService) SearchProperties(ctx context.Context, query string) ([]model.Property, error) {
	properties, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []model.Property{}
	}
	return properties, nil
}
