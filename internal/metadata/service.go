// Package metadata resolves movie titles to structured records through the
// configured provider, with TTL caching in front.
package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cinemood/cinemood/internal/config"
	"github.com/cinemood/cinemood/internal/metadata/omdb"
)

// ErrNotFound reports that a title could not be resolved. It is a normal
// outcome, not a failure.
var ErrNotFound = errors.New("metadata not found")

// Service wraps the OMDb client with caching.
type Service struct {
	omdb   OMDBClient
	cache  *cache
	logger zerolog.Logger
}

// NewService creates a metadata service with the real OMDb client.
func NewService(cfg config.MetadataConfig, logger zerolog.Logger) *Service {
	return NewServiceWithClient(omdb.NewClient(cfg.OMDB, logger), logger)
}

// NewServiceWithClient creates a metadata service around a custom client
// (mock client in developer mode, fakes in tests).
func NewServiceWithClient(client OMDBClient, logger zerolog.Logger) *Service {
	return &Service{
		omdb:   client,
		cache:  newCache(defaultCacheTTL),
		logger: logger.With().Str("component", "metadata").Logger(),
	}
}

// ResolveTitle resolves one title to a movie record. Unknown titles return
// ErrNotFound.
func (s *Service) ResolveTitle(ctx context.Context, title string) (*omdb.Movie, error) {
	cacheKey := "title:" + title
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.(*omdb.Movie), nil
	}

	movie, err := s.omdb.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve title %q: %w", title, err)
	}

	s.cache.set(cacheKey, movie)
	return movie, nil
}

// SearchTitles runs a free-text title search. No hits return ErrNotFound.
func (s *Service) SearchTitles(ctx context.Context, query string) ([]omdb.SearchEntry, error) {
	cacheKey := "search:" + query
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]omdb.SearchEntry), nil
	}

	entries, err := s.omdb.Search(ctx, query)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to search titles for %q: %w", query, err)
	}

	s.cache.set(cacheKey, entries)
	return entries, nil
}

// ProviderName reports which metadata client is in use.
func (s *Service) ProviderName() string {
	return s.omdb.Name()
}
