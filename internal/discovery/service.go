// Package discovery orchestrates mood-based movie search: free text goes to
// the suggestion provider, each suggested title is resolved to metadata, and
// the results are ordered by value ratio for display.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cinemood/cinemood/internal/metadata"
	"github.com/cinemood/cinemood/internal/metadata/omdb"
	"github.com/cinemood/cinemood/internal/suggest"
	"github.com/cinemood/cinemood/internal/watchlist"
)

// trendingQuery seeds recommendations before any search has happened.
const trendingQuery = "avengers"

const (
	trendingLimit = 8
	recentLimit   = 4
)

// Card is one renderable search result.
type Card struct {
	ImdbID     string  `json:"imdbId"`
	Title      string  `json:"title"`
	Year       string  `json:"year"`
	Runtime    string  `json:"runtime"`
	Genre      string  `json:"genre,omitempty"`
	Plot       string  `json:"plot,omitempty"`
	Poster     string  `json:"poster"`
	Rating     float64 `json:"rating"`
	ValueRatio float64 `json:"valueRatio"`
}

// Resolver is the metadata capability the service consumes.
type Resolver interface {
	ResolveTitle(ctx context.Context, title string) (*omdb.Movie, error)
	SearchTitles(ctx context.Context, query string) ([]omdb.SearchEntry, error)
}

// Service runs searches and keeps the recommendation state.
type Service struct {
	suggester suggest.Provider // nil when no provider is configured
	resolver  Resolver
	logger    zerolog.Logger

	mu          sync.Mutex
	history     []string
	recommended []Card
}

// NewService creates a discovery service. suggester may be nil, in which
// case searches degrade to "no suggestions".
func NewService(suggester suggest.Provider, resolver Resolver, logger zerolog.Logger) *Service {
	return &Service{
		suggester: suggester,
		resolver:  resolver,
		logger:    logger.With().Str("component", "discovery").Logger(),
	}
}

// Search converts a free-text description into ranked movie cards. Titles
// the metadata provider does not know are skipped; a provider failure on a
// single title skips that title only.
func (s *Service) Search(ctx context.Context, query string) ([]Card, error) {
	if s.suggester == nil {
		return nil, suggest.ErrNoSuggestions
	}

	titles, err := s.suggester.SuggestTitles(ctx, query)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("Suggestion provider failed")
		return nil, fmt.Errorf("%w: %v", suggest.ErrNoSuggestions, err)
	}

	s.mu.Lock()
	s.history = append(s.history, titles...)
	s.mu.Unlock()

	cards := s.resolveAll(ctx, titles)
	if len(cards) == 0 {
		return nil, suggest.ErrNoSuggestions
	}

	sortByValueRatio(cards)
	return cards, nil
}

// Recommended returns the current recommendation cards, refreshing them
// first if none are cached yet.
func (s *Service) Recommended(ctx context.Context) []Card {
	s.mu.Lock()
	cached := append([]Card(nil), s.recommended...)
	s.mu.Unlock()

	if len(cached) > 0 {
		return cached
	}

	if err := s.RefreshRecommended(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to refresh recommendations")
		return []Card{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Card(nil), s.recommended...)
}

// RefreshRecommended rebuilds the recommendation cards from the most recent
// suggested title, falling back to the trending query when nothing has been
// searched yet. Run periodically by the scheduler.
func (s *Service) RefreshRecommended(ctx context.Context) error {
	s.mu.Lock()
	query := trendingQuery
	limit := trendingLimit
	if len(s.history) > 0 {
		query = s.history[len(s.history)-1]
		limit = recentLimit
	}
	s.mu.Unlock()

	entries, err := s.resolver.SearchTitles(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to load recommendations: %w", err)
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	titles := make([]string, 0, len(entries))
	for _, entry := range entries {
		titles = append(titles, entry.Title)
	}

	cards := s.resolveAll(ctx, titles)
	s.mu.Lock()
	s.recommended = cards
	s.mu.Unlock()

	s.logger.Debug().Str("query", query).Int("count", len(cards)).Msg("Refreshed recommendations")
	return nil
}

func (s *Service) resolveAll(ctx context.Context, titles []string) []Card {
	cards := make([]Card, 0, len(titles))
	for _, title := range titles {
		movie, err := s.resolver.ResolveTitle(ctx, title)
		if err != nil {
			if !errors.Is(err, metadata.ErrNotFound) {
				s.logger.Warn().Err(err).Str("title", title).Msg("Failed to resolve title")
			}
			continue
		}
		cards = append(cards, cardFromMovie(movie))
	}
	return cards
}

func cardFromMovie(movie *omdb.Movie) Card {
	card := Card{
		ImdbID:  movie.ImdbID,
		Title:   movie.Title,
		Year:    movie.Year,
		Runtime: movie.Runtime,
		Genre:   movie.Genre,
		Plot:    movie.Plot,
		Poster:  movie.Poster,
		Rating:  movie.ImdbRating,
	}
	if minutes := watchlist.ParseRuntimeMinutes(movie.Runtime); minutes > 0 {
		card.ValueRatio = card.Rating / (float64(minutes) / 100)
	}
	return card
}

// sortByValueRatio orders cards best-first, stable on ties.
func sortByValueRatio(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].ValueRatio > cards[j].ValueRatio
	})
}
