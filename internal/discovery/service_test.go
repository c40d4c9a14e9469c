package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cinemood/cinemood/internal/metadata"
	"github.com/cinemood/cinemood/internal/metadata/omdb"
	"github.com/cinemood/cinemood/internal/suggest"
)

type fakeSuggester struct {
	titles []string
	err    error
	calls  int
}

func (f *fakeSuggester) SuggestTitles(ctx context.Context, freeText string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.titles, nil
}

func (f *fakeSuggester) Name() string {
	return "fake"
}

type fakeResolver struct {
	movies    map[string]*omdb.Movie
	entries   []omdb.SearchEntry
	searchErr error

	lastQuery string
}

func (f *fakeResolver) ResolveTitle(ctx context.Context, title string) (*omdb.Movie, error) {
	movie, ok := f.movies[title]
	if !ok {
		return nil, metadata.ErrNotFound
	}
	return movie, nil
}

func (f *fakeResolver) SearchTitles(ctx context.Context, query string) ([]omdb.SearchEntry, error) {
	f.lastQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.entries, nil
}

func testMovie(title, runtime string, rating float64) *omdb.Movie {
	return &omdb.Movie{
		ImdbID:     "tt-" + title,
		Title:      title,
		Runtime:    runtime,
		ImdbRating: rating,
	}
}

func TestService_Search_RanksByValueRatio(t *testing.T) {
	resolver := &fakeResolver{movies: map[string]*omdb.Movie{
		// 8.0 / 2.0 = 4.0
		"Long Epic": testMovie("Long Epic", "200 min", 8.0),
		// 7.5 / 0.9 = 8.33
		"Short Gem": testMovie("Short Gem", "90 min", 7.5),
	}}
	suggester := &fakeSuggester{titles: []string{"Long Epic", "Short Gem"}}
	svc := NewService(suggester, resolver, zerolog.Nop())

	cards, err := svc.Search(context.Background(), "something cozy")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("Search() len = %d, want 2", len(cards))
	}
	if cards[0].Title != "Short Gem" || cards[1].Title != "Long Epic" {
		t.Errorf("Search() order = [%s %s], want [Short Gem Long Epic]", cards[0].Title, cards[1].Title)
	}
	if cards[0].ValueRatio <= cards[1].ValueRatio {
		t.Errorf("value ratios not descending: %v <= %v", cards[0].ValueRatio, cards[1].ValueRatio)
	}
}

func TestService_Search_SkipsUnknownTitles(t *testing.T) {
	resolver := &fakeResolver{movies: map[string]*omdb.Movie{
		"Known": testMovie("Known", "100 min", 7.0),
	}}
	suggester := &fakeSuggester{titles: []string{"Known", "Hallucinated Sequel"}}
	svc := NewService(suggester, resolver, zerolog.Nop())

	cards, err := svc.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(cards) != 1 || cards[0].Title != "Known" {
		t.Errorf("Search() = %+v, want only the known title", cards)
	}
}

func TestService_Search_AllTitlesUnknown(t *testing.T) {
	resolver := &fakeResolver{movies: map[string]*omdb.Movie{}}
	suggester := &fakeSuggester{titles: []string{"Nope", "Also Nope"}}
	svc := NewService(suggester, resolver, zerolog.Nop())

	if _, err := svc.Search(context.Background(), "anything"); !errors.Is(err, suggest.ErrNoSuggestions) {
		t.Errorf("Search() error = %v, want ErrNoSuggestions", err)
	}
}

func TestService_Search_ProviderFailure(t *testing.T) {
	suggester := &fakeSuggester{err: errors.New("rate limited")}
	svc := NewService(suggester, &fakeResolver{}, zerolog.Nop())

	if _, err := svc.Search(context.Background(), "anything"); !errors.Is(err, suggest.ErrNoSuggestions) {
		t.Errorf("Search() error = %v, want ErrNoSuggestions", err)
	}
}

func TestService_Search_NoProviderConfigured(t *testing.T) {
	svc := NewService(nil, &fakeResolver{}, zerolog.Nop())

	if _, err := svc.Search(context.Background(), "anything"); !errors.Is(err, suggest.ErrNoSuggestions) {
		t.Errorf("Search() error = %v, want ErrNoSuggestions", err)
	}
}

func TestService_RefreshRecommended_TrendingFallback(t *testing.T) {
	resolver := &fakeResolver{
		movies: map[string]*omdb.Movie{
			"The Avengers": testMovie("The Avengers", "143 min", 8.0),
		},
		entries: []omdb.SearchEntry{{Title: "The Avengers"}},
	}
	svc := NewService(&fakeSuggester{}, resolver, zerolog.Nop())

	if err := svc.RefreshRecommended(context.Background()); err != nil {
		t.Fatalf("RefreshRecommended() error = %v", err)
	}
	if resolver.lastQuery != "avengers" {
		t.Errorf("fallback query = %q, want %q", resolver.lastQuery, "avengers")
	}

	cards := svc.Recommended(context.Background())
	if len(cards) != 1 || cards[0].Title != "The Avengers" {
		t.Errorf("Recommended() = %+v, want the trending result", cards)
	}
}

func TestService_RefreshRecommended_UsesLastSearch(t *testing.T) {
	resolver := &fakeResolver{
		movies: map[string]*omdb.Movie{
			"Arrival": testMovie("Arrival", "116 min", 7.9),
		},
		entries: []omdb.SearchEntry{{Title: "Arrival"}},
	}
	suggester := &fakeSuggester{titles: []string{"Interstellar", "Arrival"}}
	svc := NewService(suggester, resolver, zerolog.Nop())

	if _, err := svc.Search(context.Background(), "thoughtful sci-fi"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if err := svc.RefreshRecommended(context.Background()); err != nil {
		t.Fatalf("RefreshRecommended() error = %v", err)
	}
	if resolver.lastQuery != "Arrival" {
		t.Errorf("refresh query = %q, want last suggested title %q", resolver.lastQuery, "Arrival")
	}
}

func TestService_RefreshRecommended_LimitsTrending(t *testing.T) {
	entries := make([]omdb.SearchEntry, 0, 10)
	movies := make(map[string]*omdb.Movie, 10)
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		entries = append(entries, omdb.SearchEntry{Title: title})
		movies[title] = testMovie(title, "100 min", 7.0)
	}
	resolver := &fakeResolver{movies: movies, entries: entries}
	svc := NewService(&fakeSuggester{}, resolver, zerolog.Nop())

	if err := svc.RefreshRecommended(context.Background()); err != nil {
		t.Fatalf("RefreshRecommended() error = %v", err)
	}

	cards := svc.Recommended(context.Background())
	if len(cards) != 8 {
		t.Errorf("Recommended() len = %d, want 8", len(cards))
	}
}

func TestService_Recommended_RefreshesWhenEmpty(t *testing.T) {
	resolver := &fakeResolver{
		movies:  map[string]*omdb.Movie{"Inception": testMovie("Inception", "148 min", 8.8)},
		entries: []omdb.SearchEntry{{Title: "Inception"}},
	}
	svc := NewService(&fakeSuggester{}, resolver, zerolog.Nop())

	cards := svc.Recommended(context.Background())
	if len(cards) != 1 {
		t.Fatalf("Recommended() len = %d, want 1", len(cards))
	}
	if resolver.lastQuery != "avengers" {
		t.Errorf("lazy refresh query = %q, want %q", resolver.lastQuery, "avengers")
	}
}

func TestService_Recommended_SearchFailureReturnsEmpty(t *testing.T) {
	resolver := &fakeResolver{searchErr: errors.New("upstream down")}
	svc := NewService(&fakeSuggester{}, resolver, zerolog.Nop())

	cards := svc.Recommended(context.Background())
	if len(cards) != 0 {
		t.Errorf("Recommended() len = %d, want 0", len(cards))
	}
}
