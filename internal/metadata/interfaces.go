package metadata

import (
	"context"

	"github.com/cinemood/cinemood/internal/metadata/omdb"
)

// OMDBClient is the provider interface the service depends on, implemented
// by the real omdb client and by the mock package.
type OMDBClient interface {
	Name() string
	IsConfigured() bool
	GetByTitle(ctx context.Context, title string) (*omdb.Movie, error)
	Search(ctx context.Context, query string) ([]omdb.SearchEntry, error)
}
