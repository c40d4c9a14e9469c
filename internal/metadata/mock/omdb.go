// Package mock provides a canned OMDb client for developer mode and tests.
package mock

import (
	"context"
	"strings"

	"github.com/cinemood/cinemood/internal/metadata/omdb"
)

// OMDBClient serves canned responses without touching the network.
type OMDBClient struct{}

// NewOMDBClient creates a new mock OMDb client.
func NewOMDBClient() *OMDBClient {
	return &OMDBClient{}
}

func (c *OMDBClient) Name() string {
	return "omdb-mock"
}

func (c *OMDBClient) IsConfigured() bool {
	return true
}

func (c *OMDBClient) GetByTitle(_ context.Context, title string) (*omdb.Movie, error) {
	for _, movie := range mockMovies {
		if strings.EqualFold(movie.Title, title) {
			m := movie
			return &m, nil
		}
	}
	return nil, omdb.ErrNotFound
}

func (c *OMDBClient) Search(_ context.Context, query string) ([]omdb.SearchEntry, error) {
	query = strings.ToLower(query)
	var entries []omdb.SearchEntry
	for _, movie := range mockMovies {
		if strings.Contains(strings.ToLower(movie.Title), query) {
			entries = append(entries, omdb.SearchEntry{
				Title:  movie.Title,
				Year:   movie.Year,
				ImdbID: movie.ImdbID,
				Type:   movie.Type,
				Poster: movie.Poster,
			})
		}
	}
	if len(entries) == 0 {
		return nil, omdb.ErrNotFound
	}
	return entries, nil
}

var mockMovies = []omdb.Movie{
	{
		ImdbID:     "tt0133093",
		Title:      "The Matrix",
		Year:       "1999",
		Runtime:    "136 min",
		Genre:      "Action, Sci-Fi",
		Plot:       "A computer hacker learns about the true nature of reality.",
		Poster:     "N/A",
		ImdbRating: 8.7,
		Type:       "movie",
	},
	{
		ImdbID:     "tt1375666",
		Title:      "Inception",
		Year:       "2010",
		Runtime:    "148 min",
		Genre:      "Action, Adventure, Sci-Fi",
		Plot:       "A thief steals corporate secrets through dream-sharing technology.",
		Poster:     "N/A",
		ImdbRating: 8.8,
		Type:       "movie",
	},
	{
		ImdbID:     "tt4154796",
		Title:      "Avengers: Endgame",
		Year:       "2019",
		Runtime:    "181 min",
		Genre:      "Action, Adventure, Drama",
		Plot:       "The Avengers assemble once more to reverse Thanos' actions.",
		Poster:     "N/A",
		ImdbRating: 8.4,
		Type:       "movie",
	},
	{
		ImdbID:     "tt2543164",
		Title:      "Arrival",
		Year:       "2016",
		Runtime:    "116 min",
		Genre:      "Drama, Sci-Fi",
		Plot:       "A linguist works with the military to communicate with alien lifeforms.",
		Poster:     "N/A",
		ImdbRating: 7.9,
		Type:       "movie",
	},
	{
		ImdbID:     "tt0109830",
		Title:      "Forrest Gump",
		Year:       "1994",
		Runtime:    "142 min",
		Genre:      "Drama, Romance",
		Plot:       "The story of a man with a low IQ who accomplished great things.",
		Poster:     "N/A",
		ImdbRating: 8.8,
		Type:       "movie",
	},
}
