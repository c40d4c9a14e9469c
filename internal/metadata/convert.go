package metadata

import (
	"github.com/cinemood/cinemood/internal/metadata/omdb"
	"github.com/cinemood/cinemood/internal/watchlist"
)

// ToWatchlistItem converts a resolved movie record to a watchlist item. The
// imdb ID becomes the item's identity; display strings, including an "N/A"
// poster sentinel, are passed through untouched.
func ToWatchlistItem(movie *omdb.Movie) watchlist.Item {
	return watchlist.Item{
		ID:      movie.ImdbID,
		Title:   movie.Title,
		Poster:  movie.Poster,
		Year:    movie.Year,
		Runtime: movie.Runtime,
		Rating:  watchlist.Rating(movie.ImdbRating),
	}
}
