// Package suggest turns free-text mood/theme descriptions into candidate
// movie titles through a generative-text provider.
package suggest

import (
	"context"
	"errors"
	"fmt"
)

// MaxTitles caps how many titles one request yields.
const MaxTitles = 8

// ErrNoSuggestions reports that the provider returned nothing usable.
// Callers degrade to an empty result rather than failing the request.
var ErrNoSuggestions = errors.New("no movie suggestions available")

// Provider suggests movie titles from a free-text description.
type Provider interface {
	Name() string
	SuggestTitles(ctx context.Context, freeText string) ([]string, error)
}

// Prompt builds the instruction sent to the text model for a user query.
func Prompt(freeText string) string {
	return fmt.Sprintf(
		"You are a movie recommendation expert. Based on this user input: %q, "+
			"suggest exactly %d popular movie titles that match this mood, feeling, "+
			"situation, theme, actor, or description. Output ONLY the movie titles "+
			"separated by commas. No numbering, no explanations, just: Movie1, Movie2, Movie3, etc.",
		freeText, MaxTitles)
}
