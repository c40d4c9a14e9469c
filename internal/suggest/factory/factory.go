// Package factory builds the configured suggestion provider.
package factory

import (
	"fmt"

	"github.com/cinemood/cinemood/internal/config"
	"github.com/cinemood/cinemood/internal/suggest"
	"github.com/cinemood/cinemood/internal/suggest/claude"
	"github.com/cinemood/cinemood/internal/suggest/openai"
)

// New creates a suggestion provider based on configuration. An empty
// provider name, or a provider with no API key, disables suggestions; the
// caller degrades gracefully.
func New(cfg config.SuggestConfig) (suggest.Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, nil
		}
		return openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case "claude":
		if cfg.Claude.APIKey == "" {
			return nil, nil
		}
		return claude.New(cfg.Claude.APIKey, cfg.Claude.Model)
	default:
		return nil, fmt.Errorf("unknown suggestion provider: %s", cfg.Provider)
	}
}
