// Package openai implements title suggestion over the OpenAI chat API.
package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/cinemood/cinemood/internal/suggest"
)

// Provider implements suggest.Provider for OpenAI.
type Provider struct {
	client *openai.Client
	model  string
}

// New creates a new OpenAI provider.
func New(apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Provider{client: openai.NewClient(apiKey), model: model}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "openai"
}

// SuggestTitles asks the model for movie titles matching freeText.
func (p *Provider) SuggestTitles(ctx context.Context, freeText string) ([]string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: suggest.Prompt(freeText),
			},
		},
		MaxTokens:   256,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, suggest.ErrNoSuggestions
	}

	titles := suggest.ParseTitles(resp.Choices[0].Message.Content)
	if len(titles) == 0 {
		return nil, suggest.ErrNoSuggestions
	}
	return titles, nil
}
