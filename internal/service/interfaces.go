package service

import (
	"context"

	"github.com/mwhite7112/woodpantry-recipes/internal/clients"
	"github.com/mwhite7112/woodpantry-recipes/internal/events"
)

// LLMClient abstracts the language-model capability for testing.
type LLMClient interface {
	Complete(ctx context.Context, req clients.CompletionRequest) ([]byte, error)
}

// CaptionFetcher abstracts the source page fetcher for testing.
type CaptionFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// EventPublisher abstracts the recipe.created publisher.
type EventPublisher interface {
	PublishRecipeCreated(ctx context.Context, e events.RecipeCreated) error
}
