package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mwhite7112/woodpantry-recipes/internal/events"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

// Submission is the outcome of one pipeline run.
type Submission struct {
	ID         int64  `json:"id"`
	RecipeName string `json:"recipe_name"`
	Extracted  bool   `json:"extracted"`
	// Error holds the extraction failure message when Extracted is false.
	Error string `json:"error,omitempty"`
}

// Pipeline runs fetch -> extract -> persist for one submission.
type Pipeline struct {
	fetcher   CaptionFetcher
	extractor *RecipeExtractor
	store     *RecipeStore
	publisher EventPublisher
}

// NewPipeline wires the pipeline. publisher may be nil.
func NewPipeline(fetcher CaptionFetcher, extractor *RecipeExtractor, store *RecipeStore, publisher EventPublisher) *Pipeline {
	return &Pipeline{fetcher: fetcher, extractor: extractor, store: store, publisher: publisher}
}

// SubmitURL fetches the caption at url and runs it through the pipeline. Fetch
// failures are returned as-is and nothing is stored.
func (p *Pipeline) SubmitURL(ctx context.Context, url string) (Submission, error) {
	caption, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return Submission{}, err
	}
	slog.Info("caption fetched", "url", url, "caption_len", len(caption))
	return p.SubmitText(ctx, caption, url)
}

// SubmitText extracts and stores text. A failed extraction is stored as an error
// envelope so the submission stays viewable; only store failures return an error.
func (p *Pipeline) SubmitText(ctx context.Context, text, sourceURL string) (Submission, error) {
	var payload recipe.Payload
	var extractErr string

	r, err := p.extractor.Extract(ctx, text)
	if err != nil {
		var xerr *ExtractionError
		if !errors.As(err, &xerr) {
			return Submission{}, err
		}
		env := xerr.Envelope()
		payload = recipe.Payload{Envelope: &env}
		extractErr = xerr.Err.Error()
	} else {
		payload = recipe.Payload{Recipe: &r}
	}

	name := payload.Name()
	id, err := p.store.Create(ctx, name, payload, sourceURL)
	if err != nil {
		return Submission{}, err
	}
	slog.Info("recipe stored", "id", id, "recipe_name", name, "extracted", payload.Extracted())

	if p.publisher != nil {
		if err := p.publisher.PublishRecipeCreated(ctx, events.RecipeCreated{
			RecipeID:   id,
			RecipeName: name,
			Extracted:  payload.Extracted(),
		}); err != nil {
			slog.Warn("publish recipe.created failed", "id", id, "error", err)
		}
	}

	return Submission{ID: id, RecipeName: name, Extracted: payload.Extracted(), Error: extractErr}, nil
}
