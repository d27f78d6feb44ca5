package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mwhite7112/woodpantry-recipes/internal/cache"
	"github.com/mwhite7112/woodpantry-recipes/internal/clients"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

const extractInstruction = "Extract the recipe information."

// RecipeExtractor turns caption text into a StructuredRecipe, remembering every
// outcome (success or failure) in the extraction cache so identical text is never
// sent to the model twice.
type RecipeExtractor struct {
	cache   cache.Cache
	llm     LLMClient
	timeout time.Duration
}

// NewRecipeExtractor builds an extractor. A zero timeout leaves the model call
// bounded only by the caller's context.
func NewRecipeExtractor(c cache.Cache, llm LLMClient, timeout time.Duration) *RecipeExtractor {
	return &RecipeExtractor{cache: c, llm: llm, timeout: timeout}
}

// Extract returns the recipe for text, or an *ExtractionError. Failures are cached
// too, except when the caller's own context was cancelled.
func (x *RecipeExtractor) Extract(ctx context.Context, text string) (recipe.StructuredRecipe, error) {
	entry, hit, err := x.cache.Get(ctx, text)
	if err != nil {
		slog.Warn("extraction cache read failed, treating as miss", "error", err)
	}
	if hit && entry.Recipe == nil && entry.Error == nil {
		slog.Warn("extraction cache returned an empty entry, treating as miss")
		hit = false
	}
	if hit {
		slog.Debug("extraction cache hit", "input_len", len(text))
		if entry.Recipe != nil {
			return *entry.Recipe, nil
		}
		return recipe.StructuredRecipe{}, extractionErrorFromEnvelope(*entry.Error)
	}

	slog.Info("LLM extraction starting", "input_len", len(text))
	r, err := x.extractWithLLM(ctx, text)
	if err != nil {
		xerr := &ExtractionError{Input: text, Err: err}
		if ctx.Err() != nil {
			slog.Warn("LLM extraction abandoned by caller", "error", ctx.Err())
			return recipe.StructuredRecipe{}, xerr
		}
		slog.Warn("LLM extraction failed", "input_len", len(text), "error", err)
		env := xerr.Envelope()
		x.store(ctx, text, cache.Entry{Error: &env})
		return recipe.StructuredRecipe{}, xerr
	}

	slog.Info("LLM extraction complete", "recipe", r.Name, "ingredients", len(r.Ingredients), "steps", len(r.Instructions))
	x.store(ctx, text, cache.Entry{Recipe: &r})
	return r, nil
}

func (x *RecipeExtractor) extractWithLLM(ctx context.Context, text string) (recipe.StructuredRecipe, error) {
	callCtx := ctx
	if x.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	raw, err := x.llm.Complete(callCtx, clients.CompletionRequest{
		Instruction: extractInstruction,
		Input:       text,
		SchemaName:  recipe.SchemaName,
		Schema:      recipe.OutputSchema(),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return recipe.StructuredRecipe{}, fmt.Errorf("llm call timed out after %s: %w", x.timeout, err)
		}
		return recipe.StructuredRecipe{}, fmt.Errorf("llm call: %w", err)
	}

	return recipe.Validate(raw)
}

func (x *RecipeExtractor) store(ctx context.Context, text string, entry cache.Entry) {
	// the result is already computed; a dead request context must not lose it
	if err := x.cache.Put(context.WithoutCancel(ctx), text, entry); err != nil {
		slog.Warn("extraction cache write failed", "error", err)
	}
}
