package service

import (
	"errors"
	"fmt"

	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

// ErrNotFound is returned when a stored recipe does not exist.
var ErrNotFound = errors.New("recipe not found")

// ExtractionError means text could not be turned into a recipe. Err carries the
// detail; when validation failed it wraps a *recipe.ValidationError.
type ExtractionError struct {
	Input string
	Err   error
	// Cached is set when the failure was replayed from the extraction cache.
	Cached bool
}

func (e *ExtractionError) Error() string {
	return "extract recipe: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Envelope is the persisted form of the failure.
func (e *ExtractionError) Envelope() recipe.ErrorEnvelope {
	return recipe.ErrorEnvelope{Error: e.Err.Error(), Description: e.Input}
}

func extractionErrorFromEnvelope(env recipe.ErrorEnvelope) *ExtractionError {
	return &ExtractionError{Input: env.Description, Err: errors.New(env.Error), Cached: true}
}

// StoreError wraps a persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("recipe store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
