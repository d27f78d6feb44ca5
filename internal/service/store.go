package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/mwhite7112/woodpantry-recipes/internal/db"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

// StoredRecipe is a persisted pipeline result. Rows are immutable once created.
type StoredRecipe struct {
	ID         int64          `json:"id"`
	RecipeName string         `json:"recipe_name"`
	Payload    recipe.Payload `json:"recipe_payload"`
	SourceURL  string         `json:"source_url,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// RecipeStore persists recipes and answers lookups by id and name.
type RecipeStore struct {
	q db.Querier
}

func NewRecipeStore(q db.Querier) *RecipeStore {
	return &RecipeStore{q: q}
}

// Create persists payload under name and returns the new id. The id comes from the
// database sequence, so concurrent creates never share one.
func (s *RecipeStore) Create(ctx context.Context, name string, payload recipe.Payload, sourceURL string) (int64, error) {
	name = stripNUL(name)
	if name == "" {
		name = recipe.UnknownName
	}
	body, err := json.Marshal(payload.WithoutNUL())
	if err != nil {
		return 0, &StoreError{Op: "encode payload", Err: err}
	}

	row, err := s.q.CreateRecipe(ctx, db.CreateRecipeParams{
		RecipeName:       name,
		RecipeNameFolded: db.FoldName(name),
		RecipePayload:    body,
		SourceURL:        sql.NullString{String: stripNUL(sourceURL), Valid: sourceURL != ""},
	})
	if err != nil {
		return 0, &StoreError{Op: "create", Err: err}
	}
	if row.ID <= 0 {
		return 0, &StoreError{Op: "create", Err: errors.New("database returned no id")}
	}
	return row.ID, nil
}

// Get returns the recipe with id, or ErrNotFound.
func (s *RecipeStore) Get(ctx context.Context, id int64) (StoredRecipe, error) {
	row, err := s.q.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredRecipe{}, ErrNotFound
		}
		return StoredRecipe{}, &StoreError{Op: "get", Err: err}
	}
	return toStoredRecipe(row)
}

// Search returns recipes whose name contains substring, ignoring case (Unicode
// folding), newest first. An empty substring lists everything.
func (s *RecipeStore) Search(ctx context.Context, substring string) ([]StoredRecipe, error) {
	if substring == "" {
		return s.ListAll(ctx)
	}
	rows, err := s.q.SearchRecipesByName(ctx, "%"+escapeLike(db.FoldName(substring))+"%")
	if err != nil {
		return nil, &StoreError{Op: "search", Err: err}
	}
	return toStoredRecipes(rows)
}

// ListAll returns every recipe, newest first.
func (s *RecipeStore) ListAll(ctx context.Context) ([]StoredRecipe, error) {
	rows, err := s.q.ListRecipes(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return toStoredRecipes(rows)
}

// Postgres text and jsonb cannot hold NUL.
func stripNUL(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toStoredRecipe(row db.Recipe) (StoredRecipe, error) {
	var payload recipe.Payload
	if err := json.Unmarshal(row.RecipePayload, &payload); err != nil {
		return StoredRecipe{}, &StoreError{Op: "decode payload", Err: err}
	}
	return StoredRecipe{
		ID:         row.ID,
		RecipeName: row.RecipeName,
		Payload:    payload,
		SourceURL:  row.SourceURL.String,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func toStoredRecipes(rows []db.Recipe) ([]StoredRecipe, error) {
	out := make([]StoredRecipe, 0, len(rows))
	for _, row := range rows {
		r, err := toStoredRecipe(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
