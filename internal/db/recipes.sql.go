package db

import (
	"context"
	"database/sql"
	"encoding/json"
)

const createRecipe = `-- name: CreateRecipe :one
INSERT INTO recipes (recipe_name, recipe_name_folded, recipe_payload, source_url)
VALUES ($1, $2, $3, $4)
RETURNING id, recipe_name, recipe_payload, source_url, created_at
`

type CreateRecipeParams struct {
	RecipeName       string          `json:"recipe_name"`
	RecipeNameFolded string          `json:"recipe_name_folded"`
	RecipePayload    json.RawMessage `json:"recipe_payload"`
	SourceURL        sql.NullString  `json:"source_url"`
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error) {
	// lib/pq sends []byte as bytea; jsonb needs text
	row := q.db.QueryRowContext(ctx, createRecipe, arg.RecipeName, arg.RecipeNameFolded, string(arg.RecipePayload), arg.SourceURL)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.RecipeName,
		&i.RecipePayload,
		&i.SourceURL,
		&i.CreatedAt,
	)
	return i, err
}

const getRecipe = `-- name: GetRecipe :one
SELECT id, recipe_name, recipe_payload, source_url, created_at FROM recipes
WHERE id = $1
`

func (q *Queries) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	row := q.db.QueryRowContext(ctx, getRecipe, id)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.RecipeName,
		&i.RecipePayload,
		&i.SourceURL,
		&i.CreatedAt,
	)
	return i, err
}

const listRecipes = `-- name: ListRecipes :many
SELECT id, recipe_name, recipe_payload, source_url, created_at FROM recipes
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListRecipes(ctx context.Context) ([]Recipe, error) {
	rows, err := q.db.QueryContext(ctx, listRecipes)
	if err != nil {
		return nil, err
	}
	return scanRecipes(rows)
}

const searchRecipesByName = `-- name: SearchRecipesByName :many
SELECT id, recipe_name, recipe_payload, source_url, created_at FROM recipes
WHERE recipe_name_folded LIKE $1 ESCAPE '\'
ORDER BY created_at DESC, id DESC
`

func (q *Queries) SearchRecipesByName(ctx context.Context, pattern string) ([]Recipe, error) {
	rows, err := q.db.QueryContext(ctx, searchRecipesByName, pattern)
	if err != nil {
		return nil, err
	}
	return scanRecipes(rows)
}

func scanRecipes(rows *sql.Rows) ([]Recipe, error) {
	defer rows.Close()
	var items []Recipe
	for rows.Next() {
		var i Recipe
		if err := rows.Scan(
			&i.ID,
			&i.RecipeName,
			&i.RecipePayload,
			&i.SourceURL,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
