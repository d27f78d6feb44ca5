package db

import (
	"context"
)

// Querier is implemented by the Postgres Queries and the SQLite store.
type Querier interface {
	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
	// SearchRecipesByName matches a LIKE pattern against recipe_name_folded, with
	// backslash as the escape character. The pattern must already be folded
	// with FoldName.
	SearchRecipesByName(ctx context.Context, pattern string) ([]Recipe, error)
}

var _ Querier = (*Queries)(nil)
