package db

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Recipe struct {
	ID            int64           `json:"id"`
	RecipeName    string          `json:"recipe_name"`
	RecipePayload json.RawMessage `json:"recipe_payload"`
	SourceURL     sql.NullString  `json:"source_url"`
	CreatedAt     time.Time       `json:"created_at"`
}
