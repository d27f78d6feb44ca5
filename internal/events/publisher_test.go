package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeCreatedEventPayload(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))
	event := newRecipeCreatedEvent(RecipeCreated{RecipeID: 42, RecipeName: "Banana Bread", Extracted: true}, now)

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "2025-03-04T04:06:07Z", decoded["timestamp"])
	assert.Equal(t, float64(42), decoded["recipe_id"])
	assert.Equal(t, "Banana Bread", decoded["recipe_name"])
	assert.Equal(t, true, decoded["extracted"])

	id, err := uuid.Parse(decoded["event_id"].(string))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestRecipeCreatedEventIDsAreUnique(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a := newRecipeCreatedEvent(RecipeCreated{RecipeID: 1}, now)
	b := newRecipeCreatedEvent(RecipeCreated{RecipeID: 1}, now)
	assert.NotEqual(t, a.EventID, b.EventID)
}
