package recipe

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	payload := `{
		"name": "Test Bake",
		"ingredients": [
			{"name": "flour", "quantity": 2, "unit": "cups", "optional": false},
			{"name": "egg", "quantity": 1, "unit": "", "optional": false}
		],
		"instructions": ["Mix and bake at 350F for 20 minutes."]
	}`

	r, err := Validate([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, StructuredRecipe{
		Name: "Test Bake",
		Ingredients: []Ingredient{
			{Name: "flour", Quantity: 2, Unit: "cups"},
			{Name: "egg", Quantity: 1, Unit: ""},
		},
		Instructions: []string{"Mix and bake at 350F for 20 minutes."},
	}, r)
	assert.False(t, r.IsDegenerate())
}

func TestValidate_MissingInstructions(t *testing.T) {
	t.Parallel()

	_, err := Validate([]byte(`{"name": "Toast", "ingredients": []}`))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("instructions"))
	assert.Contains(t, err.Error(), "instructions: missing")
}

func TestValidate_NegativeQuantity(t *testing.T) {
	t.Parallel()

	payload := `{
		"name": "Soup",
		"ingredients": [{"name": "water", "quantity": -1, "unit": "l", "optional": false}],
		"instructions": ["Boil."]
	}`

	_, err := Validate([]byte(payload))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("ingredients[0].quantity"))
	assert.Contains(t, err.Error(), "must be >= 0")
}

func TestValidate_EmptyInstructionsIsDegenerateButValid(t *testing.T) {
	t.Parallel()

	r, err := Validate([]byte(`{"name": "Snack", "ingredients": [], "instructions": []}`))
	require.NoError(t, err)
	assert.True(t, r.IsDegenerate())
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	t.Parallel()

	payload := `{
		"name": "",
		"ingredients": [
			{"name": "salt", "quantity": "a pinch", "unit": "", "optional": false},
			{"quantity": 1, "unit": "g", "optional": "no"}
		],
		"instructions": "stir"
	}`

	_, err := Validate([]byte(payload))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	for _, field := range []string{
		"name",
		"ingredients[0].quantity",
		"ingredients[1].name",
		"ingredients[1].optional",
		"instructions",
	} {
		assert.True(t, verr.Has(field), "expected %s to be reported", field)
	}
	assert.Len(t, verr.Fields, 5)
}

func TestValidate_Inputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{"empty payload", ``, "$"},
		{"top-level array", `[1, 2]`, "$"},
		{"null name", `{"name": null, "ingredients": [], "instructions": []}`, "name"},
		{"ingredient not an object", `{"name": "x", "ingredients": ["flour"], "instructions": []}`, "ingredients[0]"},
		{"non-string step", `{"name": "x", "ingredients": [], "instructions": ["mix", 2]}`, "instructions[1]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Validate([]byte(tc.payload))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tc.field), "fields: %v", verr.Fields)
		})
	}
}

func TestValidate_RepairsSloppyJSON(t *testing.T) {
	t.Parallel()

	payload := `{"name": "Tea", "ingredients": [{"name": "tea bag", "quantity": 1, "unit": "", "optional": false},], "instructions": ["Steep.",],}`

	r, err := Validate([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "Tea", r.Name)
	assert.Len(t, r.Ingredients, 1)
}

func TestValidate_CoercesQuotedQuantity(t *testing.T) {
	t.Parallel()

	payload := `{"name": "Rice", "ingredients": [{"name": "rice", "quantity": "1.5", "unit": "cup", "optional": false}], "instructions": ["Cook."]}`

	r, err := Validate([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1.5, r.Ingredients[0].Quantity)
}

func TestValidate_RejectsNonFiniteQuotedQuantity(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"Inf", "+Inf", "-Inf", "infinity", "NaN"} {
		payload := `{"name": "Rice", "ingredients": [{"name": "rice", "quantity": "` + q + `", "unit": "cup", "optional": false}], "instructions": ["Cook."]}`

		r, err := Validate([]byte(payload))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, q)
		assert.True(t, verr.Has("ingredients[0].quantity"), q)
		assert.Equal(t, StructuredRecipe{}, r, q)
	}
}

func TestStructuredRecipe_RoundTrip(t *testing.T) {
	t.Parallel()

	original := StructuredRecipe{
		Name: "Pancakes",
		Ingredients: []Ingredient{
			{Name: "flour", Quantity: 1.5, Unit: "cups"},
			{Name: "milk", Quantity: 250, Unit: "ml"},
			{Name: "blueberries", Quantity: 0.5, Unit: "cup", Optional: true},
		},
		Instructions: []string{
			"Whisk flour and milk.",
			"Rest the batter for 10 minutes.",
			"Fold in blueberries.",
			"Fry in a hot pan.",
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded StructuredRecipe
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)

	validated, err := Validate(data)
	require.NoError(t, err)
	assert.Equal(t, original, validated)
}

func TestStructuredRecipe_MarshalsEmptyListsAsArrays(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(StructuredRecipe{Name: "Water"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Water","ingredients":[],"instructions":[]}`, string(data))
}

func TestPayload_JSON(t *testing.T) {
	t.Parallel()

	env := Payload{Envelope: &ErrorEnvelope{Error: "boom", Description: "2 eggs"}}
	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom","description":"2 eggs"}`, string(data))
	assert.Equal(t, UnknownName, env.Name())
	assert.False(t, env.Extracted())

	var decoded Payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Envelope)
	assert.Nil(t, decoded.Recipe)
	assert.Equal(t, "2 eggs", decoded.Envelope.Description)

	rec := Payload{Recipe: &StructuredRecipe{Name: "Omelette", Instructions: []string{"Fry."}}}
	data, err = json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Recipe)
	assert.Equal(t, "Omelette", decoded.Name())
	assert.True(t, decoded.Extracted())

	_, err = json.Marshal(Payload{})
	assert.Error(t, err)
}

func TestPayload_WithoutNUL(t *testing.T) {
	t.Parallel()

	env := Payload{Envelope: &ErrorEnvelope{Error: "bad\x00", Description: "2 eggs\x00 and milk"}}
	clean := env.WithoutNUL()
	assert.Equal(t, "2 eggs and milk", clean.Envelope.Description)
	assert.Equal(t, "bad", clean.Envelope.Error)
	assert.Equal(t, "2 eggs\x00 and milk", env.Envelope.Description, "original left untouched")

	rec := Payload{Recipe: &StructuredRecipe{
		Name:         "Pan\x00cakes",
		Ingredients:  []Ingredient{{Name: "fl\x00our", Quantity: 1, Unit: "c\x00up"}},
		Instructions: []string{"Mi\x00x."},
	}}
	data, err := json.Marshal(rec.WithoutNUL())
	require.NoError(t, err)
	assert.NotContains(t, string(data), `\u0000`)
	assert.JSONEq(t, `{"name":"Pancakes","ingredients":[{"name":"flour","quantity":1,"unit":"cup","optional":false}],"instructions":["Mix."]}`, string(data))
	assert.Equal(t, "fl\x00our", rec.Recipe.Ingredients[0].Name)

	empty := Payload{Recipe: &StructuredRecipe{Name: "Water"}}.WithoutNUL()
	assert.Nil(t, empty.Recipe.Ingredients)
	assert.Nil(t, empty.Recipe.Instructions)
}

func TestOutputSchema_RequiresEveryField(t *testing.T) {
	t.Parallel()

	s := OutputSchema()
	assert.ElementsMatch(t, []string{"name", "ingredients", "instructions"}, s.Required)
	require.NotNil(t, s.Properties["ingredients"].Items)
	assert.ElementsMatch(t, []string{"name", "quantity", "unit", "optional"}, s.Properties["ingredients"].Items.Required)
	require.NotNil(t, s.AdditionalProperties)
	assert.False(t, *s.AdditionalProperties)
}
