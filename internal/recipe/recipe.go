package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnknownName is stored as the recipe name when extraction produced no recipe.
const UnknownName = "Unknown Recipe"

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Optional bool    `json:"optional"`
}

// StructuredRecipe is the validated output of an extraction.
type StructuredRecipe struct {
	Name         string       `json:"name" validate:"required"`
	Ingredients  []Ingredient `json:"ingredients" validate:"dive"`
	Instructions []string     `json:"instructions"`
}

// IsDegenerate reports whether the recipe has no instruction steps. Such a recipe
// is valid but usually means the caption held no method.
func (r StructuredRecipe) IsDegenerate() bool {
	return len(r.Instructions) == 0
}

// MarshalJSON keeps empty lists as [] rather than null.
func (r StructuredRecipe) MarshalJSON() ([]byte, error) {
	type plain StructuredRecipe
	p := plain(r)
	if p.Ingredients == nil {
		p.Ingredients = []Ingredient{}
	}
	if p.Instructions == nil {
		p.Instructions = []string{}
	}
	return json.Marshal(p)
}

// ErrorEnvelope records that an input failed to produce a recipe.
type ErrorEnvelope struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

// Payload is what a stored recipe row holds: a recipe or an error envelope.
// Exactly one of the two is set.
type Payload struct {
	Recipe   *StructuredRecipe
	Envelope *ErrorEnvelope
}

// Name returns the denormalized name for the payload.
func (p Payload) Name() string {
	if p.Recipe != nil && p.Recipe.Name != "" {
		return p.Recipe.Name
	}
	return UnknownName
}

// Extracted reports whether the payload holds a recipe.
func (p Payload) Extracted() bool {
	return p.Recipe != nil
}

func (p Payload) MarshalJSON() ([]byte, error) {
	switch {
	case p.Recipe != nil:
		return json.Marshal(p.Recipe)
	case p.Envelope != nil:
		return json.Marshal(p.Envelope)
	default:
		return nil, fmt.Errorf("empty recipe payload")
	}
}

// UnmarshalJSON decodes either shape; a top-level "error" key marks an envelope.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if _, ok := fields["error"]; ok {
		var env ErrorEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return err
		}
		*p = Payload{Envelope: &env}
		return nil
	}
	var r StructuredRecipe
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*p = Payload{Recipe: &r}
	return nil
}

// WithoutNUL returns a copy of p with NUL characters removed from every string.
func (p Payload) WithoutNUL() Payload {
	strip := func(s string) string { return strings.ReplaceAll(s, "\x00", "") }

	var out Payload
	if p.Recipe != nil {
		r := StructuredRecipe{Name: strip(p.Recipe.Name)}
		if p.Recipe.Ingredients != nil {
			r.Ingredients = make([]Ingredient, len(p.Recipe.Ingredients))
			for i, ing := range p.Recipe.Ingredients {
				ing.Name = strip(ing.Name)
				ing.Unit = strip(ing.Unit)
				r.Ingredients[i] = ing
			}
		}
		if p.Recipe.Instructions != nil {
			r.Instructions = make([]string, len(p.Recipe.Instructions))
			for i, step := range p.Recipe.Instructions {
				r.Instructions[i] = strip(step)
			}
		}
		out.Recipe = &r
	}
	if p.Envelope != nil {
		out.Envelope = &ErrorEnvelope{Error: strip(p.Envelope.Error), Description: strip(p.Envelope.Description)}
	}
	return out
}
