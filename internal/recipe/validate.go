package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kaptinlin/jsonrepair"
)

// FieldError names one offending field and what was wrong with it.
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// ValidationError lists every field of a payload that violated the recipe shape.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Problem)
	}
	return "invalid recipe: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the offending fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

const (
	problemMissing   = "missing"
	problemWrongType = "wrong type"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate turns raw extraction output into a StructuredRecipe. It never returns a
// partial recipe: either every field checks out or a *ValidationError lists each
// offending field. Slightly malformed JSON is repaired before giving up.
func Validate(payload []byte) (StructuredRecipe, error) {
	raw, err := decodeLenient(payload)
	if err != nil {
		return StructuredRecipe{}, &ValidationError{Fields: []FieldError{{Field: "$", Problem: err.Error()}}}
	}

	c := &collector{seen: map[string]bool{}}
	r := c.recipe(raw)

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return StructuredRecipe{}, fmt.Errorf("validate recipe: %w", err)
		}
		for _, fe := range verrs {
			c.add(fieldPath(fe.Namespace()), constraintProblem(fe))
		}
	}

	if len(c.errs) > 0 {
		return StructuredRecipe{}, &ValidationError{Fields: c.errs}
	}
	return r, nil
}

func decodeLenient(payload []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(payload, &raw); err == nil {
		return raw, nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(string(payload))
	if repairErr != nil {
		return nil, fmt.Errorf("unparsable payload: %w", repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		return nil, fmt.Errorf("unparsable payload: %w", err)
	}
	return raw, nil
}

// collector walks the decoded payload, building the recipe from the parts that
// have the right shape and recording the parts that don't.
type collector struct {
	errs []FieldError
	seen map[string]bool
}

func (c *collector) add(field, problem string) {
	if c.seen[field] {
		return
	}
	c.seen[field] = true
	c.errs = append(c.errs, FieldError{Field: field, Problem: problem})
}

func (c *collector) recipe(raw any) StructuredRecipe {
	var r StructuredRecipe
	obj, ok := raw.(map[string]any)
	if !ok {
		c.add("$", "expected an object")
		return r
	}

	r.Name, _ = c.str(obj, "name", "name")

	if v, ok := c.field(obj, "ingredients", "ingredients"); ok {
		items, isArr := v.([]any)
		if !isArr {
			c.add("ingredients", problemWrongType)
		} else {
			r.Ingredients = make([]Ingredient, 0, len(items))
			for i, item := range items {
				r.Ingredients = append(r.Ingredients, c.ingredient(item, fmt.Sprintf("ingredients[%d]", i)))
			}
		}
	}

	if v, ok := c.field(obj, "instructions", "instructions"); ok {
		steps, isArr := v.([]any)
		if !isArr {
			c.add("instructions", problemWrongType)
		} else {
			r.Instructions = make([]string, 0, len(steps))
			for i, step := range steps {
				s, isStr := step.(string)
				if !isStr {
					c.add(fmt.Sprintf("instructions[%d]", i), problemWrongType)
					continue
				}
				r.Instructions = append(r.Instructions, s)
			}
		}
	}
	return r
}

func (c *collector) ingredient(raw any, path string) Ingredient {
	var ing Ingredient
	obj, ok := raw.(map[string]any)
	if !ok {
		c.add(path, "expected an object")
		return ing
	}
	ing.Name, _ = c.str(obj, "name", path+".name")
	ing.Unit, _ = c.str(obj, "unit", path+".unit")

	if v, ok := c.field(obj, "quantity", path+".quantity"); ok {
		switch q := v.(type) {
		case float64:
			ing.Quantity = q
		case string:
			// models sometimes quote numbers
			f, err := strconv.ParseFloat(strings.TrimSpace(q), 64)
			// ParseFloat accepts "Inf" and "NaN", which JSON cannot carry
			if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
				c.add(path+".quantity", problemWrongType)
			} else {
				ing.Quantity = f
			}
		default:
			c.add(path+".quantity", problemWrongType)
		}
	}

	if v, ok := c.field(obj, "optional", path+".optional"); ok {
		b, isBool := v.(bool)
		if !isBool {
			c.add(path+".optional", problemWrongType)
		}
		ing.Optional = b
	}
	return ing
}

// field returns obj[key], recording a missing error when absent or null.
func (c *collector) field(obj map[string]any, key, path string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		c.add(path, problemMissing)
		return nil, false
	}
	return v, true
}

func (c *collector) str(obj map[string]any, key, path string) (string, bool) {
	v, ok := c.field(obj, key, path)
	if !ok {
		return "", false
	}
	s, isStr := v.(string)
	if !isStr {
		c.add(path, problemWrongType)
		return "", false
	}
	return s, true
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func constraintProblem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return "must be >= " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
