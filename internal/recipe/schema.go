package recipe

// Schema is the subset of JSON Schema needed to constrain model output.
type Schema struct {
	Type                 string             `json:"type"`
	Description          string             `json:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`
}

// SchemaName is the name sent alongside the schema in structured output requests.
const SchemaName = "structured_recipe"

// OutputSchema describes StructuredRecipe. Every property is required and no extra
// properties are allowed, which strict structured output demands.
func OutputSchema() *Schema {
	closed := false
	ingredient := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"name":     {Type: "string"},
			"quantity": {Type: "number", Description: "non-negative amount; 1 when not stated"},
			"unit":     {Type: "string", Description: "unit of measure, empty for countable items"},
			"optional": {Type: "boolean"},
		},
		Required:             []string{"name", "quantity", "unit", "optional"},
		AdditionalProperties: &closed,
	}
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"name":         {Type: "string"},
			"ingredients":  {Type: "array", Items: ingredient},
			"instructions": {Type: "array", Items: &Schema{Type: "string"}, Description: "steps in execution order"},
		},
		Required:             []string{"name", "ingredients", "instructions"},
		AdditionalProperties: &closed,
	}
}
