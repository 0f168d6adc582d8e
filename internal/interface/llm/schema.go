package llm

import (
	"fmt"

	"travel-agent-service/internal/domain/entity"

	"google.golang.org/genai"
)

func describe(f entity.SchemaField) string {
	if f.Format == "" {
		return f.Description
	}
	if f.Description == "" {
		return "format " + f.Format
	}
	return fmt.Sprintf("%s (format %s)", f.Description, f.Format)
}

func requiredFields(schema *entity.OutputSchema) []string {
	required := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// toGenaiSchema converts an output schema into a Gemini response schema.
// Gemini accepts only a few string formats, so the format is folded into
// the description.
func toGenaiSchema(schema *entity.OutputSchema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(schema.Fields))
	order := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		s := &genai.Schema{Description: describe(f), Nullable: genai.Ptr(!f.Required)}
		switch f.Type {
		case entity.FieldNumber:
			s.Type = genai.TypeNumber
		case entity.FieldStringList:
			s.Type = genai.TypeArray
			s.Items = &genai.Schema{Type: genai.TypeString}
		default:
			s.Type = genai.TypeString
		}
		props[f.Name] = s
		order = append(order, f.Name)
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Description:      schema.Description,
		Properties:       props,
		PropertyOrdering: order,
		Required:         requiredFields(schema),
	}
}

// toJSONSchema converts an output schema into a plain JSON Schema document
func toJSONSchema(schema *entity.OutputSchema) map[string]any {
	props := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		var p map[string]any
		switch f.Type {
		case entity.FieldNumber:
			p = map[string]any{"type": "number"}
		case entity.FieldStringList:
			p = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
		default:
			p = map[string]any{"type": "string"}
			if f.Format != "" {
				p["format"] = f.Format
			}
		}
		if f.Description != "" {
			p["description"] = f.Description
		}
		props[f.Name] = p
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   requiredFields(schema),
	}
}
