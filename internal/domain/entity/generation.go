package entity

// FieldType is the JSON type of a schema field
type FieldType string

const (
	FieldString     FieldType = "string"
	FieldNumber     FieldType = "number"
	FieldStringList FieldType = "string_list"
)

// SchemaField describes one property of a structured generation output
type SchemaField struct {
	Name        string
	Type        FieldType
	Format      string
	Description string
	Required    bool
}

// OutputSchema describes the object a structured generation must return
type OutputSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// GenerationRequest is the input to a generation backend
type GenerationRequest struct {
	System      string
	Prompt      string
	Schema      *OutputSchema
	Temperature *float32
}
