package core

import "fmt"

// =============================================================================
// Kind
// =============================================================================

// Kind classifies a validation problem.
type Kind int

// Problem kinds, in the order they can occur during a run.
const (
	// KindDiscovery means a model definition file has no paired documentation file.
	KindDiscovery Kind = iota
	// KindRead means a documentation file could not be read.
	KindRead
	// KindParse means a documentation file is not valid YAML.
	KindParse
	// KindSchemaVersion means the top-level version marker is missing or not 2.
	KindSchemaVersion
	// KindField means one or more fields of a model declaration failed validation.
	KindField
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDiscovery:
		return "discovery"
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	case KindSchemaVersion:
		return "schema_version"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// =============================================================================
// Category
// =============================================================================

// Category names the way a single field failed.
type Category string

// Field failure categories.
const (
	CategoryMissing        Category = "missing"
	CategoryStringType     Category = "string_type"
	CategoryStringTooShort Category = "string_too_short"
	CategoryBoolType       Category = "bool_type"
	CategoryMappingType    Category = "dict_type"
	CategoryListType       Category = "list_type"
	CategoryValueError     Category = "value_error"
	CategoryExtraForbidden Category = "extra_forbidden"
	CategoryModelType      Category = "model_type"
)

// FieldError is one failed field of a model declaration.
type FieldError struct {
	// Field is the top-level model field, e.g. "columns".
	Field string `json:"field"`
	// Path locates the failing value, e.g. "columns[2].description".
	Path     string   `json:"path"`
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// =============================================================================
// Problem
// =============================================================================

// Problem is a single reported validation finding.
type Problem struct {
	Kind    Kind         `json:"kind"`
	File    string       `json:"file"`
	Model   string       `json:"model,omitempty"`
	Message string       `json:"message,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// Lines renders the problem as the human-readable report lines.
// Field problems expand to a header line followed by two lines per failed field.
func (p Problem) Lines() []string {
	if p.Kind != KindField {
		return []string{p.Message}
	}
	lines := make([]string, 0, 1+2*len(p.Fields))
	lines = append(lines, fmt.Sprintf("ERROR in model: %s in file: %s", p.Model, p.File))
	for _, f := range p.Fields {
		lines = append(lines,
			fmt.Sprintf("- Field %q: %s", f.Path, f.Category),
			fmt.Sprintf("\t- %s", f.Message),
		)
	}
	return lines
}
