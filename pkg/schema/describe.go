package schema

import (
	"fmt"
	"strings"
)

// FieldSpec is one row of the schema guide.
type FieldSpec struct {
	Path       string `json:"path"`
	Type       string `json:"type"`
	Required   bool   `json:"required"`
	Constraint string `json:"constraint,omitempty"`
}

// Describe flattens ModelFields into the rows shown to operators after a
// failed run.
func Describe() []FieldSpec {
	return describe("", ModelFields)
}

func describe(prefix string, fields []Field) []FieldSpec {
	var specs []FieldSpec
	for _, f := range fields {
		path := joinPath(prefix, f.Name)
		specs = append(specs, FieldSpec{
			Path:       path,
			Type:       f.Type.String(),
			Required:   f.Required,
			Constraint: constraint(f),
		})
		if len(f.Fields) > 0 {
			specs = append(specs, describe(path, f.Fields)...)
		}
		if len(f.Elem) > 0 {
			specs = append(specs, describe(path+"[]", f.Elem)...)
		}
	}
	return specs
}

func constraint(f Field) string {
	var parts []string
	if f.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min length %d", f.MinLength))
	}
	if f.Equals != nil {
		parts = append(parts, fmt.Sprintf("must be %v", f.Equals))
	}
	if f.Note != "" {
		parts = append(parts, f.Note)
	}
	return strings.Join(parts, ", ")
}
