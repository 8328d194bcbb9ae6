package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindDiscovery, "discovery"},
		{KindRead, "read"},
		{KindParse, "parse"},
		{KindSchemaVersion, "schema_version"},
		{KindField, "field"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestProblem_Lines(t *testing.T) {
	t.Run("message problem", func(t *testing.T) {
		p := Problem{Kind: KindParse, File: "a.yml", Message: "YAML parse error in a.yml: boom"}
		assert.Equal(t, []string{"YAML parse error in a.yml: boom"}, p.Lines())
	})

	t.Run("field problem", func(t *testing.T) {
		p := Problem{
			Kind:  KindField,
			File:  "models/orders.yml",
			Model: "orders",
			Fields: []FieldError{
				{Field: "description", Path: "description", Category: CategoryMissing, Message: "Field required"},
			},
		}
		assert.Equal(t, []string{
			"ERROR in model: orders in file: models/orders.yml",
			`- Field "description": missing`,
			"\t- Field required",
		}, p.Lines())
	})
}

func TestProblem_JSON(t *testing.T) {
	p := Problem{Kind: KindSchemaVersion, File: "a.yml", Message: "m"}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{"kind":"schema_version","file":"a.yml","message":"m"}`, string(data))
}
