package schema

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Model is the typed form of a model declaration that passed validation.
type Model struct {
	Name           string         `mapstructure:"name" json:"name"`
	Description    string         `mapstructure:"description" json:"description"`
	Meta           map[string]any `mapstructure:"meta" json:"meta,omitempty"`
	Config         Config         `mapstructure:"config" json:"config"`
	Columns        []Column       `mapstructure:"columns" json:"columns"`
	AdditionalArgs map[string]any `mapstructure:"additional_args" json:"additional_args,omitempty"`

	// Extra collects keys accepted through Options.AllowedModelFields.
	Extra map[string]any `mapstructure:",remain" json:"extra,omitempty"`
}

// Config is the model config block. Only the contract is constrained.
type Config struct {
	Contract Contract       `mapstructure:"contract" json:"contract"`
	Other    map[string]any `mapstructure:",remain" json:"other,omitempty"`
}

// Contract declares output-schema enforcement.
type Contract struct {
	Enforced bool `mapstructure:"enforced" json:"enforced"`
}

// Column is a documented model column.
type Column struct {
	Name        string         `mapstructure:"name" json:"name"`
	Description string         `mapstructure:"description" json:"description"`
	DataType    string         `mapstructure:"data_type" json:"data_type"`
	Other       map[string]any `mapstructure:",remain" json:"other,omitempty"`
}

// Decode converts a raw models entry into a Model. It performs no schema
// validation; call Validator.ValidateModel first.
func Decode(entry any) (*Model, error) {
	raw, ok := asMapping(entry)
	if !ok {
		return nil, fmt.Errorf("model entry is %T, not a mapping", entry)
	}

	var m Model
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &m,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	if m.Columns == nil {
		m.Columns = []Column{}
	}
	return &m, nil
}
