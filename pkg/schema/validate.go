package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/schemaguard/pkg/core"
	"gopkg.in/yaml.v3"
)

// RequiredVersion is the only accepted top-level version marker.
const RequiredVersion = 2

// Options tune the closed model schema.
type Options struct {
	// AllowedModelFields are extra model keys accepted alongside ModelFields.
	AllowedModelFields []string
}

// Validator checks documentation files against the model schema.
type Validator struct {
	allowed map[string]bool
}

// New creates a Validator.
func New(opts Options) *Validator {
	allowed := make(map[string]bool, len(opts.AllowedModelFields))
	for _, f := range opts.AllowedModelFields {
		allowed[f] = true
	}
	return &Validator{allowed: allowed}
}

// FileResult is the outcome of validating one documentation file.
type FileResult struct {
	Path     string
	Problems []core.Problem
	// Models holds the decoded declarations of every model that passed.
	Models []*Model
	// ModelsChecked counts entries of the models sequence, valid or not.
	ModelsChecked int
}

// ValidateFile reads, parses and validates a documentation file.
// Read and parse failures end processing of the file; a wrong version marker
// does not.
func (v *Validator) ValidateFile(path string) FileResult {
	res := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Problems = append(res.Problems, core.Problem{
			Kind:    core.KindRead,
			File:    path,
			Message: fmt.Sprintf("Could not read YAML file %s: %v", path, err),
		})
		return res
	}

	doc, err := decodeSingle(data)
	if err != nil {
		res.Problems = append(res.Problems, core.Problem{
			Kind:    core.KindParse,
			File:    path,
			Message: fmt.Sprintf("YAML parse error in %s: %v", path, err),
		})
		return res
	}

	top, isMapping := asMapping(doc)
	if doc == nil {
		top, isMapping = map[string]any{}, true
	}

	if !isVersion(top[versionKey]) {
		res.Problems = append(res.Problems, core.Problem{
			Kind:    core.KindSchemaVersion,
			File:    path,
			Message: fmt.Sprintf("%s: top-level 'version: %d' is required for model schema files.", path, RequiredVersion),
		})
	}

	if !isMapping {
		return res
	}
	// Sources, exposures and other non-model files have no models sequence.
	models, ok := top[modelsKey].([]any)
	if !ok {
		return res
	}

	for _, entry := range models {
		res.ModelsChecked++
		errs := v.ValidateModel(entry)
		if len(errs) > 0 {
			res.Problems = append(res.Problems, core.Problem{
				Kind:   core.KindField,
				File:   path,
				Model:  modelName(entry),
				Fields: errs,
			})
			continue
		}
		if m, err := Decode(entry); err == nil {
			res.Models = append(res.Models, m)
		}
	}
	return res
}

// ValidateModel checks one entry of a models sequence and returns every
// failing field in declaration order, followed by undeclared keys.
func (v *Validator) ValidateModel(entry any) []core.FieldError {
	m, ok := asMapping(entry)
	if !ok {
		return []core.FieldError{{
			Field:    modelsKey,
			Path:     modelsKey,
			Category: core.CategoryModelType,
			Message:  "Input should be a valid dictionary",
		}}
	}

	errs := checkFields("", "", m, ModelFields)
	for _, k := range extraFields(m, ModelFields, v.allowed) {
		errs = append(errs, core.FieldError{
			Field:    k,
			Path:     k,
			Category: core.CategoryExtraForbidden,
			Message:  "Extra inputs are not permitted",
		})
	}
	return errs
}

// errMultipleDocuments rejects streams with more than one YAML document.
var errMultipleDocuments = errors.New("expected a single document in the stream")

// decodeSingle decodes data as exactly one YAML document. An empty stream
// decodes to nil.
func decodeSingle(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var next any
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		return nil, errMultipleDocuments
	}
	return doc, nil
}

const (
	versionKey = "version"
	modelsKey  = "models"
)

// isVersion reports whether a decoded version marker equals RequiredVersion.
// A float such as 2.0 compares equal, a quoted "2" does not.
func isVersion(v any) bool {
	switch n := v.(type) {
	case int:
		return n == RequiredVersion
	case int64:
		return n == RequiredVersion
	case uint64:
		return n == RequiredVersion
	case float64:
		return n == RequiredVersion
	default:
		return false
	}
}

func modelName(entry any) string {
	if m, ok := asMapping(entry); ok {
		if n, ok := m["name"]; ok && n != nil && n != "" {
			return fmt.Sprint(n)
		}
	}
	return "<unnamed>"
}
