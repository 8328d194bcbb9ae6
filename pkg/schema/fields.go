package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/leapstack-labs/schemaguard/pkg/core"
)

// ValueType is the YAML type a field value must have.
type ValueType int

// Value types.
const (
	TypeString ValueType = iota
	TypeBool
	TypeMapping
	TypeSequence
)

// String returns the name used in the schema guide.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeMapping:
		return "mapping"
	case TypeSequence:
		return "list"
	default:
		return "unknown"
	}
}

// Field declares one key of a mapping and the constraints on its value.
type Field struct {
	Name     string
	Type     ValueType
	Required bool

	// MinLength applies to TypeString, counted in runes.
	MinLength int

	// Equals, when set, is the only accepted value. Any other value, including
	// one of the wrong type, fails with Message.
	Equals  any
	Message string

	// Fields are the keys checked inside a TypeMapping value. Keys not listed
	// are permitted.
	Fields []Field

	// Elem are the keys checked inside every element of a TypeSequence value.
	Elem []Field

	// Note is extra operator guidance shown in the schema guide.
	Note string
}

// contractFields is the body of config.contract.
var contractFields = []Field{
	{
		Name:     "enforced",
		Type:     TypeBool,
		Required: true,
		Equals:   true,
		Message:  "config.contract.enforced must be true",
	},
}

var configFields = []Field{
	{Name: "contract", Type: TypeMapping, Required: true, Fields: contractFields},
}

// ColumnFields declares a documented column.
var ColumnFields = []Field{
	{Name: "name", Type: TypeString, Required: true, MinLength: 1},
	{Name: "description", Type: TypeString, Required: true, MinLength: 5},
	{Name: "data_type", Type: TypeString, Required: true, MinLength: 1},
}

// ModelFields declares a documented model, in the order failures are reported.
// The model mapping is closed: keys outside this table are rejected unless
// explicitly allowed through Options.AllowedModelFields.
var ModelFields = []Field{
	{Name: "name", Type: TypeString, Required: true, MinLength: 1},
	{Name: "description", Type: TypeString, Required: true, MinLength: 1},
	{Name: "meta", Type: TypeMapping, Note: "free-form"},
	{Name: "config", Type: TypeMapping, Required: true, Fields: configFields},
	{Name: "columns", Type: TypeSequence, Elem: ColumnFields, Note: "defaults to []"},
	{Name: "additional_args", Type: TypeMapping, Note: "free-form"},
}

// checkFields evaluates every field against m without short-circuiting.
// owner is the top-level model field the failures belong to; an empty owner
// means each field is its own owner.
func checkFields(owner, prefix string, m map[string]any, fields []Field) []core.FieldError {
	var errs []core.FieldError
	for _, f := range fields {
		o := owner
		if o == "" {
			o = f.Name
		}
		errs = append(errs, checkField(o, joinPath(prefix, f.Name), f, m)...)
	}
	return errs
}

func checkField(owner, path string, f Field, m map[string]any) []core.FieldError {
	fail := func(cat core.Category, msg string) []core.FieldError {
		return []core.FieldError{{Field: owner, Path: path, Category: cat, Message: msg}}
	}

	v, present := m[f.Name]
	if !present {
		if f.Required {
			return fail(core.CategoryMissing, "Field required")
		}
		return nil
	}
	// An explicit null on an optional field is the same as leaving it out.
	if v == nil && !f.Required {
		return nil
	}

	if f.Equals != nil {
		if !reflect.DeepEqual(v, f.Equals) {
			return fail(core.CategoryValueError, f.Message)
		}
		return nil
	}

	switch f.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return fail(core.CategoryStringType, "Input should be a valid string")
		}
		if utf8.RuneCountInString(s) < f.MinLength {
			return fail(core.CategoryStringTooShort, fmt.Sprintf("String should have at least %s", plural(f.MinLength, "character")))
		}
	case TypeBool:
		if _, ok := v.(bool); !ok {
			return fail(core.CategoryBoolType, "Input should be a valid boolean")
		}
	case TypeMapping:
		sub, ok := asMapping(v)
		if !ok {
			return fail(core.CategoryMappingType, "Input should be a valid dictionary")
		}
		return checkFields(owner, path, sub, f.Fields)
	case TypeSequence:
		seq, ok := v.([]any)
		if !ok {
			return fail(core.CategoryListType, "Input should be a valid list")
		}
		var errs []core.FieldError
		for i, el := range seq {
			elPath := path + "[" + strconv.Itoa(i) + "]"
			sub, ok := asMapping(el)
			if !ok {
				errs = append(errs, core.FieldError{
					Field:    owner,
					Path:     elPath,
					Category: core.CategoryModelType,
					Message:  "Input should be a valid dictionary",
				})
				continue
			}
			errs = append(errs, checkFields(owner, elPath, sub, f.Elem)...)
		}
		return errs
	}
	return nil
}

// extraFields returns the keys of m not declared in fields or allowed, sorted.
func extraFields(m map[string]any, fields []Field, allowed map[string]bool) []string {
	declared := make(map[string]bool, len(fields))
	for _, f := range fields {
		declared[f.Name] = true
	}
	var extra []string
	for k := range m {
		if !declared[k] && !allowed[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}

// asMapping normalizes a decoded YAML mapping. yaml.v3 yields
// map[string]any for string keys and map[any]any otherwise.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
