// Package schema validates dbt-style model documentation files.
//
// A documentation file is a YAML mapping with a top-level `version: 2`
// marker and a `models` sequence. Every model entry is checked against a
// declarative field table (see ModelFields): each field carries its type,
// whether it is required, a minimum length for strings, an optional exact
// value, and nested fields for mappings and sequence elements.
//
// Validation is exhaustive. All failing fields of a model are collected in
// declaration order, so a single run reports everything that needs fixing:
//
//	v := schema.New(schema.Options{})
//	res := v.ValidateFile("models/staging/schema.yml")
//	for _, p := range res.Problems {
//		fmt.Println(strings.Join(p.Lines(), "\n"))
//	}
//
// Files whose top level has no `models` sequence (sources, exposures) are
// out of scope and only get the version check.
package schema
