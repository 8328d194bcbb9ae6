// Package core defines the shared language of schemaguard.
//
// This package contains:
//   - The problem taxonomy (Kind) reported by a validation run
//   - Problem, the unit of reporting tied to a file and optionally a model
//   - FieldError and Category, the per-field failures of a model declaration
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
