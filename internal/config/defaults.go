// Package config holds defaults shared by the CLI and the validation pipeline.
package config

import (
	"strings"

	"github.com/leapstack-labs/schemaguard/internal/discovery"
)

// Default configuration values.
const (
	DefaultModelsDir      = "models"
	DefaultModelExtension = ".sql"
	DefaultDocExtension   = ".yml"
	DefaultRevRange       = discovery.DefaultRevRange
	DefaultOutput         = "auto"
)

// ConfigFileNames are looked up, in order, in the project dir.
var ConfigFileNames = []string{"schemaguard.yaml", "schemaguard.yml"}

// NormalizeExtension trims whitespace and ensures a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
