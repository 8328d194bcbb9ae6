// Package config provides configuration management for the schemaguard CLI.
//
// Values are layered, lowest precedence first: built-in defaults, a
// schemaguard.yaml in the project dir (or --config), SCHEMAGUARD_* environment
// variables, and finally flags that were explicitly set.
package config

import (
	sharedcfg "github.com/leapstack-labs/schemaguard/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	// ProjectDir is the dbt project root, the folder containing models/.
	ProjectDir string `koanf:"project_dir"`
	// ModelsDir is resolved against ProjectDir when relative.
	ModelsDir      string `koanf:"models_dir"`
	ModelExtension string `koanf:"model_extension"`
	DocExtension   string `koanf:"doc_extension"`

	ChangedOnly bool   `koanf:"changed_only"`
	DiffRange   string `koanf:"diff_range"`

	// Exclude holds doublestar patterns relative to ModelsDir.
	Exclude []string `koanf:"exclude"`
	// AllowedModelFields extends the closed model schema.
	AllowedModelFields []string `koanf:"allowed_model_fields"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultModelsDir      = sharedcfg.DefaultModelsDir
	DefaultModelExtension = sharedcfg.DefaultModelExtension
	DefaultDocExtension   = sharedcfg.DefaultDocExtension
	DefaultRevRange       = sharedcfg.DefaultRevRange
	DefaultOutput         = sharedcfg.DefaultOutput // Auto-detect: TTY=styled text, non-TTY=plain text
)
