package config

import (
	"errors"
	"fmt"
)

// ErrProjectDirRequired is returned when no project dir was configured.
var ErrProjectDirRequired = errors.New("project dir is required\nHint: pass --project-dir (or --dbt-root), set SCHEMAGUARD_PROJECT_DIR, or add project_dir to schemaguard.yaml")

var validOutputs = map[string]bool{
	"":         true,
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is usable for a validation run.
func (c *Config) Validate() error {
	if c.ProjectDir == "" {
		return ErrProjectDirRequired
	}
	if c.ModelExtension == "" {
		return fmt.Errorf("model_extension must not be empty")
	}
	if c.DocExtension == "" {
		return fmt.Errorf("doc_extension must not be empty")
	}
	if c.ModelExtension == c.DocExtension {
		return fmt.Errorf("model_extension and doc_extension must differ, both are %q", c.DocExtension)
	}
	return ValidateOutput(c.OutputFormat)
}

// ValidateOutput checks an output format name.
func ValidateOutput(format string) error {
	if !validOutputs[format] {
		return fmt.Errorf("invalid output format %q (expected auto, text, markdown or json)", format)
	}
	return nil
}
