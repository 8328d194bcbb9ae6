package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	sharedcfg "github.com/leapstack-labs/schemaguard/internal/config"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// envPrefix is the prefix of environment variables read as configuration.
const envPrefix = "SCHEMAGUARD_"

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// flagKeys maps flag names whose config key is not the snake_case form of the flag.
var flagKeys = map[string]string{
	"allow-field": "allowed_model_fields",
}

// findConfigFile returns the config file to use.
// Priority: explicit path > schemaguard.yaml > schemaguard.yml in dir.
func findConfigFile(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range sharedcfg.ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// projectDirHint finds the project dir before the config file is read, so
// the file can be looked up inside it. Flags win over the environment.
func projectDirHint(flags *pflag.FlagSet) string {
	if flags != nil {
		if f := flags.Lookup("project-dir"); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	return os.Getenv(envPrefix + "PROJECT_DIR")
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from defaults, file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	hint := projectDirHint(flags)
	searchDir := hint
	if searchDir == "" {
		searchDir = "."
	}

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"models_dir":      DefaultModelsDir,
		"model_extension": DefaultModelExtension,
		"doc_extension":   DefaultDocExtension,
		"changed_only":    false,
		"diff_range":      DefaultRevRange,
		"verbose":         false,
		"output":          DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	configFileUsed = findConfigFile(cfgFile, searchDir)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables
	// Transform: SCHEMAGUARD_DOC_EXTENSION -> doc_extension
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Resolve paths. A project dir taken from the config file is relative
	// to that file; from flags or env it is relative to the working directory.
	if cfg.ProjectDir != "" {
		base := "."
		if hint == "" && configFileUsed != "" {
			base = filepath.Dir(configFileUsed)
		}
		projectDir := resolvePathRelativeTo(cfg.ProjectDir, base)
		abs, err := filepath.Abs(projectDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project dir %s: %w", cfg.ProjectDir, err)
		}
		cfg.ProjectDir = abs
		cfg.ModelsDir = resolvePathRelativeTo(cfg.ModelsDir, cfg.ProjectDir)
	}

	cfg.ModelExtension = sharedcfg.NormalizeExtension(cfg.ModelExtension)
	cfg.DocExtension = sharedcfg.NormalizeExtension(cfg.DocExtension)

	if err := ValidateOutput(cfg.OutputFormat); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
