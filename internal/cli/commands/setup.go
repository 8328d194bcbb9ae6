package commands

import (
	"log/slog"

	"github.com/leapstack-labs/schemaguard/internal/cli/config"
	"github.com/leapstack-labs/schemaguard/internal/cli/output"
	"github.com/leapstack-labs/schemaguard/internal/discovery"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// newChangeSource builds the changed-files collaborator. Tests replace it.
var newChangeSource = func(dir string, logger *slog.Logger) discovery.ChangeSource {
	return discovery.NewGitChangeSource(dir, logger)
}

// getConfig returns the current configuration, or defaults when commands
// run without the root command's config loading (e.g. in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		ModelsDir:      config.DefaultModelsDir,
		ModelExtension: config.DefaultModelExtension,
		DocExtension:   config.DefaultDocExtension,
		DiffRange:      config.DefaultRevRange,
		OutputFormat:   config.DefaultOutput,
	}
}
