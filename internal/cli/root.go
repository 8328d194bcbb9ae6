// Package cli provides the command-line interface for schemaguard.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/schemaguard/internal/cli/commands"
	"github.com/leapstack-labs/schemaguard/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var cfgFile string

// Version is set at build time.
var Version = "0.1.0"

// flagAliases maps accepted synonyms to canonical flag names.
var flagAliases = map[string]string{
	"dbt-root": "project-dir",
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemaguard",
		Short: "schemaguard - dbt model documentation validator",
		Long: `schemaguard checks the documentation YAML files of a dbt project.

Every model definition file must have a documentation file next to it, and
every documented model must declare a name, a description, an enforced
contract and fully described, typed columns. All problems are reported in
one run so CI shows the complete list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg.Verbose)
			cmd.SetContext(context.WithValue(cmd.Context(), config.LoggerKey(), logger))

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", slog.String("path", configFile))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
dbt model documentation validator
`)
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: <project-dir>/schemaguard.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewSchemaCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// newLogger creates the run logger on the command's stderr. Verbose runs log
// every step; otherwise only warnings and errors are shown.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for schemaguard.

To load completions:

Bash:
  $ source <(schemaguard completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ schemaguard completion bash > /etc/bash_completion.d/schemaguard
  # macOS:
  $ schemaguard completion bash > $(brew --prefix)/etc/bash_completion.d/schemaguard

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ schemaguard completion zsh > "${fpath[1]}/_schemaguard"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ schemaguard completion fish | source

  # To load completions for each session, execute once:
  $ schemaguard completion fish > ~/.config/fish/completions/schemaguard.fish

PowerShell:
  PS> schemaguard completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> schemaguard completion powershell > schemaguard.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
