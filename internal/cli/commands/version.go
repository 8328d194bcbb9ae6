package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the schemaguard version, the commit it was built from and the Go toolchain.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "schemaguard v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "dbt model documentation validator")
			for _, line := range buildDetails(info) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}

// buildDetails describes the VCS state recorded by the Go toolchain.
// Binaries built outside a work tree only report the Go version.
func buildDetails(info *debug.BuildInfo) []string {
	goVersion := runtime.Version()
	var revision string
	var dirty bool
	if info != nil {
		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	var lines []string
	if revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		if dirty {
			revision += "-dirty"
		}
		lines = append(lines, "commit: "+revision)
	}
	return append(lines, "go: "+goVersion)
}
