package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/schemaguard/internal/cli/output"
	"github.com/leapstack-labs/schemaguard/internal/discovery"
	"github.com/leapstack-labs/schemaguard/internal/validator"
	"github.com/leapstack-labs/schemaguard/pkg/core"
	"github.com/leapstack-labs/schemaguard/pkg/schema"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when a run reports problems, so the
// process exits non-zero.
var ErrValidationFailed = errors.New("Please update the models specified above.") //nolint:staticcheck // printed verbatim to operators

const (
	separator     = "##############################"
	successLine   = "OK: dbt model YAML validation passed."
	schemaHeading = "Expected YAML schema for models:"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate model documentation YAML files",
		Long: `Validate the documentation of every model in a dbt project.

Checks that:
  - every model .sql file has a matching .yml file next to it
    (a version postfix such as _v2 is ignored: orders_v2.sql needs orders.yml)
  - every documentation file declares 'version: 2'
  - every documented model has a name, a description, an enforced contract
    (config.contract.enforced: true) and columns with name, description
    (at least 5 characters) and data_type

All problems are reported at once. The command exits non-zero when any
problem is found, which makes it suitable as a CI gate.`,
		Example: `  # Validate all documentation files under ./project/models
  schemaguard validate --project-dir project

  # Only validate documentation files changed in the last commit (CI)
  schemaguard validate --project-dir project --changed-only

  # Widen the diff window explicitly
  schemaguard validate -p project --changed-only --diff-range origin/main...HEAD

  # Markdown for a CI job summary
  schemaguard validate -p project -o markdown >> "$GITHUB_STEP_SUMMARY"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd)
		},
	}

	cmd.Flags().StringP("project-dir", "p", "", "Path to dbt project root (the folder containing models/)")
	cmd.Flags().Bool("changed-only", false, "Only validate YAML files changed in the current git diff (best for CI)")
	cmd.Flags().String("diff-range", discovery.DefaultRevRange, "Git revision range used by --changed-only")
	cmd.Flags().StringSlice("exclude", nil, "Glob patterns (relative to models dir) to skip")
	cmd.Flags().StringSlice("allow-field", nil, "Extra model keys to accept besides the documented schema")

	return cmd
}

func runValidate(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := validator.Options{
		ModelsDir:      cfg.ModelsDir,
		ModelExtension: cfg.ModelExtension,
		DocExtension:   cfg.DocExtension,
		Exclude:        cfg.Exclude,
		ChangedOnly:    cfg.ChangedOnly,
		RevRange:       cfg.DiffRange,
		Schema:         schema.Options{AllowedModelFields: cfg.AllowedModelFields},
	}

	var changes discovery.ChangeSource
	if cfg.ChangedOnly {
		changes = newChangeSource(cfg.ProjectDir, cmdCtx.Logger)
	}

	report, err := validator.New(opts, changes, cmdCtx.Logger).Run(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.ChangedOnly && report.Summary.Files == 0 {
		cmdCtx.Renderer.Warn(fmt.Sprintf("No documentation files changed in %s; only model pairing was checked.", cfg.DiffRange))
	}
	if err := renderReport(cmdCtx.Renderer, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if report.Failed() {
		return ErrValidationFailed
	}
	return nil
}

// jsonReport is the machine-readable form of a run.
type jsonReport struct {
	Status string `json:"status"`
	*validator.Report
	Schema []schema.FieldSpec `json:"schema,omitempty"`
}

func renderReport(r *output.Renderer, report *validator.Report) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := jsonReport{Status: "passed", Report: report}
		if report.Failed() {
			out.Status = "failed"
			out.Schema = schema.Describe()
		}
		return r.JSON(out)
	case output.ModeMarkdown:
		renderReportMarkdown(r, report)
	default:
		renderReportText(r, report)
	}
	return nil
}

func renderReportText(r *output.Renderer, report *validator.Report) {
	if !report.Failed() {
		r.Success(successLine)
		return
	}

	s := r.Styles()
	r.Println(r.Paint(s.Separator, separator))
	for _, p := range report.Problems {
		if p.Kind != core.KindField {
			r.Println(r.Paint(s.Error, p.Message))
			continue
		}
		lines := p.Lines()
		r.Println(r.Paint(s.Error, lines[0]))
		for i, line := range lines[1:] {
			if i%2 == 0 {
				r.Println(r.Paint(s.Warning, line))
			} else {
				r.Println(r.Paint(s.Muted, line))
			}
		}
	}
	r.Println("")
	r.Println(r.Paint(s.Bold, schemaHeading))
	renderSchemaGuide(r)
}

func renderReportMarkdown(r *output.Renderer, report *validator.Report) {
	if !report.Failed() {
		r.Println(successLine)
		return
	}

	r.Printf("## Model YAML validation failed\n\n")
	r.Printf("%d problem(s) in %d documentation file(s), %d model definition(s) checked.\n\n",
		report.Summary.Problems, report.Summary.Files, report.Summary.Definitions)
	r.Println("```text")
	r.Println(strings.Join(report.Lines(), "\n"))
	r.Println("```")
	r.Println("")
	r.Printf("### %s\n\n", strings.TrimSuffix(schemaHeading, ":"))
	renderSchemaGuide(r)
}
