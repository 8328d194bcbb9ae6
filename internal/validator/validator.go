// Package validator runs the documentation check over a project: pairing of
// definition and documentation files, then schema validation of every
// selected documentation file, collected into a single Report.
package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/leapstack-labs/schemaguard/internal/discovery"
	"github.com/leapstack-labs/schemaguard/pkg/core"
	"github.com/leapstack-labs/schemaguard/pkg/schema"
)

// ErrModelsDirMissing is returned before any validation when the models
// directory does not exist.
var ErrModelsDirMissing = errors.New("models dir does not exist")

// Options configure a run. Paths must be absolute.
type Options struct {
	ModelsDir      string
	ModelExtension string
	DocExtension   string
	Exclude        []string

	// ChangedOnly restricts validation to documentation files changed in RevRange.
	ChangedOnly bool
	RevRange    string

	Schema schema.Options
}

// Validator is the run pipeline.
type Validator struct {
	opts    Options
	changes discovery.ChangeSource
	schema  *schema.Validator
	logger  *slog.Logger
}

// New creates a Validator. changes is only consulted when opts.ChangedOnly is set.
func New(opts Options, changes discovery.ChangeSource, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.RevRange == "" {
		opts.RevRange = discovery.DefaultRevRange
	}
	return &Validator{
		opts:    opts,
		changes: changes,
		schema:  schema.New(opts.Schema),
		logger:  logger,
	}
}

// Run executes the pipeline. The returned error is reserved for conditions
// that prevent validation; findings are reported in the Report.
func (v *Validator) Run(ctx context.Context) (*Report, error) {
	if info, err := os.Stat(v.opts.ModelsDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrModelsDirMissing, v.opts.ModelsDir)
	}

	report := &Report{
		RunID:       uuid.NewString(),
		ModelsDir:   v.opts.ModelsDir,
		ChangedOnly: v.opts.ChangedOnly,
		Files:       []string{},
		Problems:    []core.Problem{},
	}

	defs, err := discovery.FindDefinitions(v.opts.ModelsDir, v.opts.ModelExtension, v.opts.DocExtension, v.opts.Exclude)
	if err != nil {
		return nil, err
	}
	report.Summary.Definitions = len(defs)
	report.add(discovery.CheckPairs(defs)...)
	v.logger.Debug("checked definition pairing",
		slog.Int("definitions", len(defs)),
		slog.Int("missing", len(report.Problems)))

	docs, err := v.selectDocs(ctx)
	if err != nil {
		return nil, err
	}

	for _, path := range docs {
		res := v.schema.ValidateFile(path)
		report.Files = append(report.Files, path)
		report.Summary.Models += res.ModelsChecked
		report.Summary.ValidModels += len(res.Models)
		for _, m := range res.Models {
			report.Summary.Columns += len(m.Columns)
		}
		report.add(res.Problems...)
		v.logger.Debug("validated documentation file",
			slog.String("path", path),
			slog.Int("models", res.ModelsChecked),
			slog.Int("problems", len(res.Problems)))
	}
	report.Summary.Files = len(report.Files)

	v.logger.Info("validation finished",
		slog.String("run_id", report.RunID),
		slog.Int("files", report.Summary.Files),
		slog.Int("problems", report.Summary.Problems))
	return report, nil
}

// selectDocs returns every documentation file under the models dir, or only
// the changed ones in changed-only mode.
func (v *Validator) selectDocs(ctx context.Context) ([]string, error) {
	if !v.opts.ChangedOnly {
		return discovery.FindDocs(v.opts.ModelsDir, v.opts.DocExtension, v.opts.Exclude)
	}
	if v.changes == nil {
		return nil, errors.New("changed-only mode requires a change source")
	}

	changed, err := v.changes.ChangedFiles(ctx, v.opts.RevRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}
	docs := discovery.FilterChangedDocs(changed, v.opts.ModelsDir, v.opts.DocExtension, v.opts.Exclude)
	v.logger.Debug("selected changed documentation files",
		slog.String("range", v.opts.RevRange),
		slog.Int("changed", len(changed)),
		slog.Int("selected", len(docs)))
	return docs, nil
}
