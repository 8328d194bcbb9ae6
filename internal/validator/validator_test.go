package validator

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/schemaguard/internal/testutil"
	"github.com/leapstack-labs/schemaguard/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersDoc = `version: 2
models:
  - name: orders
    description: One row per order.
    config:
      contract:
        enforced: true
    columns:
      - name: order_id
        description: Order identifier.
        data_type: integer
`

const brokenDoc = `version: 2
models:
  - name: customers
    description: ""
    config:
      contract:
        enforced: false
`

// fakeChanges returns a fixed list of changed files.
type fakeChanges struct {
	files    []string
	err      error
	gotRange string
}

func (f *fakeChanges) ChangedFiles(_ context.Context, revRange string) ([]string, error) {
	f.gotRange = revRange
	return f.files, f.err
}

func newProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteFiles(t, root, files)
	return root
}

func defaultOptions(root string) Options {
	return Options{
		ModelsDir:      filepath.Join(root, "models"),
		ModelExtension: ".sql",
		DocExtension:   ".yml",
	}
}

func kinds(problems []core.Problem) []core.Kind {
	out := make([]core.Kind, len(problems))
	for i, p := range problems {
		out[i] = p.Kind
	}
	return out
}

func TestRun_Clean(t *testing.T) {
	root := newProject(t, map[string]string{
		"models/marts/orders.sql":    "select 1",
		"models/marts/orders_v2.sql": "select 2",
		"models/marts/orders.yml":    ordersDoc,
		"models/sources.yml":         "version: 2\nsources:\n  - name: raw\n",
	})

	report, err := New(defaultOptions(root), nil, testutil.NewTestLogger(t)).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Failed())
	assert.Empty(t, report.Lines())
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, Summary{Definitions: 2, Files: 2, Models: 1, ValidModels: 1, Columns: 1}, report.Summary)
}

func TestRun_CollectsEverythingInOrder(t *testing.T) {
	root := newProject(t, map[string]string{
		"models/a/customers.sql":   "select 1",
		"models/a/customers.yml":   brokenDoc,
		"models/b/orders_v2.sql":   "select 1",
		"models/b/orders_v2.yml":   ordersDoc,
		"models/c/bad.yml":         "version: 2\nmodels: [\n",
		"models/d/unversioned.yml": "sources: []\n",
	})

	report, err := New(defaultOptions(root), nil, nil).Run(context.Background())
	require.NoError(t, err)
	require.True(t, report.Failed())

	assert.Equal(t, []core.Kind{
		core.KindDiscovery,
		core.KindField,
		core.KindParse,
		core.KindSchemaVersion,
	}, kinds(report.Problems))

	lines := report.Lines()
	assert.Equal(t, "Corresponding YAML file not found for: "+filepath.Join(root, "models", "b", "orders_v2.sql"), lines[0])
	assert.Equal(t, "ERROR in model: customers in file: "+filepath.Join(root, "models", "a", "customers.yml"), lines[1])
	assert.Contains(t, lines, "\t- config.contract.enforced must be true")
	assert.Equal(t, 4, report.Summary.Problems)
	assert.Equal(t, 4, report.Summary.Files)
}

func TestRun_ModelsDirMissing(t *testing.T) {
	root := newProject(t, map[string]string{"dbt_project.yml": "name: x\n"})
	changes := &fakeChanges{}

	opts := defaultOptions(root)
	opts.ChangedOnly = true
	report, err := New(opts, changes, nil).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModelsDirMissing))
	assert.Contains(t, err.Error(), "models dir does not exist: "+filepath.Join(root, "models"))
	assert.Nil(t, report)
	assert.Empty(t, changes.gotRange, "no discovery should happen")
}

func TestRun_ChangedOnly(t *testing.T) {
	root := newProject(t, map[string]string{
		"models/customers.sql": "select 1",
		"models/customers.yml": brokenDoc,
		"models/orders.sql":    "select 1",
		"models/orders.yml":    ordersDoc,
	})
	models := filepath.Join(root, "models")
	changes := &fakeChanges{files: []string{
		filepath.Join(models, "orders.yml"),
		filepath.Join(models, "orders.sql"),
		filepath.Join(root, "README.md"),
	}}

	opts := defaultOptions(root)
	opts.ChangedOnly = true
	report, err := New(opts, changes, testutil.NewTestLogger(t)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "HEAD~1..HEAD", changes.gotRange)
	assert.Equal(t, []string{filepath.Join(models, "orders.yml")}, report.Files)
	assert.False(t, report.Failed(), "unchanged broken customers.yml must be skipped")
}

func TestRun_ChangedOnlyStillChecksPairs(t *testing.T) {
	root := newProject(t, map[string]string{"models/orphan.sql": "select 1"})

	opts := defaultOptions(root)
	opts.ChangedOnly = true
	opts.RevRange = "main...HEAD"
	changes := &fakeChanges{}
	report, err := New(opts, changes, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "main...HEAD", changes.gotRange)
	assert.Equal(t, []core.Kind{core.KindDiscovery}, kinds(report.Problems))
	assert.Empty(t, report.Files)
}

func TestRun_ChangeSourceError(t *testing.T) {
	root := newProject(t, map[string]string{"models/a.yml": ordersDoc})

	opts := defaultOptions(root)
	opts.ChangedOnly = true
	_, err := New(opts, &fakeChanges{err: errors.New("not a git repository")}, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestRun_Exclude(t *testing.T) {
	root := newProject(t, map[string]string{
		"models/legacy/old.sql": "select 1",
		"models/legacy/old.yml": brokenDoc,
		"models/orders.sql":     "select 1",
		"models/orders.yml":     ordersDoc,
	})

	opts := defaultOptions(root)
	opts.Exclude = []string{"legacy/**"}
	report, err := New(opts, nil, nil).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Failed())
	assert.Equal(t, 1, report.Summary.Definitions)
}
