// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/schemaguard/internal/cli/output"
	roottestutil "github.com/leapstack-labs/schemaguard/internal/testutil"
)

// ValidCustomersDoc is a documentation file that passes validation.
const ValidCustomersDoc = `version: 2
models:
  - name: stg_customers
    description: Staged customers
    config:
      contract:
        enforced: true
    columns:
      - name: customer_id
        description: Primary key of the customer
        data_type: integer
      - name: customer_name
        description: Full customer name
        data_type: varchar
`

// InvalidOrdersDoc declares a model with an unenforced contract and a
// column description that is too short.
const InvalidOrdersDoc = `version: 2
models:
  - name: orders
    description: Orders mart
    config:
      contract:
        enforced: false
    columns:
      - name: order_id
        description: id
        data_type: integer
`

// ValidOrdersDoc documents the versioned orders_v2 model under its
// unversioned name.
const ValidOrdersDoc = `version: 2
models:
  - name: orders
    description: Orders mart
    config:
      contract:
        enforced: true
      materialized: table
    columns:
      - name: order_id
        description: Order identifier
        data_type: integer
`

// SetupTestProject creates a temporary dbt project whose models all pass
// validation and returns its root.
//
//	models/staging/stg_customers.sql + stg_customers.yml
//	models/marts/orders_v2.sql       + orders.yml
func SetupTestProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	roottestutil.WriteFiles(t, root, map[string]string{
		"dbt_project.yml":                  "name: test_project\n",
		"models/staging/stg_customers.sql": "select id as customer_id, name as customer_name from raw_customers\n",
		"models/staging/stg_customers.yml": ValidCustomersDoc,
		"models/marts/orders_v2.sql":       "select 1 as order_id\n",
		"models/marts/orders.yml":          ValidOrdersDoc,
		"models/marts/README.md":           "not a doc file\n",
	})
	return root
}

// SetupBrokenProject creates a project with one missing documentation file
// and one invalid documentation file.
func SetupBrokenProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	roottestutil.WriteFiles(t, root, map[string]string{
		"models/staging/stg_customers.sql": "select 1\n",
		"models/staging/stg_customers.yml": ValidCustomersDoc,
		"models/staging/stg_payments.sql":  "select 1\n",
		"models/marts/orders.sql":          "select 1\n",
		"models/marts/orders.yml":          InvalidOrdersDoc,
	})
	return root
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
