package commands

import (
	"strconv"

	"github.com/leapstack-labs/schemaguard/internal/cli/output"
	"github.com/leapstack-labs/schemaguard/pkg/schema"
	"github.com/spf13/cobra"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show the expected model documentation schema",
		Long: `Print the fields every model in a documentation file must declare,
with their types and constraints. The same guide is printed after a failed
validation run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(schema.Describe())
			}
			renderSchemaGuide(r)
			return nil
		},
	}
}

// renderSchemaGuide prints the schema as a table.
func renderSchemaGuide(r *output.Renderer) {
	specs := schema.Describe()
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, []string{s.Path, s.Type, strconv.FormatBool(s.Required), s.Constraint})
	}
	r.Table([]string{"Field", "Type", "Required", "Constraint"}, rows)
}
