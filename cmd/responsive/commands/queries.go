package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/responsive/internal/ui/style"
)

func (c *CLI) newQueriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queries",
		Short: "Print the range query of every breakpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := c.app.Queries(configPath(cmd))
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(style.Slate)).
				Headers("BREAKPOINT", "QUERY", "GREATER THAN", "LESS THAN")
			for d := range ds.All() {
				t.Row(
					d.Name,
					d.Query,
					strings.Join(ds.GreaterThan(d.Name), " "),
					strings.Join(ds.LessThan(d.Name), " "),
				)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}
