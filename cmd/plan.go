package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const defaultPlanMax = 15

func newPlanCmd(app *app) *cobra.Command {
	var upTo int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the best first split and minimum moves for each cheese count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.service.Plan(upTo)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("CHEESES", "SPLIT", "MOVES")
			for _, entry := range entries {
				t.Row(
					strconv.Itoa(entry.Cheeses),
					strconv.Itoa(entry.Split),
					strconv.FormatUint(entry.Moves, 10),
				)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}

	cmd.Flags().IntVar(&upTo, "max", defaultPlanMax, "Largest cheese count to plan")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
