package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved tours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tours, err := app.service.ListTours(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				outputs := make([]tourOutput, 0, len(tours))
				for _, tour := range tours {
					outputs = append(outputs, newTourOutput(tour))
				}
				return writeJSON(cmd.OutOrStdout(), outputs)
			}

			if len(tours) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved tours")
				return nil
			}

			for _, tour := range tours {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%s\n",
					tour.ID, tour.Cheeses, tour.Moves.Len(), tour.CreatedAt.Format(time.RFC3339))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
