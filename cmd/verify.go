package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/toah-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var errVerificationFailed = errors.New("verification failed")

func newVerifyCmd(app *app) *cobra.Command {
	var upTo int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Solve and replay every tour up to a cheese count and check the move counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var results []domain.Verification
			var err error
			if asJSON {
				results, err = app.service.VerifyRange(cmd.Context(), upTo, nil)
				if err != nil {
					return err
				}
				if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				results, err = runVerifyProgress(cmd.Context(), cmd.ErrOrStderr(), upTo, app.service.VerifyRange)
				if err != nil {
					return err
				}
				if err := writeVerificationTable(cmd, results); err != nil {
					return err
				}
			}

			failed := 0
			for _, result := range results {
				if !result.OK {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d tours", errVerificationFailed, failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&upTo, "max", defaultPlanMax, "Largest cheese count to verify")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeVerificationTable(cmd *cobra.Command, results []domain.Verification) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CHEESES", "MOVES", "EXPECTED", "RESULT")
	for _, result := range results {
		status := "ok"
		if !result.OK {
			status = "FAIL"
		}
		t.Row(
			strconv.Itoa(result.Cheeses),
			strconv.Itoa(result.Moves),
			strconv.FormatUint(result.Expected, 10),
			status,
		)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}
