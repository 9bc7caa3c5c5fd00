package cmd

import (
	"fmt"
	"time"

	stoolsadapter "github.com/bnema/toah-cli/internal/adapters/render/stools"
	"github.com/bnema/toah-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *app) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "replay <tour-id>",
		Short: "Animate a saved tour move by move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := app.service.GetTour(cmd.Context(), domain.TourID(args[0]))
			if err != nil {
				return err
			}

			// Replay checks the stored moves before anything is drawn.
			if _, err := app.service.Replay(cmd.Context(), tour); err != nil {
				return err
			}

			final, err := app.animate(cmd.Context(), cmd.OutOrStdout(), stoolsadapter.AnimateOptions{
				Cheeses: tour.Cheeses,
				Stools:  tour.Stools,
				Moves:   tour.Moves,
				Delay:   delay,
			})
			if err != nil {
				return fmt.Errorf("animate tour: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "replayed tour %s: %d cheeses in %d moves\n",
				tour.ID, tour.Cheeses, final.NumberOfMoves())
			return err
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", app.config.GetDuration(delayKey), "Pause between moves")

	return cmd
}
