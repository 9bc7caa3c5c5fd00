package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	stoolsadapter "github.com/bnema/toah-cli/internal/adapters/render/stools"
	"github.com/bnema/toah-cli/internal/application"
	"github.com/bnema/toah-cli/internal/domain"
	"github.com/spf13/cobra"
)

type tourOutput struct {
	ID        string              `json:"id"`
	Cheeses   int                 `json:"cheeses"`
	Stools    int                 `json:"stools"`
	Split     int                 `json:"split"`
	Moves     domain.MoveSequence `json:"moves"`
	CreatedAt time.Time           `json:"created_at"`
}

func newTourOutput(tour domain.Tour) tourOutput {
	return tourOutput{
		ID:        string(tour.ID),
		Cheeses:   tour.Cheeses,
		Stools:    tour.Stools,
		Split:     tour.Split,
		Moves:     tour.Moves,
		CreatedAt: tour.CreatedAt,
	}
}

func newTourCmd(app *app) *cobra.Command {
	var cheeses int
	var animate bool
	var delay time.Duration
	var save bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Move a stack of cheeses from the first to the last of four stools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.service.Solve(cmd.Context(), application.SolveCommand{Cheeses: cheeses, Save: save})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, newTourOutput(result.Tour))
			}

			if animate {
				if _, err := app.animate(cmd.Context(), out, stoolsadapter.AnimateOptions{
					Cheeses: result.Tour.Cheeses,
					Stools:  result.Tour.Stools,
					Moves:   result.Tour.Moves,
					Delay:   delay,
				}); err != nil {
					return fmt.Errorf("animate tour: %w", err)
				}
			} else {
				_, _ = fmt.Fprintln(out, app.render(result.Model))
			}

			_, _ = fmt.Fprintf(out, "%d cheeses moved in %d moves (first split %d)\n",
				result.Tour.Cheeses, result.Tour.Moves.Len(), result.Tour.Split)
			if save {
				_, _ = fmt.Fprintf(out, "saved tour %s\n", result.Tour.ID)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&cheeses, "cheeses", app.config.GetInt(cheesesKey), "Number of cheeses on the first stool")
	cmd.Flags().BoolVar(&animate, "animate", false, "Animate every move")
	cmd.Flags().DurationVar(&delay, "delay", app.config.GetDuration(delayKey), "Pause between animated moves")
	cmd.Flags().BoolVar(&save, "save", false, "Save the tour to the history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
