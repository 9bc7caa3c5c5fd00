package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "toah",
		Short:         "Tour of Anne Hoy (toah): solve the four-stool cheese puzzle",
		Long:          "toah moves a stack of cheeses across four stools in the fewest moves, prints the optimal split plan, verifies the solver against the move-count recurrence, and keeps a history of solved tours.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOrDefault("TOAH_LOG_LEVEL", "warn"), "Log level (trace, debug, info, warn, error)")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}

		zerolog.SetGlobalLevel(level)
		app.logs.out = cmd.ErrOrStderr()
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newTourCmd(app),
		newPlanCmd(app),
		newVerifyCmd(app),
		newReplayCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
