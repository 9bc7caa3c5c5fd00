package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	stoolsadapter "github.com/bnema/toah-cli/internal/adapters/render/stools"
	tomlrepo "github.com/bnema/toah-cli/internal/adapters/repo/toml"
	"github.com/bnema/toah-cli/internal/application"
	"github.com/bnema/toah-cli/internal/domain"
	"github.com/bnema/toah-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	cheesesKey     = "tour.cheeses"
	delayKey       = "tour.delay"
	defaultCheeses = 5
	defaultDelay   = 500 * time.Millisecond
)

type app struct {
	service *application.Service
	config  *viper.Viper
	logs    *logOutput
	render  func(*domain.Model) string
	animate func(context.Context, io.Writer, stoolsadapter.AnimateOptions) (*domain.Model, error)
}

// logOutput lets the root command point the logger at the command's stderr
// once flags are parsed.
type logOutput struct {
	out io.Writer
}

func (l *logOutput) Write(p []byte) (int, error) {
	return l.out.Write(p)
}

func wireApp() (*app, error) {
	config := viper.New()
	config.SetDefault(cheesesKey, defaultCheeses)
	config.SetDefault(delayKey, defaultDelay)
	if err := config.BindEnv(cheesesKey, "TOAH_CHEESES"); err != nil {
		return nil, fmt.Errorf("bind cheeses env: %w", err)
	}
	if err := config.BindEnv(delayKey, "TOAH_DELAY"); err != nil {
		return nil, fmt.Errorf("bind delay env: %w", err)
	}

	repo, err := tomlrepo.NewRepository(config)
	if err != nil {
		return nil, fmt.Errorf("wire tour repository: %w", err)
	}

	logs := &logOutput{out: os.Stderr}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: logs, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()

	return &app{
		service: application.NewService(repo, ports.SystemClock{}, logger),
		config:  config,
		logs:    logs,
		render:  stoolsadapter.Render,
		animate: stoolsadapter.Animate,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
