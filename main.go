package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/golangdaddy/doodledrive/pkg/config"
	"github.com/golangdaddy/doodledrive/pkg/game"
	"github.com/golangdaddy/doodledrive/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type gameFactory func(config.Config, zerolog.Logger) (*game.Game, error)

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	flag.Parse()
	os.Exit(run(*configDir, game.NewGame))
}

// run plays the game and returns the process exit code. Deferred log and
// crash report flushing has finished by the time it returns.
func run(configDir string, newGame gameFactory) int {
	if err := config.Load(configDir); err != nil {
		fmt.Fprintf(os.Stderr, "%v, using defaults\n", err)
	}
	cfg, err := config.Current()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	outs := []io.Writer{os.Stdout}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		outs = append(outs, f)
	}
	logger := logging.New(cfg.LogLevel, outs...)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn().Err(err).Msg("crash reporting disabled")
		}
		defer sentry.Flush(time.Second * 5)
	}
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(time.Second * 5)
			panic(err)
		}
	}()

	g, err := newGame(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create game")
		return 1
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	logger.Info().Int("width", cfg.Window.Width).Int("height", cfg.Window.Height).Msg("starting")

	code := 0
	if err := ebiten.RunGame(g); err != nil {
		logger.Error().Err(err).Msg("game stopped")
		code = 1
	}

	totals := g.Totals()
	logger.Info().
		Int64("generated", totals.Generated).
		Int64("recycled", totals.Recycled).
		Int64("collisions", totals.Collisions).
		Int64("restarts", totals.Restarts).
		Msg("bye")
	return code
}
