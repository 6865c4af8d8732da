// Command roadtrace drives the game in a terminal and draws the road from
// above. It needs no graphics and is handy for checking the road generator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/doodledrive/pkg/config"
	"github.com/golangdaddy/doodledrive/pkg/logging"
	"github.com/golangdaddy/doodledrive/pkg/models"
)

const frameTime = 16 * time.Millisecond

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if err := run(*configDir, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "roadtrace: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir, logFile string) error {
	// A missing file leaves the defaults in place.
	_ = config.Load(configDir)
	cfg, err := config.Current()
	if err != nil {
		return err
	}

	// The terminal belongs to the viewer, so logs only go to a file.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger := logging.New(cfg.LogLevel, out)

	state, err := models.NewGameState(cfg, nil, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	viewer := NewViewer(screen, state)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !viewer.HandleEvent(ev, time.Now()) {
				logger.Info().Int("best", state.Session.Best).Int("runs", state.Session.Runs).Msg("quit")
				return nil
			}
		case now := <-ticker.C:
			viewer.Step(now.Sub(last).Seconds(), now)
			last = now
			viewer.Draw()
		}
	}
}
