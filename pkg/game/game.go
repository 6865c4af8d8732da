package game

import (
	"github.com/golangdaddy/doodledrive/pkg/background"
	"github.com/golangdaddy/doodledrive/pkg/config"
	"github.com/golangdaddy/doodledrive/pkg/models"
	"github.com/golangdaddy/doodledrive/pkg/telemetry"
	"github.com/golangdaddy/doodledrive/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           config.Config
	log           zerolog.Logger
	state         *models.GameState
	recorder      *telemetry.Recorder
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance starting on the title screen.
func NewGame(cfg config.Config, logger zerolog.Logger) (*Game, error) {
	state, err := models.NewGameState(cfg, background.NewNotebook(), logger)
	if err != nil {
		return nil, err
	}
	recorder, err := telemetry.NewRecorder(telemetry.Meter(), func() int64 {
		return int64(state.Road.Len())
	})
	if err != nil {
		return nil, err
	}
	state.SetRecorder(recorder)

	g := &Game{
		cfg:      cfg,
		log:      logger.With().Str("component", "screens").Logger(),
		state:    state,
		recorder: recorder,
	}
	g.showTitle()
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Totals returns the telemetry counters collected so far.
func (g *Game) Totals() telemetry.Totals {
	return g.recorder.Totals()
}

func (g *Game) showTitle() {
	g.log.Debug().Msg("title")
	g.currentScreen = ui.NewTitleScreen(g.state.Session.Best, func() {
		g.state.Reset()
		g.startGameplay()
	})
}

// startGameplay resumes driving the current run
func (g *Game) startGameplay() {
	g.log.Debug().Msg("gameplay")
	g.currentScreen = NewGameplayScreen(g.state, g.cfg.Window, func() {
		g.showPause()
	})
}

func (g *Game) showPause() {
	g.log.Debug().Msg("pause")
	summary := ui.RunSummary{
		Score: g.state.Score(),
		Best:  g.state.Session.Best,
		Runs:  g.state.Session.Runs,
	}
	g.currentScreen = ui.NewPauseScreen(summary, func(option string) {
		switch option {
		case ui.OptionRestart:
			g.state.Restart()
			g.startGameplay()
		case ui.OptionQuit:
			g.state.Session.EndRun(g.state.Score(), g.state.Player.Distance())
			g.showTitle()
		default:
			g.startGameplay()
		}
	})
}
