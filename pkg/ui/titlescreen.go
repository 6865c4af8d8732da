package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	paperColor  = color.RGBA{0xf8, 0xf8, 0xf8, 0xff}
	ruleColor   = color.RGBA{0xd0, 0xd0, 0xff, 0xff}
	marginColor = color.RGBA{0xff, 0xb0, 0xb0, 0xff}
	inkColor    = color.RGBA{0x20, 0x30, 0x90, 0xff}
	pencilColor = color.RGBA{0x70, 0x70, 0x78, 0xff}
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	best           int
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen. best is shown when non-zero.
func NewTitleScreen(best int, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		best:           best,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	DrawPaper(screen)

	elapsed := time.Since(ts.startTime).Seconds()

	// Title wobbles like it was drawn by hand
	titleText := "DOODLE DRIVE"
	face := text.NewGoXFace(bitmapfont.Face)
	textWidth := text.Advance(titleText, face)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	titleScale := 6.0 * (1.0 + 0.05*float64(sinWave(elapsed*2.0)))
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Rotate(0.03 * float64(sinWave(elapsed)))
	titleOp.GeoM.Translate(centerX-textWidth*titleScale/2, centerY-8)
	titleOp.ColorScale.ScaleWithColor(inkColor)
	text.Draw(screen, titleText, face, titleOp)

	drawText(screen, "an endless road on ruled paper", centerX, centerY+110, 24, pencilColor)
	if ts.best > 0 {
		drawText(screen, fmt.Sprintf("best %d m", ts.best), centerX, centerY+150, 20, pencilColor)
	}

	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, inkColor)
	}
	drawText(screen, "Arrows / WASD: drive | R: restart | Esc: pause", centerX, float64(height)-50, 16, pencilColor)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float32 {
	return float32(math.Sin(t))
}

// DrawPaper fills screen with a ruled notebook page.
func DrawPaper(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(paperColor)
	for y := 32; y < height; y += 32 {
		vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), 1, ruleColor, false)
	}
	vector.StrokeLine(screen, 64, 0, 64, float32(height), 2, marginColor, false)
}
