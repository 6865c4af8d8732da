package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Pause menu options.
const (
	OptionResume  = "Resume"
	OptionRestart = "Restart"
	OptionQuit    = "Quit to Title"
)

// RunSummary is what the pause screen reports about the current run.
type RunSummary struct {
	Score int
	Best  int
	Runs  int
}

// PauseScreen is shown over a paused run
type PauseScreen struct {
	menu     Menu
	summary  RunSummary
	onChoice func(option string) // Callback with the chosen option
}

// NewPauseScreen creates a pause menu for the run described by summary.
func NewPauseScreen(summary RunSummary, onChoice func(option string)) *PauseScreen {
	return &PauseScreen{
		menu:     Menu{Options: []string{OptionResume, OptionRestart, OptionQuit}},
		summary:  summary,
		onChoice: onChoice,
	}
}

// Update handles input for the pause screen
func (ps *PauseScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ps.menu.Move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ps.menu.Move(1)
	}

	choice := ""
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		choice = OptionResume
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		choice = ps.menu.Current()
	}
	if choice != "" && ps.onChoice != nil {
		ps.onChoice(choice)
	}
	return nil
}

// Draw renders the pause screen
func (ps *PauseScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	DrawPaper(screen)

	titleText := "PAUSED"
	face := text.NewGoXFace(bitmapfont.Face)
	textWidth := text.Advance(titleText, face)

	centerX := float64(width) / 2
	centerY := float64(height) / 4

	titleScale := 5.0
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-textWidth*titleScale/2, centerY-8)
	titleOp.ColorScale.ScaleWithColor(inkColor)
	text.Draw(screen, titleText, face, titleOp)

	summary := fmt.Sprintf("score %d m   best %d m   runs %d", ps.summary.Score, ps.summary.Best, ps.summary.Runs)
	drawText(screen, summary, centerX, centerY+70, 18, pencilColor)

	buttonWidth := 300.0
	buttonHeight := 50.0
	optionY := float64(height) / 2
	optionSpacing := 70.0
	buttonX := float64(width)/2 - buttonWidth/2

	for i, option := range ps.menu.Options {
		bg := color.RGBA{0xff, 0xff, 0xff, 0xff}
		fg := pencilColor
		if i == ps.menu.Selected {
			bg = color.RGBA{0xff, 0xf2, 0x99, 0xff} // highlighter
			fg = inkColor
		}
		drawButton(screen, option, buttonX, optionY+float64(i)*optionSpacing, buttonWidth, buttonHeight, bg, fg)
	}

	drawText(screen, "Arrow Keys: Navigate | Enter: Select | Esc: Resume", centerX, float64(height)-50, 16, pencilColor)
}

// drawButton draws a button with background and text
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	buttonImg := ebiten.NewImage(int(width), int(height))
	buttonImg.Fill(bgColor)

	borderColor := pencilColor
	borderWidth := 2
	w, h := int(width), int(height)

	for i := 0; i < w; i++ {
		for j := 0; j < borderWidth; j++ {
			buttonImg.Set(i, j, borderColor)
			buttonImg.Set(i, h-1-j, borderColor)
		}
	}
	for i := 0; i < h; i++ {
		for j := 0; j < borderWidth; j++ {
			buttonImg.Set(j, i, borderColor)
			buttonImg.Set(w-1-j, i, borderColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(buttonImg, op)

	face := text.NewGoXFace(bitmapfont.Face)
	textWidth := text.Advance(label, face)

	// bitmap font is 16px tall
	textX := x + width/2 - textWidth/2
	textY := y + height/2 - 8

	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(textX, textY)
	textOp.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, face, textOp)
}

// drawText draws text centred on (centerX, centerY) at the given pixel size.
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	face := text.NewGoXFace(bitmapfont.Face)

	textWidth := text.Advance(str, face)
	scale := size / 16.0
	scaledWidth := textWidth * scale

	textX := centerX - scaledWidth/2
	scaledHeight := 16.0 * scale
	textY := centerY - scaledHeight/2 + 8

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX/scale, textY/scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
