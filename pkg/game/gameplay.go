package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/golangdaddy/doodledrive/pkg/config"
	"github.com/golangdaddy/doodledrive/pkg/models"
	"github.com/golangdaddy/doodledrive/pkg/scene"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// KPHPerMetrePerSecond converts simulation speed to the speedometer unit.
const KPHPerMetrePerSecond = 3.6

var (
	deskColor   = color.RGBA{0xe9, 0xdf, 0xc8, 0xff}
	inkColor    = color.RGBA{0x20, 0x30, 0x90, 0xff}
	pencilColor = color.RGBA{0x50, 0x50, 0x58, 0xff}
	playerColor = color.RGBA{0x30, 0x60, 0xd0, 0xff}
	flashColor  = color.RGBA{0xe0, 0x20, 0x20, 0xff}
	trafficInk  = color.RGBA{0x40, 0x90, 0x40, 0xff}

	whiteImage = ebiten.NewImage(3, 3)
	whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// GameplayScreen draws the road from the chase camera and drives the game
type GameplayScreen struct {
	state   *models.GameState
	window  config.Window
	onPause func() // Callback when the player pauses

	quads    []scene.Quad
	lines    []scene.Line
	faces    []scene.Face
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewGameplayScreen creates a new gameplay screen
func NewGameplayScreen(state *models.GameState, window config.Window, onPause func()) *GameplayScreen {
	return &GameplayScreen{
		state:   state,
		window:  window,
		onPause: onPause,
	}
}

// Update advances the game by one tick
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && gs.onPause != nil {
		gs.onPause()
		return nil
	}
	gs.state.Tick(1/float64(ebiten.TPS()), ReadKeyboard())
	return nil
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(deskColor)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	frame := gs.state.Frame()
	proj := scene.NewProjector(gs.state.Camera, float64(w), float64(h))

	gs.drawRoad(screen, frame, proj)
	gs.drawCars(screen, frame, proj)
	gs.drawUI(screen, frame)
}

// drawRoad renders all road segments far to near
func (gs *GameplayScreen) drawRoad(screen *ebiten.Image, frame models.Frame, proj scene.Projector) {
	for i := len(frame.Segments) - 1; i >= 0; i-- {
		seg := frame.Segments[i]
		surface, ok := seg.Surface.(*ebiten.Image)
		if !ok {
			surface = whitePixel
		}
		b := surface.Bounds()
		gs.quads = proj.RoadQuads(gs.quads[:0], seg, float64(b.Dx()), float64(b.Dy()))
		gs.drawQuads(screen, surface, gs.quads, color.White, ebiten.AddressRepeat)

		gs.lines = proj.RoadLines(gs.lines[:0], seg)
		for _, l := range gs.lines {
			width := float32(3)
			if l.Centre {
				width = 1
			}
			vector.StrokeLine(screen, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), width, pencilColor, true)
		}
	}
}

// drawCars renders traffic and then the player's car on top
func (gs *GameplayScreen) drawCars(screen *ebiten.Image, frame models.Frame, proj scene.Projector) {
	for i := len(frame.Traffic) - 1; i >= 0; i-- {
		body := trafficInk
		if frame.Traffic[i].Collided {
			body = flashColor
		}
		gs.drawCar(screen, frame.Traffic[i], proj, body)
	}
	body := playerColor
	if frame.Player.Collided {
		body = flashColor
	}
	gs.drawCar(screen, frame.Player, proj, body)
}

func (gs *GameplayScreen) drawCar(screen *ebiten.Image, car models.CarView, proj scene.Projector, body color.RGBA) {
	gs.faces = proj.CarFaces(gs.faces[:0], car)
	for _, f := range gs.faces {
		shaded := color.RGBA{
			uint8(float64(body.R) * f.Shade),
			uint8(float64(body.G) * f.Shade),
			uint8(float64(body.B) * f.Shade),
			body.A,
		}
		gs.quads = append(gs.quads[:0], f.Quad)
		gs.drawQuads(screen, whitePixel, gs.quads, shaded, ebiten.AddressUnsafe)
		for i := range f.Quad {
			a, b := f.Quad[i], f.Quad[(i+1)%len(f.Quad)]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, pencilColor, true)
		}
	}
}

// drawQuads fills quads from src, tinted by clr
func (gs *GameplayScreen) drawQuads(screen, src *ebiten.Image, quads []scene.Quad, clr color.Color, address ebiten.Address) {
	if len(quads) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff

	gs.vertices = gs.vertices[:0]
	gs.indices = gs.indices[:0]
	for _, q := range quads {
		base := uint16(len(gs.vertices))
		for _, p := range q {
			sx, sy := float32(p.U), float32(p.V)
			if src == whitePixel {
				sx, sy = 1.5, 1.5
			}
			gs.vertices = append(gs.vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   sx,
				SrcY:   sy,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		gs.indices = append(gs.indices, base, base+1, base+2, base, base+2, base+3)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.Address = address
	screen.DrawTriangles(gs.vertices, gs.indices, src, op)
}

// drawUI renders the game UI overlay
func (gs *GameplayScreen) drawUI(screen *ebiten.Image, frame models.Frame) {
	gs.drawSpeedometer(screen, frame)

	face := text.NewGoXFace(bitmapfont.Face)
	score := fmt.Sprintf("SCORE %d   BEST %d", frame.Score, frame.Best)
	scale := 2.0
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(screen.Bounds().Dx())-text.Advance(score, face)*scale-20, 20)
	op.ColorScale.ScaleWithColor(inkColor)
	text.Draw(screen, score, face, op)

	stats := fmt.Sprintf("segments %d/%d  made %d  recycled %d", frame.Road.Active, frame.Road.Active+frame.Road.Pooled, frame.Road.Generated, frame.Road.Recycled)
	sop := &text.DrawOptions{}
	sop.GeoM.Translate(20, float64(screen.Bounds().Dy())-30)
	sop.ColorScale.ScaleWithColor(pencilColor)
	text.Draw(screen, stats, face, sop)
}

// drawSpeedometer draws a speedometer displaying current speed in km/h
func (gs *GameplayScreen) drawSpeedometer(screen *ebiten.Image, frame models.Frame) {
	speedKPH := frame.Speed * KPHPerMetrePerSecond
	maxKPH := frame.MaxSpeed * KPHPerMetrePerSecond

	x := 20.0
	y := 20.0
	width := 180.0
	height := 120.0

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{0xff, 0xff, 0xff, 0xe0}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, pencilColor, false)

	face := text.NewGoXFace(bitmapfont.Face)
	speedText := fmt.Sprintf("%.0f", speedKPH)

	textScale := 3.0
	textWidth := text.Advance(speedText, face) * textScale
	textX := x + width/2 - textWidth/2
	textY := y + 30.0

	textOp := &text.DrawOptions{}
	textOp.GeoM.Scale(textScale, textScale)
	textOp.GeoM.Translate(textX, textY)

	// Ink gets redder the closer the car is to top speed
	var speedColor color.RGBA
	switch ratio := speedKPH / maxKPH; {
	case ratio < 0.5:
		speedColor = inkColor
	case ratio < 0.8:
		speedColor = color.RGBA{0xc0, 0x80, 0x00, 0xff}
	default:
		speedColor = flashColor
	}
	textOp.ColorScale.ScaleWithColor(speedColor)
	text.Draw(screen, speedText, face, textOp)

	labelText := "KM/H"
	labelScale := 1.5
	labelWidth := text.Advance(labelText, face) * labelScale
	labelOp := &text.DrawOptions{}
	labelOp.GeoM.Scale(labelScale, labelScale)
	labelOp.GeoM.Translate(x+width/2-labelWidth/2, y+75.0)
	labelOp.ColorScale.ScaleWithColor(pencilColor)
	text.Draw(screen, labelText, face, labelOp)

	gs.drawSpeedGauge(screen, x+10, y+height-25, width-20, 15, speedKPH/maxKPH)
}

// drawSpeedGauge draws a simple horizontal gauge bar showing speed
func (gs *GameplayScreen) drawSpeedGauge(screen *ebiten.Image, x, y, width, height float64, ratio float64) {
	ratio = math.Max(0, math.Min(ratio, 1))

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{0xf0, 0xf0, 0xf0, 0xff}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, pencilColor, false)

	filled := width * ratio
	if filled <= 0 {
		return
	}
	// Blue to red
	barColor := color.RGBA{
		uint8(0x30 + ratio*0xb0),
		uint8(0x60 - ratio*0x40),
		uint8(0xd0 - ratio*0xb0),
		0xff,
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), barColor, false)
}
