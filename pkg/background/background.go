package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/doodledrive/pkg/road"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// PageSize is the side of a square notebook page in pixels.
	PageSize = 512
	// RuleSpacing is the distance between ruled lines.
	RuleSpacing = 32
	// MarginX is the column of the red margin line.
	MarginX = 64
)

var (
	paperColor  = color.RGBA{0xf8, 0xf8, 0xf8, 0xff}
	ruleColor   = color.RGBA{0xd0, 0xd0, 0xff, 0xff}
	marginColor = color.RGBA{0xff, 0xb0, 0xb0, 0xff}
	pencilColor = color.RGBA{0x70, 0x70, 0x78, 0xff}
)

// Generator paints notebook paper for the road surface.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new page generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Paint draws a page for kind. The same kind always gives the same page.
func (g *Generator) Paint(kind road.Kind) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(int64(kind) + 1))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, paperColor)
		}
	}

	// Grain
	for i := 0; i < g.Width*g.Height/40; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(0xe8 + rng.Intn(0x10))
		img.SetRGBA(x, y, color.RGBA{shade, shade, shade, 0xff})
	}

	for y := RuleSpacing; y < g.Height; y += RuleSpacing {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, ruleColor)
		}
	}
	for y := 0; y < g.Height; y++ {
		if MarginX < g.Width {
			img.SetRGBA(MarginX, y, marginColor)
			img.SetRGBA(MarginX+1, y, marginColor)
		}
	}

	switch kind {
	case road.LeftTurn:
		g.drawArrow(img, MarginX/2, g.Height/2, -1)
	case road.RightTurn:
		g.drawArrow(img, MarginX/2, g.Height/2, 1)
	}
	for i := 0; i < 3; i++ {
		x := MarginX + 16 + rng.Intn(max(1, g.Width-MarginX-32))
		y := 16 + rng.Intn(max(1, g.Height-32))
		g.drawRing(img, x, y, 4+rng.Intn(8))
	}
	return img
}

// drawRing draws a pencil circle
func (g *Generator) drawRing(img *image.RGBA, x, y, radius int) {
	steps := radius * 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		g.plot(img, x+int(math.Round(float64(radius)*math.Cos(a))), y+int(math.Round(float64(radius)*math.Sin(a))))
	}
}

// drawArrow draws a margin arrow pointing left (dir -1) or right (dir 1).
func (g *Generator) drawArrow(img *image.RGBA, x, y, dir int) {
	const half = 12
	for dx := -half; dx <= half; dx++ {
		g.plot(img, x+dx, y)
	}
	tip := x + dir*half
	for d := 0; d <= half/2; d++ {
		g.plot(img, tip-dir*d, y-d)
		g.plot(img, tip-dir*d, y+d)
	}
}

func (g *Generator) plot(img *image.RGBA, x, y int) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, pencilColor)
	}
}

// Notebook hands out one page image per segment kind to the road.
type Notebook struct {
	gen   *Generator
	pages map[road.Kind]*ebiten.Image
}

// NewNotebook creates a surface factory with PageSize pages.
func NewNotebook() *Notebook {
	return &Notebook{
		gen:   NewGenerator(PageSize, PageSize),
		pages: map[road.Kind]*ebiten.Image{},
	}
}

// Surface returns the cached *ebiten.Image for kind, painting it on first use.
func (n *Notebook) Surface(kind road.Kind) road.Surface {
	if page, ok := n.pages[kind]; ok {
		return page
	}
	page := ebiten.NewImageFromImage(n.gen.Paint(kind))
	n.pages[kind] = page
	return page
}

var _ road.SurfaceFactory = (*Notebook)(nil)
