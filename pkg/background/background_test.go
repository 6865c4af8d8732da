package background

import (
	"testing"

	"github.com/golangdaddy/doodledrive/pkg/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaint_RulesAndMargin(t *testing.T) {
	g := NewGenerator(PageSize, PageSize)
	img := g.Paint(road.Straight)
	require.Equal(t, PageSize, img.Bounds().Dx())
	require.Equal(t, PageSize, img.Bounds().Dy())

	for y := RuleSpacing; y < PageSize; y += RuleSpacing {
		assert.Equal(t, ruleColor, img.RGBAAt(PageSize-1, y), "rule at y=%d", y)
	}
	assert.Equal(t, marginColor, img.RGBAAt(MarginX, 3))
}

func TestPaint_Deterministic(t *testing.T) {
	g := NewGenerator(64, 64)
	assert.Equal(t, g.Paint(road.LeftTurn).Pix, g.Paint(road.LeftTurn).Pix)
	assert.NotEqual(t, g.Paint(road.LeftTurn).Pix, g.Paint(road.RightTurn).Pix)
}

func TestPaint_TurnArrows(t *testing.T) {
	g := NewGenerator(PageSize, PageSize)
	left := g.Paint(road.LeftTurn)
	right := g.Paint(road.RightTurn)

	// Arrow heads sit at opposite ends of the shaft.
	assert.Equal(t, pencilColor, left.RGBAAt(MarginX/2-12+3, PageSize/2-3))
	assert.Equal(t, pencilColor, right.RGBAAt(MarginX/2+12-3, PageSize/2-3))
}
