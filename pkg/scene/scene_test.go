package scene

import (
	"testing"

	"github.com/golangdaddy/doodledrive/pkg/config"
	"github.com/golangdaddy/doodledrive/pkg/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	width  = 1024.0
	height = 600.0
	tex    = 512.0
)

func newFrame(t *testing.T) (models.Frame, Projector) {
	t.Helper()
	cfg := config.Default()
	cfg.Traffic.Enabled = false
	gs, err := models.NewGameState(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	return gs.Frame(), NewProjector(gs.Camera, width, height)
}

func segmentStarting(t *testing.T, f models.Frame, start float64) models.SegmentView {
	t.Helper()
	for _, seg := range f.Segments {
		if seg.Entry.Position.Z() == start {
			return seg
		}
	}
	t.Fatalf("no segment starts at %v", start)
	return models.SegmentView{}
}

func TestRoadQuads_SegmentUnderThePlayer(t *testing.T) {
	f, p := newFrame(t)
	seg := segmentStarting(t, f, 0)

	quads := p.RoadQuads(nil, seg, tex, tex)
	require.Len(t, quads, 1)
	q := quads[0]

	assert.Greater(t, q[1].X, q[0].X, "the right edge is drawn right of the left edge")
	assert.Less(t, q[3].Y, q[0].Y, "the far end is higher on screen")
	assert.Equal(t, 0.0, q[0].V)
	assert.Equal(t, seg.Texture.RepeatV*tex, q[3].V)
	assert.Equal(t, tex, q[1].U)
}

func TestRoadQuads_BehindTheCamera(t *testing.T) {
	f, p := newFrame(t)
	seg := f.Segments[0]
	require.Less(t, seg.Entry.Position.Z(), -100.0)

	assert.Empty(t, p.RoadQuads(nil, seg, tex, tex))
	assert.Empty(t, p.RoadLines(nil, seg))
}

func TestRoadLines(t *testing.T) {
	f, p := newFrame(t)
	lines := p.RoadLines(nil, segmentStarting(t, f, 40))
	require.Len(t, lines, 3)
	assert.False(t, lines[0].Centre)
	assert.True(t, lines[2].Centre)
	assert.Greater(t, lines[1].X0, lines[2].X0)
	assert.Greater(t, lines[2].X0, lines[0].X0)
}

func TestCarFaces(t *testing.T) {
	f, p := newFrame(t)
	faces := p.CarFaces(nil, f.Player)
	require.Len(t, faces, 4)

	roof := faces[3].Quad
	rear := faces[2].Quad
	assert.Equal(t, 1.0, faces[3].Shade)
	assert.Less(t, roof[0].Y, rear[0].Y, "the roof sits above the rear bumper")
	for _, face := range faces {
		for _, pt := range face.Quad {
			assert.InDelta(t, width/2, pt.X, width/2)
			assert.InDelta(t, height/2, pt.Y, height/2)
		}
	}
}
