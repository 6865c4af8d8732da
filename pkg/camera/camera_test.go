package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCamera(t *testing.T, follow string) *Camera {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Follow = follow
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestIdeal_BehindAndAbove(t *testing.T) {
	c := newCamera(t, FollowSnap)
	ideal := c.Ideal(geom.Transform{Position: mgl64.Vec3{0, 0, 100}})

	assert.InDelta(t, 0, ideal.X(), 1e-9)
	assert.InDelta(t, 5, ideal.Y(), 0.01)
	assert.InDelta(t, 90, ideal.Z(), 0.01)

	turned := c.Ideal(geom.Transform{Heading: math.Pi / 2})
	assert.InDelta(t, -10, turned.X(), 0.01, "camera trails a car heading +X")
}

func TestUpdate_Snap(t *testing.T) {
	c := newCamera(t, FollowSnap)
	subject := geom.Transform{Position: mgl64.Vec3{1.25, 0, 40}}

	c.Update(subject, 0, 1.0/60)
	assert.True(t, c.Position().ApproxEqual(c.Ideal(subject)))

	subject.Position[2] = 60
	c.Update(subject, 0, 1.0/60)
	assert.True(t, c.Position().ApproxEqual(c.Ideal(subject)))
}

func TestUpdate_SmoothLagsBehind(t *testing.T) {
	c := newCamera(t, FollowSmooth)
	subject := geom.Transform{Position: mgl64.Vec3{0, 0, 0}}
	c.Update(subject, 0, 1.0/60)
	start := c.Position()
	assert.True(t, start.ApproxEqual(c.Ideal(subject)), "first update snaps")

	subject.Position[2] = 10
	c.Update(subject, 0, 1.0/60)
	want := start.Mul(0.9).Add(c.Ideal(subject).Mul(0.1))
	assert.True(t, c.Position().ApproxEqualThreshold(want, 1e-9))

	for i := 0; i < 500; i++ {
		c.Update(subject, 0, 1.0/60)
	}
	assert.True(t, c.Position().ApproxEqualThreshold(c.Ideal(subject), 1e-6), "converges when the subject stops")
}

func TestUpdate_LookAhead(t *testing.T) {
	c := newCamera(t, FollowSnap)
	c.Update(geom.Transform{Position: mgl64.Vec3{3, 0, 7}, Heading: math.Pi / 2}, 10, 0.1)
	assert.True(t, c.Target().ApproxEqualThreshold(mgl64.Vec3{8, 0, 7}, 1e-9))
}

func TestBob_ScalesWithSpeed(t *testing.T) {
	c := newCamera(t, FollowSnap)
	subject := geom.Transform{}
	c.clock = 0.123

	assert.True(t, c.Bob(subject, 0).ApproxEqual(mgl64.Vec3{}))
	slow := c.Bob(subject, 5).Len()
	fast := c.Bob(subject, 20).Len()
	capped := c.Bob(subject, 80).Len()
	assert.Greater(t, fast, slow)
	assert.InDelta(t, fast, capped, 1e-12)
	assert.LessOrEqual(t, fast, c.cfg.BobAmplitude*math.Sqrt(1.25))
}

func TestProject(t *testing.T) {
	c := newCamera(t, FollowSnap)
	c.Update(geom.Transform{}, 0, 0)
	vp := c.ViewProjection(640.0 / 480.0)

	x, y, ok := Project(vp, c.Target(), 640, 480)
	require.True(t, ok)
	assert.InDelta(t, 320, x, 1e-6)
	assert.InDelta(t, 240, y, 1e-6)

	rx, _, ok := Project(vp, c.Target().Add(mgl64.Vec3{1, 0, 0}), 640, 480)
	require.True(t, ok)
	assert.Greater(t, rx, x, "+X is drawn to the right")

	_, _, ok = Project(vp, mgl64.Vec3{0, 0, -100}, 640, 480)
	assert.False(t, ok, "points behind the camera are rejected")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Follow = "orbit"
	_, err := New(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Smoothing = 1
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	c := newCamera(t, FollowSmooth)
	c.Update(geom.Transform{}, 20, 1)
	c.Reset()
	far := geom.Transform{Position: mgl64.Vec3{0, 0, 500}}
	c.Update(far, 0, 0)
	assert.True(t, c.Position().ApproxEqual(c.Ideal(far)))
}
