package vehicle

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/input"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

type collisionCounter struct{ n int }

func (c *collisionCounter) Collision() { c.n++ }

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer(DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	return p
}

func held(s input.Snapshot) input.Frame { return input.Frame{Held: s} }

func press(s input.Snapshot) input.Frame { return input.Frame{Held: s, Pressed: s} }

func TestNewPlayer_StartsInLane(t *testing.T) {
	p := newTestPlayer(t)
	assert.Equal(t, 0, p.Lane())
	assert.Equal(t, -1.25, p.Lateral())
	assert.Equal(t, 5.0, p.Speed())
	assert.Equal(t, Cruising, p.Movement().State)
	assert.False(t, p.Collided())
}

func TestNewPlayer_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartLane = 2
	_, err := NewPlayer(cfg, zerolog.Nop())
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.LaneCount = 3
	_, err = NewPlayer(cfg, zerolog.Nop())
	assert.Error(t, err, "three lanes of 2.5 do not fit a road of 5")

	cfg = DefaultConfig()
	cfg.Momentum = 1
	_, err = NewPlayer(cfg, zerolog.Nop())
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.RoadWidth = 3
	cfg.LaneWidth = 1.5
	cfg.Body.Width = 2
	_, err = NewPlayer(cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "lateral limit", "a car centred in lane 0 would hang off the road")
}

func TestUpdate_AcceleratesTowardsMaxSpeed(t *testing.T) {
	p := newTestPlayer(t)
	prev := p.Speed()
	for i := 0; i < 600; i++ {
		p.Update(frame, held(input.Snapshot{Forward: true}))
		require.LessOrEqual(t, p.Speed(), 20.0)
		require.GreaterOrEqual(t, p.Speed(), prev)
		prev = p.Speed()
	}
	assert.InDelta(t, 20, p.Speed(), 0.1)
	_, pitch := p.Tilt()
	assert.LessOrEqual(t, pitch, 0.08)
}

func TestUpdate_BrakeStopsAtZero(t *testing.T) {
	p := newTestPlayer(t)
	for i := 0; i < 600; i++ {
		p.Update(frame, held(input.Snapshot{Back: true}))
		require.GreaterOrEqual(t, p.Speed(), 0.0)
	}
	assert.InDelta(t, 0, p.Speed(), 1e-6)

	d := p.Distance()
	p.Update(frame, held(input.Snapshot{Back: true}))
	assert.InDelta(t, d, p.Distance(), 1e-6, "a stopped car does not creep")
}

func TestUpdate_FrictionIsGentlerThanBraking(t *testing.T) {
	coast := newTestPlayer(t)
	brake := newTestPlayer(t)
	for i := 0; i < 30; i++ {
		coast.Update(frame, input.Frame{})
		brake.Update(frame, held(input.Snapshot{Back: true}))
	}
	assert.Less(t, coast.Speed(), 5.0)
	assert.Greater(t, coast.Speed(), brake.Speed())
}

func TestUpdate_ForwardWinsOverBack(t *testing.T) {
	p := newTestPlayer(t)
	p.Update(frame, held(input.Snapshot{Forward: true, Back: true}))
	assert.Greater(t, p.Speed(), 5.0)
}

func TestUpdate_StaysInBoundsUnderRandomInput(t *testing.T) {
	p := newTestPlayer(t)
	rng := rand.New(rand.NewSource(7))
	limit := p.Config().LateralLimit()

	var e input.Edges
	for i := 0; i < 5000; i++ {
		s := input.Snapshot{
			Forward: rng.Intn(2) == 0,
			Back:    rng.Intn(3) == 0,
			Left:    rng.Intn(5) == 0,
			Right:   rng.Intn(5) == 0,
		}
		p.Update(frame, e.Next(s))
		require.GreaterOrEqual(t, p.Speed(), 0.0)
		require.LessOrEqual(t, p.Speed(), 20.0)
		require.LessOrEqual(t, p.Lateral(), limit)
		require.GreaterOrEqual(t, p.Lateral(), -limit)
	}
}

func TestLaneChange_CompletesAndSnaps(t *testing.T) {
	p := newTestPlayer(t)
	p.Update(frame, press(input.Snapshot{Right: true}))
	require.Equal(t, Movement{State: ChangingLane, Target: 1}, p.Movement())

	roll, _ := p.Tilt()
	assert.Greater(t, roll, 0.0)

	for i := 0; i < 300 && p.Movement().State == ChangingLane; i++ {
		p.Update(frame, input.Frame{})
	}
	assert.Equal(t, Cruising, p.Movement().State)
	assert.Equal(t, 1, p.Lane())
	assert.Equal(t, 1.25, p.Lateral())

	for i := 0; i < 60; i++ {
		p.Update(frame, input.Frame{})
	}
	roll, _ = p.Tilt()
	assert.InDelta(t, 0, roll, 1e-4, "roll decays once the change is over")
}

func TestLaneChange_IgnoresCommandsMidChange(t *testing.T) {
	p := newTestPlayer(t)
	p.Update(frame, press(input.Snapshot{Right: true}))
	for i := 0; i < 5; i++ {
		p.Update(frame, input.Frame{})
	}
	before := p.Lateral()

	p.Update(frame, press(input.Snapshot{Left: true}))
	assert.Equal(t, Movement{State: ChangingLane, Target: 1}, p.Movement())
	assert.Greater(t, p.Lateral(), before, "still heading right")
}

func TestLaneChange_EdgesOfRoad(t *testing.T) {
	p := newTestPlayer(t)
	p.Update(frame, press(input.Snapshot{Left: true}))
	assert.Equal(t, Cruising, p.Movement().State, "no lane left of lane 0")

	p.Update(frame, press(input.Snapshot{Left: true, Right: true}))
	assert.Equal(t, 1, p.Movement().Target, "right is taken when left is blocked")
}

func TestLaneChange_HeldKeyDoesNotRepeat(t *testing.T) {
	p := newTestPlayer(t)
	var e input.Edges
	for i := 0; i < 300; i++ {
		p.Update(frame, e.Next(input.Snapshot{Right: true}))
	}
	assert.Equal(t, 1, p.Lane())
	assert.Equal(t, Cruising, p.Movement().State)
}

func TestCollision(t *testing.T) {
	p := newTestPlayer(t)
	rec := &collisionCounter{}
	p.SetRecorder(rec)
	body := p.Config().Body

	same := body.Collider(mgl64.Vec3{p.Lateral(), 0, p.Distance()}, 0.8)
	assert.True(t, p.CheckCollision(same))

	other := body.Collider(mgl64.Vec3{p.Config().LaneCentre(1), 0, p.Distance()}, 0.8)
	assert.False(t, p.CheckCollision(other))

	ahead := body.Collider(mgl64.Vec3{p.Lateral(), 0, p.Distance() + 10}, 0.8)
	assert.False(t, p.CheckCollision(ahead))

	speed := p.Speed()
	p.HandleCollision()
	assert.Equal(t, speed/2, p.Speed())
	assert.True(t, p.Collided())
	assert.Equal(t, 1, rec.n)

	for i := 0; i < 20; i++ {
		p.Update(frame, input.Frame{})
	}
	assert.False(t, p.Collided())
}

func TestColliderFollowsCar(t *testing.T) {
	p := newTestPlayer(t)
	for i := 0; i < 60; i++ {
		p.Update(frame, held(input.Snapshot{Forward: true}))
	}
	box := p.Collider()
	centre := box.Min().Add(box.Max()).Mul(0.5)
	assert.InDelta(t, p.Distance(), float64(centre.Z()), 1e-4)
	assert.InDelta(t, 0.8*2, float64(box.Max().Z()-box.Min().Z()), 1e-5)
}

func TestBounceScalesWithSpeed(t *testing.T) {
	p := newTestPlayer(t)
	for i := 0; i < 600; i++ {
		p.Update(frame, held(input.Snapshot{Back: true}))
	}
	assert.InDelta(t, 0, p.Bounce(), 1e-6)

	p.Reset()
	for i := 0; i < 10; i++ {
		p.Update(frame, held(input.Snapshot{Forward: true}))
		assert.LessOrEqual(t, p.Bounce(), 0.03)
	}
}

func TestReset(t *testing.T) {
	p := newTestPlayer(t)
	p.Update(frame, press(input.Snapshot{Right: true, Forward: true}))
	p.HandleCollision()
	p.Reset()

	assert.Equal(t, 0.0, p.Distance())
	assert.Equal(t, 5.0, p.Speed())
	assert.Equal(t, Movement{}, p.Movement())
	assert.False(t, p.Collided())
}
