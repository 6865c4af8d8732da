package traffic

import (
	"math"
	"testing"

	"github.com/golangdaddy/doodledrive/pkg/vehicle"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

var openRoad = math.Inf(1)

func newController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	c, err := NewController(cfg, vehicle.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	return c
}

func quiet() Config {
	cfg := DefaultConfig()
	cfg.Enabled = false
	return cfg
}

func TestSpawn_RespectsLaneGap(t *testing.T) {
	c := newController(t, quiet())

	car, ok := c.Spawn(0, 50, 5)
	require.True(t, ok)
	assert.Equal(t, -1.25, car.Lateral)

	_, ok = c.Spawn(0, 55, 5)
	assert.False(t, ok, "too close to the car already in lane 0")

	_, ok = c.Spawn(1, 55, 5)
	assert.True(t, ok, "lane 1 is free")

	_, ok = c.Spawn(0, 80, 5)
	assert.True(t, ok)

	_, ok = c.Spawn(2, 80, 5)
	assert.False(t, ok, "no such lane")
	assert.Len(t, c.Cars(), 3)
}

func TestSpawn_PoolLimit(t *testing.T) {
	cfg := quiet()
	cfg.MaxCars = 2
	c := newController(t, cfg)

	_, ok := c.Spawn(0, 0, 5)
	require.True(t, ok)
	_, ok = c.Spawn(0, 100, 5)
	require.True(t, ok)
	_, ok = c.Spawn(1, 0, 5)
	assert.False(t, ok, "pool holds two cars")
}

func TestCollide_SameLaneOnly(t *testing.T) {
	c := newController(t, quiet())
	p, err := vehicle.NewPlayer(vehicle.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)

	_, ok := c.Spawn(1, p.Distance(), 5)
	require.True(t, ok)
	assert.Equal(t, 0, c.Collide(p), "a car one lane over is not a hit")
	assert.False(t, p.Collided())

	_, ok = c.Spawn(0, p.Distance()+0.5, 5)
	require.True(t, ok)
	speed := p.Speed()
	assert.Equal(t, 1, c.Collide(p))
	assert.Equal(t, speed/2, p.Speed())
	assert.True(t, p.Collided())

	assert.Equal(t, 0, c.Collide(p), "each car hits once")
}

func TestUpdate_RetiresCarsBehind(t *testing.T) {
	c := newController(t, quiet())
	_, ok := c.Spawn(0, 10, 5)
	require.True(t, ok)

	c.Update(0, 100, openRoad)
	assert.Empty(t, c.Cars())

	_, ok = c.Spawn(0, 10, 5)
	assert.True(t, ok, "retired car went back to the pool")
}

func TestUpdate_RetiresCarsAhead(t *testing.T) {
	c := newController(t, quiet())
	_, ok := c.Spawn(0, 200, 5)
	require.True(t, ok)
	_, ok = c.Spawn(1, 60, 5)
	require.True(t, ok)

	c.Update(0, 0, openRoad)
	require.Len(t, c.Cars(), 1, "a car past spawn range is retired")
	assert.Equal(t, 60.0, c.Cars()[0].Distance)

	c.Update(0, 0, 55)
	assert.Empty(t, c.Cars(), "a car reaching the road end is retired")
	assert.Equal(t, c.cfg.MaxCars, c.pool.Free())
}

func TestUpdate_StoppedPlayerKeepsTrafficOnRoad(t *testing.T) {
	cfg := DefaultConfig()
	c := newController(t, cfg)
	const roadEnd = 480.0

	drained := false
	for i := 0; i < 2*60*60; i++ {
		c.Update(frame, 0, roadEnd)
		require.LessOrEqual(t, len(c.Cars()), cfg.MaxCars)
		for _, car := range c.Cars() {
			require.LessOrEqual(t, car.Distance+cfg.Body.Length/2, roadEnd, "car %d left the road", car.ID)
			require.LessOrEqual(t, car.Distance, cfg.SpawnAhead+cfg.DespawnBehind)
		}
		if c.pool.Free() > 0 && i > 60*60 {
			drained = true
		}
	}
	assert.True(t, drained, "cars that outran the player went back to the pool")

	c.Update(0, 0, roadEnd)
	for lane := range c.Lanes() {
		if _, ok := c.Spawn(lane, 20, 5); ok {
			return
		}
	}
	t.Fatal("no lane accepted a new car")
}

func TestUpdate_CarsKeepTheirOrder(t *testing.T) {
	c := newController(t, quiet())
	rear, _ := c.Spawn(0, 0, 10)
	front, _ := c.Spawn(0, 13, 4)
	require.NotNil(t, rear)
	require.NotNil(t, front)

	for i := 0; i < 600; i++ {
		c.Update(frame, 0, openRoad)
		require.Less(t, rear.Distance, front.Distance)
	}
}

func TestUpdate_SpawnsDeterministically(t *testing.T) {
	run := func() []int {
		c := newController(t, DefaultConfig())
		var lanes []int
		seen := map[uint64]bool{}
		d := 0.0
		for i := 0; i < 60*60; i++ {
			d += 15 * frame
			c.Update(frame, d, openRoad)
			require.LessOrEqual(t, len(c.Cars()), DefaultConfig().MaxCars)
			for _, car := range c.Cars() {
				if !seen[car.ID] {
					seen[car.ID] = true
					lanes = append(lanes, car.Lane)
				}
			}
		}
		return lanes
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestUpdate_DisabledSpawnsNothing(t *testing.T) {
	c := newController(t, quiet())
	for i := 0; i < 600; i++ {
		c.Update(frame, float64(i), openRoad)
	}
	assert.Empty(t, c.Cars())
}

func TestReset(t *testing.T) {
	c := newController(t, quiet())
	c.Spawn(0, 10, 5)
	c.Spawn(1, 10, 5)
	c.Reset()
	assert.Empty(t, c.Cars())
	for _, lane := range c.Lanes() {
		assert.Empty(t, lane.Cars())
	}
}
