package traffic

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
	"github.com/golangdaddy/doodledrive/pkg/pool"
	"github.com/golangdaddy/doodledrive/pkg/vehicle"
	"github.com/rs/zerolog"
)

// Config holds the traffic tuning. Distances are along the road.
type Config struct {
	Enabled       bool         `json:"enabled" mapstructure:"enabled"`
	Seed          int64        `json:"seed" mapstructure:"seed"`
	MaxCars       int          `json:"maxCars" mapstructure:"maxCars"`
	SpawnInterval float64      `json:"spawnInterval" mapstructure:"spawnInterval"`
	SpawnChance   float64      `json:"spawnChance" mapstructure:"spawnChance"`
	SpawnAhead    float64      `json:"spawnAhead" mapstructure:"spawnAhead"`
	DespawnBehind float64      `json:"despawnBehind" mapstructure:"despawnBehind"`
	MinGap        float64      `json:"minGap" mapstructure:"minGap"`
	MinSpeed      float64      `json:"minSpeed" mapstructure:"minSpeed"`
	MaxSpeed      float64      `json:"maxSpeed" mapstructure:"maxSpeed"`
	ColliderScale float64      `json:"colliderScale" mapstructure:"colliderScale"`
	Body          vehicle.Body `json:"body" mapstructure:"body"`
}

// DefaultConfig returns slow traffic that appears every second or so.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		Seed:          1,
		MaxCars:       12,
		SpawnInterval: 1.2,
		SpawnChance:   0.6,
		SpawnAhead:    120,
		DespawnBehind: 30,
		MinGap:        12,
		MinSpeed:      4,
		MaxSpeed:      10,
		ColliderScale: 0.8,
		Body:          vehicle.Body{Width: 1, Height: 0.5, Length: 2},
	}
}

// Validate rejects unusable traffic settings.
func (c Config) Validate() error {
	if c.MaxCars < 0 {
		return fmt.Errorf("traffic: max cars cannot be negative, got %d", c.MaxCars)
	}
	if c.Enabled && c.SpawnInterval <= 0 {
		return fmt.Errorf("traffic: spawn interval must be positive, got %v", c.SpawnInterval)
	}
	if c.MinSpeed > c.MaxSpeed || c.MinSpeed < 0 {
		return fmt.Errorf("traffic: bad speed range %v..%v", c.MinSpeed, c.MaxSpeed)
	}
	return nil
}

var _ vehicle.Vehicle = (*Car)(nil)

// Car is a slower vehicle holding one lane.
type Car struct {
	ID       uint64
	Lane     int
	Lateral  float64
	Distance float64
	speed    float64
	hit      bool
	collider cube.BBox
}

// Speed returns the car's forward speed.
func (c *Car) Speed() float64 { return c.speed }

// Collider returns the car's collision box in track space.
func (c *Car) Collider() cube.BBox { return c.collider }

// Hit reports whether the player already ran into this car.
func (c *Car) Hit() bool { return c.hit }

// LaneController keeps the cars of one lane ordered by distance.
type LaneController struct {
	index  int
	centre float64
	cars   []*Car
}

// NewLaneController creates an empty lane centred at centre.
func NewLaneController(index int, centre float64) *LaneController {
	return &LaneController{
		index:  index,
		centre: centre,
		cars:   make([]*Car, 0),
	}
}

// Cars returns the lane's cars from nearest to furthest.
func (lc *LaneController) Cars() []*Car {
	return lc.cars
}

func (lc *LaneController) insert(car *Car) {
	lc.cars = append(lc.cars, car)
	sort.Slice(lc.cars, func(i, j int) bool { return lc.cars[i].Distance < lc.cars[j].Distance })
}

// follow slows each car to the speed of the car ahead once it is within gap,
// so cars in a lane never pass through each other.
func (lc *LaneController) follow(gap float64) {
	for i := len(lc.cars) - 2; i >= 0; i-- {
		car, ahead := lc.cars[i], lc.cars[i+1]
		if ahead.Distance-car.Distance < gap {
			car.speed = math.Min(car.speed, ahead.speed)
		}
	}
}

// free reports whether box keeps at least gap clearance from every car.
func (lc *LaneController) free(box cube.BBox, gap float64) bool {
	for _, car := range lc.cars {
		if float64(geom.ForwardGap(car.collider, box)) < gap {
			return false
		}
	}
	return true
}

// Controller spawns traffic ahead of the player, drives it and retires it
// once it falls behind.
type Controller struct {
	cfg   Config
	log   zerolog.Logger
	lanes []*LaneController
	pool  *pool.Pool[Car]
	rng   *rand.Rand
	timer float64
	next  uint64
	all   []*Car
}

// NewController creates traffic for the lanes described by road.
func NewController(cfg Config, road vehicle.Config, logger zerolog.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:  cfg,
		log:  logger.With().Str("component", "traffic").Logger(),
		pool: pool.New[Car](cfg.MaxCars, func(car *Car) { *car = Car{} }),
	}
	for i := 0; i < road.LaneCount; i++ {
		c.lanes = append(c.lanes, NewLaneController(i, road.LaneCentre(i)))
	}
	c.Reset()
	return c, nil
}

// Reset clears every lane and reseeds the spawner.
func (c *Controller) Reset() {
	for _, lane := range c.lanes {
		for _, car := range lane.cars {
			c.pool.Release(car)
		}
		lane.cars = lane.cars[:0]
	}
	c.rng = rand.New(rand.NewSource(c.cfg.Seed))
	c.timer = 0
}

// Update drives every car by dt and spawns new ones ahead of playerDistance.
// Cars are retired once they fall DespawnBehind behind the player, pull more
// than SpawnAhead+DespawnBehind ahead of it, or reach roadEnd.
func (c *Controller) Update(dt, playerDistance, roadEnd float64) {
	half := c.cfg.Body.Length / 2
	horizon := math.Min(playerDistance+c.cfg.SpawnAhead+c.cfg.DespawnBehind, roadEnd)
	for _, lane := range c.lanes {
		lane.follow(c.cfg.MinGap)
		kept := lane.cars[:0]
		for _, car := range lane.cars {
			car.Distance += car.speed * dt
			c.refresh(car)
			if car.Distance < playerDistance-c.cfg.DespawnBehind || car.Distance+half > horizon {
				c.pool.Release(car)
				continue
			}
			kept = append(kept, car)
		}
		lane.cars = kept
	}
	if !c.cfg.Enabled || len(c.lanes) == 0 {
		return
	}
	at := playerDistance + c.cfg.SpawnAhead
	c.timer += dt
	for c.timer >= c.cfg.SpawnInterval {
		c.timer -= c.cfg.SpawnInterval
		if c.rng.Float64() >= c.cfg.SpawnChance || at+half > roadEnd {
			continue
		}
		lane := c.rng.Intn(len(c.lanes))
		speed := c.cfg.MinSpeed + c.rng.Float64()*(c.cfg.MaxSpeed-c.cfg.MinSpeed)
		c.Spawn(lane, at, speed)
	}
}

// Spawn places a car in lane at distance. It fails when the lane is too
// crowded there or the traffic pool is empty.
func (c *Controller) Spawn(lane int, distance, speed float64) (*Car, bool) {
	if lane < 0 || lane >= len(c.lanes) {
		return nil, false
	}
	lc := c.lanes[lane]
	probe := c.cfg.Body.Collider(mgl64.Vec3{lc.centre, 0, distance}, c.cfg.ColliderScale)
	if !lc.free(probe, c.cfg.MinGap) {
		return nil, false
	}
	car, ok := c.pool.Acquire()
	if !ok {
		return nil, false
	}
	c.next++
	car.ID = c.next
	car.Lane = lane
	car.Lateral = lc.centre
	car.Distance = distance
	car.speed = speed
	c.refresh(car)
	lc.insert(car)

	c.log.Debug().Uint64("id", car.ID).Int("lane", lane).Float64("distance", distance).Msg("traffic spawned")
	return car, true
}

// Collide checks the player against every car it has not hit yet and applies
// the collision response once per car. It returns the number of new hits.
func (c *Controller) Collide(p *vehicle.Player) int {
	hits := 0
	for _, lane := range c.lanes {
		for _, car := range lane.cars {
			if car.hit || !p.CheckCollision(car.collider) {
				continue
			}
			car.hit = true
			p.HandleCollision()
			hits++
		}
	}
	return hits
}

// Cars returns every active car lane by lane. The slice is reused by the next
// call.
func (c *Controller) Cars() []*Car {
	c.all = c.all[:0]
	for _, lane := range c.lanes {
		c.all = append(c.all, lane.cars...)
	}
	return c.all
}

// Config returns the traffic configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Lanes returns the lane controllers.
func (c *Controller) Lanes() []*LaneController {
	return c.lanes
}

func (c *Controller) refresh(car *Car) {
	car.collider = c.cfg.Body.Collider(mgl64.Vec3{car.Lateral, 0, car.Distance}, c.cfg.ColliderScale)
}
