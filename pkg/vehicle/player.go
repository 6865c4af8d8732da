package vehicle

import (
	"math"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/input"
	"github.com/rs/zerolog"
)

const (
	rollDecay       = 0.8
	pitchDecay      = 0.9
	pitchStep       = 0.01
	maxPitchUp      = 0.08
	maxPitchDown    = -0.05
	laneChangePitch = 0.05
	laneApproach    = 0.2
)

// MovementState tells whether the car is holding its lane.
type MovementState int

const (
	Cruising MovementState = iota
	ChangingLane
)

func (s MovementState) String() string {
	if s == ChangingLane {
		return "changing_lane"
	}
	return "cruising"
}

// Movement is the lateral state of the car. Target is only meaningful while
// changing lanes.
type Movement struct {
	State  MovementState
	Target int
}

// Player is the kinematic model of the player's car in track space.
type Player struct {
	cfg      Config
	log      zerolog.Logger
	recorder Recorder

	lateral  float64
	distance float64
	speed    float64
	lane     int
	movement Movement

	roll  float64
	pitch float64
	clock float64
	flash float64

	collider cube.BBox
}

// NewPlayer creates a player at track distance 0 in the configured lane.
func NewPlayer(cfg Config, logger zerolog.Logger) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Player{
		cfg: cfg,
		log: logger.With().Str("component", "player").Logger(),
	}
	p.Reset()
	return p, nil
}

// SetRecorder installs r to receive player events.
func (p *Player) SetRecorder(r Recorder) {
	p.recorder = r
}

// Reset puts the car back at the start line.
func (p *Player) Reset() {
	p.lane = p.cfg.StartLane
	p.lateral = p.cfg.LaneCentre(p.lane)
	p.distance = 0
	p.speed = p.cfg.InitialSpeed
	p.movement = Movement{}
	p.roll, p.pitch = 0, 0
	p.clock, p.flash = 0, 0
	p.updateCollider()
}

// Update advances the car by dt seconds. Lane changes start on the press
// edge of left or right and only while cruising; forward wins over back and
// left wins over right when both are down.
func (p *Player) Update(dt float64, in input.Frame) {
	p.clock += dt
	if p.flash > 0 {
		p.flash = math.Max(0, p.flash-dt)
	}

	if p.movement.State == Cruising {
		switch {
		case in.Pressed.Left && p.lane > 0:
			p.beginLaneChange(p.lane - 1)
		case in.Pressed.Right && p.lane < p.cfg.LaneCount-1:
			p.beginLaneChange(p.lane + 1)
		}
	}
	p.updateLateral(dt)
	p.updateSpeed(dt, in.Held)

	p.distance += p.speed * dt
	p.updateCollider()
}

func (p *Player) beginLaneChange(target int) {
	p.movement = Movement{State: ChangingLane, Target: target}
	p.log.Debug().Int("from", p.lane).Int("to", target).Msg("lane change")
}

func (p *Player) updateLateral(dt float64) {
	if p.movement.State != ChangingLane {
		p.roll *= rollDecay
		return
	}

	target := p.cfg.LaneCentre(p.movement.Target)
	diff := target - p.lateral
	dist := math.Abs(diff)
	if dist <= p.cfg.LaneSnap {
		p.lateral = target
		p.lane = p.movement.Target
		p.movement = Movement{}
		return
	}

	dir := math.Copysign(1, diff)
	step := math.Min(p.cfg.LaneChangeSpeed*dt, dist*laneApproach)
	limit := p.cfg.LateralLimit()
	p.lateral = mgl64.Clamp(p.lateral+dir*step, -limit, limit)
	p.roll = dir * math.Min(dist, 1) * p.cfg.MaxRoll
}

func (p *Player) updateSpeed(dt float64, held input.Snapshot) {
	prev := p.speed

	var next float64
	switch {
	case held.Forward:
		next = p.speed + p.cfg.Acceleration*dt
	case held.Back:
		next = p.speed - p.cfg.Deceleration*dt
	default:
		next = p.speed - p.cfg.Deceleration*p.cfg.Friction*dt
	}
	next = mgl64.Clamp(next, p.cfg.MinSpeed, p.cfg.MaxSpeed)
	p.speed = mgl64.Clamp(p.cfg.Momentum*prev+(1-p.cfg.Momentum)*next, p.cfg.MinSpeed, p.cfg.MaxSpeed)

	switch {
	case p.movement.State == ChangingLane:
		p.pitch = laneChangePitch
	case p.speed > prev:
		p.pitch = math.Min(p.pitch+pitchStep, maxPitchUp)
	case p.speed < prev:
		p.pitch = math.Max(p.pitch-pitchStep, maxPitchDown)
	default:
		p.pitch *= pitchDecay
	}
}

func (p *Player) updateCollider() {
	p.collider = p.cfg.Body.Collider(p.Position(), p.cfg.ColliderScale)
}

// CheckCollision reports whether box overlaps the car's collider.
func (p *Player) CheckCollision(box cube.BBox) bool {
	return p.collider.IntersectsWith(box)
}

// HandleCollision halves the speed and raises the collision flag for the
// configured flash time.
func (p *Player) HandleCollision() {
	p.speed = mgl64.Clamp(p.speed*0.5, p.cfg.MinSpeed, p.cfg.MaxSpeed)
	p.flash = p.cfg.CollisionFlash
	if p.recorder != nil {
		p.recorder.Collision()
	}
	p.log.Info().Float64("distance", p.distance).Float64("speed", p.speed).Msg("collision")
}

// Position returns the car's track-space position (lateral, 0, distance).
func (p *Player) Position() mgl64.Vec3 {
	return mgl64.Vec3{p.lateral, 0, p.distance}
}

// Lateral returns the offset from the road centre.
func (p *Player) Lateral() float64 { return p.lateral }

// Distance returns the distance travelled along the road.
func (p *Player) Distance() float64 { return p.distance }

// Speed returns the forward speed.
func (p *Player) Speed() float64 { return p.speed }

// Lane returns the lane the car currently occupies.
func (p *Player) Lane() int { return p.lane }

// Movement returns the lateral movement state.
func (p *Player) Movement() Movement { return p.movement }

// Tilt returns the visual roll and pitch in radians.
func (p *Player) Tilt() (roll, pitch float64) { return p.roll, p.pitch }

// Bounce returns the visual body lift for the current speed.
func (p *Player) Bounce() float64 {
	return math.Sin(p.clock*p.cfg.BounceRate) * p.cfg.BounceHeight * (p.speed / p.cfg.MaxSpeed)
}

// Collider returns the car's collision box in track space.
func (p *Player) Collider() cube.BBox { return p.collider }

// Collided reports whether a collision happened within the flash time.
func (p *Player) Collided() bool { return p.flash > 0 }

// Config returns the player's tuning.
func (p *Player) Config() Config { return p.cfg }

var _ Vehicle = (*Player)(nil)
