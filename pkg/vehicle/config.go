package vehicle

import (
	"fmt"
	"math"
)

// Config holds the player tuning. Speeds are in units per second.
type Config struct {
	Body            Body    `json:"body" mapstructure:"body"`
	LaneCount       int     `json:"laneCount" mapstructure:"laneCount"`
	LaneWidth       float64 `json:"laneWidth" mapstructure:"laneWidth"`
	RoadWidth       float64 `json:"roadWidth" mapstructure:"roadWidth"`
	StartLane       int     `json:"startLane" mapstructure:"startLane"`
	LaneChangeSpeed float64 `json:"laneChangeSpeed" mapstructure:"laneChangeSpeed"`
	LaneSnap        float64 `json:"laneSnap" mapstructure:"laneSnap"`

	InitialSpeed float64 `json:"initialSpeed" mapstructure:"initialSpeed"`
	MinSpeed     float64 `json:"minSpeed" mapstructure:"minSpeed"`
	MaxSpeed     float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
	Acceleration float64 `json:"acceleration" mapstructure:"acceleration"`
	Deceleration float64 `json:"deceleration" mapstructure:"deceleration"`
	// Friction is the fraction of Deceleration applied when no key is held.
	Friction float64 `json:"friction" mapstructure:"friction"`
	// Momentum is the weight of last frame's speed in the blend.
	Momentum float64 `json:"momentum" mapstructure:"momentum"`

	ColliderScale  float64 `json:"colliderScale" mapstructure:"colliderScale"`
	CollisionFlash float64 `json:"collisionFlash" mapstructure:"collisionFlash"`
	MaxRoll        float64 `json:"maxRoll" mapstructure:"maxRoll"`
	BounceHeight   float64 `json:"bounceHeight" mapstructure:"bounceHeight"`
	BounceRate     float64 `json:"bounceRate" mapstructure:"bounceRate"`
}

// DefaultConfig returns the tuning of the demo car.
func DefaultConfig() Config {
	return Config{
		Body:            Body{Width: 1, Height: 0.5, Length: 2},
		LaneCount:       2,
		LaneWidth:       2.5,
		RoadWidth:       5,
		LaneChangeSpeed: 2.5,
		LaneSnap:        0.05,
		InitialSpeed:    5,
		MinSpeed:        0,
		MaxSpeed:        20,
		Acceleration:    15,
		Deceleration:    20,
		Friction:        0.1,
		Momentum:        0.7,
		ColliderScale:   0.8,
		CollisionFlash:  0.2,
		MaxRoll:         0.3,
		BounceHeight:    0.03,
		BounceRate:      10,
	}
}

// Validate rejects tunings the model cannot honour.
func (c Config) Validate() error {
	if c.LaneCount < 1 {
		return fmt.Errorf("vehicle: lane count must be at least 1, got %d", c.LaneCount)
	}
	if c.StartLane < 0 || c.StartLane >= c.LaneCount {
		return fmt.Errorf("vehicle: start lane %d outside [0, %d)", c.StartLane, c.LaneCount)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("vehicle: max speed must be positive, got %v", c.MaxSpeed)
	}
	if c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("vehicle: min speed %v above max speed %v", c.MinSpeed, c.MaxSpeed)
	}
	if c.InitialSpeed < c.MinSpeed || c.InitialSpeed > c.MaxSpeed {
		return fmt.Errorf("vehicle: initial speed %v outside [%v, %v]", c.InitialSpeed, c.MinSpeed, c.MaxSpeed)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("vehicle: momentum must be in [0, 1), got %v", c.Momentum)
	}
	if c.Body.Width > c.RoadWidth {
		return fmt.Errorf("vehicle: car wider than the road")
	}
	if half := c.LaneWidth * float64(c.LaneCount) / 2; half > c.RoadWidth/2 {
		return fmt.Errorf("vehicle: %d lanes of %v do not fit a road of %v", c.LaneCount, c.LaneWidth, c.RoadWidth)
	}
	if outer := math.Abs(c.LaneCentre(0)); outer > c.LateralLimit() {
		return fmt.Errorf("vehicle: outer lane centre %v is past the lateral limit %v", outer, c.LateralLimit())
	}
	return nil
}

// LaneCentre returns the lateral offset of lane i's centre.
func (c Config) LaneCentre(i int) float64 {
	return (float64(i) - float64(c.LaneCount-1)/2) * c.LaneWidth
}

// LateralLimit is the furthest the car's centre may sit from the road centre.
func (c Config) LateralLimit() float64 {
	return c.RoadWidth/2 - c.Body.Width/2
}
