package road

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
)

// Kind is the shape of a road segment.
type Kind int

const (
	Straight Kind = iota
	LeftTurn
	RightTurn
)

func (k Kind) String() string {
	switch k {
	case Straight:
		return "straight"
	case LeftTurn:
		return "left_turn"
	case RightTurn:
		return "right_turn"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsTurn reports whether k bends the road.
func (k Kind) IsTurn() bool {
	return k == LeftTurn || k == RightTurn
}

// exit returns where a segment of this kind ends, in the segment's own frame.
// Turns are quarter circles of radius length/2.
func (k Kind) exit(length float64) geom.Transform {
	r := length / 2
	switch k {
	case LeftTurn:
		return geom.Transform{Position: mgl64.Vec3{-r, 0, r}, Heading: -math.Pi / 2}
	case RightTurn:
		return geom.Transform{Position: mgl64.Vec3{r, 0, r}, Heading: math.Pi / 2}
	}
	return geom.Transform{Position: mgl64.Vec3{0, 0, length}}
}

// centerline returns the local pose at fraction t of the segment. t is
// clamped to [0, 1]; the pose at t=1 equals exit.
func (k Kind) centerline(length, t float64) geom.Transform {
	t = mgl64.Clamp(t, 0, 1)
	r := length / 2
	a := t * math.Pi / 2
	switch k {
	case LeftTurn:
		return geom.Transform{Position: mgl64.Vec3{r * (math.Cos(a) - 1), 0, r * math.Sin(a)}, Heading: -a}
	case RightTurn:
		return geom.Transform{Position: mgl64.Vec3{r * (1 - math.Cos(a)), 0, r * math.Sin(a)}, Heading: a}
	}
	return geom.Transform{Position: mgl64.Vec3{0, 0, t * length}}
}

// Config holds the road generation tunables.
type Config struct {
	SegmentLength       float64 `json:"segmentLength" mapstructure:"segmentLength"`
	RoadWidth           float64 `json:"roadWidth" mapstructure:"roadWidth"`
	SegmentsAhead       int     `json:"segmentsAhead" mapstructure:"segmentsAhead"`
	SegmentsBehind      int     `json:"segmentsBehind" mapstructure:"segmentsBehind"`
	StraightsBeforeTurn int     `json:"straightsBeforeTurn" mapstructure:"straightsBeforeTurn"`
	FlyInDistance       float64 `json:"flyInDistance" mapstructure:"flyInDistance"`
	FlyInDuration       float64 `json:"flyInDuration" mapstructure:"flyInDuration"`
	// TextureScroll is the texture offset advanced per second, in repeats.
	TextureScroll float64 `json:"textureScroll" mapstructure:"textureScroll"`
}

// DefaultConfig returns the tuning used by the demo.
func DefaultConfig() Config {
	return Config{
		SegmentLength:       40,
		RoadWidth:           5,
		SegmentsAhead:       12,
		SegmentsBehind:      6,
		StraightsBeforeTurn: 8,
		FlyInDistance:       30,
		FlyInDuration:       0.8,
		TextureScroll:       0.25,
	}
}

// Validate rejects configurations the manager cannot run with.
func (c Config) Validate() error {
	if c.SegmentLength <= 0 {
		return fmt.Errorf("road: segment length must be positive, got %v", c.SegmentLength)
	}
	if c.RoadWidth <= 0 {
		return fmt.Errorf("road: road width must be positive, got %v", c.RoadWidth)
	}
	if c.SegmentsAhead < 1 {
		return fmt.Errorf("road: need at least one segment ahead, got %d", c.SegmentsAhead)
	}
	if c.SegmentsBehind < 0 {
		return fmt.Errorf("road: segments behind cannot be negative, got %d", c.SegmentsBehind)
	}
	if c.StraightsBeforeTurn < 1 {
		return fmt.Errorf("road: straights before turn must be at least 1, got %d", c.StraightsBeforeTurn)
	}
	if c.FlyInDuration < 0 || c.FlyInDistance < 0 {
		return fmt.Errorf("road: fly-in distance and duration cannot be negative")
	}
	return nil
}

// PoolSize is the number of segment slots a manager with this config owns.
// The active sequence never exceeds SegmentsAhead+SegmentsBehind+1 after an
// update and one more while an update is in progress.
func (c Config) PoolSize() int {
	return c.SegmentsAhead + c.SegmentsBehind + 2
}
