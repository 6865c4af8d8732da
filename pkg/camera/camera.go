package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
)

// Follow styles.
const (
	FollowSmooth = "smooth"
	FollowSnap   = "snap"
)

// Config holds the chase camera tuning. Angles are in degrees.
type Config struct {
	Angle        float64 `json:"angle" mapstructure:"angle"`
	Distance     float64 `json:"distance" mapstructure:"distance"`
	LookAhead    float64 `json:"lookAhead" mapstructure:"lookAhead"`
	BobAmplitude float64 `json:"bobAmplitude" mapstructure:"bobAmplitude"`
	BobFrequency float64 `json:"bobFrequency" mapstructure:"bobFrequency"`
	SpeedCap     float64 `json:"speedCap" mapstructure:"speedCap"`
	Follow       string  `json:"follow" mapstructure:"follow"`
	// Smoothing is the weight kept from the previous position each frame.
	Smoothing   float64 `json:"smoothing" mapstructure:"smoothing"`
	FieldOfView float64 `json:"fieldOfView" mapstructure:"fieldOfView"`
	Near        float64 `json:"near" mapstructure:"near"`
	Far         float64 `json:"far" mapstructure:"far"`
}

// DefaultConfig places the camera about 11 units behind and 5 above the car.
func DefaultConfig() Config {
	return Config{
		Angle:        26.57,
		Distance:     11.18,
		LookAhead:    5,
		BobAmplitude: 0.05,
		BobFrequency: 1.6,
		SpeedCap:     20,
		Follow:       FollowSmooth,
		Smoothing:    0.9,
		FieldOfView:  60,
		Near:         0.1,
		Far:          1000,
	}
}

// Validate rejects unusable camera settings.
func (c Config) Validate() error {
	if c.Follow != FollowSmooth && c.Follow != FollowSnap {
		return fmt.Errorf("camera: unknown follow style %q", c.Follow)
	}
	if c.Smoothing < 0 || c.Smoothing >= 1 {
		return fmt.Errorf("camera: smoothing must be in [0, 1), got %v", c.Smoothing)
	}
	if c.SpeedCap <= 0 {
		return fmt.Errorf("camera: speed cap must be positive, got %v", c.SpeedCap)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return fmt.Errorf("camera: field of view must be in (0, 180), got %v", c.FieldOfView)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("camera: bad clip planes %v..%v", c.Near, c.Far)
	}
	return nil
}

// Camera is a chase camera that trails a subject on the road.
type Camera struct {
	cfg      Config
	position mgl64.Vec3
	target   mgl64.Vec3
	clock    float64
	primed   bool
}

// New creates a camera. The first Update always snaps into place.
func New(cfg Config) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Camera{cfg: cfg}, nil
}

// Reset forgets the previous position so the next Update snaps.
func (c *Camera) Reset() {
	c.position, c.target = mgl64.Vec3{}, mgl64.Vec3{}
	c.clock = 0
	c.primed = false
}

// Ideal returns where the camera wants to be for subject, without bob.
func (c *Camera) Ideal(subject geom.Transform) mgl64.Vec3 {
	angle := mgl64.DegToRad(c.cfg.Angle)
	up := geom.Up.Mul(math.Sin(angle) * c.cfg.Distance)
	back := subject.Forward().Mul(math.Cos(angle) * c.cfg.Distance)
	return subject.Position.Add(up).Sub(back)
}

// Bob returns the speed-scaled sway offset at the camera's current clock.
func (c *Camera) Bob(subject geom.Transform, speed float64) mgl64.Vec3 {
	k := math.Min(math.Max(speed, 0), c.cfg.SpeedCap) / c.cfg.SpeedCap
	a := c.cfg.BobAmplitude * k
	f := c.cfg.BobFrequency
	vertical := a * math.Sin(2*math.Pi*f*c.clock)
	lateral := a * 0.5 * math.Sin(math.Pi*f*c.clock)
	return geom.Up.Mul(vertical).Add(subject.Right().Mul(lateral))
}

// Update moves the camera after subject, which travels at speed.
func (c *Camera) Update(subject geom.Transform, speed, dt float64) {
	c.clock += dt
	ideal := c.Ideal(subject).Add(c.Bob(subject, speed))

	if !c.primed || c.cfg.Follow == FollowSnap {
		c.position = ideal
		c.primed = true
	} else {
		a := c.cfg.Smoothing
		c.position = c.position.Mul(a).Add(ideal.Mul(1 - a))
	}
	c.target = subject.Position.Add(subject.Forward().Mul(c.cfg.LookAhead))
}

// Position returns the camera position.
func (c *Camera) Position() mgl64.Vec3 { return c.position }

// Target returns the point the camera looks at.
func (c *Camera) Target() mgl64.Vec3 { return c.target }

// View returns the view matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.position, c.target, geom.Up)
}

// ViewProjection returns projection*view for a viewport of the given aspect.
// The road frame has +X to the right of travel, so X is mirrored after the
// right-handed projection.
func (c *Camera) ViewProjection(aspect float64) mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.cfg.FieldOfView), aspect, c.cfg.Near, c.cfg.Far)
	return mgl64.Scale3D(-1, 1, 1).Mul4(proj).Mul4(c.View())
}

// Project maps a world point to pixel coordinates on a width x height
// viewport with Y growing downwards. ok is false for points behind the near
// plane.
func Project(vp mgl64.Mat4, world mgl64.Vec3, width, height float64) (x, y float64, ok bool) {
	clip := vp.Mul4x1(world.Vec4(1))
	if clip.W() <= 1e-6 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return (ndc.X() + 1) / 2 * width, (1 - ndc.Y()) / 2 * height, true
}
