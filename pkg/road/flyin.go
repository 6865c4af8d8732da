package road

// AnimState is the fly-in state of a segment.
type AnimState int

const (
	Complete AnimState = iota
	FlyingIn
)

func (s AnimState) String() string {
	if s == FlyingIn {
		return "flying_in"
	}
	return "complete"
}

// FlyIn raises a new segment from StartY up to the road plane with a cubic
// ease-out. The zero value is a completed animation resting at height 0.
type FlyIn struct {
	State    AnimState
	StartY   float64
	Duration float64
	Elapsed  float64
	Y        float64
}

// Begin starts a fly-in from startY lasting duration seconds.
func (f *FlyIn) Begin(startY, duration float64) {
	*f = FlyIn{State: FlyingIn, StartY: startY, Duration: duration, Y: startY}
	if duration <= 0 {
		f.finish()
	}
}

// Progress returns the linear progress in [0, 1].
func (f *FlyIn) Progress() float64 {
	if f.State != FlyingIn || f.Duration <= 0 {
		return 1
	}
	return min(f.Elapsed/f.Duration, 1)
}

// Advance moves the animation forward by dt seconds and reports whether it
// completed during this call. Completed animations are left untouched.
func (f *FlyIn) Advance(dt float64) bool {
	if f.State != FlyingIn {
		return false
	}
	f.Elapsed += dt
	p := f.Progress()
	if p >= 1 {
		f.finish()
		return true
	}
	inv := 1 - p
	f.Y = f.StartY * inv * inv * inv
	return false
}

func (f *FlyIn) finish() {
	*f = FlyIn{}
}
