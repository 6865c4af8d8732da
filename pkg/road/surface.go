package road

import "math"

// Surface is an opaque drawable handle. The road never looks inside it.
type Surface any

// SurfaceFactory produces the drawable used for a segment of the given kind.
type SurfaceFactory interface {
	Surface(kind Kind) Surface
}

// Texture describes how a segment's surface repeats along the road.
type Texture struct {
	RepeatU float64
	RepeatV float64
	// Offset is the scroll position along V, kept in [0, 1).
	Offset float64
}

func (t *Texture) scroll(delta float64) {
	o := math.Mod(t.Offset+delta, 1)
	if o < 0 {
		o++
	}
	t.Offset = o
}
