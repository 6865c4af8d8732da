package vehicle

import "github.com/ethaniccc/float32-cube/cube"

// Vehicle is anything that occupies the road and can be hit. Positions and
// colliders are in track space: x is the lateral offset from the road
// centre, z the distance along the road.
type Vehicle interface {
	Speed() float64
	Collider() cube.BBox
}

// Recorder receives player events.
type Recorder interface {
	Collision()
}
