package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis.
var Up = mgl64.Vec3{0, 1, 0}

// Transform places a frame on the ground plane. Heading 0 faces +Z and
// positive headings turn towards +X, so a right turn adds +π/2.
type Transform struct {
	Position mgl64.Vec3
	Heading  float64
}

// Forward returns the unit direction of travel for heading.
func Forward(heading float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(heading).Mul3x1(mgl64.Vec3{0, 0, 1})
}

// Right returns the unit vector pointing to the right of travel for heading.
func Right(heading float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(heading).Mul3x1(mgl64.Vec3{1, 0, 0})
}

// Forward returns the transform's direction of travel.
func (t Transform) Forward() mgl64.Vec3 { return Forward(t.Heading) }

// Right returns the transform's right vector.
func (t Transform) Right() mgl64.Vec3 { return Right(t.Heading) }

// Apply maps a point from the transform's local frame (x right, y up, z
// forward) into world space.
func (t Transform) Apply(local mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(mgl64.Rotate3DY(t.Heading).Mul3x1(local))
}

// Compose chains a local transform onto t and returns the result in world space.
func (t Transform) Compose(local Transform) Transform {
	return Transform{
		Position: t.Apply(local.Position),
		Heading:  NormalizeAngle(t.Heading + local.Heading),
	}
}

// Matrix returns the homogeneous model matrix of t.
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl64.HomogRotate3DY(t.Heading))
}

// ApproxEqual reports whether both transforms agree within eps.
func (t Transform) ApproxEqual(o Transform, eps float64) bool {
	return t.Position.ApproxEqualThreshold(o.Position, eps) &&
		math.Abs(NormalizeAngle(t.Heading-o.Heading)) <= eps
}

// NormalizeAngle wraps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
