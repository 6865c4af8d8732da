package geom

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec32 narrows a float64 vector to the float32 space used by colliders.
func Vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}

// CenteredBox returns an axis-aligned box of the given size centered on center.
func CenteredBox(center, size mgl32.Vec3) cube.BBox {
	h := size.Mul(0.5)
	return cube.Box(-h.X(), -h.Y(), -h.Z(), h.X(), h.Y(), h.Z()).Translate(center)
}

// ScaledBox is CenteredBox with every dimension multiplied by scale.
func ScaledBox(center, size mgl32.Vec3, scale float32) cube.BBox {
	return CenteredBox(center, size.Mul(scale))
}

// ForwardGap returns the distance between two boxes along Z, or 0 when their
// Z ranges overlap.
func ForwardGap(a, b cube.BBox) float32 {
	return math32.Max(0, math32.Max(a.Min().Z()-b.Max().Z(), b.Min().Z()-a.Max().Z()))
}
