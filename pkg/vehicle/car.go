package vehicle

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
)

// Body is the box-shaped size of a car in world units.
type Body struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
	Length float64 `json:"length" mapstructure:"length"`
}

// Size returns the body dimensions as a collider size vector.
func (b Body) Size() mgl32.Vec3 {
	return mgl32.Vec3{float32(b.Width), float32(b.Height), float32(b.Length)}
}

// Collider returns the box of the body scaled by scale and centered on
// position.
func (b Body) Collider(position mgl64.Vec3, scale float64) cube.BBox {
	return geom.ScaledBox(geom.Vec32(position), b.Size(), float32(scale))
}
