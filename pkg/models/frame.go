package models

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
	"github.com/golangdaddy/doodledrive/pkg/road"
	"github.com/golangdaddy/doodledrive/pkg/vehicle"
)

// SegmentView is the render-facing copy of a road segment.
type SegmentView struct {
	ID      uint64
	Kind    road.Kind
	State   road.AnimState
	Entry   geom.Transform
	Height  float64
	Model   mgl64.Mat4
	Surface road.Surface
	Texture road.Texture
	Mesh    *road.Mesh
}

// CarView places a car in the world.
type CarView struct {
	Pose     geom.Transform
	Body     vehicle.Body
	Roll     float64
	Pitch    float64
	Lane     int
	Collided bool
}

// CameraView is the camera state for one frame.
type CameraView struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	View     mgl64.Mat4
}

// Frame is what a renderer needs to draw one frame.
type Frame struct {
	Segments []SegmentView
	Player   CarView
	Traffic  []CarView
	Camera   CameraView

	Speed    float64
	MaxSpeed float64
	Distance float64
	Score    int
	Best     int
	Road     road.Stats
}
