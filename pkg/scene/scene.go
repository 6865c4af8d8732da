// Package scene turns a game frame into screen-space shapes. It knows
// nothing about the graphics backend that finally draws them.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/camera"
	"github.com/golangdaddy/doodledrive/pkg/models"
)

// Point is a projected vertex with texture coordinates in source pixels.
type Point struct {
	X, Y float64
	U, V float64
}

// Quad is a convex four-sided shape in drawing order.
type Quad [4]Point

// Line is a projected segment.
type Line struct {
	X0, Y0, X1, Y1 float64
	Centre         bool
}

// Face is one side of a car box. Shade darkens the car colour.
type Face struct {
	Quad  Quad
	Shade float64
}

// Projector maps world points onto a Width x Height viewport.
type Projector struct {
	VP     mgl64.Mat4
	Width  float64
	Height float64
}

// NewProjector builds a projector for cam on a width x height viewport.
func NewProjector(cam *camera.Camera, width, height float64) Projector {
	return Projector{
		VP:     cam.ViewProjection(width / height),
		Width:  width,
		Height: height,
	}
}

// Project maps a world point to pixels. ok is false behind the camera.
func (p Projector) Project(world mgl64.Vec3) (x, y float64, ok bool) {
	return camera.Project(p.VP, world, p.Width, p.Height)
}

func (p Projector) quad(corners [4]mgl64.Vec3, uv [4][2]float64) (Quad, bool) {
	var q Quad
	for i, c := range corners {
		x, y, ok := p.Project(c)
		if !ok {
			return Quad{}, false
		}
		q[i] = Point{X: x, Y: y, U: uv[i][0], V: uv[i][1]}
	}
	return q, true
}

// RoadQuads appends the surface quads of seg to dst. Texture coordinates
// are in pixels of a texW x texH surface repeated along the road.
func (p Projector) RoadQuads(dst []Quad, seg models.SegmentView, texW, texH float64) []Quad {
	mesh := seg.Mesh
	if mesh == nil {
		return dst
	}
	model := seg.Model
	u := texW * seg.Texture.RepeatU
	for i := 0; i+1 < len(mesh.Centre); i++ {
		v0 := (mesh.V[i]*seg.Texture.RepeatV + seg.Texture.Offset) * texH
		v1 := (mesh.V[i+1]*seg.Texture.RepeatV + seg.Texture.Offset) * texH
		corners := [4]mgl64.Vec3{
			mgl64.TransformCoordinate(mesh.LeftEdge[i], model),
			mgl64.TransformCoordinate(mesh.RightEdge[i], model),
			mgl64.TransformCoordinate(mesh.RightEdge[i+1], model),
			mgl64.TransformCoordinate(mesh.LeftEdge[i+1], model),
		}
		q, ok := p.quad(corners, [4][2]float64{{0, v0}, {u, v0}, {u, v1}, {0, v1}})
		if ok {
			dst = append(dst, q)
		}
	}
	return dst
}

// RoadLines appends both road edges and the centre line of seg to dst.
func (p Projector) RoadLines(dst []Line, seg models.SegmentView) []Line {
	mesh := seg.Mesh
	if mesh == nil {
		return dst
	}
	add := func(a, b mgl64.Vec3, centre bool) {
		x0, y0, ok0 := p.Project(mgl64.TransformCoordinate(a, seg.Model))
		x1, y1, ok1 := p.Project(mgl64.TransformCoordinate(b, seg.Model))
		if ok0 && ok1 {
			dst = append(dst, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Centre: centre})
		}
	}
	for i := 0; i+1 < len(mesh.Centre); i++ {
		add(mesh.LeftEdge[i], mesh.LeftEdge[i+1], false)
		add(mesh.RightEdge[i], mesh.RightEdge[i+1], false)
		add(mesh.Centre[i], mesh.Centre[i+1], true)
	}
	return dst
}

// CarFaces appends the visible faces of a car box: the rear, both sides and
// the roof, far to near. Roll and pitch tilt the roof.
func (p Projector) CarFaces(dst []Face, car models.CarView) []Face {
	w, h, l := car.Body.Width/2, car.Body.Height, car.Body.Length/2
	top := func(x, z float64) float64 {
		return h + x*car.Roll + z*car.Pitch
	}
	local := [8]mgl64.Vec3{
		{-w, 0, -l}, {w, 0, -l}, {w, 0, l}, {-w, 0, l},
		{-w, top(-w, -l), -l}, {w, top(w, -l), -l}, {w, top(w, l), l}, {-w, top(-w, l), l},
	}
	var world [8]mgl64.Vec3
	for i, c := range local {
		world[i] = car.Pose.Apply(c)
	}

	faces := []struct {
		idx   [4]int
		shade float64
	}{
		{[4]int{0, 3, 7, 4}, 0.7},  // left
		{[4]int{1, 2, 6, 5}, 0.7},  // right
		{[4]int{0, 1, 5, 4}, 0.85}, // rear
		{[4]int{4, 5, 6, 7}, 1},    // roof
	}
	for _, f := range faces {
		corners := [4]mgl64.Vec3{world[f.idx[0]], world[f.idx[1]], world[f.idx[2]], world[f.idx[3]]}
		if q, ok := p.quad(corners, [4][2]float64{}); ok {
			dst = append(dst, Face{Quad: q, Shade: f.shade})
		}
	}
	return dst
}
