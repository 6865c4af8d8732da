package road

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/geom"
)

// curveSamples is the number of polyline steps used for a turn.
const curveSamples = 16

// Segment is one fixed-length piece of road. Segments live in the manager's
// pool and are rebuilt in place whenever they are reused.
type Segment struct {
	ID     uint64
	Kind   Kind
	Length float64
	// Start and End bound the track distance covered by the segment.
	Start, End float64
	// Entry is the ground-level origin and heading of the segment.
	Entry   geom.Transform
	Anim    FlyIn
	Surface Surface
	Texture Texture
	Mesh    Mesh
}

// Origin returns the segment origin including its current fly-in height.
func (s *Segment) Origin() mgl64.Vec3 {
	return s.Entry.Position.Add(mgl64.Vec3{0, s.Anim.Y, 0})
}

// Exit returns the transform where the next segment must begin.
func (s *Segment) Exit() geom.Transform {
	return s.Entry.Compose(s.Kind.exit(s.Length))
}

// Contains reports whether distance falls inside the segment.
func (s *Segment) Contains(distance float64) bool {
	return distance >= s.Start && distance < s.End
}

// Locate returns the world pose of a point at track distance and lateral
// offset on this segment, lifted by the fly-in height.
func (s *Segment) Locate(distance, lateral float64) geom.Transform {
	pose := s.Entry.Compose(s.Kind.centerline(s.Length, (distance-s.Start)/s.Length))
	pose.Position = pose.Position.Add(pose.Right().Mul(lateral))
	pose.Position[1] += s.Anim.Y
	return pose
}

// Model returns the model matrix placing the segment's local mesh in the world.
func (s *Segment) Model() mgl64.Mat4 {
	return geom.Transform{Position: s.Origin(), Heading: s.Entry.Heading}.Matrix()
}

func (s *Segment) assign(id uint64, kind Kind, entry geom.Transform, start, length, width float64) {
	s.ID = id
	s.Kind = kind
	s.Length = length
	s.Start = start
	s.End = start + length
	s.Entry = entry
	s.Anim = FlyIn{}
	s.Texture = Texture{RepeatU: 1, RepeatV: length / 20}
	s.Mesh.rebuild(kind, length, width)
}

// Mesh is the outline of a segment in its local frame: both road edges and
// the centre line, sampled along the centerline.
type Mesh struct {
	LeftEdge  []mgl64.Vec3
	RightEdge []mgl64.Vec3
	Centre    []mgl64.Vec3
	// V is the fraction along the segment of each sample.
	V []float64
}

func (m *Mesh) rebuild(kind Kind, length, width float64) {
	m.LeftEdge = m.LeftEdge[:0]
	m.RightEdge = m.RightEdge[:0]
	m.Centre = m.Centre[:0]
	m.V = m.V[:0]

	samples := 1
	if kind.IsTurn() {
		samples = curveSamples
	}
	half := width / 2
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		pose := kind.centerline(length, t)
		side := pose.Right().Mul(half)
		m.Centre = append(m.Centre, pose.Position)
		m.LeftEdge = append(m.LeftEdge, pose.Position.Sub(side))
		m.RightEdge = append(m.RightEdge, pose.Position.Add(side))
		m.V = append(m.V, t)
	}
}
