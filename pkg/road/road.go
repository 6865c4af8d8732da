package road

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/doodledrive/pkg/assert"
	"github.com/golangdaddy/doodledrive/pkg/geom"
	"github.com/golangdaddy/doodledrive/pkg/pool"
	"github.com/rs/zerolog"
)

// Recorder receives segment lifecycle events.
type Recorder interface {
	SegmentGenerated(kind Kind)
	SegmentRecycled()
}

// Stats counts segment lifecycle events since the manager was created.
type Stats struct {
	Generated int
	Recycled  int
	Active    int
	Pooled    int
}

// Manager keeps a contiguous run of segments around the player. Segments
// ahead are generated from the exit of the newest one, segments far behind
// go back to a fixed pool.
type Manager struct {
	cfg      Config
	log      zerolog.Logger
	surfaces SurfaceFactory
	recorder Recorder

	pool     *pool.Pool[Segment]
	active   *orderedmap.OrderedMap[uint64, *Segment]
	view     []*Segment
	selector selector
	nextID   uint64

	generated int
	recycled  int
}

// NewManager creates a manager and lays out its initial straight road.
// surfaces may be nil when nothing draws the road.
func NewManager(cfg Config, surfaces SurfaceFactory, logger zerolog.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Manager{
		cfg:      cfg,
		log:      logger.With().Str("component", "road").Logger(),
		surfaces: surfaces,
		pool:     pool.New[Segment](cfg.PoolSize(), nil),
		active:   orderedmap.NewOrderedMap[uint64, *Segment](),
		selector: selector{straightsBeforeTurn: cfg.StraightsBeforeTurn},
	}
	m.Initialize()
	return m, nil
}

// SetRecorder installs r to receive lifecycle events.
func (m *Manager) SetRecorder(r Recorder) {
	m.recorder = r
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Initialize replaces the active sequence with SegmentsBehind+SegmentsAhead
// completed straights covering [-behind*L, ahead*L] on the Z axis.
func (m *Manager) Initialize() {
	m.releaseAll()
	m.selector.reset()

	l := m.cfg.SegmentLength
	start := -float64(m.cfg.SegmentsBehind) * l
	for i := 0; i < m.cfg.SegmentsBehind+m.cfg.SegmentsAhead; i++ {
		s := start + float64(i)*l
		entry := geom.Transform{Position: mgl64.Vec3{0, 0, s}}
		m.place(Straight, entry, s)
	}
	m.log.Debug().Int("segments", m.active.Len()).Msg("road initialized")
}

// Reset returns every segment to the pool and lays out the initial road again.
func (m *Manager) Reset() {
	m.Initialize()
}

// Update generates at most one segment ahead of playerForward, recycles the
// segments that fell behind and advances fly-in animations by dt.
func (m *Manager) Update(playerForward, dt float64) {
	assert.IsTrue(m.active.Len() > 0, "road has no active segments")

	ahead := float64(m.cfg.SegmentsAhead) * m.cfg.SegmentLength
	if last := m.active.Back().Value; last.End < playerForward+ahead {
		m.generate(last)
	}

	limit := playerForward - float64(m.cfg.SegmentsBehind)*m.cfg.SegmentLength
	for el := m.active.Front(); el != nil && el.Value.End < limit; el = m.active.Front() {
		m.recycle(el.Value)
	}
	assert.IsTrue(m.active.Len() > 0, "every segment fell behind the player at %.2f", playerForward)

	for el := m.active.Front(); el != nil; el = el.Next() {
		if el.Value.Anim.Advance(dt) {
			m.log.Trace().Uint64("id", el.Key).Msg("segment landed")
		}
	}
}

// ScrollTextures moves every active texture offset by delta repeats.
func (m *Manager) ScrollTextures(delta float64) {
	for el := m.active.Front(); el != nil; el = el.Next() {
		el.Value.Texture.scroll(delta)
	}
}

// ActiveSegments returns the active segments from oldest to newest. The slice
// is reused by the next call and must not be modified.
func (m *Manager) ActiveSegments() []*Segment {
	m.view = m.view[:0]
	for el := m.active.Front(); el != nil; el = el.Next() {
		m.view = append(m.view, el.Value)
	}
	return m.view
}

// End returns the track distance where the newest active segment ends.
func (m *Manager) End() float64 {
	assert.IsTrue(m.active.Len() > 0, "road has no active segments")
	return m.active.Back().Value.End
}

// Len returns the number of active segments.
func (m *Manager) Len() int {
	return m.active.Len()
}

// Stats returns lifecycle counters and the current pool split.
func (m *Manager) Stats() Stats {
	return Stats{
		Generated: m.generated,
		Recycled:  m.recycled,
		Active:    m.active.Len(),
		Pooled:    m.pool.Free(),
	}
}

// Locate returns the world pose of the point at track distance and lateral
// offset. Distances before the first or after the last segment extrapolate
// straight along the nearest end.
func (m *Manager) Locate(distance, lateral float64) geom.Transform {
	assert.IsTrue(m.active.Len() > 0, "road has no active segments")

	first := m.active.Front().Value
	if distance < first.Start {
		return first.Entry.Compose(geom.Transform{Position: mgl64.Vec3{lateral, 0, distance - first.Start}})
	}
	for el := m.active.Front(); el != nil; el = el.Next() {
		if el.Value.Contains(distance) {
			return el.Value.Locate(distance, lateral)
		}
	}
	last := m.active.Back().Value
	return last.Exit().Compose(geom.Transform{Position: mgl64.Vec3{lateral, 0, distance - last.End}})
}

// SegmentAt returns the segment covering distance, if any.
func (m *Manager) SegmentAt(distance float64) (*Segment, bool) {
	for el := m.active.Front(); el != nil; el = el.Next() {
		if el.Value.Contains(distance) {
			return el.Value, true
		}
	}
	return nil, false
}

func (m *Manager) generate(prev *Segment) {
	kind := m.selector.next(prev.Kind)
	seg := m.place(kind, prev.Exit(), prev.End)
	seg.Anim.Begin(-m.cfg.FlyInDistance, m.cfg.FlyInDuration)

	m.generated++
	if m.recorder != nil {
		m.recorder.SegmentGenerated(kind)
	}
	m.log.Debug().
		Uint64("id", seg.ID).
		Str("kind", kind.String()).
		Float64("start", seg.Start).
		Float64("heading", seg.Entry.Heading).
		Msg("segment generated")
}

// place acquires a slot and appends it to the active sequence.
func (m *Manager) place(kind Kind, entry geom.Transform, start float64) *Segment {
	seg, ok := m.pool.Acquire()
	assert.IsTrue(ok, "segment pool exhausted with %d active", m.active.Len())

	m.nextID++
	seg.assign(m.nextID, kind, entry, start, m.cfg.SegmentLength, m.cfg.RoadWidth)
	seg.Surface = nil
	if m.surfaces != nil {
		seg.Surface = m.surfaces.Surface(kind)
	}
	m.active.Set(seg.ID, seg)
	return seg
}

func (m *Manager) recycle(seg *Segment) {
	m.active.Delete(seg.ID)
	m.pool.Release(seg)

	m.recycled++
	if m.recorder != nil {
		m.recorder.SegmentRecycled()
	}
	m.log.Debug().Uint64("id", seg.ID).Float64("end", seg.End).Msg("segment recycled")
}

func (m *Manager) releaseAll() {
	for el := m.active.Front(); el != nil; el = m.active.Front() {
		seg := el.Value
		m.active.Delete(el.Key)
		m.pool.Release(seg)
	}
}
