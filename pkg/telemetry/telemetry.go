package telemetry

import (
	"context"
	"fmt"

	"github.com/golangdaddy/doodledrive/pkg/road"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/golangdaddy/doodledrive/pkg/telemetry"

// Meter returns the meter from the global OTel provider, a no-op unless one
// has been installed.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Totals mirrors the counters for on-screen display.
type Totals struct {
	Generated  int64
	Recycled   int64
	Collisions int64
	Restarts   int64
}

// Recorder turns game events into OTel metrics.
type Recorder struct {
	generated  metric.Int64Counter
	recycled   metric.Int64Counter
	collisions metric.Int64Counter
	restarts   metric.Int64Counter
	totals     Totals
}

// NewRecorder creates the instruments on m. active, if non-nil, is observed
// as the current number of active road segments.
func NewRecorder(m metric.Meter, active func() int64) (*Recorder, error) {
	r := &Recorder{}
	var err error

	r.generated, err = m.Int64Counter(
		"road.segments.generated",
		metric.WithDescription("Road segments generated ahead of the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating generated counter: %w", err)
	}

	r.recycled, err = m.Int64Counter(
		"road.segments.recycled",
		metric.WithDescription("Road segments returned to the pool"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating recycled counter: %w", err)
	}

	r.collisions, err = m.Int64Counter(
		"player.collisions",
		metric.WithDescription("Collisions between the player and traffic"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collisions counter: %w", err)
	}

	r.restarts, err = m.Int64Counter(
		"game.restarts",
		metric.WithDescription("Runs restarted by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating restarts counter: %w", err)
	}

	if active != nil {
		gauge, err := m.Int64ObservableGauge(
			"road.segments.active",
			metric.WithDescription("Segments currently on the road"),
		)
		if err != nil {
			return nil, fmt.Errorf("creating active gauge: %w", err)
		}
		_, err = m.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(gauge, active())
			return nil
		}, gauge)
		if err != nil {
			return nil, fmt.Errorf("registering active callback: %w", err)
		}
	}

	return r, nil
}

// SegmentGenerated counts a new segment of kind.
func (r *Recorder) SegmentGenerated(kind road.Kind) {
	r.totals.Generated++
	r.generated.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}

// SegmentRecycled counts a segment returned to the pool.
func (r *Recorder) SegmentRecycled() {
	r.totals.Recycled++
	r.recycled.Add(context.Background(), 1)
}

// Collision counts a player collision.
func (r *Recorder) Collision() {
	r.totals.Collisions++
	r.collisions.Add(context.Background(), 1)
}

// Restart counts a restarted run.
func (r *Recorder) Restart() {
	r.totals.Restarts++
	r.restarts.Add(context.Background(), 1)
}

// Totals returns the running counts.
func (r *Recorder) Totals() Totals {
	return r.totals
}
