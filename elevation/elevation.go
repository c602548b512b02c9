package elevation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/loopgen"
)

var (
	// ErrNilProvider is returned when the provider argument is nil.
	ErrNilProvider = errors.New("elevation: provider must not be nil")
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("elevation: graph must not be nil")
	// ErrNilLoop is returned when the loop argument is nil.
	ErrNilLoop = errors.New("elevation: loop must not be nil")
	// ErrUnknownEdge is returned when the loop references an edge or node
	// the graph does not contain.
	ErrUnknownEdge = errors.New("elevation: loop references unknown edge")
	// ErrMalformedLoop is returned when the loop's node and edge counts do
	// not describe a walkable route.
	ErrMalformedLoop = errors.New("elevation: malformed loop")
	// ErrSampleCount is returned when the provider response length does
	// not match the request.
	ErrSampleCount = errors.New("elevation: provider returned wrong sample count")
	// ErrOptionViolation is returned when an option carries an invalid value.
	ErrOptionViolation = errors.New("elevation: option violation")
)

// DefaultHysteresis is the elevation delta, in meters, below which changes
// are treated as sensor noise.
const DefaultHysteresis = 1.0

// Provider supplies elevations, in meters, for a batch of coordinates.
// Implementations must return exactly one value per input coordinate, in
// order.
type Provider interface {
	Samples(ctx context.Context, lats, lons []float64) ([]float64, error)
}

// Func adapts an ordinary function to the Provider interface.
type Func func(ctx context.Context, lats, lons []float64) ([]float64, error)

// Samples calls f.
func (f Func) Samples(ctx context.Context, lats, lons []float64) ([]float64, error) {
	return f(ctx, lats, lons)
}

var _ Provider = Func(nil)

// Options configures Enrich.
type Options struct {
	// Hysteresis is the minimum accumulated delta, in meters, before a
	// climb or descent is committed to the totals.
	Hysteresis float64

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Hysteresis: DefaultHysteresis}
}

// WithHysteresis overrides the smoothing threshold. Zero disables smoothing;
// negative or NaN values are rejected.
func WithHysteresis(meters float64) Option {
	return func(o *Options) {
		if meters < 0 || math.IsNaN(meters) {
			o.err = fmt.Errorf("%w: hysteresis must be >= 0, got %v",
				ErrOptionViolation, meters)
			return
		}
		o.Hysteresis = meters
	}
}

// Sample is one point of an elevation profile.
type Sample struct {
	NodeID string
	// Distance is the cumulative distance along the loop, in meters.
	Distance float64
	// Elevation is meters above sea level.
	Elevation float64
}

// Profile is the elevation profile of one loop.
type Profile struct {
	Samples []Sample
	// Gain and Loss are the smoothed ascent and descent totals, in meters.
	Gain float64
	Loss float64
}

// Enrich samples the provider once for every node of l and folds the result
// into a Profile. The provider is called with the loop's coordinates in
// traversal order, start node first and last.
func Enrich(ctx context.Context, p Provider, g *core.Graph, l *loopgen.GeneratedLoop, opts ...Option) (*Profile, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if p == nil {
		return nil, ErrNilProvider
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if l == nil {
		return nil, ErrNilLoop
	}
	if len(l.Loop) == 0 || len(l.PathEdges) != len(l.Loop)-1 {
		return nil, fmt.Errorf("%w: %d nodes with %d edges",
			ErrMalformedLoop, len(l.Loop), len(l.PathEdges))
	}

	// 1) Gather the loop coordinates in traversal order.
	lats := make([]float64, len(l.Loop))
	lons := make([]float64, len(l.Loop))
	for i, id := range l.Loop {
		n, ok := g.Node(id)
		if !ok {
			return nil, fmt.Errorf("%w: node %q", ErrUnknownEdge, id)
		}
		lats[i], lons[i] = n.Lat, n.Lon
	}

	// 2) One batch call to the provider.
	elevs, err := p.Samples(ctx, lats, lons)
	if err != nil {
		return nil, fmt.Errorf("elevation: provider: %w", err)
	}
	if len(elevs) != len(l.Loop) {
		return nil, fmt.Errorf("%w: want %d, got %d",
			ErrSampleCount, len(l.Loop), len(elevs))
	}

	// 3) Fold into samples with cumulative distances.
	prof := &Profile{Samples: make([]Sample, len(l.Loop))}
	var dist float64
	for i, id := range l.Loop {
		if i > 0 {
			e, ok := g.Edge(l.PathEdges[i-1])
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownEdge, l.PathEdges[i-1])
			}
			dist += e.Distance
		}
		prof.Samples[i] = Sample{NodeID: id, Distance: dist, Elevation: elevs[i]}
	}

	// 4) Smoothed gain and loss. Deltas accumulate until they clear the
	//    hysteresis threshold, so sub-threshold jitter cancels out.
	var pending float64
	for i := 1; i < len(elevs); i++ {
		pending += elevs[i] - elevs[i-1]
		switch {
		case pending >= cfg.Hysteresis && pending > 0:
			prof.Gain += pending
			pending = 0
		case -pending >= cfg.Hysteresis && pending < 0:
			prof.Loss += -pending
			pending = 0
		}
	}
	return prof, nil
}
