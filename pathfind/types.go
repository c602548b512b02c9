// Package pathfind defines the option plumbing and result types for
// shortest-path searches over a core.Graph.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/quentintr/trailgen/core"
)

// Sentinel errors for path searches.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrEmptyNodeID is returned when start or goal is the empty string.
	ErrEmptyNodeID = errors.New("pathfind: node ID is empty")

	// ErrNodeNotFound is returned when start or goal is absent from the graph.
	ErrNodeNotFound = errors.New("pathfind: node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// Dijkstra explores strictly by cumulative cost; the safe default.
	Dijkstra Algorithm = iota

	// AStar adds an admissible great-circle heuristic toward the goal and
	// typically expands far fewer nodes on geographic graphs.
	AStar
)

// String implements fmt.Stringer for log and debug output.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Option configures a search via functional arguments. If an Option is
// invalid (e.g. non-positive MaxDistance), it is recorded internally and
// surfaced as ErrOptionViolation when ShortestPath is invoked.
type Option func(*Options)

// Options holds the parameters of one shortest-path search.
type Options struct {
	// MaxDistance caps cumulative path distance in meters. The search never
	// explores beyond it. Defaults to +Inf (no cap).
	MaxDistance float64

	// WeightFactor blends physical distance with terrain weight:
	// cost(e) = Distance + WeightFactor×(Weight−Distance). Default 1.
	WeightFactor float64

	// Forbidden holds directed edge IDs that are never traversed.
	Forbidden map[string]struct{}

	// Algo picks the search strategy. Default Dijkstra.
	Algo Algorithm

	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no distance cap (MaxDistance == +Inf)
//   - WeightFactor 1 (route by stored weight)
//   - no forbidden edges
//   - Dijkstra
//   - context.Background()
func DefaultOptions() Options {
	return Options{
		MaxDistance:  math.Inf(1),
		WeightFactor: 1,
		Forbidden:    nil,
		Algo:         Dijkstra,
		Ctx:          context.Background(),
		err:          nil,
	}
}

// WithMaxDistance caps cumulative path distance at meters.
//
//	meters > 0: enforce the cap
//	otherwise (≤ 0 or NaN): invalid option → ErrOptionViolation
func WithMaxDistance(meters float64) Option {
	return func(o *Options) {
		if math.IsNaN(meters) || meters <= 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be positive (%v)", ErrOptionViolation, meters)
			return
		}
		o.MaxDistance = meters
	}
}

// WithWeightFactor sets the terrain blend factor (0 = pure distance,
// 1 = stored weight). Negative or NaN values → ErrOptionViolation.
func WithWeightFactor(f float64) Option {
	return func(o *Options) {
		if math.IsNaN(f) || f < 0 {
			o.err = fmt.Errorf("%w: WeightFactor must be ≥ 0 (%v)", ErrOptionViolation, f)
			return
		}
		o.WeightFactor = f
	}
}

// WithForbiddenEdges excludes the given directed edge IDs from traversal.
// Cumulative across calls; unknown IDs are harmless.
func WithForbiddenEdges(ids ...string) Option {
	return func(o *Options) {
		if len(ids) == 0 {
			return
		}
		if o.Forbidden == nil {
			o.Forbidden = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.Forbidden[id] = struct{}{}
		}
	}
}

// ForbidUndirected derives both directed edge IDs for every consecutive
// node pair along path, ready to pass to WithForbiddenEdges. Fewer than two
// nodes yields nil.
func ForbidUndirected(path ...string) []string {
	if len(path) < 2 {
		return nil
	}
	ids := make([]string, 0, 2*(len(path)-1))
	for i := 0; i+1 < len(path); i++ {
		ids = append(ids,
			core.EdgeID(path[i], path[i+1]),
			core.EdgeID(path[i+1], path[i]))
	}
	return ids
}

// WithAlgorithm selects Dijkstra or AStar; anything else →
// ErrOptionViolation.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != Dijkstra && a != AStar {
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.Algo = a
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// PathResult is a found path. A nil *PathResult from ShortestPath means the
// goal is unreachable within the cap: an expected outcome, not an error.
type PathResult struct {
	// Path is the node ID sequence from start to goal, inclusive.
	Path []string

	// Distance is the summed edge distance in meters (0 for start == goal).
	Distance float64
}

// Edges derives the directed edge IDs traversed along the path, in order.
// Empty for trivial single-node results.
func (r *PathResult) Edges() []string {
	if len(r.Path) < 2 {
		return nil
	}
	ids := make([]string, 0, len(r.Path)-1)
	for i := 0; i+1 < len(r.Path); i++ {
		ids = append(ids, core.EdgeID(r.Path[i], r.Path[i+1]))
	}
	return ids
}
