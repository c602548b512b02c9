package validate

import (
	"errors"
	"fmt"
	"math"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/loopgen"
)

var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("validate: graph must not be nil")
	// ErrNilLoop is returned when the loop argument is nil.
	ErrNilLoop = errors.New("validate: loop must not be nil")
)

// distanceDriftTol is the tolerated gap, in meters, between the declared
// loop distance and the sum of its segment distances.
const distanceDriftTol = 0.5

// Stats summarizes the per-segment outcome of a validation run.
type Stats struct {
	TotalSegments   int
	ValidSegments   int
	InvalidSegments int
}

// Report is the outcome of validating one loop. Errors make the route
// unusable; Warnings flag drift a consumer may choose to tolerate.
type Report struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Stats    Stats
}

func (r *Report) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Loop re-walks l edge by edge against g and reports every violation.
//
// The route data is never trusted: closure, edge existence, continuity and
// the declared distance are all rechecked. See the package documentation
// for the full list. Loop returns an error only when g or l is nil.
func Loop(g *core.Graph, l *loopgen.GeneratedLoop) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if l == nil {
		return nil, ErrNilLoop
	}

	r := &Report{}
	r.Stats.TotalSegments = len(l.PathEdges)

	// 1) Shape: a closed loop needs at least one segment out and one back,
	//    and exactly one edge per adjacent node pair.
	if len(l.Loop) < 3 {
		r.errorf("loop has %d nodes, need at least 3 for a closed route", len(l.Loop))
		return finish(r), nil
	}
	if first, last := l.Loop[0], l.Loop[len(l.Loop)-1]; first != last {
		r.errorf("loop is not closed: starts at %q, ends at %q", first, last)
	}
	if len(l.PathEdges) != len(l.Loop)-1 {
		r.errorf("loop has %d nodes but %d edges, want %d",
			len(l.Loop), len(l.PathEdges), len(l.Loop)-1)
		return finish(r), nil
	}

	// 2) Walk the segments: every edge must exist and connect its pair.
	var sum float64
	for i, id := range l.PathEdges {
		e, ok := g.Edge(id)
		if !ok {
			r.errorf("segment %d: edge %q not in graph", i, id)
			r.Stats.InvalidSegments++
			continue
		}
		if e.From != l.Loop[i] || e.To != l.Loop[i+1] {
			r.errorf("segment %d: edge %q connects %s->%s, route expects %s->%s",
				i, id, e.From, e.To, l.Loop[i], l.Loop[i+1])
			r.Stats.InvalidSegments++
			continue
		}
		if e.SourceWayID == "" {
			r.warnf("segment %d: edge %q has no source way", i, id)
		}
		r.Stats.ValidSegments++
		sum += e.Distance
	}

	// 3) Declared distance must match the re-walked total. Only meaningful
	//    when every segment resolved.
	if r.Stats.InvalidSegments == 0 {
		if drift := math.Abs(sum - l.Distance); drift > distanceDriftTol {
			r.warnf("declared distance %.1f m differs from segment sum %.1f m",
				l.Distance, sum)
		}
	}
	if l.Quality < 0 || l.Quality > 1 {
		r.warnf("quality %.3f outside [0, 1]", l.Quality)
	}

	return finish(r), nil
}

func finish(r *Report) *Report {
	r.Valid = len(r.Errors) == 0
	return r
}
