// Package loopgen defines the option plumbing, result types and sentinel
// errors for closed-loop route generation.
package loopgen

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors for loop generation. Everything that is not caller misuse
// is reported through Result.Debug.Warnings instead.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("loopgen: graph is nil")

	// ErrEmptyStart is returned when no start node was specified.
	ErrEmptyStart = errors.New("loopgen: start node not specified")

	// ErrBadTargetDistance is returned when the target distance is missing
	// or not positive.
	ErrBadTargetDistance = errors.New("loopgen: target distance must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loopgen: invalid option supplied")
)

const (
	// defaultNumVariants is the number of loops returned when unset.
	defaultNumVariants = 3

	// maxNumVariants bounds oversampling; more variants than this per
	// request points at caller confusion.
	maxNumVariants = 16

	// defaultWorkers bounds the per-bearing worker pool.
	defaultWorkers = 4

	// bearingsPerVariant, minBearings and maxBearings shape the oversampled
	// bearing fan.
	bearingsPerVariant = 4
	minBearings        = 8
	maxBearings        = 32

	// defaultDirectionBias inflates edge costs by up to 1+bias when an edge
	// points opposite the sampled bearing.
	defaultDirectionBias = 1.5

	// defaultDedupeOverlap is the segment-set Jaccard similarity above which
	// two candidates count as the same loop.
	defaultDedupeOverlap = 0.6

	// outboundFraction caps outbound expansion relative to the target.
	outboundFraction = 0.75

	// apexMinFraction is the minimum outbound distance for an apex,
	// relative to the target.
	apexMinFraction = 0.15

	// apexDistanceWeight blends distance fit vs bearing alignment when
	// picking the apex.
	apexDistanceWeight = 0.6

	// windowMin and windowMax bound accepted loop distances relative to the
	// target.
	windowMin = 0.5
	windowMax = 1.5

	// Default scoring weights; see doc.go.
	defaultScoreDistance = 0.45
	defaultScoreOverlap  = 0.35
	defaultScoreQuality  = 0.20

	// scoreWeightSumTol is the allowed deviation of custom weights from 1.
	scoreWeightSumTol = 1e-6
)

// Option configures loop generation via functional arguments. If an Option
// is invalid (e.g. zero workers), it is recorded internally and surfaced as
// ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds the parameters of one Generate call.
type Options struct {
	// Start is the node every loop begins and ends at. Required.
	Start string

	// TargetDistance is the desired loop length in meters. Required.
	TargetDistance float64

	// NumVariants is the maximum number of loops to return. Default 3.
	NumVariants int

	// MaxSearch caps any single path search in meters. Zero means
	// windowMax × TargetDistance, resolved when Generate runs.
	MaxSearch float64

	// Workers bounds how many bearings are explored in parallel. Default 4.
	Workers int

	// Seed enables deterministic bearing jitter when Jitter is set.
	Seed   int64
	Jitter bool

	// DirectionBias and DedupeOverlap tune outbound steering and duplicate
	// suppression; see the package constants for defaults.
	DirectionBias float64
	DedupeOverlap float64

	// ScoreDistance, ScoreOverlap and ScoreQuality weight the three scoring
	// components; they must sum to 1.
	ScoreDistance, ScoreOverlap, ScoreQuality float64

	// Verbose prints per-bearing progress to stdout.
	Verbose bool

	// Ctx allows cancellation and deadlines; expiry degrades to partial
	// results plus a warning, never an error.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: 3 variants, 4 workers,
// evenly spaced bearings, default bias/dedupe/scoring constants, and
// context.Background(). Start and TargetDistance remain unset and must be
// provided via options.
func DefaultOptions() Options {
	return Options{
		NumVariants:   defaultNumVariants,
		Workers:       defaultWorkers,
		DirectionBias: defaultDirectionBias,
		DedupeOverlap: defaultDedupeOverlap,
		ScoreDistance: defaultScoreDistance,
		ScoreOverlap:  defaultScoreOverlap,
		ScoreQuality:  defaultScoreQuality,
		Ctx:           context.Background(),
	}
}

// WithStartNode sets the node every loop begins and ends at.
func WithStartNode(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithTargetDistance sets the desired loop length in meters.
//
//	m > 0: use m
//	otherwise (≤ 0 or NaN): invalid option → ErrOptionViolation
func WithTargetDistance(m float64) Option {
	return func(o *Options) {
		if math.IsNaN(m) || m <= 0 {
			o.err = fmt.Errorf("%w: target distance must be positive (%v)", ErrOptionViolation, m)
			return
		}
		o.TargetDistance = m
	}
}

// WithNumVariants sets how many loops to return (1..16).
func WithNumVariants(n int) Option {
	return func(o *Options) {
		if n < 1 || n > maxNumVariants {
			o.err = fmt.Errorf("%w: NumVariants must be in 1..%d (%d)", ErrOptionViolation, maxNumVariants, n)
			return
		}
		o.NumVariants = n
	}
}

// WithMaxSearchDistance caps any single path search at meters (> 0).
func WithMaxSearchDistance(meters float64) Option {
	return func(o *Options) {
		if math.IsNaN(meters) || meters <= 0 {
			o.err = fmt.Errorf("%w: MaxSearchDistance must be positive (%v)", ErrOptionViolation, meters)
			return
		}
		o.MaxSearch = meters
	}
}

// WithWorkers bounds the per-bearing worker pool (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSeed jitters the bearing fan deterministically from s. Without it,
// bearings are evenly spaced and generation is fully repeatable.
func WithSeed(s int64) Option {
	return func(o *Options) {
		o.Seed = s
		o.Jitter = true
	}
}

// WithScoreWeights overrides the scoring weights (distance accuracy,
// overlap avoidance, edge quality). Each must be ≥ 0 and they must sum
// to 1.
func WithScoreWeights(distance, overlap, quality float64) Option {
	return func(o *Options) {
		sum := distance + overlap + quality
		if math.IsNaN(sum) || distance < 0 || overlap < 0 || quality < 0 ||
			math.Abs(sum-1) > scoreWeightSumTol {
			o.err = fmt.Errorf("%w: score weights must be ≥ 0 and sum to 1 (%v, %v, %v)",
				ErrOptionViolation, distance, overlap, quality)
			return
		}
		o.ScoreDistance, o.ScoreOverlap, o.ScoreQuality = distance, overlap, quality
	}
}

// WithVerbose prints per-bearing progress to stdout.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// GeneratedLoop is one closed route proposal.
type GeneratedLoop struct {
	// Loop is the node ID sequence; Loop[0] == Loop[len-1] == start.
	Loop []string

	// PathEdges holds the directed edge IDs traversed, len(Loop)-1 entries.
	PathEdges []string

	// Distance is the total loop length in meters.
	Distance float64

	// Quality is the composite score in [0,1]; see doc.go.
	Quality float64
}

// Debug carries warnings and exploration counters for observability.
type Debug struct {
	// Warnings explains degraded or empty results in plain language.
	Warnings []string

	// BearingsTried and BearingsFailed count the sampled bearing fan.
	BearingsTried  int
	BearingsFailed int

	// CandidatesScored, CandidatesFiltered and CandidatesDeduped trace the
	// candidate funnel: assembled → window-filtered → deduplicated.
	CandidatesScored   int
	CandidatesFiltered int
	CandidatesDeduped  int

	// Elapsed is the wall-clock generation time.
	Elapsed time.Duration
}

// Result is the outcome of one Generate call. An empty Loops slice with
// populated Warnings is a valid, expected outcome.
type Result struct {
	// Loops is sorted by Quality descending, at most NumVariants entries.
	Loops []GeneratedLoop

	// Debug carries warnings and counters; never nil fields, always usable.
	Debug Debug
}
