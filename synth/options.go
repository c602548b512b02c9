// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"
)

// DefaultSpacing is the metric distance between adjacent grid nodes.
const DefaultSpacing = 100.0

// Options configures the dataset constructors. Zero quality and cost
// factor defer to the core defaults at build time.
type Options struct {
	// OriginLat and OriginLon anchor the network's south-west corner (grids)
	// or center (rings).
	OriginLat, OriginLon float64

	// Spacing is the distance between adjacent grid nodes, in meters.
	Spacing float64

	// Quality is stamped on every generated way; zero means core default.
	Quality float64

	// CostFactor is stamped on every generated way; zero means core default.
	CostFactor float64

	// Diagonals adds a north-east diagonal trail to every grid cell.
	Diagonals bool

	// Seed drives the generator behind Sparse.
	Seed int64

	// err records the first option violation; surfaced by the constructor.
	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: 100 m spacing at the
// null island origin, core-default way profiles, seed 1.
func DefaultOptions() Options {
	return Options{Spacing: DefaultSpacing, Seed: 1}
}

// WithOrigin anchors the network at the given coordinate.
func WithOrigin(lat, lon float64) Option {
	return func(o *Options) {
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 ||
			math.IsNaN(lat) || math.IsNaN(lon) {
			o.err = fmt.Errorf("%w: origin %v,%v out of range",
				ErrOptionViolation, lat, lon)
			return
		}
		o.OriginLat, o.OriginLon = lat, lon
	}
}

// WithSpacing sets the metric distance between adjacent nodes.
func WithSpacing(meters float64) Option {
	return func(o *Options) {
		if meters <= 0 || math.IsNaN(meters) || math.IsInf(meters, 0) {
			o.err = fmt.Errorf("%w: spacing must be > 0, got %v",
				ErrOptionViolation, meters)
			return
		}
		o.Spacing = meters
	}
}

// WithQuality stamps every generated way with the given surface quality.
func WithQuality(q float64) Option {
	return func(o *Options) {
		if q < 0 || q > 1 || math.IsNaN(q) {
			o.err = fmt.Errorf("%w: quality must be in [0,1], got %v",
				ErrOptionViolation, q)
			return
		}
		o.Quality = q
	}
}

// WithCostFactor stamps every generated way with the given cost factor.
func WithCostFactor(f float64) Option {
	return func(o *Options) {
		if f != 0 && (f < 1 || math.IsNaN(f)) {
			o.err = fmt.Errorf("%w: cost factor must be ≥ 1, got %v",
				ErrOptionViolation, f)
			return
		}
		o.CostFactor = f
	}
}

// WithDiagonals adds a diagonal trail across every grid cell.
func WithDiagonals() Option {
	return func(o *Options) { o.Diagonals = true }
}

// WithSeed fixes the generator seed for Sparse.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
