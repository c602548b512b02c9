// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/geo"
)

const (
	bearingNorth = 0.0
	bearingEast  = 90.0

	gridIDFmt = "n%d_%d" // "n<x>_<y>", column-first
	ringIDFmt = "r%d"
)

// resolve applies opts over the defaults and surfaces the first violation.
func resolve(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}
	return cfg, nil
}

func (o *Options) way(id string, nodeIDs []string) core.RawWay {
	return core.RawWay{
		ID: id, NodeIDs: nodeIDs,
		CostFactor: o.CostFactor, Quality: o.Quality,
	}
}

// gridNode places node (x,y): x steps east, y steps north of the origin.
func gridNode(o *Options, x, y int) core.RawNode {
	lat, lon := geo.Destination(o.OriginLat, o.OriginLon,
		bearingEast, float64(x)*o.Spacing)
	lat, lon = geo.Destination(lat, lon, bearingNorth, float64(y)*o.Spacing)
	return core.RawNode{ID: fmt.Sprintf(gridIDFmt, x, y), Lat: lat, Lon: lon}
}

// Grid builds a cols×rows orthogonal network: one way per row, one per
// column, and optionally a diagonal across every cell.
//
// Nodes are emitted row-major with IDs "n<x>_<y>"; adjacent nodes sit
// exactly Spacing meters apart.
func Grid(cols, rows int, opts ...Option) (core.Dataset, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Dataset{}, err
	}
	if cols < 1 || rows < 1 || cols*rows < 2 {
		return core.Dataset{}, fmt.Errorf("Grid: cols=%d, rows=%d: %w",
			cols, rows, ErrBadDimension)
	}

	var ds core.Dataset

	// 1) Nodes in row-major order.
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ds.Nodes = append(ds.Nodes, gridNode(&cfg, x, y))
		}
	}

	// 2) One multi-node way per row, then per column.
	if cols >= 2 {
		for y := 0; y < rows; y++ {
			ids := make([]string, cols)
			for x := range ids {
				ids[x] = fmt.Sprintf(gridIDFmt, x, y)
			}
			ds.Ways = append(ds.Ways, cfg.way(fmt.Sprintf("h%d", y), ids))
		}
	}
	if rows >= 2 {
		for x := 0; x < cols; x++ {
			ids := make([]string, rows)
			for y := range ids {
				ids[y] = fmt.Sprintf(gridIDFmt, x, y)
			}
			ds.Ways = append(ds.Ways, cfg.way(fmt.Sprintf("v%d", x), ids))
		}
	}

	// 3) Optional north-east diagonal per cell.
	if cfg.Diagonals {
		for y := 0; y+1 < rows; y++ {
			for x := 0; x+1 < cols; x++ {
				ds.Ways = append(ds.Ways, cfg.way(
					fmt.Sprintf("d%d_%d", x, y),
					[]string{
						fmt.Sprintf(gridIDFmt, x, y),
						fmt.Sprintf(gridIDFmt, x+1, y+1),
					}))
			}
		}
	}
	return ds, nil
}

// Ring builds one closed circular trail of n nodes at the given radius, in
// meters, around the origin. Node r0 sits due north of the center.
func Ring(n int, radius float64, opts ...Option) (core.Dataset, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Dataset{}, err
	}
	if n < 3 {
		return core.Dataset{}, fmt.Errorf("Ring: n=%d (need ≥ 3): %w",
			n, ErrBadDimension)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return core.Dataset{}, fmt.Errorf("Ring: radius=%v (need > 0): %w",
			radius, ErrBadDimension)
	}

	var ds core.Dataset
	ids := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		bearing := float64(i) * 360.0 / float64(n)
		lat, lon := geo.Destination(cfg.OriginLat, cfg.OriginLon, bearing, radius)
		id := fmt.Sprintf(ringIDFmt, i)
		ds.Nodes = append(ds.Nodes, core.RawNode{ID: id, Lat: lat, Lon: lon})
		ids = append(ids, id)
	}
	ids = append(ids, ids[0]) // close the loop
	ds.Ways = []core.RawWay{cfg.way("ring", ids)}
	return ds, nil
}

// Sparse builds a cols×rows grid of single-segment ways, then drops
// interior segments with probability p. The boundary ring always survives
// and no node is ever stranded, so every network remains loopable.
//
// The draw sequence is seeded (WithSeed); identical inputs reproduce the
// identical network.
func Sparse(cols, rows int, p float64, opts ...Option) (core.Dataset, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return core.Dataset{}, err
	}
	if cols < 2 || rows < 2 {
		return core.Dataset{}, fmt.Errorf("Sparse: cols=%d, rows=%d (need ≥ 2): %w",
			cols, rows, ErrBadDimension)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return core.Dataset{}, fmt.Errorf("Sparse: p=%v: %w",
			p, ErrInvalidProbability)
	}

	var ds core.Dataset
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ds.Nodes = append(ds.Nodes, gridNode(&cfg, x, y))
		}
	}

	// Candidate segments in a stable order: horizontals by row, then
	// verticals by column.
	type segment struct {
		id, a, b string
		boundary bool
	}
	var segs []segment
	for y := 0; y < rows; y++ {
		for x := 1; x < cols; x++ {
			segs = append(segs, segment{
				id:       fmt.Sprintf("h%d_%d", x, y),
				a:        fmt.Sprintf(gridIDFmt, x-1, y),
				b:        fmt.Sprintf(gridIDFmt, x, y),
				boundary: y == 0 || y == rows-1,
			})
		}
	}
	for x := 0; x < cols; x++ {
		for y := 1; y < rows; y++ {
			segs = append(segs, segment{
				id:       fmt.Sprintf("v%d_%d", x, y),
				a:        fmt.Sprintf(gridIDFmt, x, y-1),
				b:        fmt.Sprintf(gridIDFmt, x, y),
				boundary: x == 0 || x == cols-1,
			})
		}
	}

	degree := make(map[string]int, len(ds.Nodes))
	for _, s := range segs {
		degree[s.a]++
		degree[s.b]++
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, s := range segs {
		if !s.boundary && degree[s.a] > 1 && degree[s.b] > 1 && rng.Float64() < p {
			degree[s.a]--
			degree[s.b]--
			continue
		}
		ds.Ways = append(ds.Ways, cfg.way(s.id, []string{s.a, s.b}))
	}
	return ds, nil
}
