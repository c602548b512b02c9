// SPDX-License-Identifier: MIT
//
// Package synth generates synthetic trail network datasets.
//
// # Overview
//
// Benchmarks, examples and load tests need terrain that is realistic in
// shape but fully deterministic. The constructors here lay nodes out on
// real WGS84 coordinates (via geo.Destination, so spacing is metric and
// exact) and return a core.Dataset ready for core.BuildGraph:
//
//   - Grid(cols, rows)     - orthogonal street grid, optional diagonals
//   - Ring(n, radius)      - one closed circular trail
//   - Sparse(cols, rows,p) - grid with interior segments thinned at
//     probability p, seeded and reproducible
//
// # Determinism
//
//   - Node IDs follow fixed schemes: "n<x>_<y>" for grids, "r<i>" for rings.
//   - Ways are emitted in a stable order (rows ascending, then columns).
//   - Sparse draws from a seeded generator; the same seed reproduces the
//     same network.
//
// # Error handling
//
//	synth.ErrBadDimension      - too few rows, columns or ring nodes
//	synth.ErrInvalidProbability - p outside [0,1]
//	synth.ErrOptionViolation   - invalid option value
//
// # API reference
//
//	Grid(cols, rows, opts...)      - build a grid dataset
//	Ring(n, radius, opts...)       - build a circular trail
//	Sparse(cols, rows, p, opts...) - build a thinned grid
//	WithOrigin, WithSpacing, WithQuality, WithCostFactor,
//	WithDiagonals, WithSeed
//
// # Complexity
//
// All constructors run in O(cols·rows) or O(n) time and allocate the
// dataset they return; nothing is cached.
package synth
