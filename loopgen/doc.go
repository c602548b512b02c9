// Package loopgen generates closed walking/running loops: routes that start
// and end at the same node, approximate a requested distance, and avoid
// retracing themselves more than necessary.
//
// Overview:
//
//   - Generate samples compass bearings around the start node, oversampling
//     relative to the number of requested variants (4 per variant, clamped
//     to [8, 32], evenly spaced; WithSeed adds deterministic jitter).
//   - For each bearing it runs an outbound best-first search whose edge
//     costs are inflated by angular deviation from the bearing, so the
//     frontier drifts in that direction. The best-scoring node near half
//     the target distance becomes the apex.
//   - The return leg is a capped A* search from the apex back to the start
//     with every outbound segment forbidden in both directions; when that
//     fails, the exclusion is relaxed and a partial retrace is accepted.
//   - Assembled candidates are scored, window-filtered to [0.5, 1.5]× the
//     target distance, deduplicated by segment-set similarity, ranked, and
//     truncated to the requested variant count.
//
// Scoring (all components in [0, 1], weights sum to 1):
//
//	quality = 0.45 × distanceAccuracy     // closeness to the target
//	        + 0.35 × (1 − retraceFraction) // fresh ground over retraced ground
//	        + 0.20 × meanEdgeQuality       // surface quality of the loop
//
// Weights are tunable via WithScoreWeights; ties rank by shorter distance,
// then by bearing, so output order is deterministic.
//
// Concurrency and deadlines:
//
//   - Bearings are explored by a bounded worker pool (errgroup, default 4
//     workers) sharing the caller's context.
//   - When the context expires mid-generation, finished candidates are still
//     filtered, ranked and returned, with a warning recorded in
//     Result.Debug.Warnings. Deadline exhaustion is degraded service, not
//     failure.
//
// Failure semantics:
//
//   - Errors are reserved for misuse: nil graph, missing/invalid options.
//   - Everything else - unknown start node, isolated start, sparse terrain,
//     no candidate surviving the window - returns an empty Result whose
//     Debug.Warnings explain why.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          g is nil.
//   - ErrEmptyStart:        no start node was specified.
//   - ErrBadTargetDistance: target distance missing or not positive.
//   - ErrOptionViolation:   an option carried an invalid value.
//
// API reference:
//
//	func Generate(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - opts:
//	      • WithStartNode(id string):         required.
//	      • WithTargetDistance(m float64):    required, meters, > 0.
//	      • WithNumVariants(n int):           1..16, default 3.
//	      • WithMaxSearchDistance(m float64): per-search cap, default 1.5×target.
//	      • WithWorkers(n int):               parallel bearings, default 4.
//	      • WithSeed(s int64):                jitter bearings; omit for evenly
//	        spaced, fully deterministic sampling.
//	      • WithScoreWeights(d, o, q):        override scoring weights.
//	      • WithVerbose():                    per-bearing progress on stdout.
//	      • WithContext(ctx):                 cancellation and deadlines.
//	  - Result.Loops: best loops, quality-descending, at most NumVariants.
//	  - Result.Debug: warnings plus exploration counters (bearings tried and
//	    failed, candidates scored/filtered/deduplicated, elapsed time).
//
// Every returned loop satisfies: Loop[0] == Loop[last] == start, PathEdges
// has exactly len(Loop)−1 entries that all exist in the graph, Distance > 0,
// and Quality ∈ [0, 1].
//
// Complexity: one capped Dijkstra-shaped search (outbound) plus one capped
// A* (return) per bearing, each O((V+E) log V) worst case but bounded in
// practice by the distance caps.
//
// Thread safety:
//
//   - Generate only reads the graph; any number of generations may run
//     concurrently against the same core.Graph.
package loopgen
