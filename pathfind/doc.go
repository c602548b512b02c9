// Package pathfind provides point-to-point shortest-path search over the
// immutable core.Graph, with a distance cap, terrain weighting and edge
// exclusion: the primitives the loop generator is assembled from.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost path between two nodes using
//     either Dijkstra (default) or A* with an admissible great-circle
//     heuristic; both process nodes through a min-heap with the classic
//     “lazy decrease-key” strategy.
//   - For identical inputs the two algorithms return identical paths; A*
//     merely expands fewer nodes, which matters on large trail graphs.
//   - “No path” is an expected outcome, not a failure: the search returns
//     (nil, nil) when the goal is unreachable within the distance cap.
//
// Cost model:
//
//   - Every edge carries Distance (meters) and Weight (≥ Distance, terrain
//     scaled). The effective cost of traversing an edge is
//     Distance + WeightFactor×(Weight−Distance).
//   - WeightFactor 0 routes by raw distance, 1 (default) by stored weight,
//     larger values penalize rough terrain harder. Admissibility of the A*
//     heuristic holds for any factor ≥ 0, because effective cost never drops
//     below physical distance.
//   - MaxDistance caps cumulative *distance* in meters regardless of the
//     factor, bounding exploration. It bounds the search, it does not turn
//     it into a constrained optimization: a detour that is cheaper by cost
//     but longer than the cap is discarded.
//
// Determinism:
//
//   - The heap orders by (priority, node ID) and core.OutEdges iterates in
//     sorted edge order, so equal-cost alternatives always resolve the same
//     way. Identical inputs ⇒ identical outputs, byte for byte.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) worst case; A* typically far less in practice.
//   - Space: O(V + E) for the cost maps and lazy heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        g is nil.
//   - ErrEmptyNodeID:     start or goal is the empty string.
//   - ErrNodeNotFound:    start or goal is not in the graph.
//   - ErrOptionViolation: an option carried an invalid value (non-positive
//     MaxDistance, negative WeightFactor, unknown Algorithm); recorded at
//     option time, surfaced when ShortestPath is invoked.
//   - Context errors (context.Canceled, context.DeadlineExceeded) propagate
//     unwrapped when the search is cancelled mid-flight.
//
// API reference:
//
//	func ShortestPath(
//	    g *core.Graph,
//	    start, goal string,
//	    opts ...Option,
//	) (*PathResult, error)
//
//	  - start == goal returns the trivial result ([start], 0) immediately.
//	  - opts:
//	      • WithMaxDistance(m float64):   explore only within m meters (m > 0).
//	      • WithWeightFactor(f float64):  terrain blend, f ≥ 0 (default 1).
//	      • WithForbiddenEdges(ids ...):  directed edge IDs never traversed.
//	      • WithAlgorithm(Dijkstra|AStar)
//	      • WithContext(ctx):             cancellation and deadlines.
//	  - PathResult.Path is the node sequence start…goal; Distance is the sum
//	    of edge distances in meters. PathResult.Edges() derives the directed
//	    edge IDs along the path.
//	  - ForbidUndirected(path ...string) expands a node sequence into both
//	    directed edge IDs per hop, for use with WithForbiddenEdges.
//
// Thread safety:
//
//   - ShortestPath only reads the graph; any number of searches may run
//     concurrently against the same core.Graph.
package pathfind
