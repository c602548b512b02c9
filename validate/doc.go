// Package validate checks generated loops against the graph they were
// built from.
//
// # Overview
//
// A GeneratedLoop carries a node sequence and the edge IDs that connect it.
// Both travel together through serialization, caching and hand-off between
// services, so they can drift apart from each other or from the graph
// snapshot they are replayed against. Loop re-walks the route edge by edge
// and reports everything that no longer holds.
//
// # What it checks
//
//   - Closure: the loop starts and ends at the same node.
//   - Shape: the edge list has exactly one entry per node pair.
//   - Existence: every edge ID resolves in the graph.
//   - Continuity: each edge connects the adjacent node pair, in order.
//   - Provenance: an edge without a source way is flagged (warning).
//   - Declared distance: the stored total is compared against the sum of
//     the segment distances (drift beyond 0.5 m is a warning).
//
// # Error handling
//
// Loop returns an error only for misuse:
//
//	validate.ErrNilGraph - graph is nil
//	validate.ErrNilLoop  - loop is nil
//
// Findings about the route itself are never Go errors. They land in the
// Report: Errors for violations that make the route unusable, Warnings for
// drift that a consumer may tolerate. Valid is true iff Errors is empty.
//
// # API reference
//
//	Loop(g, l) (*Report, error)  - validate one generated loop
//	Report.Valid                 - no errors found
//	Report.Stats                 - per-segment totals
//
// # Complexity
//
//   - Time: O(k) for a loop of k segments.
//   - Memory: O(k) for the report in the worst case.
//
// # Thread safety
//
// Loop only reads the graph and the loop; any number of validations may run
// concurrently.
package validate
