// Package core provides the immutable, in-memory routable graph that every
// other package in trailgen operates on.
//
// The Graph G = (V,E) is built once from a Dataset (raw nodes + raw ways,
// typically produced by the ingest package) and never mutated afterwards:
//
//   - Every physical trail segment becomes two directed Edges (from→to and
//     to→from), so path searches never special-case direction.
//   - Edge IDs are derived, human-readable and collision-free: "A->B".
//   - Each Edge carries Distance (meters, haversine), Weight (distance scaled
//     by the way's terrain cost factor, always ≥ Distance) and Quality
//     (surface score in (0,1]).
//   - Node connections are precomputed, unique and sorted; degree and
//     "is intersection" (degree > 2) are derived on demand, never stored.
//   - Constant-time node/edge lookup via maps; pre-sorted ID slices make
//     every enumeration deterministic.
//
// Why an immutable Graph?
//
//   - Lock-free reads — path searches and loop generation run concurrently
//     against one Graph with zero synchronization.
//   - Deterministic iteration — NodeIDs(), EdgeIDs(), OutEdges() always
//     return the same order, so searches tie-break reproducibly.
//   - Whole-graph replacement — updating map data means building a fresh
//     Graph and swapping it into a Handle (atomic.Pointer); in-flight
//     requests keep the instance they started with.
//
// Construction (fail fast — a malformed Dataset never yields a Graph):
//
//	g, err := core.BuildGraph(ds)
//
//	– ErrNoNodes          dataset has no nodes at all
//	– ErrEmptyNodeID      node with zero-length ID
//	– ErrDuplicateNode    two nodes share an ID
//	– ErrBadCoordinate    NaN/Inf or out-of-range lat/lon
//	– ErrEmptyWayID       way with zero-length ID
//	– ErrShortWay         way referencing fewer than two nodes
//	– ErrUnknownWayNode   way referencing a node the dataset does not define
//	– ErrBadCostFactor    way cost factor below 1 (zero means "default")
//	– ErrBadQuality       way quality outside [0, 1]
//
// Core methods:
//
//	// Lookup
//	Node(id string) (*Node, bool)        // O(1)
//	Edge(id string) (*Edge, bool)        // O(1)
//	HasNode(id string) bool              // O(1)
//
//	// Enumeration (deterministic)
//	NodeIDs() []string                   // O(V) copy, sorted
//	EdgeIDs() []string                   // O(E) copy, sorted
//	OutEdges(id string) []*Edge          // O(1), pre-sorted by edge ID, read-only
//
//	// Counts & diagnostics
//	NodeCount() int                      // O(1)
//	EdgeCount() int                      // O(1)
//	Stats() Stats                        // O(V)
//	Components() [][]string              // O(V+E), largest first
//
//	// Spatial
//	NearestNode(lat, lon float64) (id string, meters float64, ok bool) // O(V)
//
// Edge struct fields:
//
//	ID          string  // "A->B", derived via EdgeID(from, to)
//	SourceWayID string  // upstream way identifier, stamped on every derived edge
//	From, To    string  // endpoint node IDs
//	Distance    float64 // haversine length, meters
//	Weight      float64 // Distance × cost factor; invariant Weight ≥ Distance
//	Quality     float64 // surface quality in (0,1]
//
// Hot-path note: OutEdges returns the graph's internal pre-sorted slice to
// keep relaxation loops allocation-free. Treat it (and the *Node / *Edge
// pointers) as read-only; the immutability guarantees above depend on it.
//
// Thread safety:
//
//   - A built Graph is safe for unlimited concurrent readers.
//   - Handle provides atomic whole-graph replacement for live reloads.
package core
