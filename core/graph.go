package core

import "github.com/quentintr/trailgen/geo"

// Graph is the immutable routable graph. Construct it with BuildGraph; all
// methods are read-only and safe for unlimited concurrent use.
type Graph struct {
	nodes map[string]*Node
	edges map[string]*Edge

	// out maps node ID → outgoing edges, pre-sorted by edge ID.
	out map[string][]*Edge

	// nodeIDs and edgeIDs freeze the deterministic enumeration order.
	nodeIDs []string
	edgeIDs []string

	wayCount int
}

// Node returns the node with the given ID, or ok=false if absent.
// The returned pointer is shared; treat it as read-only.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the directed edge with the given ID, or ok=false if absent.
// The returned pointer is shared; treat it as read-only.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// OutEdges returns the outgoing edges of the given node, pre-sorted by edge
// ID, or nil for an unknown or isolated node.
//
// The slice is the graph's internal storage, returned without copying so
// relaxation loops stay allocation-free. Treat it as read-only.
// Complexity: O(1).
func (g *Graph) OutEdges(id string) []*Edge {
	return g.out[id]
}

// NodeIDs returns a fresh copy of all node IDs in sorted order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodeIDs))
	copy(ids, g.nodeIDs)
	return ids
}

// EdgeIDs returns a fresh copy of all directed edge IDs in sorted order.
// Complexity: O(E).
func (g *Graph) EdgeIDs() []string {
	ids := make([]string, len(g.edgeIDs))
	copy(ids, g.edgeIDs)
	return ids
}

// NodeCount returns |V|. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges (twice the number of
// physical segments). Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NearestNode returns the ID of the node closest to (lat, lon) by haversine
// distance, together with that distance in meters.
//
// ok is false when the coordinate is invalid or the graph is empty. Ties are
// broken toward the lexicographically smaller node ID, so results are
// deterministic. Linear scan; Complexity: O(V).
func (g *Graph) NearestNode(lat, lon float64) (id string, meters float64, ok bool) {
	if !validCoordinate(lat, lon) || len(g.nodeIDs) == 0 {
		return "", 0, false
	}
	best := ""
	bestDist := 0.0
	for _, nid := range g.nodeIDs {
		n := g.nodes[nid]
		d := geo.Haversine(lat, lon, n.Lat, n.Lon)
		if best == "" || d < bestDist {
			best, bestDist = nid, d
		}
	}
	return best, bestDist, true
}

// Stats is a read-only snapshot of graph shape, for diagnostics and logs.
type Stats struct {
	// Nodes and Edges are |V| and the directed edge count.
	Nodes, Edges int

	// Ways counts the source ways that contributed at least one segment.
	Ways int

	// Intersections counts nodes of degree > 2; Isolated counts degree 0.
	Intersections, Isolated int

	// TotalLength is the summed length of all physical segments in meters
	// (each stored twice, counted once).
	TotalLength float64
}

// Stats derives a Stats snapshot. Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes: len(g.nodes),
		Edges: len(g.edges),
		Ways:  g.wayCount,
	}
	for _, n := range g.nodes {
		switch {
		case n.Degree() == 0:
			s.Isolated++
		case n.IsIntersection():
			s.Intersections++
		}
	}
	for _, e := range g.edges {
		s.TotalLength += e.Distance
	}
	s.TotalLength /= 2
	return s
}
