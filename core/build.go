package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/quentintr/trailgen/geo"
)

// BuildGraph validates ds and assembles the immutable routable Graph.
//
// Construction fails fast on the first structural defect (see the sentinel
// errors in types.go); a partially valid dataset never yields a Graph.
// Consecutive duplicate node refs inside a way are collapsed, and parallel
// segments between the same ordered node pair keep only the lowest-weight
// edge, so the result is always a simple directed graph.
//
// Time: O(N + W·L + E log E) for N nodes, W ways of length L, E edges.
// Memory: O(N + E).
func BuildGraph(ds Dataset) (*Graph, error) {
	// 1) Index and validate nodes: unique IDs, finite in-range coordinates.
	if len(ds.Nodes) == 0 {
		return nil, ErrNoNodes
	}
	nodes := make(map[string]*Node, len(ds.Nodes))
	for i := range ds.Nodes {
		rn := &ds.Nodes[i]
		if rn.ID == "" {
			return nil, fmt.Errorf("%w: node index %d", ErrEmptyNodeID, i)
		}
		if _, dup := nodes[rn.ID]; dup {
			return nil, wrapNode(ErrDuplicateNode, rn.ID)
		}
		if !validCoordinate(rn.Lat, rn.Lon) {
			return nil, wrapNode(ErrBadCoordinate, rn.ID)
		}
		nodes[rn.ID] = &Node{ID: rn.ID, SourceID: rn.SourceID, Lat: rn.Lat, Lon: rn.Lon}
	}

	// 2) Validate ways: IDs, lengths, factors, and every node reference.
	edges := make(map[string]*Edge, 2*len(ds.Ways))
	wayCount := 0
	for wi := range ds.Ways {
		w := &ds.Ways[wi]
		if w.ID == "" {
			return nil, fmt.Errorf("%w: way index %d", ErrEmptyWayID, wi)
		}
		if len(w.NodeIDs) < 2 {
			return nil, wrapWay(ErrShortWay, w.ID)
		}
		factor := w.CostFactor
		if factor == 0 {
			factor = DefaultCostFactor
		}
		if math.IsNaN(factor) || factor < 1 {
			return nil, wrapWay(ErrBadCostFactor, w.ID)
		}
		quality := w.Quality
		if quality == 0 {
			quality = DefaultQuality
		}
		if math.IsNaN(quality) || quality < 0 || quality > 1 {
			return nil, wrapWay(ErrBadQuality, w.ID)
		}
		for _, ref := range w.NodeIDs {
			if _, ok := nodes[ref]; !ok {
				return nil, fmt.Errorf("%w: way %q references %q", ErrUnknownWayNode, w.ID, ref)
			}
		}

		// 3) Derive two directed edges per consecutive pair; collapse
		//    duplicate refs and keep the cheaper of parallel segments.
		contributed := false
		for i := 0; i+1 < len(w.NodeIDs); i++ {
			from, to := nodes[w.NodeIDs[i]], nodes[w.NodeIDs[i+1]]
			if from.ID == to.ID {
				continue // collapsed duplicate ref
			}
			d := geo.Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
			keepCheaper(edges, &Edge{
				ID:          EdgeID(from.ID, to.ID),
				SourceWayID: w.ID,
				From:        from.ID,
				To:          to.ID,
				Distance:    d,
				Weight:      d * factor,
				Quality:     quality,
			})
			keepCheaper(edges, &Edge{
				ID:          EdgeID(to.ID, from.ID),
				SourceWayID: w.ID,
				From:        to.ID,
				To:          from.ID,
				Distance:    d,
				Weight:      d * factor,
				Quality:     quality,
			})
			contributed = true
		}
		if contributed {
			wayCount++
		}
	}

	// 4) Derive per-node sorted connections and outgoing edge lists.
	out := make(map[string][]*Edge, len(nodes))
	nbset := make(map[string]map[string]struct{}, len(nodes))
	for _, e := range edges {
		out[e.From] = append(out[e.From], e)
		set, ok := nbset[e.From]
		if !ok {
			set = make(map[string]struct{}, 4)
			nbset[e.From] = set
		}
		set[e.To] = struct{}{}
	}
	for id, set := range nbset {
		conns := make([]string, 0, len(set))
		for nb := range set {
			conns = append(conns, nb)
		}
		sort.Strings(conns)
		nodes[id].Connections = conns
	}

	// 5) Freeze deterministic enumeration order.
	nodeIDs := make([]string, 0, len(nodes))
	for id := range nodes {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)

	edgeIDs := make([]string, 0, len(edges))
	for id := range edges {
		edgeIDs = append(edgeIDs, id)
	}
	sort.Strings(edgeIDs)

	for _, list := range out {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	return &Graph{
		nodes:    nodes,
		edges:    edges,
		out:      out,
		nodeIDs:  nodeIDs,
		edgeIDs:  edgeIDs,
		wayCount: wayCount,
	}, nil
}

// keepCheaper inserts e unless an edge with the same ID and lower-or-equal
// weight is already present, collapsing parallel segments deterministically.
func keepCheaper(edges map[string]*Edge, e *Edge) {
	if old, ok := edges[e.ID]; ok && old.Weight <= e.Weight {
		return
	}
	edges[e.ID] = e
}
