// Package pathfind implements capped, weighted shortest-path search
// (Dijkstra / A*) over the immutable core.Graph.
//
// Both algorithms share one runner: a min-heap frontier with the
// “lazy decrease-key” strategy (duplicates pushed, stale entries skipped on
// pop) and a strict-improvement relaxation rule. A* only differs by adding
// the admissible great-circle heuristic to the heap priority.
package pathfind

import (
	"container/heap"
	"fmt"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/geo"
)

// ShortestPath computes the minimum-cost path from start to goal in g.
//
// Returns:
//
//   - (*PathResult, nil) when a path exists within the distance cap.
//   - (nil, nil) when the goal is unreachable within the cap; expected,
//     not an error.
//   - (nil, err) for invalid inputs (sentinels in types.go) or context
//     cancellation.
//
// Preconditions and validation (in order):
//  1. All supplied options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and goal must be non-empty (ErrEmptyNodeID).
//  4. start and goal must exist in g (ErrNodeNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) (*PathResult, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" || goal == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	// 3) Trivial request: start and goal coincide. No search, zero meters.
	if start == goal {
		return &PathResult{Path: []string{start}, Distance: 0}, nil
	}

	// 4) Run the shared search loop.
	r := newRunner(g, cfg, start, goal)
	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil // unreachable within the cap
	}

	// 5) Reconstruct start → goal from the predecessor chain.
	return r.result(), nil
}

// runner holds the mutable state of a single search execution.
type runner struct {
	g           *core.Graph
	opts        Options
	start, goal string

	// goalLat/goalLon feed the A* heuristic; unused under Dijkstra.
	goalLat, goalLon float64

	dist    map[string]float64 // node ID → cumulative meters along best-cost path
	cost    map[string]float64 // node ID → cumulative effective cost (absent = +∞)
	prev    map[string]string  // node ID → predecessor on best-cost path
	visited map[string]bool    // node ID → cost finalized
	pq      nodePQ             // lazy min-heap frontier
}

// newRunner allocates per-search state and seeds the frontier with start.
func newRunner(g *core.Graph, cfg Options, start, goal string) *runner {
	r := &runner{
		g:       g,
		opts:    cfg,
		start:   start,
		goal:    goal,
		dist:    make(map[string]float64, 64),
		cost:    make(map[string]float64, 64),
		prev:    make(map[string]string, 64),
		visited: make(map[string]bool, 64),
		pq:      make(nodePQ, 0, 64),
	}
	if n, ok := g.Node(goal); ok {
		r.goalLat, r.goalLon = n.Lat, n.Lon
	}

	r.dist[start] = 0
	r.cost[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &queueItem{id: start, priority: r.heuristic(start)})
	return r
}

// process is the main loop: repeatedly finalize the best frontier node and
// relax its outgoing edges, until the goal is finalized or the frontier
// drains.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		// 1) Cooperative cancellation between expansions.
		if err := r.opts.Ctx.Err(); err != nil {
			return false, err
		}

		// 2) Pop the best entry; skip stale lazy duplicates.
		item := heap.Pop(&r.pq).(*queueItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// 3) Goal finalized; costs only grow from here, so stop.
		if u == r.goal {
			return true, nil
		}

		// 4) Relax all outgoing edges of u.
		r.relax(u)
	}
	return false, nil
}

// relax attempts to improve the best-known cost of every neighbor of u.
// Assumes cost[u] is finalized.
func (r *runner) relax(u string) {
	du := r.dist[u]
	cu := r.cost[u]

	for _, e := range r.g.OutEdges(u) {
		// 1) Forbidden edges are never traversed.
		if _, banned := r.opts.Forbidden[e.ID]; banned {
			continue
		}
		v := e.To
		if r.visited[v] {
			continue
		}

		// 2) The cap prunes on cumulative meters, independent of weighting.
		nd := du + e.Distance
		if nd > r.opts.MaxDistance {
			continue
		}

		// 3) Effective cost blends physical length with terrain weight.
		nc := cu + e.Distance + r.opts.WeightFactor*(e.Weight-e.Distance)

		// 4) Strict improvement only, so equal-cost ties keep the first
		//    (deterministically ordered) relaxation.
		if old, seen := r.cost[v]; seen && nc >= old {
			continue
		}
		r.dist[v] = nd
		r.cost[v] = nc
		r.prev[v] = u

		// 5) Lazy decrease-key: push a fresh entry, stale ones are skipped
		//    on pop via visited.
		heap.Push(&r.pq, &queueItem{id: v, priority: nc + r.heuristic(v)})
	}
}

// heuristic returns the admissible A* estimate from node id to the goal:
// the great-circle distance, which never exceeds remaining effective cost
// because cost(e) ≥ Distance(e) for every edge. Zero under Dijkstra.
func (r *runner) heuristic(id string) float64 {
	if r.opts.Algo != AStar {
		return 0
	}
	n, ok := r.g.Node(id)
	if !ok {
		return 0
	}
	return geo.Haversine(n.Lat, n.Lon, r.goalLat, r.goalLon)
}

// result rebuilds the node sequence start → goal from the predecessor chain.
func (r *runner) result() *PathResult {
	var rev []string
	for cur := r.goal; ; {
		rev = append(rev, cur)
		if cur == r.start {
			break
		}
		cur = r.prev[cur]
	}
	// reverse in place to get start → goal
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return &PathResult{Path: rev, Distance: r.dist[r.goal]}
}

// queueItem is one frontier entry: a node and its heap priority (cumulative
// effective cost, plus the heuristic under A*).
type queueItem struct {
	id       string
	priority float64
}

// nodePQ is a min-heap of *queueItem ordered by (priority, id). The ID
// tie-break makes equal-cost pops deterministic.
type nodePQ []*queueItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority first, then smaller ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *queueItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*queueItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
