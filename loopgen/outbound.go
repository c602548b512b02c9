package loopgen

import (
	"container/heap"
	"context"
	"math"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/geo"
)

// outboundLeg is the outbound half of one candidate loop: the path from the
// start to the chosen apex and its length in meters.
type outboundLeg struct {
	apex string
	path []string // start … apex
	dist float64
}

// searchOutbound expands from cfg.Start with edge costs inflated by angular
// deviation from bearingDeg, capped at outboundFraction × target meters of
// cumulative distance. Among all finalized nodes at least apexMinFraction ×
// target away it picks the apex maximizing a blend of "near half the target"
// and "in the sampled direction".
//
// Returns nil when no node qualifies (sparse or walled-in terrain); the
// error is reserved for context expiry.
func searchOutbound(ctx context.Context, g *core.Graph, cfg Options, bearingDeg float64) (*outboundLeg, error) {
	start := cfg.Start
	target := cfg.TargetDistance
	reach := outboundFraction * target
	minApex := apexMinFraction * target

	startNode, _ := g.Node(start)

	dist := map[string]float64{start: 0}
	cost := map[string]float64{start: 0}
	prev := make(map[string]string, 64)
	visited := make(map[string]bool, 64)
	pq := make(searchPQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &searchItem{id: start, priority: 0})

	best := ""
	bestScore := 0.0

	for pq.Len() > 0 {
		// 1) Cooperative cancellation between expansions.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 2) Pop the cheapest biased entry; skip stale lazy duplicates.
		item := heap.Pop(&pq).(*searchItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		un, _ := g.Node(u)
		du := dist[u]

		// 3) Consider u as apex: distance fit vs bearing alignment. Strict
		//    improvement keeps the first (deterministic) pop on ties.
		if du >= minApex {
			align := 1 - geo.AngularDistance(
				geo.InitialBearing(startNode.Lat, startNode.Lon, un.Lat, un.Lon), bearingDeg)/180
			fit := 1 - math.Abs(du-target/2)/(target/2)
			score := apexDistanceWeight*fit + (1-apexDistanceWeight)*align
			if best == "" || score > bestScore {
				best, bestScore = u, score
			}
		}

		// 4) Relax outgoing edges under the angular penalty: an edge pointing
		//    opposite the bearing costs up to (1 + DirectionBias) times more.
		cu := cost[u]
		for _, e := range g.OutEdges(u) {
			v := e.To
			if visited[v] {
				continue
			}
			nd := du + e.Distance
			if nd > reach {
				continue
			}
			vn, _ := g.Node(v)
			dev := geo.AngularDistance(
				geo.InitialBearing(un.Lat, un.Lon, vn.Lat, vn.Lon), bearingDeg)
			nc := cu + e.Weight*(1+cfg.DirectionBias*dev/180)
			if old, seen := cost[v]; seen && nc >= old {
				continue
			}
			dist[v] = nd
			cost[v] = nc
			prev[v] = u
			heap.Push(&pq, &searchItem{id: v, priority: nc})
		}
	}

	if best == "" {
		return nil, nil
	}

	// 5) Reconstruct start → apex from the predecessor chain.
	var rev []string
	for cur := best; ; {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		cur = prev[cur]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return &outboundLeg{apex: best, path: rev, dist: dist[best]}, nil
}

// searchItem is one frontier entry of the outbound search.
type searchItem struct {
	id       string
	priority float64
}

// searchPQ is a min-heap of *searchItem ordered by (priority, id); the ID
// tie-break keeps equal-cost pops deterministic.
type searchPQ []*searchItem

func (pq searchPQ) Len() int { return len(pq) }

func (pq searchPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].id < pq[j].id
}

func (pq searchPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchItem)) }

func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
