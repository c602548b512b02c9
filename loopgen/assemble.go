package loopgen

import (
	"context"
	"fmt"

	"github.com/quentintr/trailgen/core"
	"github.com/quentintr/trailgen/pathfind"
)

// candidate is one assembled loop before filtering and ranking.
type candidate struct {
	loop    []string // node sequence, closed
	edges   []string // directed edge IDs, len(loop)-1
	apexIdx int      // index of the apex inside loop
	bearing float64  // the bearing that produced it, final ranking tie-break
	dist    float64  // meters
	quality float64  // filled by score()
}

// buildCandidate assembles the loop for one bearing: outbound leg to an
// apex, then a return leg that avoids the outbound segments, relaxed to
// allow partial retrace when the terrain leaves no alternative.
//
// Returns (nil, warning, nil) when the bearing yields nothing, and a non-nil
// error only when the context expired.
func buildCandidate(ctx context.Context, g *core.Graph, cfg Options, bearing float64) (*candidate, string, error) {
	// 1) Outbound: biased expansion toward the bearing.
	leg, err := searchOutbound(ctx, g, cfg, bearing)
	if err != nil {
		return nil, "", err
	}
	if leg == nil {
		return nil, fmt.Sprintf("bearing %.0f°: no apex within reach", bearing), nil
	}

	// 2) Return: capped A* back to the start, outbound segments forbidden in
	//    both directions so the way back covers fresh ground.
	ret, err := pathfind.ShortestPath(g, leg.apex, cfg.Start,
		pathfind.WithMaxDistance(cfg.MaxSearch),
		pathfind.WithForbiddenEdges(pathfind.ForbidUndirected(leg.path...)...),
		pathfind.WithAlgorithm(pathfind.AStar),
		pathfind.WithContext(ctx))
	if err != nil {
		return nil, "", err
	}

	// 3) Dead end without retracing: relax the exclusion and accept partial
	//    retrace over failing the bearing outright.
	if ret == nil {
		ret, err = pathfind.ShortestPath(g, leg.apex, cfg.Start,
			pathfind.WithMaxDistance(cfg.MaxSearch),
			pathfind.WithAlgorithm(pathfind.AStar),
			pathfind.WithContext(ctx))
		if err != nil {
			return nil, "", err
		}
	}
	if ret == nil {
		return nil, fmt.Sprintf("bearing %.0f°: no return path within %.0f m", bearing, cfg.MaxSearch), nil
	}

	// 4) Stitch the legs: outbound start…apex plus return apex…start minus
	//    the duplicated apex.
	loop := make([]string, 0, len(leg.path)+len(ret.Path)-1)
	loop = append(loop, leg.path...)
	loop = append(loop, ret.Path[1:]...)

	edges := make([]string, 0, len(loop)-1)
	total := 0.0
	for i := 0; i+1 < len(loop); i++ {
		id := core.EdgeID(loop[i], loop[i+1])
		e, ok := g.Edge(id)
		if !ok {
			// Both legs walked real graph edges; a miss here means the two
			// graphs diverged mid-request, which Generate rules out.
			return nil, fmt.Sprintf("bearing %.0f°: assembled loop references unknown edge %s", bearing, id), nil
		}
		edges = append(edges, id)
		total += e.Distance
	}

	return &candidate{
		loop:    loop,
		edges:   edges,
		apexIdx: len(leg.path) - 1,
		bearing: bearing,
		dist:    total,
	}, "", nil
}
