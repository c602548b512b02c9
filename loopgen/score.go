package loopgen

import (
	"math"

	"github.com/quentintr/trailgen/core"
)

// segKey collapses a directed traversal into its undirected segment
// identity, so A→B and B→A count as the same ground.
func segKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

// segmentSet returns the undirected segment keys touched by a node sequence.
func segmentSet(path []string) map[string]struct{} {
	set := make(map[string]struct{}, len(path))
	for i := 0; i+1 < len(path); i++ {
		set[segKey(path[i], path[i+1])] = struct{}{}
	}
	return set
}

// retraceFraction measures how much of the loop walks the same ground twice:
// the fraction of traversed segments shared between the outbound and return
// legs. 0 is a perfect loop, 1 a pure out-and-back.
func retraceFraction(c *candidate) float64 {
	traversed := len(c.loop) - 1
	if traversed <= 0 {
		return 1
	}
	out := segmentSet(c.loop[:c.apexIdx+1])
	shared := 0
	ret := c.loop[c.apexIdx:]
	for i := 0; i+1 < len(ret); i++ {
		if _, dup := out[segKey(ret[i], ret[i+1])]; dup {
			shared++
		}
	}
	return float64(2*shared) / float64(traversed)
}

// meanEdgeQuality averages the surface quality along the loop's edges.
func meanEdgeQuality(g *core.Graph, edges []string) float64 {
	if len(edges) == 0 {
		return 0
	}
	sum := 0.0
	for _, id := range edges {
		if e, ok := g.Edge(id); ok {
			sum += e.Quality
		}
	}
	return sum / float64(len(edges))
}

// score computes the composite loop quality in [0,1]:
// distance accuracy, overlap avoidance and surface quality, blended by the
// configured weights.
func score(g *core.Graph, cfg Options, c *candidate) float64 {
	accuracy := 1 - math.Min(1, math.Abs(c.dist-cfg.TargetDistance)/cfg.TargetDistance)
	fresh := 1 - retraceFraction(c)
	return cfg.ScoreDistance*accuracy + cfg.ScoreOverlap*fresh + cfg.ScoreQuality*meanEdgeQuality(g, c.edges)
}

// similarity is the Jaccard index of two candidates' undirected segment
// sets; 1 means the same loop walked either way around.
func similarity(a, b *candidate) float64 {
	sa, sb := segmentSet(a.loop), segmentSet(b.loop)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for k := range sa {
		if _, ok := sb[k]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}
