package core

import "sort"

// Components finds all connected regions of the graph, following node
// connections in both directions (edges are stored bidirectionally, so weak
// and strong connectivity coincide here).
//
// Returns one slice of node IDs per component, each sorted; components are
// ordered largest first, ties broken by the first node ID. Isolated nodes
// form singleton components. Useful for spotting disconnected map extracts
// before routing over them.
//
// Time: O(V + E). Memory: O(V).
func (g *Graph) Components() [][]string {
	seen := make(map[string]bool, len(g.nodes))
	var comps [][]string

	for _, start := range g.nodeIDs {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []string{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, nb := range g.nodes[u].Connections {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})
	return comps
}
