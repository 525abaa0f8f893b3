package idgraph

// ConnectedComponents decomposes g into its connected components, each
// returned as an independent subgraph containing only the member vertices
// and the edges between them. Uses the same BFS flood-fill shape as a 2D
// grid's connected-components scan, adapted from cell coordinates to an
// adjacency-map graph.
func (g *Graph) ConnectedComponents() []*Graph {
	seen := make(map[string]bool, len(g.Vertices))
	var comps []*Graph

	for _, id := range g.VertexIDs() {
		if seen[id] {
			continue
		}
		queue := []string{id}
		seen[id] = true
		var members []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			members = append(members, u)
			for _, n := range sortedKeys(g.adjacency[u]) {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, g.subgraph(members))
	}
	return comps
}

// subgraph returns a new Graph containing exactly the named vertices and
// the edges of g that run between them.
func (g *Graph) subgraph(ids []string) *Graph {
	sub := NewGraph()
	members := make(map[string]bool, len(ids))
	for _, id := range ids {
		members[id] = true
		sub.AddVertex(g.Vertices[id])
	}
	for _, id := range ids {
		for n := range g.adjacency[id] {
			if members[n] {
				sub.adjacency[id][n] = true
			}
		}
	}
	return sub
}
