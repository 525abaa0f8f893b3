package idgraph

import "sort"

// Builder constructs an identification graph from a caller's own
// protein/peptide identification data, trimmed to at most topPSMs PSMs per
// parent. Parsing identification data into graph form is the caller's
// responsibility; this package only consumes the resulting Graph.
// SimpleBuilder below wraps an already-assembled Graph, for callers and
// tests that build the graph themselves.
type Builder interface {
	BuildGraph(topPSMs int) (*Graph, error)
}

// SimpleBuilder adapts a pre-built Graph to the Builder interface.
type SimpleBuilder struct {
	g *Graph
}

// NewSimpleBuilder returns a Builder that hands out g, optionally trimmed
// by BuildGraph's topPSMs argument.
func NewSimpleBuilder(g *Graph) *SimpleBuilder {
	return &SimpleBuilder{g: g}
}

// BuildGraph returns the wrapped graph. If topPSMs > 0, every non-PSM
// vertex keeps only its topPSMs highest-scoring PSM neighbors, mirroring
// top_PSMs' documented effect (0 = all) without a real ID-file parser.
func (b *SimpleBuilder) BuildGraph(topPSMs int) (*Graph, error) {
	if topPSMs <= 0 {
		return b.g, nil
	}
	return trimTopPSMs(b.g, topPSMs), nil
}

func trimTopPSMs(g *Graph, topPSMs int) *Graph {
	keep := make(map[string]bool, len(g.Vertices))
	for id, v := range g.Vertices {
		if v.Which != PSMVertex {
			keep[id] = true
		}
	}

	top := make(map[string]map[string]bool)
	byParent := make(map[string][]*Vertex)
	for _, id := range g.VertexIDs() {
		v := g.Vertices[id]
		if v.Which != PSMVertex {
			continue
		}
		for _, n := range g.Neighbors(id) {
			byParent[n.ID] = append(byParent[n.ID], v)
		}
	}
	for parent, psms := range byParent {
		sort.SliceStable(psms, func(i, j int) bool {
			return psms[i].Peptide.Score() > psms[j].Peptide.Score()
		})
		limit := topPSMs
		if limit > len(psms) {
			limit = len(psms)
		}
		top[parent] = make(map[string]bool, limit)
		for i := 0; i < limit; i++ {
			keep[psms[i].ID] = true
			top[parent][psms[i].ID] = true
		}
	}

	out := NewGraph()
	ids := make([]string, 0, len(keep))
	for id := range keep {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		out.AddVertex(g.Vertices[id])
	}
	for _, id := range ids {
		for n := range g.adjacency[id] {
			if g.Vertices[id].Which == PSMVertex && !top[n][id] {
				continue
			}
			if g.Vertices[n].Which == PSMVertex && !top[id][n] {
				continue
			}
			if keep[n] {
				out.adjacency[id][n] = true
			}
		}
	}
	return out
}
