package groups

import "github.com/openms-go/epifany/idgraph"

// Group is one indistinguishable-protein-group record.
type Group struct {
	Probability float64
	Accessions  []string
}

// Annotate walks ccs (each already restricted to a single connected
// component) and returns one Group per protein-group vertex found in a
// component with at least two vertices, in CC and then vertex-id order.
func Annotate(ccs []*idgraph.Graph) []Group {
	var out []Group
	for _, cc := range ccs {
		if len(cc.Vertices) < 2 {
			continue
		}
		for _, id := range cc.VertexIDs() {
			v := cc.Vertices[id]
			if v.Which != idgraph.ProteinGroupVertex {
				continue
			}
			var accessions []string
			for _, n := range cc.Neighbors(id) {
				if n.Which == idgraph.ProteinVertex {
					accessions = append(accessions, n.Protein.Accession())
				}
			}
			out = append(out, Group{Probability: v.Value, Accessions: accessions})
		}
	}
	return out
}
