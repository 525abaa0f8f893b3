package fgraph

// Region is one cluster region of the Bethe free-energy decomposition: in
// the Bethe approximation every factor is a region and every variable is a
// region, with no higher-order regions. A region's CountingNumber enters
// the Bethe free energy; for a variable region of degree d (the number of
// incident factors), the counting number is 1-d; factor regions, having no
// parent regions above them in this flat decomposition, keep the
// conventional factor counting number of 1.
type Region struct {
	VariableID     string // set for a variable region, empty for a factor region
	FactorIndex    int    // index into Graph.Factors, valid only for a factor region
	IsFactor       bool
	Degree         int
	CountingNumber int
}

// buildRegions computes the Bethe cluster region decomposition for a
// materialized Graph: one region per variable (counting number 1-degree)
// and one region per factor (counting number 1), connected to exactly the
// variable/factor regions they touch in the bipartite graph; no region
// spans more than one factor.
func buildRegions(g *Graph) []Region {
	regions := make([]Region, 0, len(g.Variables)+len(g.Factors))
	for _, v := range g.Variables {
		d := len(v.Edges)
		regions = append(regions, Region{
			VariableID:     v.ID,
			Degree:         d,
			CountingNumber: 1 - d,
		})
	}
	for i := range g.Factors {
		regions = append(regions, Region{
			IsFactor:       true,
			FactorIndex:    i,
			Degree:         len(g.Factors[i].Edges),
			CountingNumber: 1,
		})
	}
	return regions
}

// Degree returns the number of factor edges incident on the variable (its
// incidence-matrix row sum), or 0 for an unknown variable id.
func (g *Graph) Degree(variableID string) int {
	v, ok := g.Variables[variableID]
	if !ok {
		return 0
	}
	return len(v.Edges)
}
