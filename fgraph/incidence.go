package fgraph

import "sort"

// IncidenceMatrix is a V×F 0/1 matrix mapping variable regions (rows) to
// factor regions (columns), used by tests to check the Bethe region
// decomposition's degree/counting-number bookkeeping against an independent
// representation.
type IncidenceMatrix struct {
	VariableIndex map[string]int
	Data          [][]int // rows = variables, cols = factors
}

// Incidence builds the V×F incidence matrix for g. Variable row order is
// the sorted variable id order, for determinism.
func (g *Graph) Incidence() IncidenceMatrix {
	ids := make([]string, 0, len(g.Variables))
	for id := range g.Variables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	data := make([][]int, len(ids))
	for i := range data {
		data[i] = make([]int, len(g.Factors))
	}
	for j, fn := range g.Factors {
		for _, v := range fn.Vars {
			data[idx[v.ID]][j] = 1
		}
	}
	return IncidenceMatrix{VariableIndex: idx, Data: data}
}

// RowDegree returns the number of factors incident to variable id, i.e. the
// row sum of the incidence matrix.
func (m IncidenceMatrix) RowDegree(id string) int {
	row, ok := m.VariableIndex[id]
	if !ok {
		return 0
	}
	sum := 0
	for _, v := range m.Data[row] {
		sum += v
	}
	return sum
}
