package fgraph

import "github.com/openms-go/epifany/pmf"

// ComputeVarToFactor computes the message e.Var would send to e.Factor: the
// normalized product of every other incoming factor->var message currently
// stored at e.Var. A degree-1 variable (only e itself incident) yields the
// uniform distribution, matching the ab-initio seed.
func (g *Graph) ComputeVarToFactor(e *Edge) (pmf.Table, error) {
	acc := pmf.New(0, []float64{1, 1})
	for _, oe := range e.Var.Edges {
		if oe == e {
			continue
		}
		acc = pmf.Multiply(acc, oe.f2v)
	}
	return acc.Normalize()
}

// ComputeFactorToVar computes the message e.Factor would send to e.Var:
// e.Factor's table, with every other incident variable's current
// var->factor message folded in and marginalized out via p-norm pooling
// (p=1 behaves as sum-product once renormalized; p=+Inf is max-product).
func (g *Graph) ComputeFactorToVar(e *Edge, pNorm float64) (pmf.Table, error) {
	fn := e.Factor
	pos := -1
	for i, fe := range fn.Edges {
		if fe == e {
			pos = i
			break
		}
	}
	if pos < 0 {
		return pmf.Table{}, ErrUnknownVariable
	}

	var others []int
	for i := range fn.Edges {
		if i != pos {
			others = append(others, i)
		}
	}
	nOthers := len(others)
	weights := make([]float64, 2)

	assignment := make([]int, len(fn.Edges))
	for x := 0; x <= 1; x++ {
		assignment[pos] = x
		var combos []float64
		for mask := 0; mask < (1 << uint(nOthers)); mask++ {
			weight := 1.0
			for oi, p := range others {
				val := (mask >> uint(oi)) & 1
				assignment[p] = val
				weight *= fn.Edges[p].v2f.At(val)
			}
			fv, err := fn.Factor.Value(assignment)
			if err != nil {
				return pmf.Table{}, err
			}
			combos = append(combos, fv*weight)
		}
		weights[x] = pmf.PNormPool(combos, pNorm)
	}

	return pmf.New(0, weights).Normalize()
}
