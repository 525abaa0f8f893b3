package factor

import (
	"math"
	"strconv"
)

// Factory builds factors for one connected component, holding the model
// hyperparameters fixed for the duration of a grid-search cell or the final
// inference pass.
//
//   - Alpha (α): peptide-emission probability given the parent is present.
//   - Beta (β): spurious-emission probability given the parent is absent.
//   - Gamma (γ): default protein prior, used when no user prior is set.
//   - PepPrior: independent prior folded into peptide-group variables
//     (see CreatePeptideGroupPriorFactor).
//   - PNorm: marginalization p-norm; p<=0 is treated as +Inf (max-product).
type Factory struct {
	Alpha    float64
	Beta     float64
	Gamma    float64
	PepPrior float64
	PNorm    float64
}

// NewFactory returns a Factory with p<=0 normalized to +Inf per the engine
// convention.
func NewFactory(alpha, beta, gamma, pepPrior, pNorm float64) Factory {
	if pNorm <= 0 {
		pNorm = math.Inf(1)
	}
	return Factory{Alpha: alpha, Beta: beta, Gamma: gamma, PepPrior: pepPrior, PNorm: pNorm}
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CreateProteinFactor returns the protein prior factor F(x) = (1-γ, γ).
func (f Factory) CreateProteinFactor(id string) Factor {
	return f.createBernoulli(id, f.Gamma)
}

// CreateProteinFactorWithPrior returns the protein prior factor using a
// user-supplied prior instead of γ.
func (f Factory) CreateProteinFactorWithPrior(id string, prior float64) Factor {
	return f.createBernoulli(id, prior)
}

// CreatePeptideEvidenceFactor returns F(y) = (1-s, s) for the PSM's own
// score s, clipped to [0,1].
func (f Factory) CreatePeptideEvidenceFactor(id string, score float64) Factor {
	return f.createBernoulli(id, clip01(score))
}

// CreatePeptideGroupPriorFactor returns the independent pep_prior factor
// folded onto a peptide-group variable: an additional independent Bernoulli
// prior on the peptide-group variable, separate from the probabilistic-adder
// factor that already constrains it.
func (f Factory) CreatePeptideGroupPriorFactor(id string) Factor {
	return f.createBernoulli(id, clip01(f.PepPrior))
}

func (f Factory) createBernoulli(id string, p float64) Factor {
	p = clip01(p)
	fac := newFactor(id)
	fac.Table[0] = 1 - p
	fac.Table[1] = p
	return fac
}

// CreateSumEvidenceFactor returns the 2x2 noisy-OR "sum-evidence" factor
// over (parent, psm) linking a PSM to its single parent variable in the
// factor graph, diluted by the PSM's evidence multiplicity N (its total
// number of mapped proteins):
//
//	P(psm=1 | parent=0) = β
//	P(psm=1 | parent=1) = 1 - (1-α)*(1-β)^N
//
// N=1 reduces to the basic noisy-OR 1-(1-α)(1-β).
func (f Factory) CreateSumEvidenceFactor(n int, parentID, psmID string) Factor {
	if n < 1 {
		n = 1
	}
	fac := newFactor(parentID, psmID)
	beta := clip01(f.Beta)
	pGivenAbsent := clip01(beta)
	pGivenPresent := clip01(1 - (1-clip01(f.Alpha))*math.Pow(1-beta, float64(n)))

	// index order: parent (MSB), psm (LSB)
	fac.Table[index([]int{0, 0})] = 1 - pGivenAbsent
	fac.Table[index([]int{0, 1})] = pGivenAbsent
	fac.Table[index([]int{1, 0})] = 1 - pGivenPresent
	fac.Table[index([]int{1, 1})] = pGivenPresent
	return fac
}

// CreatePeptideProbabilisticAdderFactor returns the factor(s) encoding
// group = OR(inputs...). For up to three inputs this is a single dense
// factor of arity len(inputs)+1; for more inputs it is decomposed into a
// convergecast tree of pairwise OR factors over auxiliary variables (named
// group+"#orN") to keep every table at arity 3.
//
// It returns ErrNoInputs if inputs is empty.
func (f Factory) CreatePeptideProbabilisticAdderFactor(inputs []string, group string) ([]Factor, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if len(inputs) <= 3 {
		direct := append([]string{}, inputs...)
		return []Factor{orFactor(direct, group)}, nil
	}

	var factors []Factor
	acc := inputs[0]
	for i := 1; i < len(inputs)-1; i++ {
		aux := auxID(group, i-1)
		factors = append(factors, orFactor([]string{acc, inputs[i]}, aux))
		acc = aux
	}
	factors = append(factors, orFactor([]string{acc, inputs[len(inputs)-1]}, group))
	return factors, nil
}

func auxID(group string, i int) string {
	return group + "#or" + strconv.Itoa(i)
}

// orFactor builds a dense factor over (members..., out) encoding out=1 iff
// any member is 1.
func orFactor(members []string, out string) Factor {
	vars := append(append([]string{}, members...), out)
	fac := newFactor(vars...)
	n := len(members)
	for a := 0; a < 1<<uint(n); a++ {
		anyOne := a != 0
		assignment := make([]int, n+1)
		for b := 0; b < n; b++ {
			assignment[b] = (a >> uint(n-1-b)) & 1
		}
		for g := 0; g <= 1; g++ {
			assignment[n] = g
			if (g == 1) == anyOne {
				fac.Table[index(assignment)] = 1
			}
		}
	}
	return fac
}
