package epifany

import (
	"log/slog"

	"github.com/openms-go/epifany/ccdriver"
	"github.com/openms-go/epifany/factor"
	"github.com/openms-go/epifany/fgraph"
	"github.com/openms-go/epifany/idgraph"
	"github.com/openms-go/epifany/inference"
	"github.com/openms-go/epifany/scheduler"
)

// newFunctor returns the per-CC inference functor, closed over the model
// hyperparameters of one grid-search tuple (or the final best tuple) and
// the side-effect flags that control which variables get a requested
// posterior.
func newFunctor(p Parameters, alpha, beta, gamma float64, log *slog.Logger) ccdriver.Functor {
	fact := factor.NewFactory(alpha, beta, gamma, p.PepPrior, p.PNormInference)

	return func(cc *idgraph.Graph) error {
		fb := fgraph.NewBuilder()

		var (
			requested       []string
			proteinVertices []*idgraph.Vertex
			groupVertices   []*idgraph.Vertex
			psmVertices     []*idgraph.Vertex
			shapeErr        error
		)

		for _, id := range cc.VertexIDs() {
			v := cc.Vertices[id]
			ins := cc.InputsOf(id)

			switch v.Which {
			case idgraph.PSMVertex:
				if len(ins) == 0 {
					shapeErr = &idgraph.GraphShapeError{VertexID: id, Which: v.Which, Reason: "PSM vertex has no parent edge"}
					continue
				}
				n := v.Peptide.EvidenceMultiplicity()
				fb.InsertDependency(fact.CreateSumEvidenceFactor(n, ins[0].ID, id))
				fb.InsertDependency(fact.CreatePeptideEvidenceFactor(id, v.Peptide.Score()))
				if p.UpdatePSMProbabilities {
					requested = append(requested, id)
					psmVertices = append(psmVertices, v)
				}

			case idgraph.PeptideGroupVertex:
				adders, err := fact.CreatePeptideProbabilisticAdderFactor(idsOf(ins), id)
				if err != nil {
					shapeErr = &idgraph.GraphShapeError{VertexID: id, Which: v.Which, Reason: err.Error()}
					continue
				}
				for _, f := range adders {
					fb.InsertDependency(f)
				}
				fb.InsertDependency(fact.CreatePeptideGroupPriorFactor(id))

			case idgraph.ProteinGroupVertex:
				adders, err := fact.CreatePeptideProbabilisticAdderFactor(idsOf(ins), id)
				if err != nil {
					shapeErr = &idgraph.GraphShapeError{VertexID: id, Which: v.Which, Reason: err.Error()}
					continue
				}
				for _, f := range adders {
					fb.InsertDependency(f)
				}
				if p.AnnotateGroupProbabilities {
					requested = append(requested, id)
					groupVertices = append(groupVertices, v)
				}

			case idgraph.ProteinVertex:
				var pf factor.Factor
				if prior, ok := v.Protein.Meta("Prior"); p.UserDefinedPriors && ok {
					pf = fact.CreateProteinFactorWithPrior(id, prior)
				} else {
					pf = fact.CreateProteinFactor(id)
				}
				fb.InsertDependency(pf)
				requested = append(requested, id)
				proteinVertices = append(proteinVertices, v)
			}
		}

		// ToGraph releases the builder's scratch on every path, success or
		// error, so it must run even when a shape error was already found
		// above.
		g, err := fb.ToGraph()
		if shapeErr != nil {
			return shapeErr
		}
		if err != nil {
			return err
		}

		eng := inference.NewEngine(scheduler.Config{
			Strategy:             p.Scheduling,
			PNorm:                p.PNormInference,
			DampingLambda:        p.DampeningLambda,
			ConvergenceThreshold: p.ConvergenceThreshold,
			MaxIterations:        p.MaxIterations,
		})

		warn, err := eng.Run(g)
		if err != nil {
			return err
		}
		if warn != nil {
			log.Warn("loopy belief propagation did not converge in a connected component",
				"iterations", warn.Iterations, "max_delta", warn.MaxDelta, "threshold", warn.Threshold)
		}

		posteriors, err := eng.EstimatePosteriors(g, requested)
		if err != nil {
			return err
		}

		for _, v := range proteinVertices {
			v.Protein.SetScore(posteriors[v.ID])
		}
		for _, v := range groupVertices {
			v.Value = posteriors[v.ID]
		}
		for _, v := range psmVertices {
			v.Peptide.SetScore(posteriors[v.ID])
		}
		return nil
	}
}

func idsOf(vs []*idgraph.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}
