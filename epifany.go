package epifany

import (
	"fmt"

	"github.com/openms-go/epifany/ccdriver"
	"github.com/openms-go/epifany/gridsearch"
	"github.com/openms-go/epifany/groups"
	"github.com/openms-go/epifany/idgraph"
)

const (
	scoreTypePosteriorProbability = "Posterior Probability"
	searchEngineName              = "Epifany"
)

// ProteinIdentification is the caller-owned container InferPosteriorProbabilities
// annotates: its score-type metadata and its indistinguishable-groups list.
// Implementations typically wrap the caller's own protein-identification
// record; this module never constructs one itself.
type ProteinIdentification interface {
	// SetScoreType records the score semantics written into every protein
	// hit's score from now on.
	SetScoreType(name string, higherIsBetter bool)
	// SetSearchEngine records which engine produced the scores.
	SetSearchEngine(name string)
	// ProteinHits returns every protein hit this identification covers, in
	// the same order the identification graph's builder referenced them.
	ProteinHits() []idgraph.ProteinHit
	// AppendIndistinguishableGroup records one emitted protein-group
	// annotation; order of calls follows groups.Annotate's CC order.
	AppendIndistinguishableGroup(probability float64, accessions []string)
}

// PeptideIdentification exposes the peptide hits covered by an
// orchestration call. The engine rescoring itself flows through the
// identification graph's own PeptideHit references (set up by the
// caller's idgraph.Builder); PeptideIdentification is accepted alongside
// proteinIDs so a caller can assert, before calling, that the graph it
// built actually covers these hits.
type PeptideIdentification interface {
	PeptideHits() []idgraph.PeptideHit
}

// InferPosteriorProbabilities is the top-level orchestrator: it validates
// parameters, builds the identification graph via idBuilder,
// runs a grid search over any (alpha,beta,gamma) axis left unconfigured
// (negative), and performs one final inference pass with the best (or only)
// tuple, writing posteriors back into proteinIDs/peptideIDs and appending
// indistinguishable-group records to proteinIDs.
//
// scorer is only required when more than one (alpha,beta,gamma) combination
// is in play; a fully-pinned model (all three in [0,1]) skips grid search
// entirely and scorer may be nil.
func InferPosteriorProbabilities(
	idBuilder idgraph.Builder,
	proteinIDs ProteinIdentification,
	peptideIDs PeptideIdentification,
	scorer gridsearch.Scorer,
	opts ...Option,
) error {
	p := defaultParameters()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	log := p.logger()
	_ = peptideIDs // engine rescoring reaches peptides via the identification graph itself; see PeptideIdentification doc

	proteinIDs.SetScoreType(scoreTypePosteriorProbability, true)
	proteinIDs.SetSearchEngine(searchEngineName)

	if p.UserDefinedPriors {
		for _, hit := range proteinIDs.ProteinHits() {
			hit.SetMeta("Prior", hit.Score())
		}
	}

	g, err := idBuilder.BuildGraph(p.TopPSMs)
	if err != nil {
		return fmt.Errorf("epifany: building identification graph: %w", err)
	}
	ccs := g.ConnectedComponents()

	alphas := gridsearch.AlphaAxis(p.Alpha)
	betas := gridsearch.BetaAxis(p.Beta)
	gammas := gridsearch.GammaAxis(p.Gamma)

	best := gridsearch.Tuple{Alpha: alphas[0], Beta: betas[0], Gamma: gammas[0]}

	if gridsearch.NeedsSearch(alphas, betas, gammas) {
		if scorer == nil {
			return &ParameterError{Field: "scorer", Value: nil, Reason: "a scoring callback is required when more than one (alpha,beta,gamma) candidate is configured"}
		}

		// Grid search runs with PSM-probability updates and group
		// annotation disabled, regardless of the caller's own preference;
		// both are restored for the final pass below.
		searchParams := p
		searchParams.UpdatePSMProbabilities = false
		searchParams.AnnotateGroupProbabilities = false

		driverCfg := ccdriver.Config{MaxConcurrency: p.MaxConcurrency, Logger: log}
		apply := func(t gridsearch.Tuple) error {
			f := newFunctor(searchParams, t.Alpha, t.Beta, t.Gamma, log)
			ccdriver.ApplyFunctorOnCCs(ccs, f, driverCfg)
			return nil
		}

		found, score, err := gridsearch.Run(alphas, betas, gammas, apply, scorer)
		if err != nil {
			return fmt.Errorf("epifany: grid search: %w", err)
		}
		best = found
		log.Info("epifany: grid search selected model parameters",
			"alpha", best.Alpha, "beta", best.Beta, "gamma", best.Gamma, "score", score)
	}

	finalFunctor := newFunctor(p, best.Alpha, best.Beta, best.Gamma, log)
	ccdriver.ApplyFunctorOnCCs(ccs, finalFunctor, ccdriver.Config{MaxConcurrency: p.MaxConcurrency, Logger: log})

	for _, grp := range groups.Annotate(ccs) {
		proteinIDs.AppendIndistinguishableGroup(grp.Probability, grp.Accessions)
	}
	return nil
}
