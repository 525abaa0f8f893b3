package epifany

import (
	"log/slog"
	"math"

	"github.com/openms-go/epifany/scheduler"
)

// Parameters is the full configuration surface of InferPosteriorProbabilities.
// Build one with the With* options below; Validate is called automatically
// by InferPosteriorProbabilities before any graph work starts.
type Parameters struct {
	// TopPSMs is passed through to the identification-graph builder; 0
	// means "keep all PSMs".
	TopPSMs int

	// UpdatePSMProbabilities, if true, overwrites each PSM's score with its
	// posterior P(psm=1) after the final inference pass.
	UpdatePSMProbabilities bool

	// UserDefinedPriors, if true, uses each protein hit's stored "Prior"
	// meta entry instead of Gamma as that protein's prior.
	UserDefinedPriors bool

	// AnnotateGroupProbabilities, if true, requests a posterior for every
	// protein-group variable so the final group-annotation pass reports
	// computed probabilities rather than pre-inference aggregates.
	AnnotateGroupProbabilities bool

	// Alpha is the peptide-emission probability (model_parameters:pep_emission).
	// A negative value expands to the default grid sweep.
	Alpha float64
	// Beta is the spurious-emission probability (model_parameters:pep_spurious_emission).
	// A negative value expands to the default grid sweep.
	Beta float64
	// Gamma is the protein prior (model_parameters:prot_prior). A negative
	// value expands to the default grid sweep.
	Gamma float64
	// PepPrior is the independent peptide-group prior, in [0,1].
	PepPrior float64

	// Scheduling selects the LBP message-ordering strategy.
	Scheduling scheduler.Strategy
	// ConvergenceThreshold is the per-round max L-infinity change below
	// which a CC's inference is declared converged.
	ConvergenceThreshold float64
	// DampeningLambda blends each sent message with the previous one on
	// the same edge; must be in [0,1).
	DampeningLambda float64
	// MaxIterations bounds the number of LBP rounds per CC.
	MaxIterations int
	// PNormInference is the p-norm used to pool configurations during
	// marginalization; any value <=0 is treated as +Inf (max-product).
	PNormInference float64

	// AUCWeight (param_optimize:aucweight) is range-checked by Validate.
	// Nothing else reads it: it is not handed to the grid-search Scorer,
	// whose Evaluate takes no arguments.
	AUCWeight float64

	// MaxConcurrency bounds how many connected components are processed
	// at once; <=0 means unbounded. Configures ccdriver's errgroup fan-out.
	MaxConcurrency int

	// Logger receives scheduler convergence warnings and per-CC skip
	// notices. Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// Option configures a Parameters value.
type Option func(*Parameters)

// defaultParameters returns the documented defaults.
func defaultParameters() Parameters {
	return Parameters{
		TopPSMs:              0,
		Alpha:                -1,
		Beta:                 -1,
		Gamma:                -1,
		PepPrior:             0.5,
		Scheduling:           scheduler.Priority,
		ConvergenceThreshold: 1e-5,
		DampeningLambda:      1e-3,
		MaxIterations:        1 << 31,
		PNormInference:       1,
		AUCWeight:            1,
	}
}

// WithTopPSMs sets how many top-scoring PSMs per parent the identification
// graph builder keeps; 0 (the default) keeps all.
func WithTopPSMs(n int) Option {
	return func(p *Parameters) { p.TopPSMs = n }
}

// WithUpdatePSMProbabilities toggles whether PSM scores are overwritten
// with their posteriors.
func WithUpdatePSMProbabilities(enabled bool) Option {
	return func(p *Parameters) { p.UpdatePSMProbabilities = enabled }
}

// WithUserDefinedPriors toggles whether each protein's stored "Prior" meta
// entry is used in place of Gamma.
func WithUserDefinedPriors(enabled bool) Option {
	return func(p *Parameters) { p.UserDefinedPriors = enabled }
}

// WithAnnotateGroupProbabilities toggles whether protein-group posteriors
// are computed during the final inference pass.
func WithAnnotateGroupProbabilities(enabled bool) Option {
	return func(p *Parameters) { p.AnnotateGroupProbabilities = enabled }
}

// WithModelParameters sets alpha, beta, gamma and pepPrior together, since
// they form one logical model-parameters group. A negative alpha/beta/gamma
// expands to that axis's default grid sweep.
func WithModelParameters(alpha, beta, gamma, pepPrior float64) Option {
	return func(p *Parameters) {
		p.Alpha, p.Beta, p.Gamma, p.PepPrior = alpha, beta, gamma, pepPrior
	}
}

// WithScheduling selects the LBP scheduling strategy.
func WithScheduling(strategy scheduler.Strategy) Option {
	return func(p *Parameters) { p.Scheduling = strategy }
}

// WithConvergenceThreshold sets the per-round max L-infinity change below
// which a CC is declared converged.
func WithConvergenceThreshold(threshold float64) Option {
	return func(p *Parameters) { p.ConvergenceThreshold = threshold }
}

// WithDampeningLambda sets the message damping factor; must land in [0,1).
func WithDampeningLambda(lambda float64) Option {
	return func(p *Parameters) { p.DampeningLambda = lambda }
}

// WithMaxIterations bounds the number of LBP rounds run per CC.
func WithMaxIterations(n int) Option {
	return func(p *Parameters) { p.MaxIterations = n }
}

// WithPNormInference sets the p-norm used to pool configurations during
// marginalization; any value <=0 is treated as +Inf.
func WithPNormInference(pNorm float64) Option {
	return func(p *Parameters) { p.PNormInference = pNorm }
}

// WithAUCWeight sets the aucweight value; it is range-checked but not
// passed to the scoring callback.
func WithAUCWeight(weight float64) Option {
	return func(p *Parameters) { p.AUCWeight = weight }
}

// WithMaxConcurrency bounds how many connected components ApplyFunctorOnCCs
// processes at once; <=0 means unbounded.
func WithMaxConcurrency(n int) Option {
	return func(p *Parameters) { p.MaxConcurrency = n }
}

// WithLogger overrides the default slog.Default() logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parameters) { p.Logger = logger }
}

func (p Parameters) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Validate checks every field against its documented range, returning a
// *ParameterError for the first violation found.
func (p Parameters) Validate() error {
	if p.TopPSMs < 0 {
		return &ParameterError{Field: "top_PSMs", Value: p.TopPSMs, Reason: "must be >= 0"}
	}
	if p.Gamma < -1 || p.Gamma > 1 {
		return &ParameterError{Field: "model_parameters:prot_prior", Value: p.Gamma, Reason: "must be in [-1,1]"}
	}
	if p.Alpha < -1 || p.Alpha > 1 {
		return &ParameterError{Field: "model_parameters:pep_emission", Value: p.Alpha, Reason: "must be in [-1,1]"}
	}
	if p.Beta < -1 || p.Beta > 1 {
		return &ParameterError{Field: "model_parameters:pep_spurious_emission", Value: p.Beta, Reason: "must be in [-1,1]"}
	}
	if p.PepPrior < 0 || p.PepPrior > 1 {
		return &ParameterError{Field: "model_parameters:pep_prior", Value: p.PepPrior, Reason: "must be in [0,1]"}
	}
	switch p.Scheduling {
	case scheduler.Priority, scheduler.FIFO, scheduler.RandomSpanningTree:
	default:
		return &ParameterError{Field: "loopy_belief_propagation:scheduling_type", Value: p.Scheduling, Reason: "must be priority, fifo, or random_spanning_tree"}
	}
	if p.ConvergenceThreshold <= 0 || math.IsNaN(p.ConvergenceThreshold) {
		return &ParameterError{Field: "loopy_belief_propagation:convergence_threshold", Value: p.ConvergenceThreshold, Reason: "must be > 0"}
	}
	if p.DampeningLambda < 0 || p.DampeningLambda >= 1 {
		return &ParameterError{Field: "loopy_belief_propagation:dampening_lambda", Value: p.DampeningLambda, Reason: "must be in [0,1)"}
	}
	if p.MaxIterations < 1 {
		return &ParameterError{Field: "loopy_belief_propagation:max_nr_iterations", Value: p.MaxIterations, Reason: "must be >= 1"}
	}
	if math.IsNaN(p.PNormInference) {
		return &ParameterError{Field: "loopy_belief_propagation:p_norm_inference", Value: p.PNormInference, Reason: "must not be NaN"}
	}
	if p.AUCWeight < 0 || p.AUCWeight > 1 {
		return &ParameterError{Field: "param_optimize:aucweight", Value: p.AUCWeight, Reason: "must be in [0,1]"}
	}
	return nil
}
