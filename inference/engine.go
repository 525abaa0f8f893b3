package inference

import (
	"github.com/openms-go/epifany/fgraph"
	"github.com/openms-go/epifany/pmf"
	"github.com/openms-go/epifany/scheduler"
)

// Engine drives one fgraph.Graph to convergence under a fixed scheduler
// configuration.
type Engine struct {
	Scheduler scheduler.Config
}

// NewEngine returns an Engine configured with cfg.
func NewEngine(cfg scheduler.Config) Engine {
	return Engine{Scheduler: cfg}
}

// Run steps the configured scheduler over g until convergence or the
// iteration cap. A non-nil *scheduler.ConvergenceWarning means the cap was
// hit without reaching cfg.ConvergenceThreshold; it is not an error. A
// non-nil error is a genuine NumericError surfaced from message
// computation (NaN/Inf, or underflow to an all-zero message).
func (e Engine) Run(g *fgraph.Graph) (*scheduler.ConvergenceWarning, error) {
	sched, err := scheduler.New(e.Scheduler)
	if err != nil {
		return nil, err
	}
	_, warn, err := scheduler.Run(g, sched, e.Scheduler)
	if err != nil {
		return nil, &NumericError{Err: err}
	}
	return warn, nil
}

// EstimatePosteriors returns, for each requested variable present in g, the
// single-variable marginal P(x=1): the product of every incoming
// factor->variable message, renormalized. Requested variables absent from
// g are silently omitted (a CC's functor only asks for variables it itself
// inserted).
func (e Engine) EstimatePosteriors(g *fgraph.Graph, variableIDs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(variableIDs))
	for _, id := range variableIDs {
		v, ok := g.Variables[id]
		if !ok {
			continue
		}

		tables := make([]pmf.Table, 0, len(v.Edges))
		for _, edge := range v.Edges {
			tables = append(tables, edge.Message(fgraph.FactorToVar))
		}
		prod, err := pmf.MultiplyAll(tables)
		if err != nil {
			return nil, &NumericError{VariableID: id, Err: err}
		}
		norm, err := prod.Normalize()
		if err != nil {
			return nil, &NumericError{VariableID: id, Err: err}
		}
		out[id] = norm.P1()
	}
	return out, nil
}
