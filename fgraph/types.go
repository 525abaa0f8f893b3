package fgraph

import (
	"github.com/openms-go/epifany/factor"
	"github.com/openms-go/epifany/pmf"
)

// Variable is a {0,1}-valued node in the factor graph, corresponding to one
// identification-graph vertex of interest (or an auxiliary OR-tree node
// introduced by factor.CreatePeptideProbabilisticAdderFactor).
type Variable struct {
	ID    string
	Edges []*Edge // edges incident to this variable, in insertion order
}

// FactorNode wraps a factor.Factor with pointers to its incident Variables.
type FactorNode struct {
	ID     int // index into Graph.Factors, assigned at construction
	Factor factor.Factor
	Vars   []*Variable
	Edges  []*Edge // parallel to Factor.Vars / Vars, one per incident variable
}

// Direction identifies which way a message travels on a bipartite edge.
type Direction int

const (
	// VarToFactor is the message sent from a Variable to a FactorNode.
	VarToFactor Direction = iota
	// FactorToVar is the message sent from a FactorNode to a Variable.
	FactorToVar
)

// Edge is one directed-message slot pair between a Variable and a
// FactorNode. ID is assigned sequentially at graph construction and used as
// the scheduler's deterministic tie-break.
type Edge struct {
	ID     int
	Var    *Variable
	Factor *FactorNode

	v2f pmf.Table // last message sent Variable -> FactorNode
	f2v pmf.Table // last message sent FactorNode -> Variable
}

// Graph is the materialized bipartite factor graph plus its Bethe cluster
// region decomposition (see region.go).
type Graph struct {
	Variables map[string]*Variable
	Factors   []*FactorNode
	Edges     []*Edge
	Regions   []Region
}

// Seed initializes every edge's stored messages to the uniform {0,1}
// distribution, the ab-initio message the scheduler requires before its
// first iteration.
func (g *Graph) Seed() {
	u := pmf.Uniform()
	for _, e := range g.Edges {
		e.v2f = u.Clone()
		e.f2v = u.Clone()
	}
}

// Message returns the last message sent in direction dir on e.
func (e *Edge) Message(dir Direction) pmf.Table {
	if dir == VarToFactor {
		return e.v2f
	}
	return e.f2v
}

// Commit stores a freshly computed, already-damped message on e and returns
// the L-infinity change versus what was stored before, the quantity the
// priority scheduler ranks pending edges by and the engine uses to detect
// convergence.
func (e *Edge) Commit(dir Direction, msg pmf.Table) float64 {
	var diff float64
	if dir == VarToFactor {
		diff = pmf.LInfDiff(msg, e.v2f)
		e.v2f = msg
	} else {
		diff = pmf.LInfDiff(msg, e.f2v)
		e.f2v = msg
	}
	return diff
}
