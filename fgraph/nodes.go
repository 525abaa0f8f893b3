package fgraph

import (
	"sort"
	"strconv"
)

// NodeKey is a graph-wide unique string identifying either a Variable or a
// FactorNode, used by schedulers (notably the random-spanning-tree
// strategy) that need to treat the bipartite graph as one plain undirected
// graph over a single node set.
type NodeKey string

func varKey(id string) NodeKey        { return NodeKey("v:" + id) }
func factorKey(id int) NodeKey        { return NodeKey("f:" + strconv.Itoa(id)) }
func (g *Graph) keyOfFactor(fn *FactorNode) NodeKey { return factorKey(fn.ID) }

// NodeKeys returns every node key in the graph, variables first (sorted by
// id) then factors (by insertion index), for deterministic iteration.
func (g *Graph) NodeKeys() []NodeKey {
	varIDs := make([]string, 0, len(g.Variables))
	for id := range g.Variables {
		varIDs = append(varIDs, id)
	}
	sort.Strings(varIDs)

	keys := make([]NodeKey, 0, len(varIDs)+len(g.Factors))
	for _, id := range varIDs {
		keys = append(keys, varKey(id))
	}
	for _, fn := range g.Factors {
		keys = append(keys, g.keyOfFactor(fn))
	}
	return keys
}

// EdgesAt returns the edges incident to the node identified by key.
func (g *Graph) EdgesAt(key NodeKey) []*Edge {
	if v, ok := g.variableForKey(key); ok {
		return v.Edges
	}
	if fn, ok := g.factorForKey(key); ok {
		return fn.Edges
	}
	return nil
}

// OtherKey returns the node key at the opposite end of e from key.
func (g *Graph) OtherKey(e *Edge, key NodeKey) NodeKey {
	if key == varKey(e.Var.ID) {
		return g.keyOfFactor(e.Factor)
	}
	return varKey(e.Var.ID)
}

// DirectionFrom returns the Direction of a message traveling on e away from
// the node identified by key.
func (g *Graph) DirectionFrom(e *Edge, key NodeKey) Direction {
	if key == varKey(e.Var.ID) {
		return VarToFactor
	}
	return FactorToVar
}

func (g *Graph) variableForKey(key NodeKey) (*Variable, bool) {
	s := string(key)
	if len(s) < 2 || s[:2] != "v:" {
		return nil, false
	}
	v, ok := g.Variables[s[2:]]
	return v, ok
}

func (g *Graph) factorForKey(key NodeKey) (*FactorNode, bool) {
	s := string(key)
	if len(s) < 2 || s[:2] != "f:" {
		return nil, false
	}
	idx, err := strconv.Atoi(s[2:])
	if err != nil || idx < 0 || idx >= len(g.Factors) {
		return nil, false
	}
	return g.Factors[idx], true
}
