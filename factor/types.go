package factor

import "fmt"

// Factor is a dense probability table over {0,1}^k, one entry per binary
// assignment of its ordered Vars. Entry index is the assignment read as a
// big-endian binary number with Vars[0] as the most significant bit.
type Factor struct {
	Vars  []string
	Table []float64
}

// newFactor allocates a zeroed Factor for the given variables.
func newFactor(vars ...string) Factor {
	return Factor{Vars: vars, Table: make([]float64, 1<<uint(len(vars)))}
}

// index computes the flat table offset for a binary assignment.
func index(assignment []int) int {
	idx := 0
	for _, a := range assignment {
		idx = idx<<1 | a
	}
	return idx
}

// Value returns the table entry for a full binary assignment of f.Vars, in
// the same order. It returns ErrArityMismatch if the assignment's length
// does not match len(f.Vars).
func (f Factor) Value(assignment []int) (float64, error) {
	if len(assignment) != len(f.Vars) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, len(assignment), len(f.Vars))
	}
	return f.Table[index(assignment)], nil
}

// VarIndex returns the position of id within f.Vars, or -1 if absent.
func (f Factor) VarIndex(id string) int {
	for i, v := range f.Vars {
		if v == id {
			return i
		}
	}
	return -1
}
