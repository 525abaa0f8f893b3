package pmf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Table is a probability mass table over a contiguous integer support.
// Values[i] is the mass at value FirstSupport+i; everything else is zero.
type Table struct {
	FirstSupport int
	Values       []float64
}

// New returns a Table with the given first-support index and values. The
// slice is not copied; it shares the backing array, so callers that mutate
// it afterwards will see the Table change too.
func New(firstSupport int, values []float64) Table {
	return Table{FirstSupport: firstSupport, Values: values}
}

// Uniform returns a Table over {0,1} with equal mass on both values, the
// ab-initio message the scheduler seeds every edge with before the first
// iteration.
func Uniform() Table {
	return Table{FirstSupport: 0, Values: []float64{0.5, 0.5}}
}

// LastSupport returns the integer value of the final entry in the table.
func (t Table) LastSupport() int {
	return t.FirstSupport + len(t.Values) - 1
}

// Contains reports whether value v is within [FirstSupport, LastSupport()].
func (t Table) Contains(v int) bool {
	return v >= t.FirstSupport && v <= t.LastSupport()
}

// At returns the mass at value v, or 0 if v is outside the table's support.
func (t Table) At(v int) float64 {
	if !t.Contains(v) {
		return 0
	}
	return t.Values[v-t.FirstSupport]
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := make([]float64, len(t.Values))
	copy(out, t.Values)
	return Table{FirstSupport: t.FirstSupport, Values: out}
}

// Sum returns the total mass in the table.
func (t Table) Sum() float64 {
	return floats.Sum(t.Values)
}

// Validate returns ErrEmptyTable if the table has no support, or
// ErrNonFinite if any entry is NaN or infinite.
func (t Table) Validate() error {
	if len(t.Values) == 0 {
		return ErrEmptyTable
	}
	for _, v := range t.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// Normalize returns a copy of t scaled so its entries sum to 1. It returns
// ErrAllZero if the table's mass underflowed to (effectively) zero; the
// scheduler surfaces this as a per-CC NumericError.
func (t Table) Normalize() (Table, error) {
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	sum := t.Sum()
	if sum <= 0 || math.IsNaN(sum) {
		return Table{}, ErrAllZero
	}
	out := t.Clone()
	for i := range out.Values {
		out.Values[i] /= sum
	}
	return out, nil
}

// P1 extracts P(x=1) from the table per the support-aware rule: if 0 is in
// the support, P(x=1) = 1 - mass(0); otherwise, if 1 is in the support,
// P(x=1) = mass(1); otherwise the variable's posterior of presence is 0.
//
// This is deliberately driven by the PMF's support shape rather than by the
// kind of vertex it came from. Applying the two rules inconsistently (one
// call site always doing 1-p0, another always reading index 1 directly)
// silently diverges whenever a group factor's support does not start at 0;
// selecting by support shape is the single rule that is correct in both
// cases.
func (t Table) P1() float64 {
	if t.Contains(0) {
		return 1 - t.At(0)
	}
	if t.Contains(1) {
		return t.At(1)
	}
	return 0
}

// Damp blends t (the freshly computed message) with prev (the last message
// sent on the same edge): result = (1-lambda)*t + lambda*prev, applied
// entrywise in probability space after t has already been normalized.
// Supports that differ between t and prev are treated as zero outside their
// own range.
func (t Table) Damp(prev Table, lambda float64) Table {
	if lambda <= 0 {
		return t
	}
	first := t.FirstSupport
	last := t.LastSupport()
	if prev.FirstSupport < first {
		first = prev.FirstSupport
	}
	if prev.LastSupport() > last {
		last = prev.LastSupport()
	}
	out := Table{FirstSupport: first, Values: make([]float64, last-first+1)}
	for v := first; v <= last; v++ {
		out.Values[v-first] = (1-lambda)*t.At(v) + lambda*prev.At(v)
	}
	return out
}

// LInfDiff returns the L-infinity distance between t and prev over their
// combined support, used by the priority scheduler to rank pending edges
// and by the engine to detect convergence.
func LInfDiff(t, prev Table) float64 {
	first := t.FirstSupport
	last := t.LastSupport()
	if prev.FirstSupport < first {
		first = prev.FirstSupport
	}
	if prev.LastSupport() > last {
		last = prev.LastSupport()
	}
	var maxDiff float64
	for v := first; v <= last; v++ {
		d := math.Abs(t.At(v) - prev.At(v))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

// Multiply returns the entrywise product of t and u over their combined
// support (zero outside either table's own range), unnormalized. This
// combines incoming messages at a variable node before marginalization.
func Multiply(t, u Table) Table {
	first := t.FirstSupport
	last := t.LastSupport()
	if u.FirstSupport < first {
		first = u.FirstSupport
	}
	if u.LastSupport() > last {
		last = u.LastSupport()
	}
	out := Table{FirstSupport: first, Values: make([]float64, last-first+1)}
	for v := first; v <= last; v++ {
		out.Values[v-first] = t.At(v) * u.At(v)
	}
	return out
}

// MultiplyAll folds Multiply across a slice of tables, starting from an
// all-ones table spanning ts[0]'s support if ts is non-empty. It returns
// ErrEmptyTable for an empty slice.
func MultiplyAll(ts []Table) (Table, error) {
	if len(ts) == 0 {
		return Table{}, ErrEmptyTable
	}
	acc := ts[0]
	for _, t := range ts[1:] {
		acc = Multiply(acc, t)
	}
	return acc, nil
}
