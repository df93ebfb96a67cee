// Package constraint provides a normalized, classic dense (A, B, C) R1CS
// representation suitable for static analysis, independent of any compiled
// backend's internal form. gnark's own compiled circuits use a sparse,
// PLONK-ish internal layout not meant for external inspection, so the
// optimizer works against this representation instead, populated directly
// or by a RecordingAPI trace.
package constraint

import (
	"hash/fnv"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Term is one entry of a linear combination: coefficient * variable.
// Variable index 0 denotes the constant wire (value 1); indices 1.. denote
// public and private witness variables in allocation order.
type Term struct {
	Variable    int
	Coefficient fr.Element
}

// NewTerm builds a Term.
func NewTerm(variable int, coefficient fr.Element) Term {
	return Term{Variable: variable, Coefficient: coefficient}
}

// IsConstant reports whether this term is the constant-wire term.
func (t Term) IsConstant() bool {
	return t.Variable == 0
}

// LinearCombination is a sum of coefficient*variable terms.
type LinearCombination struct {
	Terms []Term
}

// NewLinearCombination builds a LinearCombination from terms.
func NewLinearCombination(terms []Term) LinearCombination {
	return LinearCombination{Terms: terms}
}

// ZeroLC returns the zero linear combination (no terms).
func ZeroLC() LinearCombination {
	return LinearCombination{}
}

// IsConstant reports whether every term is the constant-wire term.
func (lc LinearCombination) IsConstant() bool {
	for _, t := range lc.Terms {
		if !t.IsConstant() {
			return false
		}
	}
	return true
}

// IsSingleVariable reports whether lc is exactly one non-constant term.
func (lc LinearCombination) IsSingleVariable() bool {
	return len(lc.Terms) == 1 && !lc.Terms[0].IsConstant()
}

// IsOne reports whether lc is the constant 1.
func (lc LinearCombination) IsOne() bool {
	if len(lc.Terms) != 1 || !lc.Terms[0].IsConstant() {
		return false
	}
	var one fr.Element
	one.SetOne()
	return lc.Terms[0].Coefficient.Equal(&one)
}

// IsZero reports whether lc is empty or every coefficient is zero.
func (lc LinearCombination) IsZero() bool {
	if len(lc.Terms) == 0 {
		return true
	}
	for _, t := range lc.Terms {
		if !t.Coefficient.IsZero() {
			return false
		}
	}
	return true
}

// NumTerms returns the count of non-zero-coefficient terms.
func (lc LinearCombination) NumTerms() int {
	n := 0
	for _, t := range lc.Terms {
		if !t.Coefficient.IsZero() {
			n++
		}
	}
	return n
}

// Variables returns the non-constant, non-zero-coefficient variable indices
// referenced by lc, in term order (may contain duplicates).
func (lc LinearCombination) Variables() []int {
	vars := make([]int, 0, len(lc.Terms))
	for _, t := range lc.Terms {
		if !t.IsConstant() && !t.Coefficient.IsZero() {
			vars = append(vars, t.Variable)
		}
	}
	return vars
}

// StructuralHash hashes only which variables appear (not their
// coefficients), so two linear combinations that touch the same variable
// set hash identically regardless of term order or scaling.
func (lc LinearCombination) StructuralHash() uint64 {
	vars := make([]int, 0, len(lc.Terms))
	for _, t := range lc.Terms {
		if !t.Coefficient.IsZero() {
			vars = append(vars, t.Variable)
		}
	}
	sort.Ints(vars)

	h := fnv.New64a()
	for _, v := range vars {
		writeUint64(h, uint64(v))
	}
	return h.Sum64()
}

// Evaluate computes lc's value under assignment, where assignment[i] is the
// value of variable i (assignment[0] must be 1, the constant wire).
func (lc LinearCombination) Evaluate(assignment []fr.Element) fr.Element {
	var acc fr.Element
	for _, t := range lc.Terms {
		var term fr.Element
		term.Mul(&t.Coefficient, &assignment[t.Variable])
		acc.Add(&acc, &term)
	}
	return acc
}

// FullHash hashes variables and their coefficients, canonicalized by
// sorting on variable index.
func (lc LinearCombination) FullHash() uint64 {
	type pair struct {
		variable int
		coeff    fr.Element
	}
	sorted := make([]pair, 0, len(lc.Terms))
	for _, t := range lc.Terms {
		if !t.Coefficient.IsZero() {
			sorted = append(sorted, pair{t.Variable, t.Coefficient})
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].variable < sorted[j].variable })

	h := fnv.New64a()
	for _, p := range sorted {
		writeUint64(h, uint64(p.variable))
		b := p.coeff.Bytes()
		_, _ = h.Write(b[:])
	}
	return h.Sum64()
}

func writeUint64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	_, _ = h.Write(buf[:])
}
