package constraint

import (
	"hash/fnv"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Constraint is a single R1CS row: A * B = C, where A, B, C are linear
// combinations of variables.
type Constraint struct {
	Index int
	A     LinearCombination
	B     LinearCombination
	C     LinearCombination
}

// NewConstraint builds a Constraint.
func NewConstraint(index int, a, b, c LinearCombination) Constraint {
	return Constraint{Index: index, A: a, B: b, C: c}
}

// IsLinear reports whether the constraint reduces to a linear equation,
// i.e. one side of the product is the constant 1.
func (c Constraint) IsLinear() bool {
	return c.A.IsOne() || c.B.IsOne()
}

// IsConstant reports whether both A and B involve only the constant wire,
// meaning C is pinned to a fixed value independent of any witness.
func (c Constraint) IsConstant() bool {
	return c.A.IsConstant() && c.B.IsConstant()
}

// IsBoolean reports whether the constraint has the shape v * v = v, i.e.
// enforces v to be 0 or 1.
func (c Constraint) IsBoolean() bool {
	if !c.A.IsSingleVariable() || !c.B.IsSingleVariable() || !c.C.IsSingleVariable() {
		return false
	}
	av := c.A.Terms[0].Variable
	bv := c.B.Terms[0].Variable
	cv := c.C.Terms[0].Variable
	return av == bv && bv == cv
}

// ConstraintHash hashes the full (A, B, C) triple for duplicate detection.
func (c Constraint) ConstraintHash() uint64 {
	h := fnv.New64a()
	writeUint64(h, c.A.FullHash())
	writeUint64(h, c.B.FullHash())
	writeUint64(h, c.C.FullHash())
	return h.Sum64()
}

// Satisfied reports whether assignment makes A*B=C hold for this
// constraint, the same check an R1CS solver runs per row.
func (c Constraint) Satisfied(assignment []fr.Element) bool {
	a := c.A.Evaluate(assignment)
	b := c.B.Evaluate(assignment)
	lhs := a.Mul(&a, &b)
	rhs := c.C.Evaluate(assignment)
	return lhs.Equal(&rhs)
}

// Variables returns the sorted, deduplicated set of variable indices this
// constraint touches across A, B, and C.
func (c Constraint) Variables() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, vars := range [][]int{c.A.Variables(), c.B.Variables(), c.C.Variables()} {
		for _, v := range vars {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)
	return out
}

// NumTerms returns the total non-zero term count across A, B, and C.
func (c Constraint) NumTerms() int {
	return c.A.NumTerms() + c.B.NumTerms() + c.C.NumTerms()
}
