package constraint

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

func one() fr.Element {
	var e fr.Element
	e.SetOne()
	return e
}

func elt(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func TestLinearCombinationIsOne(t *testing.T) {
	lc := NewLinearCombination([]Term{NewTerm(0, one())})
	assert.True(t, lc.IsOne())
	assert.True(t, lc.IsConstant())
}

func TestLinearCombinationStructuralHash(t *testing.T) {
	lc1 := NewLinearCombination([]Term{NewTerm(1, elt(5)), NewTerm(2, elt(3))})
	lc2 := NewLinearCombination([]Term{NewTerm(2, elt(3)), NewTerm(1, elt(5))})
	assert.Equal(t, lc1.StructuralHash(), lc2.StructuralHash())
}

func TestLinearCombinationFullHashDiffersOnCoefficient(t *testing.T) {
	lc1 := NewLinearCombination([]Term{NewTerm(1, elt(5))})
	lc2 := NewLinearCombination([]Term{NewTerm(1, elt(7))})
	assert.NotEqual(t, lc1.FullHash(), lc2.FullHash())
	assert.Equal(t, lc1.StructuralHash(), lc2.StructuralHash())
}

func TestLinearCombinationIsZero(t *testing.T) {
	assert.True(t, ZeroLC().IsZero())
	lc := NewLinearCombination([]Term{NewTerm(1, fr.Element{})})
	assert.True(t, lc.IsZero())
}

func TestConstraintIsLinear(t *testing.T) {
	a := NewLinearCombination([]Term{NewTerm(0, one())})
	b := NewLinearCombination([]Term{NewTerm(1, one())})
	c := NewLinearCombination([]Term{NewTerm(1, one())})
	constraint := NewConstraint(0, a, b, c)
	assert.True(t, constraint.IsLinear())
	assert.False(t, constraint.IsConstant())
}

func TestConstraintIsBoolean(t *testing.T) {
	v := NewLinearCombination([]Term{NewTerm(3, one())})
	constraint := NewConstraint(0, v, v, v)
	assert.True(t, constraint.IsBoolean())
}

func TestConstraintVariablesDeduped(t *testing.T) {
	a := NewLinearCombination([]Term{NewTerm(1, one()), NewTerm(2, one())})
	b := NewLinearCombination([]Term{NewTerm(2, one())})
	c := NewLinearCombination([]Term{NewTerm(1, one())})
	constraint := NewConstraint(0, a, b, c)
	assert.Equal(t, []int{1, 2}, constraint.Variables())
}

func TestConstraintHashStableUnderTermOrder(t *testing.T) {
	a1 := NewLinearCombination([]Term{NewTerm(1, elt(2)), NewTerm(2, elt(3))})
	a2 := NewLinearCombination([]Term{NewTerm(2, elt(3)), NewTerm(1, elt(2))})
	b := NewLinearCombination([]Term{NewTerm(0, one())})
	c := NewLinearCombination([]Term{NewTerm(3, one())})

	c1 := NewConstraint(0, a1, b, c)
	c2 := NewConstraint(1, a2, b, c)
	assert.Equal(t, c1.ConstraintHash(), c2.ConstraintHash())
}
