package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildThreeConstraintMatrix() Matrix {
	r := NewRecordingAPI(2, 0)
	a := r.PublicInput(0)
	b := r.PublicInput(1)
	r.Mul(a, b)
	r.Mul(a, a)
	r.Mul(b, b)
	return r.Matrix()
}

func TestMatrixWithConstraints(t *testing.T) {
	m := buildThreeConstraintMatrix()
	sub := m.WithConstraints([]int{0, 2})
	assert.Equal(t, 2, sub.NumConstraints())
	assert.Equal(t, 0, sub.Constraints[0].Index)
	assert.Equal(t, 1, sub.Constraints[1].Index)
}

func TestMatrixWithoutConstraints(t *testing.T) {
	m := buildThreeConstraintMatrix()
	sub := m.WithoutConstraints([]int{1})
	assert.Equal(t, 2, sub.NumConstraints())
}

func TestMatrixEmptyHasNoConstraints(t *testing.T) {
	m := Empty(4, 2)
	assert.Equal(t, 0, m.NumConstraints())
	assert.Equal(t, 6, m.NumVariables)
}

func TestMatrixAddConstraintAssignsSequentialIndex(t *testing.T) {
	m := Empty(1, 0)
	lc := NewLinearCombination([]Term{NewTerm(0, one())})
	m.AddConstraint(lc, lc, lc)
	m.AddConstraint(lc, lc, lc)
	assert.Equal(t, 0, m.Constraints[0].Index)
	assert.Equal(t, 1, m.Constraints[1].Index)
}
