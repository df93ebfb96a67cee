package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordingAPIMulEmitsConstraint(t *testing.T) {
	r := NewRecordingAPI(2, 0)
	a := r.PublicInput(0)
	b := r.PublicInput(1)
	_ = r.Mul(a, b)

	assert.Equal(t, 1, r.Matrix().NumConstraints())
}

func TestRecordingAPIAddIsFree(t *testing.T) {
	r := NewRecordingAPI(2, 0)
	a := r.PublicInput(0)
	b := r.PublicInput(1)
	_ = r.Add(a, b)

	assert.Equal(t, 0, r.Matrix().NumConstraints())
}

func TestRecordingAPIAssertIsEqualEmitsOneConstraint(t *testing.T) {
	r := NewRecordingAPI(1, 0)
	a := r.PublicInput(0)
	r.AssertIsEqual(a, r.ConstantUint64(5))
	assert.Equal(t, 1, r.Matrix().NumConstraints())
}

func TestRecordingAPIToBinaryConstraintCount(t *testing.T) {
	r := NewRecordingAPI(1, 0)
	a := r.PublicInput(0)
	bits := r.ToBinary(a, 4)

	assert.Len(t, bits, 4)
	// 4 booleanity constraints + 1 reconstruction constraint.
	assert.Equal(t, 5, r.Matrix().NumConstraints())
}

func TestRecordingAPISelectBuildsExpectedShape(t *testing.T) {
	r := NewRecordingAPI(3, 0)
	bit := r.PublicInput(0)
	a := r.PublicInput(1)
	b := r.PublicInput(2)
	r.AssertIsBoolean(bit)
	out := r.Select(bit, a, b)

	assert.NotNil(t, out.lc.Terms)
	// AssertIsBoolean (1) + Select's internal Mul (1) = 2 constraints.
	assert.Equal(t, 2, r.Matrix().NumConstraints())
}

func TestRecordingAPISparsityStats(t *testing.T) {
	r := NewRecordingAPI(2, 0)
	a := r.PublicInput(0)
	b := r.PublicInput(1)
	r.Mul(a, b)
	r.Mul(a, b)

	stats := r.Matrix().SparsityStats()
	assert.Equal(t, 2, stats.TotalConstraints)
	assert.Greater(t, stats.TotalNonzeroTerms, 0)
}
