package democircuits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByNameCoversAllNames(t *testing.T) {
	for _, name := range Names() {
		build, ok := ByName(name)
		assert.True(t, ok, name)
		matrix := build()
		assert.Greater(t, matrix.NumConstraints(), 0, name)
		assert.Greater(t, matrix.NumVariables, matrix.NumPublicInputs+matrix.NumPrivateWitnesses, "%s should allocate intermediate variables beyond its declared witnesses", name)
	}
}

func TestByNameUnknownReturnsFalse(t *testing.T) {
	_, ok := ByName("does-not-exist")
	assert.False(t, ok)
}

func TestItemExistsHasDuplicateShapedConstraints(t *testing.T) {
	matrix := ItemExists()
	assert.Greater(t, matrix.NumConstraints(), numSlots, "one equality+select block per slot should produce more than numSlots constraints")
}
