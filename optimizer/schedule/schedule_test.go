package schedule

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/inventory-privacy/optimizer/democircuits"
)

func TestAnalyzeCoversEveryConstraintExactlyOnce(t *testing.T) {
	for _, name := range democircuits.Names() {
		build, ok := democircuits.ByName(name)
		require.True(t, ok, name)
		matrix := build()

		report := Analyze(matrix)

		seen := make(map[int]bool)
		for _, level := range report.Levels {
			for _, idx := range level {
				assert.False(t, seen[idx], "constraint %d appears in more than one level", idx)
				seen[idx] = true
			}
		}
		assert.Len(t, seen, matrix.NumConstraints(), "every constraint should be scheduled exactly once")
		assert.GreaterOrEqual(t, report.Depth, 1)
		assert.GreaterOrEqual(t, report.Width, 1)
	}
}

func TestAnalyzeEmptyMatrix(t *testing.T) {
	report := Analyze(democircuits.ItemExists().WithConstraints(nil))
	assert.Equal(t, 0, report.Depth)
	assert.Equal(t, 0, report.Width)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	matrix := democircuits.Withdraw()

	first := Analyze(matrix)
	second := Analyze(matrix)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Analyze(matrix) is not deterministic (-first +second):\n%s", diff)
	}
}
