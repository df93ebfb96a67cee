package passes

import (
	"fmt"

	"github.com/nume-crypto/inventory-privacy/constraint"
)

// DeduplicationPass removes constraints that are structurally identical
// (same A, B, C linear combinations), keeping one canonical copy.
type DeduplicationPass struct{}

// NewDeduplicationPass builds a DeduplicationPass.
func NewDeduplicationPass() DeduplicationPass {
	return DeduplicationPass{}
}

func (DeduplicationPass) Name() string { return "Deduplication" }

func (DeduplicationPass) Description() string {
	return "Removes duplicate constraints that are structurally identical"
}

func (p DeduplicationPass) Scan(matrix constraint.Matrix) []PatternMatch {
	hashToConstraints := make(map[uint64][]int)
	for _, c := range matrix.Constraints {
		hash := c.ConstraintHash()
		hashToConstraints[hash] = append(hashToConstraints[hash], c.Index)
	}

	var matches []PatternMatch
	matchID := 0
	for hash, indices := range hashToConstraints {
		if len(indices) <= 1 {
			continue
		}
		first := matrix.Constraints[indices[0]]
		confirmed := []int{indices[0]}
		for _, idx := range indices[1:] {
			if constraintsEqual(first, matrix.Constraints[idx]) {
				confirmed = append(confirmed, idx)
			}
		}
		if len(confirmed) <= 1 {
			continue
		}

		canonical := confirmed[0]
		duplicates := confirmed[1:]
		matches = append(matches, PatternMatch{
			ID:                 matchID,
			PatternType:        PatternDuplicate,
			ConstraintIndices:  append([]int{}, confirmed...),
			EstimatedReduction: len(duplicates),
			Description:        duplicateDescription(canonical, duplicates),
			Metadata: MatchMetadata{
				CanonicalIndex:    canonical,
				HasCanonicalIndex: true,
				ExpressionHash:    hash,
				HasExpressionHash: true,
			},
		})
		matchID++
	}
	return matches
}

func (p DeduplicationPass) Reduce(matrix constraint.Matrix, matches []PatternMatch) constraint.Matrix {
	if len(matches) == 0 {
		return matrix
	}
	toRemove := make([]int, 0)
	for _, m := range matches {
		if m.PatternType != PatternDuplicate || !m.Metadata.HasCanonicalIndex {
			continue
		}
		for _, idx := range m.ConstraintIndices {
			if idx != m.Metadata.CanonicalIndex {
				toRemove = append(toRemove, idx)
			}
		}
	}
	return matrix.WithoutConstraints(toRemove)
}

func (p DeduplicationPass) Report(matches []PatternMatch) ReductionReport {
	return defaultReport(p.Name(), matches)
}

func constraintsEqual(a, b constraint.Constraint) bool {
	return lcEqual(a.A, b.A) && lcEqual(a.B, b.B) && lcEqual(a.C, b.C)
}

// lcEqual compares two linear combinations by their canonical full hash,
// which already accounts for term order and zero-coefficient terms.
func lcEqual(a, b constraint.LinearCombination) bool {
	return a.FullHash() == b.FullHash()
}

func duplicateDescription(canonical int, duplicates []int) string {
	return fmt.Sprintf("constraint %d has %d duplicate(s): %v", canonical, len(duplicates), duplicates)
}
