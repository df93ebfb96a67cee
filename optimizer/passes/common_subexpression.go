package passes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nume-crypto/inventory-privacy/constraint"
)

// minOccurrences is the minimum number of times a linear combination must
// repeat before it's reported as a common subexpression.
const minOccurrences = 3

// CommonSubexpressionPass detects linear combinations repeated across
// constraints. It is informational only: factoring a repeated expression
// out into a new intermediate variable requires allocating a fresh
// variable and rewriting every occurrence, which needs hooks this static
// analysis pass doesn't have, so Reduce is a no-op and Report always
// includes a note that manual refactoring is required.
type CommonSubexpressionPass struct {
	minOccurrences int
}

// NewCommonSubexpressionPass builds a CommonSubexpressionPass with the
// default occurrence threshold.
func NewCommonSubexpressionPass() CommonSubexpressionPass {
	return CommonSubexpressionPass{minOccurrences: minOccurrences}
}

// WithMinOccurrences returns a copy of p using a different threshold.
func (p CommonSubexpressionPass) WithMinOccurrences(min int) CommonSubexpressionPass {
	p.minOccurrences = min
	return p
}

func (CommonSubexpressionPass) Name() string { return "Common Subexpression" }

func (CommonSubexpressionPass) Description() string {
	return "Identifies repeated linear combinations that could be factored out"
}

type lcOccurrence struct {
	constraintIdx int
	side          byte
}

func (p CommonSubexpressionPass) Scan(matrix constraint.Matrix) []PatternMatch {
	patterns := make(map[uint64][]lcOccurrence)

	for _, c := range matrix.Constraints {
		if c.A.NumTerms() >= 2 {
			h := c.A.StructuralHash()
			patterns[h] = append(patterns[h], lcOccurrence{c.Index, 'A'})
		}
		if c.B.NumTerms() >= 2 {
			h := c.B.StructuralHash()
			patterns[h] = append(patterns[h], lcOccurrence{c.Index, 'B'})
		}
		if c.C.NumTerms() >= 2 {
			h := c.C.StructuralHash()
			patterns[h] = append(patterns[h], lcOccurrence{c.Index, 'C'})
		}
	}

	var matches []PatternMatch
	matchID := 0
	for hash, occurrences := range patterns {
		if len(occurrences) < p.minOccurrences {
			continue
		}

		constraintIndices := make([]int, len(occurrences))
		for i, occ := range occurrences {
			constraintIndices[i] = occ.constraintIdx
		}

		positionLimit := len(occurrences)
		if positionLimit > 5 {
			positionLimit = 5
		}
		positions := make([]string, positionLimit)
		for i := 0; i < positionLimit; i++ {
			positions[i] = fmt.Sprintf("%d:%c", occurrences[i].constraintIdx, occurrences[i].side)
		}
		suffix := ""
		if len(occurrences) > 5 {
			suffix = "..."
		}

		estimatedSavings := len(occurrences) - 2
		if estimatedSavings < 0 {
			estimatedSavings = 0
		}

		matches = append(matches, PatternMatch{
			ID:                 matchID,
			PatternType:        PatternCommonSubexpression,
			ConstraintIndices:  constraintIndices,
			EstimatedReduction: estimatedSavings,
			Description: fmt.Sprintf(
				"linear combination appears %d times at: %s%s",
				len(occurrences), strings.Join(positions, ", "), suffix,
			),
			Metadata: MatchMetadata{ExpressionHash: hash, HasExpressionHash: true},
		})
		matchID++
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].EstimatedReduction > matches[j].EstimatedReduction })
	return matches
}

// Reduce is deliberately a no-op: see the CommonSubexpressionPass doc
// comment.
func (p CommonSubexpressionPass) Reduce(matrix constraint.Matrix, _ []PatternMatch) constraint.Matrix {
	return matrix
}

// Report overrides the shared defaultReport helper to append a note that
// this pass never performs the rewrite itself.
func (p CommonSubexpressionPass) Report(matches []PatternMatch) ReductionReport {
	report := defaultReport(p.Name(), matches)
	if len(matches) > 0 {
		report.AddFinding("note: CSE reduction requires manual circuit refactoring")
	}
	return report
}
