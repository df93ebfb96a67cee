package passes

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/inventory-privacy/constraint"
)

// maxSubstitutionTerms bounds how large an expression may be before this
// pass declines to inline it: larger expressions risk constraint explosion
// when substituted into every use site.
const maxSubstitutionTerms = 4

// LinearSubstitutionPass inlines definitions of the shape `1 * expr = var`
// (or `expr * 1 = var`) wherever var is a single private variable used
// elsewhere, eliminating the defining constraint.
type LinearSubstitutionPass struct {
	maxTerms int
}

// NewLinearSubstitutionPass builds a LinearSubstitutionPass with the
// default term-count ceiling.
func NewLinearSubstitutionPass() LinearSubstitutionPass {
	return LinearSubstitutionPass{maxTerms: maxSubstitutionTerms}
}

// WithMaxTerms returns a copy of p with a different term-count ceiling.
func (p LinearSubstitutionPass) WithMaxTerms(max int) LinearSubstitutionPass {
	p.maxTerms = max
	return p
}

func (LinearSubstitutionPass) Name() string { return "Linear Substitution" }

func (LinearSubstitutionPass) Description() string {
	return "Inlines simple variable definitions to eliminate constraints"
}

func (p LinearSubstitutionPass) Scan(matrix constraint.Matrix) []PatternMatch {
	var matches []PatternMatch
	matchID := 0

	for _, c := range matrix.Constraints {
		if !c.IsLinear() {
			continue
		}

		var expr, result constraint.LinearCombination
		switch {
		case c.A.IsOne():
			expr, result = c.B, c.C
		case c.B.IsOne():
			expr, result = c.A, c.C
		default:
			continue
		}

		if !result.IsSingleVariable() {
			continue
		}
		if expr.NumTerms() > p.maxTerms {
			continue
		}

		targetVar := result.Terms[0].Variable
		if targetVar <= matrix.NumPublicInputs {
			continue
		}

		usageCount := countVariableUsage(matrix, targetVar, c.Index)
		if usageCount == 0 {
			continue
		}

		matches = append(matches, PatternMatch{
			ID:                 matchID,
			PatternType:        PatternLinearSubstitution,
			ConstraintIndices:  []int{c.Index},
			VariableIndices:    []int{targetVar},
			EstimatedReduction: 1,
			Description: fmt.Sprintf(
				"variable %d defined by %d terms, used %d times",
				targetVar, expr.NumTerms(), usageCount,
			),
			Metadata: MatchMetadata{
				SubstituteVariable: targetVar,
				HasSubstituteVar:   true,
			},
		})
		matchID++
	}
	return matches
}

func (p LinearSubstitutionPass) Reduce(matrix constraint.Matrix, matches []PatternMatch) constraint.Matrix {
	if len(matches) == 0 {
		return matrix
	}

	type substitution struct {
		expr        constraint.LinearCombination
		definingIdx int
	}
	substitutions := make(map[int]substitution)

	for _, m := range matches {
		if m.PatternType != PatternLinearSubstitution || !m.Metadata.HasSubstituteVar {
			continue
		}
		definingIdx := m.ConstraintIndices[0]
		c := matrix.Constraints[definingIdx]
		expr := c.A
		if c.A.IsOne() {
			expr = c.B
		}
		substitutions[m.Metadata.SubstituteVariable] = substitution{expr: expr, definingIdx: definingIdx}
	}

	toRemove := make(map[int]struct{}, len(substitutions))
	for _, s := range substitutions {
		toRemove[s.definingIdx] = struct{}{}
	}

	rawSubs := make(map[int]constraint.LinearCombination, len(substitutions))
	for v, s := range substitutions {
		rawSubs[v] = s.expr
	}

	var newConstraints []constraint.Constraint
	for _, c := range matrix.Constraints {
		if _, skip := toRemove[c.Index]; skip {
			continue
		}
		newA := applySubstitutions(c.A, rawSubs)
		newB := applySubstitutions(c.B, rawSubs)
		newC := applySubstitutions(c.C, rawSubs)
		newConstraints = append(newConstraints, constraint.NewConstraint(len(newConstraints), newA, newB, newC))
	}

	return constraint.Matrix{
		Constraints:         newConstraints,
		NumPublicInputs:     matrix.NumPublicInputs,
		NumPrivateWitnesses: matrix.NumPrivateWitnesses,
		NumVariables:        matrix.NumVariables,
	}
}

func (p LinearSubstitutionPass) Report(matches []PatternMatch) ReductionReport {
	return defaultReport(p.Name(), matches)
}

func countVariableUsage(matrix constraint.Matrix, v int, excludeIdx int) int {
	count := 0
	for _, c := range matrix.Constraints {
		if c.Index == excludeIdx {
			continue
		}
		for _, used := range c.Variables() {
			if used == v {
				count++
				break
			}
		}
	}
	return count
}

func applySubstitutions(lc constraint.LinearCombination, substitutions map[int]constraint.LinearCombination) constraint.LinearCombination {
	accum := make(map[int]fr.Element)
	order := make([]int, 0, len(lc.Terms))

	addTerm := func(variable int, coeff fr.Element) {
		if existing, ok := accum[variable]; ok {
			var sum fr.Element
			sum.Add(&existing, &coeff)
			accum[variable] = sum
		} else {
			accum[variable] = coeff
			order = append(order, variable)
		}
	}

	for _, t := range lc.Terms {
		if replacement, ok := substitutions[t.Variable]; ok {
			for _, repTerm := range replacement.Terms {
				var scaled fr.Element
				scaled.Mul(&t.Coefficient, &repTerm.Coefficient)
				addTerm(repTerm.Variable, scaled)
			}
		} else {
			addTerm(t.Variable, t.Coefficient)
		}
	}

	terms := make([]constraint.Term, 0, len(order))
	for _, variable := range order {
		coeff := accum[variable]
		if coeff.IsZero() {
			continue
		}
		terms = append(terms, constraint.NewTerm(variable, coeff))
	}
	return constraint.NewLinearCombination(terms)
}
