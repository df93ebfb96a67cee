package passes

import (
	"fmt"

	"github.com/nume-crypto/inventory-privacy/constraint"
)

// DeadVariablePass removes constraints that define a private variable
// (as the sole term of C) that is never read anywhere else in the system.
type DeadVariablePass struct{}

// NewDeadVariablePass builds a DeadVariablePass.
func NewDeadVariablePass() DeadVariablePass {
	return DeadVariablePass{}
}

func (DeadVariablePass) Name() string { return "Dead Variable Elimination" }

func (DeadVariablePass) Description() string {
	return "Removes constraints that define variables never used in outputs"
}

func (p DeadVariablePass) Scan(matrix constraint.Matrix) []PatternMatch {
	varUsage := make(map[int]map[int]struct{})
	varDefinitions := make(map[int][]int)

	for _, c := range matrix.Constraints {
		for _, v := range c.A.Variables() {
			markUsage(varUsage, v, c.Index)
		}
		for _, v := range c.B.Variables() {
			markUsage(varUsage, v, c.Index)
		}
		if c.C.IsSingleVariable() {
			definedVar := c.C.Terms[0].Variable
			varDefinitions[definedVar] = append(varDefinitions[definedVar], c.Index)
		}
	}

	var matches []PatternMatch
	matchID := 0
	for v, definingConstraints := range varDefinitions {
		if v <= matrix.NumPublicInputs {
			continue
		}
		usageCount := len(varUsage[v])
		if usageCount != 0 || len(definingConstraints) != 1 {
			continue
		}

		constraintIdx := definingConstraints[0]
		matches = append(matches, PatternMatch{
			ID:                 matchID,
			PatternType:        PatternDeadVariable,
			ConstraintIndices:  []int{constraintIdx},
			VariableIndices:    []int{v},
			EstimatedReduction: 1,
			Description:        fmt.Sprintf("variable %d is defined in constraint %d but never used", v, constraintIdx),
		})
		matchID++
	}
	return matches
}

func (p DeadVariablePass) Reduce(matrix constraint.Matrix, matches []PatternMatch) constraint.Matrix {
	if len(matches) == 0 {
		return matrix
	}
	var toRemove []int
	for _, m := range matches {
		if m.PatternType == PatternDeadVariable {
			toRemove = append(toRemove, m.ConstraintIndices...)
		}
	}
	return matrix.WithoutConstraints(toRemove)
}

func (p DeadVariablePass) Report(matches []PatternMatch) ReductionReport {
	return defaultReport(p.Name(), matches)
}

func markUsage(usage map[int]map[int]struct{}, variable, constraintIdx int) {
	if usage[variable] == nil {
		usage[variable] = make(map[int]struct{})
	}
	usage[variable][constraintIdx] = struct{}{}
}
