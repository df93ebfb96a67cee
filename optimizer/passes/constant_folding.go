package passes

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/inventory-privacy/constraint"
)

// ConstantFoldingPass removes constraints where A and B are both constants
// (so the product is verifiable at compile time), flagging any such
// constraint that is unsatisfied rather than silently dropping it.
type ConstantFoldingPass struct{}

// NewConstantFoldingPass builds a ConstantFoldingPass.
func NewConstantFoldingPass() ConstantFoldingPass {
	return ConstantFoldingPass{}
}

func (ConstantFoldingPass) Name() string { return "Constant Folding" }

func (ConstantFoldingPass) Description() string {
	return "Removes constraints whose A and B sides are constants (compile-time verifiable)"
}

func (p ConstantFoldingPass) Scan(matrix constraint.Matrix) []PatternMatch {
	var matches []PatternMatch
	matchID := 0

	for _, c := range matrix.Constraints {
		if !c.IsConstant() {
			continue
		}

		aVal := constantValue(c.A)
		bVal := constantValue(c.B)
		cVal := constantValue(c.C)

		var product fr.Element
		product.Mul(&aVal, &bVal)
		satisfied := product.Equal(&cVal)

		reduction := 0
		description := fmt.Sprintf("constraint %d is constant but UNSATISFIED (system is invalid!)", c.Index)
		if satisfied {
			reduction = 1
			description = fmt.Sprintf("constraint %d is constant and satisfied (can be removed)", c.Index)
		}

		matches = append(matches, PatternMatch{
			ID:                 matchID,
			PatternType:        PatternConstant,
			ConstraintIndices:  []int{c.Index},
			EstimatedReduction: reduction,
			Description:        description,
		})
		matchID++
	}
	return matches
}

func (p ConstantFoldingPass) Reduce(matrix constraint.Matrix, matches []PatternMatch) constraint.Matrix {
	if len(matches) == 0 {
		return matrix
	}
	var toRemove []int
	for _, m := range matches {
		if m.PatternType == PatternConstant && m.EstimatedReduction > 0 {
			toRemove = append(toRemove, m.ConstraintIndices...)
		}
	}
	return matrix.WithoutConstraints(toRemove)
}

func (p ConstantFoldingPass) Report(matches []PatternMatch) ReductionReport {
	return defaultReport(p.Name(), matches)
}

// constantValue sums the constant-wire terms of a linear combination known
// to be IsConstant().
func constantValue(lc constraint.LinearCombination) fr.Element {
	var sum fr.Element
	for _, t := range lc.Terms {
		if t.Variable == 0 {
			sum.Add(&sum, &t.Coefficient)
		}
	}
	return sum
}
