package constraint

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Matrix is the full set of constraints of an R1CS trace, built directly or
// recorded through RecordingAPI's own gate methods, along with the
// variable-count layout needed to interpret variable indices.
//
// This is deliberately independent of gnark's own compiled representation:
// gnark's internal R1CS layout is an implementation detail of its backend
// and isn't meant for external static analysis, so Matrix is built directly
// from a RecordingAPI trace instead of reaching into a compiled
// constraint.ConstraintSystem.
type Matrix struct {
	Constraints         []Constraint
	NumPublicInputs     int
	NumPrivateWitnesses int
	NumVariables        int
}

// Empty creates a matrix with the given variable-count layout and no
// constraints.
func Empty(numPublicInputs, numPrivateWitnesses int) Matrix {
	return Matrix{
		NumPublicInputs:     numPublicInputs,
		NumPrivateWitnesses: numPrivateWitnesses,
		NumVariables:        numPublicInputs + numPrivateWitnesses,
	}
}

// WithConstraints returns a copy of m containing only the constraints at
// the given indices, reindexed from 0.
func (m Matrix) WithConstraints(indices []int) Matrix {
	out := make([]Constraint, 0, len(indices))
	for newIdx, oldIdx := range indices {
		if oldIdx < 0 || oldIdx >= len(m.Constraints) {
			continue
		}
		old := m.Constraints[oldIdx]
		out = append(out, NewConstraint(newIdx, old.A, old.B, old.C))
	}
	return Matrix{
		Constraints:         out,
		NumPublicInputs:     m.NumPublicInputs,
		NumPrivateWitnesses: m.NumPrivateWitnesses,
		NumVariables:        m.NumVariables,
	}
}

// WithoutConstraints returns a copy of m excluding the constraints at the
// given indices.
func (m Matrix) WithoutConstraints(indicesToRemove []int) Matrix {
	remove := make(map[int]struct{}, len(indicesToRemove))
	for _, i := range indicesToRemove {
		remove[i] = struct{}{}
	}
	keep := make([]int, 0, len(m.Constraints))
	for i := range m.Constraints {
		if _, ok := remove[i]; !ok {
			keep = append(keep, i)
		}
	}
	return m.WithConstraints(keep)
}

// AddConstraint appends a constraint built from a, b, c, assigning it the
// next index.
func (m *Matrix) AddConstraint(a, b, c LinearCombination) {
	index := len(m.Constraints)
	m.Constraints = append(m.Constraints, NewConstraint(index, a, b, c))
}

// NumConstraints returns the constraint count.
func (m Matrix) NumConstraints() int {
	return len(m.Constraints)
}

// Satisfies reports whether every constraint in m holds under assignment,
// where assignment[i] is variable i's value and assignment[0] must be 1.
// Used to check that a witness which solved m before a transformation (e.g.
// an optimizer pass) still solves it after.
func (m Matrix) Satisfies(assignment []fr.Element) bool {
	for _, c := range m.Constraints {
		if !c.Satisfied(assignment) {
			return false
		}
	}
	return true
}

// SparsityStats computes density and variable-frequency statistics over m.
func (m Matrix) SparsityStats() SparsityStats {
	totalPossible := m.NumConstraints() * m.NumVariables * 3
	totalNonzero := 0
	for _, c := range m.Constraints {
		totalNonzero += c.NumTerms()
	}

	density := 0.0
	if totalPossible > 0 {
		density = float64(totalNonzero) / float64(totalPossible)
	}

	avgTerms := 0.0
	if m.NumConstraints() > 0 {
		avgTerms = float64(totalNonzero) / float64(m.NumConstraints())
	}

	frequency := make(map[int]int)
	for _, c := range m.Constraints {
		for _, v := range c.Variables() {
			frequency[v]++
		}
	}

	maxFrequency := 0
	threshold := m.NumConstraints() / 20 // >5% of constraints
	var hot []HotVariable
	for v, freq := range frequency {
		if freq > maxFrequency {
			maxFrequency = freq
		}
		if freq > threshold {
			hot = append(hot, HotVariable{Variable: v, Frequency: freq})
		}
	}

	return SparsityStats{
		TotalConstraints:      m.NumConstraints(),
		TotalVariables:        m.NumVariables,
		TotalNonzeroTerms:     totalNonzero,
		Density:               density,
		AvgTermsPerConstraint: avgTerms,
		MaxVariableFrequency:  maxFrequency,
		HotVariables:          hot,
	}
}

// HotVariable records a variable that appears in an unusually large share
// of constraints.
type HotVariable struct {
	Variable  int
	Frequency int
}

// SparsityStats summarizes the shape of a Matrix.
type SparsityStats struct {
	TotalConstraints      int
	TotalVariables        int
	TotalNonzeroTerms     int
	Density               float64
	AvgTermsPerConstraint float64
	MaxVariableFrequency  int
	HotVariables          []HotVariable
}
