// Package passes implements the individual static-analysis/reduction
// passes the optimizer runs over a constraint.Matrix: each pass separates
// detection (Scan) from transformation (Reduce) from human-readable
// reporting (Report), so a caller can run analysis-only ("what would this
// pass do") without committing to the rewrite.
package passes

import "github.com/nume-crypto/inventory-privacy/constraint"

// PatternType classifies what a PatternMatch found.
type PatternType int

const (
	PatternDuplicate PatternType = iota
	PatternConstant
	PatternLinearSubstitution
	PatternDeadVariable
	PatternCommonSubexpression
)

func (t PatternType) String() string {
	switch t {
	case PatternDuplicate:
		return "duplicate"
	case PatternConstant:
		return "constant"
	case PatternLinearSubstitution:
		return "linear-substitution"
	case PatternDeadVariable:
		return "dead-variable"
	case PatternCommonSubexpression:
		return "common-subexpression"
	default:
		return "unknown"
	}
}

// MatchMetadata carries pass-specific extra data about a PatternMatch.
// Only the fields relevant to a given pattern type are populated; the rest
// are left at their zero value.
type MatchMetadata struct {
	CanonicalIndex     int
	HasCanonicalIndex  bool
	ExpressionHash     uint64
	HasExpressionHash  bool
	SubstituteVariable int
	HasSubstituteVar   bool
}

// PatternMatch is one detected opportunity for reduction.
type PatternMatch struct {
	ID                 int
	PatternType        PatternType
	ConstraintIndices  []int
	VariableIndices    []int
	EstimatedReduction int
	Description        string
	Metadata           MatchMetadata
}

// ReductionReport summarizes what a pass found (and, if it ran, reduced).
type ReductionReport struct {
	PassName             string
	PatternsFound        int
	ReducibleConstraints int
	EstimatedSavings     int
	Findings             []string
}

// NewReductionReport starts an empty report for the named pass.
func NewReductionReport(passName string) ReductionReport {
	return ReductionReport{PassName: passName}
}

// AddFinding appends a human-readable finding line.
func (r *ReductionReport) AddFinding(finding string) {
	r.Findings = append(r.Findings, finding)
}

// Pass is the common shape every reduction pass implements: detect matches,
// transform the matrix given those matches, and summarize the matches as a
// report.
type Pass interface {
	Name() string
	Description() string
	Scan(matrix constraint.Matrix) []PatternMatch
	Reduce(matrix constraint.Matrix, matches []PatternMatch) constraint.Matrix
	Report(matches []PatternMatch) ReductionReport
}

// Optimize runs Scan, then Reduce, then Report, the scan-reduce-report
// pipeline every pass shares. CommonSubexpressionPass stays scan-only
// because its Reduce returns the matrix unchanged.
func Optimize(p Pass, matrix constraint.Matrix) (constraint.Matrix, ReductionReport) {
	matches := p.Scan(matrix)
	reduced := p.Reduce(matrix, matches)
	report := p.Report(matches)
	return reduced, report
}

// defaultReport builds the shared report shape: every pass's findings are
// its matches' descriptions, summed into pattern/reducible/savings counts.
func defaultReport(passName string, matches []PatternMatch) ReductionReport {
	report := NewReductionReport(passName)
	report.PatternsFound = len(matches)
	for _, m := range matches {
		report.ReducibleConstraints += len(m.ConstraintIndices)
		report.EstimatedSavings += m.EstimatedReduction
		report.AddFinding(m.Description)
	}
	return report
}
