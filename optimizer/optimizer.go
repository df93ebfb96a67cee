// Package optimizer runs a configurable, fixed-point sequence of static
// reduction passes over a constraint.Matrix, shrinking an R1CS trace
// without changing what it proves.
package optimizer

import (
	"fmt"
	"strings"

	"github.com/nume-crypto/inventory-privacy/constraint"
	"github.com/nume-crypto/inventory-privacy/optimizer/passes"
)

// Optimizer orchestrates running reduction passes over a constraint matrix.
type Optimizer struct {
	matrix constraint.Matrix
	config Config
}

// FromMatrix builds an Optimizer over matrix with the default config.
func FromMatrix(matrix constraint.Matrix) Optimizer {
	return Optimizer{matrix: matrix, config: DefaultConfig()}
}

// WithConfig returns a copy of o configured with config.
func (o Optimizer) WithConfig(config Config) Optimizer {
	o.config = config
	return o
}

// Matrix returns the optimizer's current (unmodified) constraint matrix.
func (o Optimizer) Matrix() constraint.Matrix {
	return o.matrix
}

// Result is the outcome of a full Optimize run.
type Result struct {
	Matrix               constraint.Matrix
	OriginalConstraints  int
	FinalConstraints     int
	PassReports          []passes.ReductionReport
}

// ConstraintsReduced returns how many constraints Optimize removed.
func (r Result) ConstraintsReduced() int {
	return r.OriginalConstraints - r.FinalConstraints
}

// ReductionPercentage returns the fraction of constraints removed, as a
// percentage (0 when the original matrix was empty).
func (r Result) ReductionPercentage() float64 {
	if r.OriginalConstraints == 0 {
		return 0
	}
	return 100.0 * float64(r.ConstraintsReduced()) / float64(r.OriginalConstraints)
}

// Optimize runs all configured passes to a fixed point (or MaxIterations,
// whichever comes first), then a final scan-only CSE pass, and returns the
// reduced matrix plus every pass's report.
func (o Optimizer) Optimize() Result {
	originalConstraints := o.matrix.NumConstraints()
	matrix := o.matrix
	var allReports []passes.ReductionReport

	for iteration := 0; iteration < o.config.MaxIterations; iteration++ {
		before := matrix.NumConstraints()
		var iterationReports []passes.ReductionReport

		if o.config.Deduplicate {
			pass := passes.NewDeduplicationPass()
			reduced, report := passes.Optimize(pass, matrix)
			if report.EstimatedSavings > 0 {
				iterationReports = append(iterationReports, report)
			}
			matrix = reduced
		}

		if o.config.FoldConstants {
			pass := passes.NewConstantFoldingPass()
			reduced, report := passes.Optimize(pass, matrix)
			if report.EstimatedSavings > 0 {
				iterationReports = append(iterationReports, report)
			}
			matrix = reduced
		}

		if o.config.SubstituteLinear {
			pass := passes.NewLinearSubstitutionPass()
			reduced, report := passes.Optimize(pass, matrix)
			if report.EstimatedSavings > 0 {
				iterationReports = append(iterationReports, report)
			}
			matrix = reduced
		}

		if o.config.EliminateDead {
			pass := passes.NewDeadVariablePass()
			reduced, report := passes.Optimize(pass, matrix)
			if report.EstimatedSavings > 0 {
				iterationReports = append(iterationReports, report)
			}
			matrix = reduced
		}

		allReports = append(allReports, iterationReports...)

		after := matrix.NumConstraints()
		if after >= before {
			break
		}

		if iteration > 0 {
			iterReport := passes.NewReductionReport(fmt.Sprintf("Iteration %d", iteration+1))
			iterReport.EstimatedSavings = before - after
			iterReport.AddFinding(fmt.Sprintf("reduced %d -> %d constraints", before, after))
			allReports = append(allReports, iterReport)
		}
	}

	if o.config.DetectCSE {
		pass := passes.NewCommonSubexpressionPass()
		matches := pass.Scan(matrix)
		if len(matches) > 0 {
			allReports = append(allReports, pass.Report(matches))
		}
	}

	return Result{
		Matrix:              matrix,
		OriginalConstraints: originalConstraints,
		FinalConstraints:    matrix.NumConstraints(),
		PassReports:         allReports,
	}
}

// Analyze runs every pass in scan-only mode and returns their reports
// without modifying the matrix, regardless of which passes o.config has
// enabled.
func (o Optimizer) Analyze() []passes.ReductionReport {
	var reports []passes.ReductionReport

	dedup := passes.NewDeduplicationPass()
	if m := dedup.Scan(o.matrix); len(m) > 0 {
		reports = append(reports, dedup.Report(m))
	}

	constFold := passes.NewConstantFoldingPass()
	if m := constFold.Scan(o.matrix); len(m) > 0 {
		reports = append(reports, constFold.Report(m))
	}

	linear := passes.NewLinearSubstitutionPass()
	if m := linear.Scan(o.matrix); len(m) > 0 {
		reports = append(reports, linear.Report(m))
	}

	dead := passes.NewDeadVariablePass()
	if m := dead.Scan(o.matrix); len(m) > 0 {
		reports = append(reports, dead.Report(m))
	}

	cse := passes.NewCommonSubexpressionPass()
	if m := cse.Scan(o.matrix); len(m) > 0 {
		reports = append(reports, cse.Report(m))
	}

	return reports
}

// Stats reports summary statistics over the optimizer's current matrix.
func (o Optimizer) Stats() MatrixStats {
	sparsity := o.matrix.SparsityStats()

	linear, boolean, constant := 0, 0, 0
	for _, c := range o.matrix.Constraints {
		if c.IsLinear() {
			linear++
		}
		if c.IsBoolean() {
			boolean++
		}
		if c.IsConstant() {
			constant++
		}
	}

	return MatrixStats{
		NumConstraints:        o.matrix.NumConstraints(),
		NumVariables:          o.matrix.NumVariables,
		NumPublicInputs:       o.matrix.NumPublicInputs,
		NumPrivateWitnesses:   o.matrix.NumPrivateWitnesses,
		LinearConstraints:     linear,
		BooleanConstraints:    boolean,
		ConstantConstraints:   constant,
		MatrixDensity:         sparsity.Density,
		AvgTermsPerConstraint: sparsity.AvgTermsPerConstraint,
	}
}

// MatrixStats summarizes the shape of a constraint matrix.
type MatrixStats struct {
	NumConstraints        int
	NumVariables          int
	NumPublicInputs       int
	NumPrivateWitnesses   int
	LinearConstraints     int
	BooleanConstraints    int
	ConstantConstraints   int
	MatrixDensity         float64
	AvgTermsPerConstraint float64
}

// String renders the stats as a short human-readable report.
func (s MatrixStats) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "R1CS Matrix Statistics:")
	fmt.Fprintf(&b, "  Constraints:       %8d\n", s.NumConstraints)
	fmt.Fprintf(&b, "  Variables:         %8d\n", s.NumVariables)
	fmt.Fprintf(&b, "    - Public inputs: %8d\n", s.NumPublicInputs)
	fmt.Fprintf(&b, "    - Private:       %8d\n", s.NumPrivateWitnesses)
	denom := s.NumConstraints
	if denom == 0 {
		denom = 1
	}
	fmt.Fprintf(&b, "  Linear:            %8d (%.1f%%)\n", s.LinearConstraints, 100.0*float64(s.LinearConstraints)/float64(denom))
	fmt.Fprintf(&b, "  Boolean:           %8d\n", s.BooleanConstraints)
	fmt.Fprintf(&b, "  Constant:          %8d\n", s.ConstantConstraints)
	fmt.Fprintf(&b, "  Matrix density:    %8.4f%%\n", s.MatrixDensity*100.0)
	fmt.Fprintf(&b, "  Avg terms/constr:  %8.2f\n", s.AvgTermsPerConstraint)
	return b.String()
}
