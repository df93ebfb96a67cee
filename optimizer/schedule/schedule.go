// Package schedule estimates how parallelizable a circuit's constraint
// matrix is: it groups constraints into levels such that every constraint
// in a level only reads variables produced by constraints in earlier
// levels, mirroring the dependency analysis a witness solver would need to
// run constraints concurrently.
package schedule

import (
	"github.com/nume-crypto/inventory-privacy/constraint"
	"github.com/nume-crypto/inventory-privacy/internal/dag"
)

// Report summarizes a Matrix's parallel-solving shape.
type Report struct {
	// Depth is the number of levels: the length of the longest dependency
	// chain through the matrix.
	Depth int
	// Width is the largest number of constraints solvable concurrently in
	// any single level.
	Width int
	// Levels holds the constraint indices in each level, in solving order.
	Levels [][]int
}

// Analyze builds the producer graph for m (constraint i depends on
// constraint j when i reads a variable that only j's output side, C,
// defines) and partitions it into parallel-solving levels.
func Analyze(m constraint.Matrix) Report {
	if len(m.Constraints) == 0 {
		return Report{}
	}

	producedBy := make(map[int]int, len(m.Constraints))
	for _, c := range m.Constraints {
		if vars := c.C.Variables(); len(vars) == 1 {
			producedBy[vars[0]] = c.Index
		}
	}

	graph := dag.New(len(m.Constraints))
	for _, c := range m.Constraints {
		graph.AddNode(dag.Node(c.Index))
	}
	for _, c := range m.Constraints {
		parents := dependencies(c, producedBy)
		graph.AddEdges(c.Index, parents)
	}

	levels := graph.Levels()

	report := Report{
		Depth:  len(levels),
		Levels: make([][]int, len(levels)),
	}
	for i, l := range levels {
		report.Levels[i] = l.Nodes
		if len(l.Nodes) > report.Width {
			report.Width = len(l.Nodes)
		}
	}
	return report
}

// dependencies finds, for each variable c reads across A, B and C, which
// constraint (if any) produced it, excluding self-dependence. The producer
// is looked up by variable alone, so it may sit before or after c.
func dependencies(c constraint.Constraint, producedBy map[int]int) []int {
	seen := make(map[int]struct{})
	var parents []int
	for _, v := range c.Variables() {
		producer, ok := producedBy[v]
		if !ok || producer == c.Index {
			continue
		}
		if _, dup := seen[producer]; dup {
			continue
		}
		seen[producer] = struct{}{}
		parents = append(parents, producer)
	}
	return parents
}
