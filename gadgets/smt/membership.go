package smt

import (
	"github.com/consensys/gnark/frontend"
)

// Path is a Merkle-path witness: one sibling hash and one direction bit per
// tree level, leaf to root. PathBits[i] == 1 means the sibling at level i is
// the left child (the current hash is the right child).
type Path struct {
	Siblings []frontend.Variable
	PathBits []frontend.Variable
}

// VerifyMembership recomputes the root from leaf along path and asserts it
// equals root. Depth is implied by len(path.Siblings).
func VerifyMembership(api frontend.API, root, leaf frontend.Variable, path Path) {
	computed := ComputeRoot(api, leaf, path)
	api.AssertIsEqual(computed, root)
}

// ComputeRoot recomputes a Merkle root from a leaf hash and its path,
// hashing two-to-one at each level with HashTwoGadget. At each level, the
// path bit selects whether the running hash is the left or right child.
func ComputeRoot(api frontend.API, leaf frontend.Variable, path Path) frontend.Variable {
	current := leaf
	for i, sibling := range path.Siblings {
		bit := path.PathBits[i]
		api.AssertIsBoolean(bit)
		left := api.Select(bit, sibling, current)
		right := api.Select(bit, current, sibling)
		current = HashTwoGadget(api, left, right)
	}
	return current
}

// HashLeaf hashes an (item_id, quantity) pair into a leaf hash that can be
// passed to ComputeRoot or VerifyMembership. Those gadgets accept any leaf
// value; ItemExistsSMTCircuit passes an inventory commitment instead.
func HashLeaf(api frontend.API, itemID, quantity frontend.Variable) frontend.Variable {
	return HashTwoGadget(api, itemID, quantity)
}
