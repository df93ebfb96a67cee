package smt

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BuildTree computes the root of a complete binary Merkle tree over leaves
// using HashTwo at each level, padding with DefaultLeafHash when the leaf
// count isn't a power of two. This is test/fixture scaffolding only: native
// tree storage and maintenance are out of scope for the core.
func BuildTree(leaves []fr.Element) (root fr.Element, paths [][]fr.Element, bits [][]bool) {
	n := 1
	for n < len(leaves) {
		n *= 2
	}
	if n == 0 {
		n = 1
	}

	level := make([]fr.Element, n)
	empty := DefaultLeafHash()
	for i := range level {
		if i < len(leaves) {
			level[i] = leaves[i]
		} else {
			level[i] = empty
		}
	}

	depth := 0
	for sz := n; sz > 1; sz /= 2 {
		depth++
	}

	paths = make([][]fr.Element, n)
	bits = make([][]bool, n)
	for i := range paths {
		paths[i] = make([]fr.Element, 0, depth)
		bits[i] = make([]bool, 0, depth)
	}

	levels := [][]fr.Element{level}
	cur := level
	for len(cur) > 1 {
		next := make([]fr.Element, len(cur)/2)
		for i := 0; i < len(next); i++ {
			next[i] = HashTwo(cur[2*i], cur[2*i+1])
		}
		levels = append(levels, next)
		cur = next
	}
	root = cur[0]

	for leafIdx := 0; leafIdx < n; leafIdx++ {
		idx := leafIdx
		for lvl := 0; lvl < len(levels)-1; lvl++ {
			layer := levels[lvl]
			isRight := idx%2 == 1
			var siblingIdx int
			if isRight {
				siblingIdx = idx - 1
			} else {
				siblingIdx = idx + 1
			}
			paths[leafIdx] = append(paths[leafIdx], layer[siblingIdx])
			bits[leafIdx] = append(bits[leafIdx], isRight)
			idx /= 2
		}
	}

	return root, paths, bits
}
