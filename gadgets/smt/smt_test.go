package smt

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaves(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetUint64(uint64(i + 1))
	}
	return out
}

func TestBuildTreeRootStable(t *testing.T) {
	l := leaves(4)
	root1, _, _ := BuildTree(l)
	root2, _, _ := BuildTree(l)
	assert.True(t, root1.Equal(&root2))
}

type membershipCircuit struct {
	Leaf     frontend.Variable
	Siblings [2]frontend.Variable
	Bits     [2]frontend.Variable
	Root     frontend.Variable `gnark:",public"`
}

func (c *membershipCircuit) Define(api frontend.API) error {
	VerifyMembership(api, c.Root, c.Leaf, Path{Siblings: c.Siblings[:], PathBits: c.Bits[:]})
	return nil
}

func TestVerifyMembershipValidAndInvalid(t *testing.T) {
	assert := test.NewAssert(t)

	l := leaves(4)
	root, paths, bits := BuildTree(l)
	require.Len(t, paths[0], 2)

	var siblings [2]frontend.Variable
	var pathBits [2]frontend.Variable
	for i := range paths[0] {
		siblings[i] = paths[0][i]
		if bits[0][i] {
			pathBits[i] = 1
		} else {
			pathBits[i] = 0
		}
	}

	good := &membershipCircuit{Leaf: l[0], Siblings: siblings, Bits: pathBits, Root: root}
	var placeholder membershipCircuit
	assert.ProverSucceeded(&placeholder, good, test.WithCurves(ecc.BN254))

	tampered := &membershipCircuit{Leaf: l[0], Siblings: siblings, Bits: pathBits, Root: root}
	var wrongRoot fr.Element
	wrongRoot.SetUint64(999999)
	tampered.Root = wrongRoot
	assert.ProverFailed(&placeholder, tampered, test.WithCurves(ecc.BN254))
}
