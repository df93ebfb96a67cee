package commitment

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"

	"github.com/nume-crypto/inventory-privacy/inventory"
)

func TestCommitmentDeterministic(t *testing.T) {
	params := AuditedPoseidonParams()
	inv := inventory.FromItems([][2]uint64{{1, 100}, {2, 50}})
	var blinding fr.Element
	blinding.SetUint64(12345)

	c1 := Commit(inv, blinding, params)
	c2 := Commit(inv, blinding, params)

	assert.True(t, c1.Equal(&c2))
}

func TestDifferentBlindingDifferentCommitment(t *testing.T) {
	params := AuditedPoseidonParams()
	inv := inventory.FromItems([][2]uint64{{1, 100}})

	var b1, b2 fr.Element
	b1.SetUint64(1)
	b2.SetUint64(2)

	c1 := Commit(inv, b1, params)
	c2 := Commit(inv, b2, params)

	assert.False(t, c1.Equal(&c2))
}

func TestDifferentContentsDifferentCommitment(t *testing.T) {
	params := AuditedPoseidonParams()
	inv1 := inventory.FromItems([][2]uint64{{1, 100}})
	inv2 := inventory.FromItems([][2]uint64{{1, 101}})
	var blinding fr.Element
	blinding.SetUint64(7)

	c1 := Commit(inv1, blinding, params)
	c2 := Commit(inv2, blinding, params)

	assert.False(t, c1.Equal(&c2))
}
