package commitment

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/nume-crypto/inventory-privacy/inventory"
)

// commitCircuit proves knowledge of an inventory and blinding whose Poseidon
// commitment equals the public Expected value, exercising Gadget.Hash against
// the native Hash it must agree with bit-for-bit.
type commitCircuit struct {
	Inv      inventory.Var
	Blinding frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *commitCircuit) Define(api frontend.API) error {
	gadget := NewGadget(AuditedPoseidonParams())
	got := gadget.CommitInventory(api, &c.Inv, c.Blinding)
	api.AssertIsEqual(got, c.Expected)
	return nil
}

func TestGadgetMatchesNativeCommitment(t *testing.T) {
	assert := test.NewAssert(t)

	inv := inventory.FromItems([][2]uint64{{1, 100}, {2, 50}})
	var blinding fr.Element
	blinding.SetUint64(12345)
	expected := Commit(inv, blinding, AuditedPoseidonParams())

	witness := commitCircuit{
		Inv:      inventory.NewWitness(inv),
		Blinding: blinding,
		Expected: expected,
	}

	var placeholder commitCircuit
	assert.ProverSucceeded(&placeholder, &witness, test.WithCurves(ecc.BN254))
}

func TestGadgetRejectsWrongCommitment(t *testing.T) {
	assert := test.NewAssert(t)

	inv := inventory.FromItems([][2]uint64{{1, 100}})
	var blinding, wrong fr.Element
	blinding.SetUint64(1)
	wrong.SetUint64(999999)

	witness := commitCircuit{
		Inv:      inventory.NewWitness(inv),
		Blinding: blinding,
		Expected: wrong,
	}

	var placeholder commitCircuit
	assert.ProverFailed(&placeholder, &witness, test.WithCurves(ecc.BN254))
}
