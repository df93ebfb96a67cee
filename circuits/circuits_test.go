package circuits

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/test"

	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/inventory"
)

func commit(t *testing.T, inv inventory.Inventory, blinding uint64) (fr.Element, fr.Element) {
	t.Helper()
	var b fr.Element
	b.SetUint64(blinding)
	return commitment.Commit(inv, b, commitment.AuditedPoseidonParams()), b
}

func TestItemExistsValid(t *testing.T) {
	assert := test.NewAssert(t)

	inv := inventory.FromItems([][2]uint64{{1, 100}, {2, 50}})
	c, b := commit(t, inv, 12345)

	witness := NewItemExistsCircuit(inv, b, c, 1, 50)
	var placeholder ItemExistsCircuit
	assert.ProverSucceeded(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestItemExistsExactMatch(t *testing.T) {
	assert := test.NewAssert(t)

	inv := inventory.FromItems([][2]uint64{{1, 100}})
	c, b := commit(t, inv, 12345)

	witness := NewItemExistsCircuit(inv, b, c, 1, 100)
	var placeholder ItemExistsCircuit
	assert.ProverSucceeded(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestItemExistsInsufficientRejected(t *testing.T) {
	assert := test.NewAssert(t)

	inv := inventory.FromItems([][2]uint64{{1, 100}, {2, 50}})
	c, b := commit(t, inv, 12345)

	// claiming >= 200 of item 1, which the inventory doesn't hold.
	witness := NewItemExistsCircuit(inv, b, c, 1, 200)
	var placeholder ItemExistsCircuit
	assert.ProverFailed(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestWithdrawValid(t *testing.T) {
	assert := test.NewAssert(t)

	oldInv := inventory.FromItems([][2]uint64{{1, 100}})
	newInv := oldInv
	newInv.Withdraw(1, 30)

	oldC, oldB := commit(t, oldInv, 1)
	newC, newB := commit(t, newInv, 2)

	witness := NewWithdrawCircuit(oldInv, newInv, oldB, newB, oldC, newC, 1, 30)
	var placeholder WithdrawCircuit
	assert.ProverSucceeded(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestWithdrawAmountMismatchRejected(t *testing.T) {
	assert := test.NewAssert(t)

	oldInv := inventory.FromItems([][2]uint64{{1, 100}})
	newInv := oldInv
	newInv.Withdraw(1, 30)

	oldC, oldB := commit(t, oldInv, 1)
	newC, newB := commit(t, newInv, 2)

	// new state is [(1,70)] but we claim amount=40.
	witness := NewWithdrawCircuit(oldInv, newInv, oldB, newB, oldC, newC, 1, 40)
	var placeholder WithdrawCircuit
	assert.ProverFailed(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestDepositOnNewItemValid(t *testing.T) {
	assert := test.NewAssert(t)

	oldInv := inventory.New()
	newInv := oldInv
	newInv.Deposit(42, 100)

	oldC, oldB := commit(t, oldInv, 1)
	newC, newB := commit(t, newInv, 2)

	witness := NewDepositCircuit(oldInv, newInv, oldB, newB, oldC, newC, 42, 100)
	var placeholder DepositCircuit
	assert.ProverSucceeded(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestDepositAmountMismatchRejected(t *testing.T) {
	assert := test.NewAssert(t)

	oldInv := inventory.New()
	claimedNewInv := inventory.FromItems([][2]uint64{{42, 50}})

	oldC, oldB := commit(t, oldInv, 1)
	newC, newB := commit(t, claimedNewInv, 2)

	witness := NewDepositCircuit(oldInv, claimedNewInv, oldB, newB, oldC, newC, 42, 100)
	var placeholder DepositCircuit
	assert.ProverFailed(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestTransferValid(t *testing.T) {
	assert := test.NewAssert(t)

	srcOld := inventory.FromItems([][2]uint64{{1, 100}})
	srcNew := srcOld
	srcNew.Withdraw(1, 40)

	dstOld := inventory.FromItems([][2]uint64{{1, 20}})
	dstNew := dstOld
	dstNew.Deposit(1, 40)

	srcOldC, srcOldB := commit(t, srcOld, 1)
	srcNewC, srcNewB := commit(t, srcNew, 2)
	dstOldC, dstOldB := commit(t, dstOld, 3)
	dstNewC, dstNewB := commit(t, dstNew, 4)

	witness := NewTransferCircuit(TransferWitness{
		SrcOld: srcOld, SrcNew: srcNew, DstOld: dstOld, DstNew: dstNew,
		SrcOldBlinding: srcOldB, SrcNewBlinding: srcNewB,
		DstOldBlinding: dstOldB, DstNewBlinding: dstNewB,
		SrcOldCommitment: srcOldC, SrcNewCommitment: srcNewC,
		DstOldCommitment: dstOldC, DstNewCommitment: dstNewC,
		ItemID: 1, Amount: 40,
	})
	var placeholder TransferCircuit
	assert.ProverSucceeded(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestTransferConservationBrokenRejected(t *testing.T) {
	assert := test.NewAssert(t)

	srcOld := inventory.FromItems([][2]uint64{{1, 100}})
	srcNew := srcOld
	srcNew.Withdraw(1, 40)

	dstOld := inventory.FromItems([][2]uint64{{1, 20}})
	// claims dst ends at 80 instead of the conserved 60.
	dstNew := inventory.FromItems([][2]uint64{{1, 80}})

	srcOldC, srcOldB := commit(t, srcOld, 1)
	srcNewC, srcNewB := commit(t, srcNew, 2)
	dstOldC, dstOldB := commit(t, dstOld, 3)
	dstNewC, dstNewB := commit(t, dstNew, 4)

	witness := NewTransferCircuit(TransferWitness{
		SrcOld: srcOld, SrcNew: srcNew, DstOld: dstOld, DstNew: dstNew,
		SrcOldBlinding: srcOldB, SrcNewBlinding: srcNewB,
		DstOldBlinding: dstOldB, DstNewBlinding: dstNewB,
		SrcOldCommitment: srcOldC, SrcNewCommitment: srcNewC,
		DstOldCommitment: dstOldC, DstNewCommitment: dstNewC,
		ItemID: 1, Amount: 40,
	})
	var placeholder TransferCircuit
	assert.ProverFailed(&placeholder, witness, test.WithCurves(ecc.BN254))
}

func TestSlotFabricationRejected(t *testing.T) {
	assert := test.NewAssert(t)

	// old holds (1,100). A dishonest prover tries to withdraw 30 from item 1
	// while also fabricating a second slot for item 1 to hide the real
	// balance: new = [(1,70), (1,1000)]. AssertNoDuplicateIDs must reject
	// this regardless of the quantity equation.
	oldInv := inventory.FromItems([][2]uint64{{1, 100}})
	newInv := oldInv
	newInv.Slots[0].Quantity = 70
	newInv.Slots[1] = inventory.ItemSlot{ItemID: 1, Quantity: 1000}

	oldC, oldB := commit(t, oldInv, 1)
	newC, newB := commit(t, newInv, 2)

	witness := NewWithdrawCircuit(oldInv, newInv, oldB, newB, oldC, newC, 1, 30)
	var placeholder WithdrawCircuit
	assert.ProverFailed(&placeholder, witness, test.WithCurves(ecc.BN254))
}
