// Package democircuits builds representative constraint.Matrix traces for
// each inventory-privacy circuit shape, for use by the optimizer CLI and its
// tests. These are NOT extracted from the real circuits package: Matrix is
// populated only through constraint.RecordingAPI, which is independent of
// frontend.API (see the constraint package's docs), so a trace here mirrors
// a real circuit's arithmetic shape without replaying its Define method.
package democircuits

import (
	"github.com/nume-crypto/inventory-privacy/constraint"
)

// numSlots mirrors inventory.MaxItemSlots.
const numSlots = 16

// rangeBits mirrors gadgets/rangecheck.Bits.
const rangeBits = 32

// selectionSum records, for every slot, a boolean match witness and a
// Select-weighted contribution to the running total, the same
// selection-sum idiom inventory.Var.GetQuantityForItem uses to look up a
// single item's quantity across a fixed-size slot array. A real circuit
// derives isMatch via IsZero(diff); RecordingAPI has no IsZero gadget, so
// isMatch is a fresh witness constrained consistent with diff instead.
func selectionSum(r *constraint.RecordingAPI, ids, quantities []constraint.Var, target constraint.Var) constraint.Var {
	total := r.ConstantUint64(0)
	one := r.ConstantUint64(1)
	zero := r.ConstantUint64(0)
	for i := range ids {
		diff := r.Sub(ids[i], target)
		isMatch := r.FreshWitness()
		r.AssertIsBoolean(isMatch)
		consistency := r.Mul(r.Sub(one, isMatch), diff)
		r.AssertIsEqual(consistency, zero)

		contribution := r.Select(isMatch, quantities[i], zero)
		total = r.Add(total, contribution)
	}
	return total
}

// rangeCheck mirrors gadgets/rangecheck.EnforceRange: nBits booleanity
// constraints plus one reconstruction constraint.
func rangeCheck(r *constraint.RecordingAPI, value constraint.Var, nBits int) {
	r.ToBinary(value, nBits)
}

// noDuplicateIDs mirrors inventory.Var.AssertNoDuplicateIDs: a pairwise
// O(n^2) check that no two slots share a nonzero item id.
func noDuplicateIDs(r *constraint.RecordingAPI, ids []constraint.Var) {
	one := r.ConstantUint64(1)
	zero := r.ConstantUint64(0)
	nonZero := make([]constraint.Var, len(ids))
	for i := range ids {
		nz := r.FreshWitness()
		r.AssertIsBoolean(nz)
		nonZero[i] = nz
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			diff := r.Sub(ids[i], ids[j])
			isEqual := r.FreshWitness()
			r.AssertIsBoolean(isEqual)
			consistency := r.Mul(r.Sub(one, isEqual), diff)
			r.AssertIsEqual(consistency, zero)

			violation := r.And(nonZero[i], isEqual)
			r.AssertIsEqual(violation, zero)
		}
	}
}

func allocateInventory(r *constraint.RecordingAPI, firstIndex int) (ids, quantities []constraint.Var) {
	ids = make([]constraint.Var, numSlots)
	quantities = make([]constraint.Var, numSlots)
	for i := 0; i < numSlots; i++ {
		ids[i] = r.PrivateWitness(firstIndex + 2*i)
		quantities[i] = r.PrivateWitness(firstIndex + 2*i + 1)
	}
	return ids, quantities
}

// commitmentPlaceholder mirrors one Poseidon-sponge absorb-and-square
// round's constraint cost (one Mul per round) without the real round
// constants, standing in for commitment.Gadget.CommitInventory's
// constraint count in these demo traces.
func commitmentPlaceholder(r *constraint.RecordingAPI, ids, quantities []constraint.Var, blinding constraint.Var) constraint.Var {
	acc := blinding
	for i := range ids {
		acc = r.Mul(r.Add(acc, ids[i]), r.Add(acc, quantities[i]))
	}
	return acc
}

// ItemExists builds a representative matrix for ItemExistsCircuit: one
// inventory's commitment, its no-duplicate-id check, a selection-sum
// quantity lookup, and a range-checked GEQ against a public minimum.
func ItemExists() constraint.Matrix {
	r := constraint.NewRecordingAPI(3, 1+2*numSlots)
	commitmentPub := r.PublicInput(0)
	target := r.PublicInput(1)
	minQuantity := r.PublicInput(2)

	ids, quantities := allocateInventory(r, 0)
	blinding := r.PrivateWitness(2 * numSlots)

	commitment := commitmentPlaceholder(r, ids, quantities, blinding)
	r.AssertIsEqual(commitment, commitmentPub)

	noDuplicateIDs(r, ids)
	total := selectionSum(r, ids, quantities, target)
	rangeCheck(r, r.Sub(total, minQuantity), rangeBits)

	return r.Matrix()
}

// perInventoryWitnessCount is how many declared private witnesses one
// old/new inventory pair needs: 2*numSlots ids+quantities each, times two
// inventories, plus two blindings.
const perInventoryWitnessCount = 4*numSlots + 2

// evolve builds one old/new inventory pair's shared machinery, starting its
// declared private witnesses at firstIndex: both commitments, both
// no-duplicate checks, and the per-inventory quantity lookups for target.
// Returns (oldQty, newQty).
func evolve(r *constraint.RecordingAPI, firstIndex int, target, oldCommitmentPub, newCommitmentPub constraint.Var) (oldQty, newQty constraint.Var) {
	oldIDs, oldQuantities := allocateInventory(r, firstIndex)
	newIDs, newQuantities := allocateInventory(r, firstIndex+2*numSlots)
	oldBlinding := r.PrivateWitness(firstIndex + 4*numSlots)
	newBlinding := r.PrivateWitness(firstIndex + 4*numSlots + 1)

	oldCommitment := commitmentPlaceholder(r, oldIDs, oldQuantities, oldBlinding)
	newCommitment := commitmentPlaceholder(r, newIDs, newQuantities, newBlinding)
	r.AssertIsEqual(oldCommitment, oldCommitmentPub)
	r.AssertIsEqual(newCommitment, newCommitmentPub)

	noDuplicateIDs(r, oldIDs)
	noDuplicateIDs(r, newIDs)

	oldQty = selectionSum(r, oldIDs, oldQuantities, target)
	newQty = selectionSum(r, newIDs, newQuantities, target)
	return oldQty, newQty
}

// Withdraw builds a representative matrix for WithdrawCircuit.
func Withdraw() constraint.Matrix {
	r := constraint.NewRecordingAPI(4, perInventoryWitnessCount)
	oldCommitmentPub := r.PublicInput(0)
	newCommitmentPub := r.PublicInput(1)
	target := r.PublicInput(2)
	amount := r.PublicInput(3)

	oldQty, newQty := evolve(r, 0, target, oldCommitmentPub, newCommitmentPub)

	expectedNew := r.Sub(oldQty, amount)
	rangeCheck(r, expectedNew, rangeBits)
	r.AssertIsEqual(newQty, expectedNew)

	return r.Matrix()
}

// Deposit builds a representative matrix for DepositCircuit.
func Deposit() constraint.Matrix {
	r := constraint.NewRecordingAPI(4, perInventoryWitnessCount)
	oldCommitmentPub := r.PublicInput(0)
	newCommitmentPub := r.PublicInput(1)
	target := r.PublicInput(2)
	amount := r.PublicInput(3)

	oldQty, newQty := evolve(r, 0, target, oldCommitmentPub, newCommitmentPub)

	expectedNew := r.Add(oldQty, amount)
	r.AssertIsEqual(newQty, expectedNew)

	return r.Matrix()
}

// Transfer builds a representative matrix for TransferCircuit: two evolve
// blocks (source and destination) sharing the same public item id/amount.
func Transfer() constraint.Matrix {
	r := constraint.NewRecordingAPI(6, 2*perInventoryWitnessCount)
	srcOldPub := r.PublicInput(0)
	srcNewPub := r.PublicInput(1)
	dstOldPub := r.PublicInput(2)
	dstNewPub := r.PublicInput(3)
	target := r.PublicInput(4)
	amount := r.PublicInput(5)

	srcOldQty, srcNewQty := evolve(r, 0, target, srcOldPub, srcNewPub)
	dstOldQty, dstNewQty := evolve(r, perInventoryWitnessCount, target, dstOldPub, dstNewPub)

	expectedSrcNew := r.Sub(srcOldQty, amount)
	rangeCheck(r, expectedSrcNew, rangeBits)
	r.AssertIsEqual(srcNewQty, expectedSrcNew)
	r.AssertIsEqual(dstNewQty, r.Add(dstOldQty, amount))

	return r.Matrix()
}

// ByName returns the demo matrix builder registered under name, and whether
// one was found. Supported names: item-exists, withdraw, deposit, transfer.
func ByName(name string) (func() constraint.Matrix, bool) {
	switch name {
	case "item-exists":
		return ItemExists, true
	case "withdraw":
		return Withdraw, true
	case "deposit":
		return Deposit, true
	case "transfer":
		return Transfer, true
	default:
		return nil, false
	}
}

// Names lists the demo matrix builders ByName supports, in a stable order.
func Names() []string {
	return []string{"item-exists", "withdraw", "deposit", "transfer"}
}
