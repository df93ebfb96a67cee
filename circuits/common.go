// Package circuits implements the four inventory-operation proofs —
// ItemExists, Withdraw, Deposit, Transfer — plus the supplemented
// ItemExistsSMT circuit, each as a gnark frontend.Circuit.
package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/gadgets/rangecheck"
	"github.com/nume-crypto/inventory-privacy/inventory"
)

// assertCommitment enforces Poseidon(inv, blinding) == commitment.
func assertCommitment(api frontend.API, gadget *commitment.Gadget, inv *inventory.Var, blinding, commit frontend.Variable) {
	computed := gadget.CommitInventory(api, inv, blinding)
	api.AssertIsEqual(computed, commit)
}

// assertSlotPreservation enforces that every slot not involved with
// targetID is pointwise identical between oldInv and newInv. A slot is
// target-involved when its id equals targetID in either the old or the new
// inventory, which is exactly the freedom an operation needs (e.g. a
// deposit may allocate a previously-empty slot to a new item).
//
// This rule alone is insufficient: nothing here stops a second slot from
// also taking on targetID. Callers MUST also call
// inventory.Var.AssertNoDuplicateIDs on both oldInv and newInv — together,
// the two checks guarantee at most one slot is target-involved on each
// side, which is what makes GetQuantityForItem's selection-sum equal to a
// single slot's quantity rather than an attacker-chosen combination.
func assertSlotPreservation(api frontend.API, oldInv, newInv *inventory.Var, targetID frontend.Variable) {
	for i := 0; i < inventory.MaxItemSlots; i++ {
		oldSlot := oldInv.Slots[i]
		newSlot := newInv.Slots[i]

		oldIsTarget := api.IsZero(api.Sub(oldSlot.ItemID, targetID))
		newIsTarget := api.IsZero(api.Sub(newSlot.ItemID, targetID))
		involved := api.Or(oldIsTarget, newIsTarget)

		idEqual := api.IsZero(api.Sub(oldSlot.ItemID, newSlot.ItemID))
		qtyEqual := api.IsZero(api.Sub(oldSlot.Quantity, newSlot.Quantity))
		preserved := api.And(idEqual, qtyEqual)

		// involved OR preserved must hold: api.Or(involved, preserved) == 1
		api.AssertIsEqual(api.Or(involved, preserved), 1)
	}
}

// assertNoDuplicates enforces the no-duplicate-id invariant on both sides
// of an operation. See assertSlotPreservation's doc comment for why this is
// required alongside slot preservation, not merely a data-hygiene nicety.
func assertNoDuplicates(api frontend.API, oldInv, newInv *inventory.Var) {
	oldInv.AssertNoDuplicateIDs(api)
	newInv.AssertNoDuplicateIDs(api)
}

// assertGEQ enforces a >= b via the range-check gadget.
func assertGEQ(api frontend.API, a, b frontend.Variable) {
	rangecheck.EnforceGEQ(api, a, b)
}

// assertQuantityEquation enforces newQty == oldQty + delta (delta may be
// negative, expressed as api.Sub results, for withdraw-style relations).
func assertQuantityEquation(api frontend.API, newQty, oldQty, delta frontend.Variable) {
	api.AssertIsEqual(newQty, api.Add(oldQty, delta))
}
