package inventory

import (
	"github.com/consensys/gnark/frontend"
)

// SlotVar mirrors ItemSlot as a pair of circuit variables.
type SlotVar struct {
	ItemID   frontend.Variable
	Quantity frontend.Variable
}

// Var is the in-circuit mirror of Inventory: MaxItemSlots witness pairs in
// the same slot order as the native type, so the flattened variable list
// hashes identically to Inventory.ToFieldElements.
type Var struct {
	Slots [MaxItemSlots]SlotVar
}

// NewWitness builds a Var whose slots carry inv's values, for use when
// building a circuit's concrete assignment outside Define; for the
// empty-circuit (setup-only) shape, build a zero-valued Var directly.
func NewWitness(inv Inventory) Var {
	var v Var
	for i, slot := range inv.Slots {
		v.Slots[i] = SlotVar{
			ItemID:   slot.ItemID,
			Quantity: slot.Quantity,
		}
	}
	return v
}

// ToFieldVars flattens the slots into the canonical (id, qty, id, qty, ...)
// order used by the commitment hash.
func (v *Var) ToFieldVars() []frontend.Variable {
	out := make([]frontend.Variable, 0, 2*MaxItemSlots)
	for _, slot := range v.Slots {
		out = append(out, slot.ItemID, slot.Quantity)
	}
	return out
}

// GetQuantityForItem returns a witness equal to the held quantity of
// targetItemID: the sum, over every slot, of quantity*[item_id == target].
// Correctness relies on the inventory's no-duplicate-id invariant — with a
// duplicate, this returns the sum across all matches rather than a single
// slot's value. Costs one equality and one select per slot.
func (v *Var) GetQuantityForItem(api frontend.API, targetItemID frontend.Variable) frontend.Variable {
	total := frontend.Variable(0)
	for _, slot := range v.Slots {
		isMatch := api.IsZero(api.Sub(slot.ItemID, targetItemID))
		contribution := api.Select(isMatch, slot.Quantity, 0)
		total = api.Add(total, contribution)
	}
	return total
}

// AssertNoDuplicateIDs enforces the no-duplicate-id invariant pairwise: for
// all i != j, not (id_i != 0 && id_i == id_j). This closes the
// slot-preservation soundness gap described in the design notes — without
// it, a prover could fabricate a second slot for an item the selection-sum
// idiom above would then double-count.
func (v *Var) AssertNoDuplicateIDs(api frontend.API) {
	for i := 0; i < MaxItemSlots; i++ {
		for j := i + 1; j < MaxItemSlots; j++ {
			idI, idJ := v.Slots[i].ItemID, v.Slots[j].ItemID
			isZero := api.IsZero(idI)
			isEqual := api.IsZero(api.Sub(idI, idJ))
			// violation iff idI != 0 AND idI == idJ
			violation := api.And(api.Sub(1, isZero), isEqual)
			api.AssertIsEqual(violation, 0)
		}
	}
}
