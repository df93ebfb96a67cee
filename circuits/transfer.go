package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/inventory"
)

// TransferCircuit proves that Amount of ItemID moves from a source
// inventory to a destination inventory, without revealing any other slot's
// contents in either inventory.
//
// Public inputs, in order: SrcOldCommitment, SrcNewCommitment,
// DstOldCommitment, DstNewCommitment, ItemID, Amount.
// Private witnesses: the four inventories and their four blindings.
type TransferCircuit struct {
	// Private
	SrcOldInventory inventory.Var
	SrcNewInventory inventory.Var
	DstOldInventory inventory.Var
	DstNewInventory inventory.Var
	SrcOldBlinding  frontend.Variable
	SrcNewBlinding  frontend.Variable
	DstOldBlinding  frontend.Variable
	DstNewBlinding  frontend.Variable

	// Public
	SrcOldCommitment frontend.Variable `gnark:",public"`
	SrcNewCommitment frontend.Variable `gnark:",public"`
	DstOldCommitment frontend.Variable `gnark:",public"`
	DstNewCommitment frontend.Variable `gnark:",public"`
	ItemID           frontend.Variable `gnark:",public"`
	Amount           frontend.Variable `gnark:",public"`
}

// TransferWitness bundles the native values needed to build a proving-mode
// TransferCircuit.
type TransferWitness struct {
	SrcOld, SrcNew, DstOld, DstNew      inventory.Inventory
	SrcOldBlinding, SrcNewBlinding      frontend.Variable
	DstOldBlinding, DstNewBlinding      frontend.Variable
	SrcOldCommitment, SrcNewCommitment  frontend.Variable
	DstOldCommitment, DstNewCommitment  frontend.Variable
	ItemID, Amount                      frontend.Variable
}

// NewTransferCircuit builds a proving-mode circuit instance.
func NewTransferCircuit(w TransferWitness) *TransferCircuit {
	return &TransferCircuit{
		SrcOldInventory:  inventory.NewWitness(w.SrcOld),
		SrcNewInventory:  inventory.NewWitness(w.SrcNew),
		DstOldInventory:  inventory.NewWitness(w.DstOld),
		DstNewInventory:  inventory.NewWitness(w.DstNew),
		SrcOldBlinding:   w.SrcOldBlinding,
		SrcNewBlinding:   w.SrcNewBlinding,
		DstOldBlinding:   w.DstOldBlinding,
		DstNewBlinding:   w.DstNewBlinding,
		SrcOldCommitment: w.SrcOldCommitment,
		SrcNewCommitment: w.SrcNewCommitment,
		DstOldCommitment: w.DstOldCommitment,
		DstNewCommitment: w.DstNewCommitment,
		ItemID:           w.ItemID,
		Amount:           w.Amount,
	}
}

// Define implements frontend.Circuit.
func (c *TransferCircuit) Define(api frontend.API) error {
	gadget := commitment.NewGadget(commitment.AuditedPoseidonParams())

	assertCommitment(api, gadget, &c.SrcOldInventory, c.SrcOldBlinding, c.SrcOldCommitment)
	assertCommitment(api, gadget, &c.SrcNewInventory, c.SrcNewBlinding, c.SrcNewCommitment)
	assertCommitment(api, gadget, &c.DstOldInventory, c.DstOldBlinding, c.DstOldCommitment)
	assertCommitment(api, gadget, &c.DstNewInventory, c.DstNewBlinding, c.DstNewCommitment)

	assertNoDuplicates(api, &c.SrcOldInventory, &c.SrcNewInventory)
	assertNoDuplicates(api, &c.DstOldInventory, &c.DstNewInventory)
	assertSlotPreservation(api, &c.SrcOldInventory, &c.SrcNewInventory, c.ItemID)
	assertSlotPreservation(api, &c.DstOldInventory, &c.DstNewInventory, c.ItemID)

	srcOldQty := c.SrcOldInventory.GetQuantityForItem(api, c.ItemID)
	srcNewQty := c.SrcNewInventory.GetQuantityForItem(api, c.ItemID)
	dstOldQty := c.DstOldInventory.GetQuantityForItem(api, c.ItemID)
	dstNewQty := c.DstNewInventory.GetQuantityForItem(api, c.ItemID)

	assertGEQ(api, srcOldQty, c.Amount)
	assertQuantityEquation(api, srcNewQty, srcOldQty, api.Sub(0, c.Amount))
	assertQuantityEquation(api, dstNewQty, dstOldQty, c.Amount)

	return nil
}
