package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/inventory"
)

// DepositCircuit proves that OldInventory evolves to NewInventory by
// depositing Amount of ItemID, without revealing any other slot's contents.
//
// Public inputs, in order: OldCommitment, NewCommitment, ItemID, Amount.
// Private witnesses: OldInventory, NewInventory, OldBlinding, NewBlinding.
type DepositCircuit struct {
	// Private
	OldInventory inventory.Var
	NewInventory inventory.Var
	OldBlinding  frontend.Variable
	NewBlinding  frontend.Variable

	// Public
	OldCommitment frontend.Variable `gnark:",public"`
	NewCommitment frontend.Variable `gnark:",public"`
	ItemID        frontend.Variable `gnark:",public"`
	Amount        frontend.Variable `gnark:",public"`
}

// NewDepositCircuit builds a proving-mode circuit instance.
func NewDepositCircuit(oldInv, newInv inventory.Inventory, oldBlinding, newBlinding, oldCommit, newCommit, itemID, amount frontend.Variable) *DepositCircuit {
	return &DepositCircuit{
		OldInventory:  inventory.NewWitness(oldInv),
		NewInventory:  inventory.NewWitness(newInv),
		OldBlinding:   oldBlinding,
		NewBlinding:   newBlinding,
		OldCommitment: oldCommit,
		NewCommitment: newCommit,
		ItemID:        itemID,
		Amount:        amount,
	}
}

// Define implements frontend.Circuit.
func (c *DepositCircuit) Define(api frontend.API) error {
	gadget := commitment.NewGadget(commitment.AuditedPoseidonParams())

	assertCommitment(api, gadget, &c.OldInventory, c.OldBlinding, c.OldCommitment)
	assertCommitment(api, gadget, &c.NewInventory, c.NewBlinding, c.NewCommitment)
	assertNoDuplicates(api, &c.OldInventory, &c.NewInventory)
	assertSlotPreservation(api, &c.OldInventory, &c.NewInventory, c.ItemID)

	oldQty := c.OldInventory.GetQuantityForItem(api, c.ItemID)
	newQty := c.NewInventory.GetQuantityForItem(api, c.ItemID)

	assertQuantityEquation(api, newQty, oldQty, c.Amount)

	return nil
}
