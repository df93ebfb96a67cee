package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/inventory"
)

// ItemExistsCircuit proves "the inventory behind Commitment holds at least
// MinQuantity of ItemID" without revealing any other slot's contents.
//
// Public inputs, in order: Commitment, ItemID, MinQuantity.
// Private witnesses: Inventory, Blinding.
type ItemExistsCircuit struct {
	// Private
	Inventory inventory.Var
	Blinding  frontend.Variable

	// Public
	Commitment  frontend.Variable `gnark:",public"`
	ItemID      frontend.Variable `gnark:",public"`
	MinQuantity frontend.Variable `gnark:",public"`
}

// NewItemExistsCircuit builds a proving-mode circuit instance.
func NewItemExistsCircuit(inv inventory.Inventory, blinding, commit, itemID, minQuantity frontend.Variable) *ItemExistsCircuit {
	return &ItemExistsCircuit{
		Inventory:   inventory.NewWitness(inv),
		Blinding:    blinding,
		Commitment:  commit,
		ItemID:      itemID,
		MinQuantity: minQuantity,
	}
}

// Define implements frontend.Circuit.
func (c *ItemExistsCircuit) Define(api frontend.API) error {
	gadget := commitment.NewGadget(commitment.AuditedPoseidonParams())

	assertCommitment(api, gadget, &c.Inventory, c.Blinding, c.Commitment)
	c.Inventory.AssertNoDuplicateIDs(api)

	quantity := c.Inventory.GetQuantityForItem(api, c.ItemID)
	assertGEQ(api, quantity, c.MinQuantity)

	return nil
}
