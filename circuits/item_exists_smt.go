package circuits

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/gadgets/smt"
	"github.com/nume-crypto/inventory-privacy/inventory"
)

// smtDepth is fixed for this circuit shape; a deployment with a different
// leaf count would compile a circuit with a different depth, not a variable
// one (R1CS circuit shape is fixed at compile time regardless).
const smtDepth = 2

// ItemExistsSMTCircuit proves "some leaf of the tree committed to by Root
// holds an inventory with at least MinQuantity of ItemID" without revealing
// which leaf. It composes ItemExistsCircuit's commitment and quantity logic
// with a Merkle-membership gadget binding the leaf's inventory commitment
// into the tree.
//
// Public inputs, in order: Root, ItemID, MinQuantity.
// Private witnesses: Inventory, Blinding, the Merkle path.
type ItemExistsSMTCircuit struct {
	// Private
	Inventory inventory.Var
	Blinding  frontend.Variable
	Siblings  [smtDepth]frontend.Variable
	PathBits  [smtDepth]frontend.Variable

	// Public
	Root        frontend.Variable `gnark:",public"`
	ItemID      frontend.Variable `gnark:",public"`
	MinQuantity frontend.Variable `gnark:",public"`
}

// NewItemExistsSMTCircuit builds a proving-mode circuit instance.
func NewItemExistsSMTCircuit(inv inventory.Inventory, blinding frontend.Variable, siblings, pathBits [smtDepth]frontend.Variable, root, itemID, minQuantity frontend.Variable) *ItemExistsSMTCircuit {
	return &ItemExistsSMTCircuit{
		Inventory:   inventory.NewWitness(inv),
		Blinding:    blinding,
		Siblings:    siblings,
		PathBits:    pathBits,
		Root:        root,
		ItemID:      itemID,
		MinQuantity: minQuantity,
	}
}

// Define implements frontend.Circuit.
func (c *ItemExistsSMTCircuit) Define(api frontend.API) error {
	gadget := commitment.NewGadget(commitment.AuditedPoseidonParams())

	c.Inventory.AssertNoDuplicateIDs(api)
	leaf := gadget.CommitInventory(api, &c.Inventory, c.Blinding)

	path := smt.Path{Siblings: c.Siblings[:], PathBits: c.PathBits[:]}
	smt.VerifyMembership(api, c.Root, leaf, path)

	quantity := c.Inventory.GetQuantityForItem(api, c.ItemID)
	assertGEQ(api, quantity, c.MinQuantity)

	return nil
}
