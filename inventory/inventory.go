// Package inventory implements the fixed-slot inventory model: the native
// representation used by a prover to track real holdings, and the in-circuit
// mirror (Var) used to express the same state as gnark witnesses.
package inventory

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MaxItemSlots is the number of fixed (item_id, quantity) slots an inventory
// holds. item_id == 0 denotes an empty slot.
const MaxItemSlots = 16

// ErrSlotCapacityExceeded is returned by Deposit when a new item needs a slot
// but none of the MaxItemSlots slots are empty.
var ErrSlotCapacityExceeded = errors.New("inventory: no empty slots available")

// ErrInsufficientQuantity is returned by Withdraw when the held quantity is
// below the requested amount.
var ErrInsufficientQuantity = errors.New("inventory: insufficient quantity")

// ItemSlot is one inventory slot. The invariant ItemID == 0 => Quantity == 0
// holds for every slot produced by this package's constructors.
type ItemSlot struct {
	ItemID   uint32
	Quantity uint64
}

// Inventory is an ordered sequence of exactly MaxItemSlots slots. Slot order
// is significant: it is the order in which slots are hashed into a
// commitment, so assigning a new item binds it to the first empty slot.
type Inventory struct {
	Slots [MaxItemSlots]ItemSlot
}

// New returns an empty inventory (all slots zero-valued).
func New() Inventory {
	return Inventory{}
}

// FromItems builds an inventory from an ordered list of (item_id, quantity)
// pairs, truncating at MaxItemSlots entries.
func FromItems(items [][2]uint64) Inventory {
	var inv Inventory
	for i, item := range items {
		if i >= MaxItemSlots {
			break
		}
		inv.Slots[i] = ItemSlot{ItemID: uint32(item[0]), Quantity: item[1]}
	}
	return inv
}

// GetQuantity returns the held quantity for itemID, or 0 if absent.
func (inv *Inventory) GetQuantity(itemID uint32) uint64 {
	if idx := inv.findSlot(itemID); idx >= 0 {
		return inv.Slots[idx].Quantity
	}
	return 0
}

func (inv *Inventory) findSlot(itemID uint32) int {
	for i := range inv.Slots {
		if inv.Slots[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

func (inv *Inventory) findEmptySlot() int {
	return inv.findSlot(0)
}

// setQuantity assigns quantity to itemID's slot, creating a new slot from the
// first empty one when itemID isn't already present. Setting a quantity of 0
// on an existing slot clears it (resets ItemID and Quantity to 0). Setting 0
// on an absent item is a no-op.
func (inv *Inventory) setQuantity(itemID uint32, quantity uint64) error {
	if idx := inv.findSlot(itemID); idx >= 0 {
		if quantity == 0 {
			inv.Slots[idx] = ItemSlot{}
		} else {
			inv.Slots[idx].Quantity = quantity
		}
		return nil
	}
	if quantity == 0 {
		return nil
	}
	idx := inv.findEmptySlot()
	if idx < 0 {
		return ErrSlotCapacityExceeded
	}
	inv.Slots[idx] = ItemSlot{ItemID: itemID, Quantity: quantity}
	return nil
}

// Withdraw removes amount from itemID's held quantity. Returns
// ErrInsufficientQuantity when the held amount is below amount. Withdrawing
// the full balance clears the slot's item id.
func (inv *Inventory) Withdraw(itemID uint32, amount uint64) error {
	current := inv.GetQuantity(itemID)
	if current < amount {
		return ErrInsufficientQuantity
	}
	return inv.setQuantity(itemID, current-amount)
}

// Deposit adds amount to itemID's held quantity, allocating a new slot from
// the first empty one when itemID isn't already present. Returns
// ErrSlotCapacityExceeded when a new slot is required but all are occupied.
func (inv *Inventory) Deposit(itemID uint32, amount uint64) error {
	current := inv.GetQuantity(itemID)
	return inv.setQuantity(itemID, current+amount)
}

// ToFieldElements returns the 2*MaxItemSlots field elements (item_id,
// quantity alternating per slot) in slot order, the canonical commitment
// hashing order.
func (inv *Inventory) ToFieldElements() []fr.Element {
	out := make([]fr.Element, 0, 2*MaxItemSlots)
	for _, slot := range inv.Slots {
		var id, qty fr.Element
		id.SetUint64(uint64(slot.ItemID))
		qty.SetUint64(slot.Quantity)
		out = append(out, id, qty)
	}
	return out
}
