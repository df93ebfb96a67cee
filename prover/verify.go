// Package prover assembles the normative public-input bindings for each
// circuit and verifies Groth16 proofs against them. It never builds a
// witness circuit's private fields: only the public fields named by each
// function's signature are ever populated, so this package cannot
// accidentally leak private inventory data into a verification call.
package prover

import (
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/inventory-privacy/circuits"
	"github.com/nume-crypto/inventory-privacy/snark"
)

// VerifyItemExists checks an ItemExists proof against commitment, itemID,
// and minQuantity, in that public-input order.
func VerifyItemExists(vk groth16.VerifyingKey, proof groth16.Proof, commitment, itemID, minQuantity frontend.Variable) error {
	public := &circuits.ItemExistsCircuit{
		Commitment:  commitment,
		ItemID:      itemID,
		MinQuantity: minQuantity,
	}
	return verify(vk, proof, public)
}

// VerifyWithdraw checks a Withdraw proof against oldCommitment,
// newCommitment, itemID, and amount, in that public-input order.
func VerifyWithdraw(vk groth16.VerifyingKey, proof groth16.Proof, oldCommitment, newCommitment, itemID, amount frontend.Variable) error {
	public := &circuits.WithdrawCircuit{
		OldCommitment: oldCommitment,
		NewCommitment: newCommitment,
		ItemID:        itemID,
		Amount:        amount,
	}
	return verify(vk, proof, public)
}

// VerifyDeposit checks a Deposit proof against oldCommitment,
// newCommitment, itemID, and amount, in that public-input order.
func VerifyDeposit(vk groth16.VerifyingKey, proof groth16.Proof, oldCommitment, newCommitment, itemID, amount frontend.Variable) error {
	public := &circuits.DepositCircuit{
		OldCommitment: oldCommitment,
		NewCommitment: newCommitment,
		ItemID:        itemID,
		Amount:        amount,
	}
	return verify(vk, proof, public)
}

// TransferPublicInputs bundles a Transfer proof's public inputs in their
// normative order: SrcOldCommitment, SrcNewCommitment, DstOldCommitment,
// DstNewCommitment, ItemID, Amount.
type TransferPublicInputs struct {
	SrcOldCommitment, SrcNewCommitment frontend.Variable
	DstOldCommitment, DstNewCommitment frontend.Variable
	ItemID, Amount                     frontend.Variable
}

// VerifyTransfer checks a Transfer proof against in, in normative
// public-input order.
func VerifyTransfer(vk groth16.VerifyingKey, proof groth16.Proof, in TransferPublicInputs) error {
	public := &circuits.TransferCircuit{
		SrcOldCommitment: in.SrcOldCommitment,
		SrcNewCommitment: in.SrcNewCommitment,
		DstOldCommitment: in.DstOldCommitment,
		DstNewCommitment: in.DstNewCommitment,
		ItemID:           in.ItemID,
		Amount:           in.Amount,
	}
	return verify(vk, proof, public)
}

// VerifyItemExistsSMT checks an ItemExistsSMT proof against root, itemID,
// and minQuantity, in that public-input order.
func VerifyItemExistsSMT(vk groth16.VerifyingKey, proof groth16.Proof, root, itemID, minQuantity frontend.Variable) error {
	public := &circuits.ItemExistsSMTCircuit{
		Root:        root,
		ItemID:      itemID,
		MinQuantity: minQuantity,
	}
	return verify(vk, proof, public)
}

func verify(vk groth16.VerifyingKey, proof groth16.Proof, public frontend.Circuit) error {
	if err := snark.Verify(vk, proof, public); err != nil {
		return fmt.Errorf("prover: %w", err)
	}
	return nil
}
