package server

import (
	"fmt"

	"github.com/consensys/gnark/backend/groth16"

	"github.com/nume-crypto/inventory-privacy/circuits"
	"github.com/nume-crypto/inventory-privacy/snark"
)

// CircuitKeys holds one Groth16 key pair per circuit this server proves.
type CircuitKeys struct {
	ItemExists groth16.ProvingKey
	Withdraw   groth16.ProvingKey
	Deposit    groth16.ProvingKey
	Transfer   groth16.ProvingKey

	ItemExistsVK groth16.VerifyingKey
	WithdrawVK   groth16.VerifyingKey
	DepositVK    groth16.VerifyingKey
	TransferVK   groth16.VerifyingKey
}

// SetupAllCircuits runs Groth16 setup against an empty-witness instance of
// every circuit this server exposes. The resulting keys are NOT from a real
// multi-party trusted setup ceremony: this is the insecure, test-only setup
// path an operator must replace with ceremony-backed keys before any
// production deployment (commitment.InsecureTestParams versus
// commitment.AuditedPoseidonParams draws the same distinction for Poseidon
// parameters).
func SetupAllCircuits() (CircuitKeys, error) {
	var keys CircuitKeys
	var err error

	keys.ItemExists, keys.ItemExistsVK, err = snark.Setup(&circuits.ItemExistsCircuit{})
	if err != nil {
		return CircuitKeys{}, fmt.Errorf("server: setup item-exists: %w", err)
	}
	keys.Withdraw, keys.WithdrawVK, err = snark.Setup(&circuits.WithdrawCircuit{})
	if err != nil {
		return CircuitKeys{}, fmt.Errorf("server: setup withdraw: %w", err)
	}
	keys.Deposit, keys.DepositVK, err = snark.Setup(&circuits.DepositCircuit{})
	if err != nil {
		return CircuitKeys{}, fmt.Errorf("server: setup deposit: %w", err)
	}
	keys.Transfer, keys.TransferVK, err = snark.Setup(&circuits.TransferCircuit{})
	if err != nil {
		return CircuitKeys{}, fmt.Errorf("server: setup transfer: %w", err)
	}

	return keys, nil
}
