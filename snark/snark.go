// Package snark is the opaque SNARK-backend wrapper the specification
// describes as "consumed, not defined": trusted setup, proving, and
// verification are delegated entirely to github.com/consensys/gnark's
// groth16 backend over BN254. Nothing in this package implements
// proving-system cryptography; it only fixes the curve and compiled-field
// choice and adapts gnark's errors to this module's error style.
package snark

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// curve is fixed by the external-interfaces contract: BN254-compatible
// scalar field.
var curve = ecc.BN254.ScalarField()

// ErrUnsatisfiedConstraintSystem wraps a groth16.Prove failure caused by a
// witness that does not satisfy the compiled circuit (an invalid operation,
// not a tooling error).
var ErrUnsatisfiedConstraintSystem = errors.New("snark: witness does not satisfy constraint system")

// Compile builds the R1CS constraint system for circuit (an empty-witness
// shape is sufficient: Setup needs the circuit's shape, not an assignment).
func Compile(circuit frontend.Circuit) (constraint.ConstraintSystem, error) {
	ccs, err := frontend.Compile(curve, r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("snark: compile: %w", err)
	}
	return ccs, nil
}

// Setup runs the (insecure, test-only in this wrapper's default use) Groth16
// trusted setup over the circuit's shape, returning a proving key and a
// verifying key. Production deployments must supply keys from a real
// multi-party ceremony; this function exists to exercise the same API shape
// a ceremony-backed key pair would be loaded through.
func Setup(circuit frontend.Circuit) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	ccs, err := Compile(circuit)
	if err != nil {
		return nil, nil, err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("snark: setup: %w", err)
	}
	return pk, vk, nil
}

// Prove builds a full witness (public and private) from witnessCircuit and
// produces a Groth16 proof against pk and ccs.
func Prove(ccs constraint.ConstraintSystem, pk groth16.ProvingKey, witnessCircuit frontend.Circuit) (groth16.Proof, error) {
	fullWitness, err := frontend.NewWitness(witnessCircuit, curve)
	if err != nil {
		return nil, fmt.Errorf("snark: build witness: %w", err)
	}
	proof, err := groth16.Prove(ccs, pk, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsatisfiedConstraintSystem, err)
	}
	return proof, nil
}

// Verify checks proof against vk and the public witness derived from
// witnessCircuit (only its public fields are read).
func Verify(vk groth16.VerifyingKey, proof groth16.Proof, witnessCircuit frontend.Circuit) error {
	publicWitness, err := frontend.NewWitness(witnessCircuit, curve, frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("snark: build public witness: %w", err)
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return fmt.Errorf("snark: verify: %w", err)
	}
	return nil
}
