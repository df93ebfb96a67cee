package rangecheck

import (
	"math"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type rangeCircuit struct {
	Value frontend.Variable
}

func (c *rangeCircuit) Define(api frontend.API) error {
	EnforceU32Range(api, c.Value)
	return nil
}

type geqCircuit struct {
	A, B frontend.Variable
}

func (c *geqCircuit) Define(api frontend.API) error {
	EnforceGEQ(api, c.A, c.B)
	return nil
}

func TestRangeCheckValid(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder rangeCircuit
	assert.ProverSucceeded(&placeholder, &rangeCircuit{Value: 1000}, test.WithCurves(ecc.BN254))
}

func TestRangeCheckMaxU32(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder rangeCircuit
	assert.ProverSucceeded(&placeholder, &rangeCircuit{Value: uint64(math.MaxUint32)}, test.WithCurves(ecc.BN254))
}

func TestRangeCheckExceedsU32(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder rangeCircuit
	assert.ProverFailed(&placeholder, &rangeCircuit{Value: uint64(1) << 32}, test.WithCurves(ecc.BN254))
}

func TestRangeCheckRejectsFieldWraparound(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder rangeCircuit
	// -5 in the field, i.e. modulus - 5: far outside [0, 2^32).
	assert.ProverFailed(&placeholder, &rangeCircuit{Value: -5}, test.WithCurves(ecc.BN254))
}

func TestGEQValid(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder geqCircuit
	assert.ProverSucceeded(&placeholder, &geqCircuit{A: 100, B: 50}, test.WithCurves(ecc.BN254))
}

func TestGEQEqual(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder geqCircuit
	assert.ProverSucceeded(&placeholder, &geqCircuit{A: 100, B: 100}, test.WithCurves(ecc.BN254))
}

func TestGEQInvalid(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder geqCircuit
	assert.ProverFailed(&placeholder, &geqCircuit{A: 50, B: 100}, test.WithCurves(ecc.BN254))
}
