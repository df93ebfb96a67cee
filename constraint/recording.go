package constraint

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Var is an opaque handle to a value tracked by a RecordingAPI trace:
// either the constant wire, an allocated public/private variable, or the
// output of a prior gate. Deliberately not frontend.Variable: RecordingAPI
// is an independent analysis-only tracer, not a drop-in gnark builder, so
// it carries no dependency on gnark's constraint-system internals.
type Var struct {
	lc LinearCombination
}

// LC exposes the underlying linear combination, for callers building
// constraints directly against a Matrix rather than through RecordingAPI's
// own gate methods.
func (v Var) LC() LinearCombination {
	return v.lc
}

// RecordingAPI traces a sequence of arithmetic/boolean operations into a
// Matrix, the way a circuit's Define call would against a real prover
// backend. Linear operations (Add, Sub, Neg) fold directly into the
// returned Var's linear combination at zero constraint cost; only Mul and
// the Assert* family emit rows into the underlying Matrix, matching how an
// R1CS builder actually spends constraints.
type RecordingAPI struct {
	matrix       Matrix
	nextVariable int
}

// NewRecordingAPI starts a trace with numPublicInputs public and
// numPrivateWitnesses private variables pre-allocated (variable 0 is
// always the constant wire).
func NewRecordingAPI(numPublicInputs, numPrivateWitnesses int) *RecordingAPI {
	return &RecordingAPI{
		matrix:       Empty(numPublicInputs, numPrivateWitnesses),
		nextVariable: 1 + numPublicInputs + numPrivateWitnesses,
	}
}

// Matrix returns the constraints recorded so far. NumVariables is synced to
// include every variable Mul/ToBinary allocated along the way, not just the
// public/private counts NewRecordingAPI started with.
func (r *RecordingAPI) Matrix() Matrix {
	r.matrix.NumVariables = r.nextVariable - 1
	return r.matrix
}

// FreshWitness allocates a new private witness beyond those declared at
// NewRecordingAPI time, for traces that need auxiliary hint-like witnesses
// (e.g. boolean selectors) with no public-interface meaning of their own.
func (r *RecordingAPI) FreshWitness() Var {
	return r.variable(r.allocate())
}

// PublicInput returns the Var for the index-th public input (0-based).
func (r *RecordingAPI) PublicInput(index int) Var {
	return r.variable(1 + index)
}

// PrivateWitness returns the Var for the index-th private witness (0-based).
func (r *RecordingAPI) PrivateWitness(index int) Var {
	return r.variable(1 + r.matrix.NumPublicInputs + index)
}

func (r *RecordingAPI) variable(index int) Var {
	var one fr.Element
	one.SetOne()
	return Var{lc: NewLinearCombination([]Term{NewTerm(index, one)})}
}

// Constant wraps a native field constant as a Var.
func (r *RecordingAPI) Constant(c fr.Element) Var {
	return Var{lc: NewLinearCombination([]Term{NewTerm(0, c)})}
}

// ConstantUint64 is a convenience wrapper over Constant for small literals.
func (r *RecordingAPI) ConstantUint64(c uint64) Var {
	var e fr.Element
	e.SetUint64(c)
	return r.Constant(e)
}

func (r *RecordingAPI) allocate() int {
	v := r.nextVariable
	r.nextVariable++
	return v
}

// Add returns a Var for a + b + rest..., a free linear combination.
func (r *RecordingAPI) Add(a, b Var, rest ...Var) Var {
	terms := append(append([]Term{}, a.lc.Terms...), b.lc.Terms...)
	for _, v := range rest {
		terms = append(terms, v.lc.Terms...)
	}
	return Var{lc: NewLinearCombination(terms)}
}

// Sub returns a Var for a - b.
func (r *RecordingAPI) Sub(a, b Var) Var {
	return r.Add(a, r.Neg(b))
}

// Neg returns a Var for -a.
func (r *RecordingAPI) Neg(a Var) Var {
	terms := make([]Term, len(a.lc.Terms))
	for i, t := range a.lc.Terms {
		var neg fr.Element
		neg.Neg(&t.Coefficient)
		terms[i] = NewTerm(t.Variable, neg)
	}
	return Var{lc: NewLinearCombination(terms)}
}

// Mul returns a Var for a * b, allocating a fresh output variable and
// recording the constraint a * b = out.
func (r *RecordingAPI) Mul(a, b Var) Var {
	out := r.allocate()
	outVar := r.variable(out)
	r.matrix.AddConstraint(a.lc, b.lc, outVar.lc)
	return outVar
}

// one returns the constant-1 Var.
func (r *RecordingAPI) one() Var {
	return r.ConstantUint64(1)
}

// AssertIsEqual records the constraint (a - b) * 1 = 0.
func (r *RecordingAPI) AssertIsEqual(a, b Var) {
	diff := r.Sub(a, b)
	r.matrix.AddConstraint(diff.lc, r.one().lc, ZeroLC())
}

// AssertIsBoolean records the constraint a * (1 - a) = 0.
func (r *RecordingAPI) AssertIsBoolean(a Var) {
	oneMinusA := r.Sub(r.one(), a)
	r.matrix.AddConstraint(a.lc, oneMinusA.lc, ZeroLC())
}

// Select returns bit*a + (1-bit)*b, the standard R1CS-free-form conditional
// select given an already-boolean-constrained bit.
func (r *RecordingAPI) Select(bit, a, b Var) Var {
	diff := r.Sub(a, b)
	scaled := r.Mul(bit, diff)
	return r.Add(b, scaled)
}

// And returns a Var for the AND of two already-boolean-constrained
// operands: a * b.
func (r *RecordingAPI) And(a, b Var) Var {
	return r.Mul(a, b)
}

// Or returns a Var for the OR of two already-boolean-constrained operands:
// a + b - a*b.
func (r *RecordingAPI) Or(a, b Var) Var {
	sum := r.Add(a, b)
	prod := r.Mul(a, b)
	return r.Sub(sum, prod)
}

// ToBinary decomposes a into nBits boolean Vars (least-significant first),
// recording one booleanity constraint per bit plus one linear
// reconstruction constraint.
func (r *RecordingAPI) ToBinary(a Var, nBits int) []Var {
	bits := make([]Var, nBits)
	terms := make([]Term, 0, nBits)
	for i := 0; i < nBits; i++ {
		idx := r.allocate()
		bitVar := r.variable(idx)
		r.AssertIsBoolean(bitVar)
		bits[i] = bitVar

		var coeff fr.Element
		coeff.SetUint64(uint64(1) << uint(i))
		terms = append(terms, NewTerm(idx, coeff))
	}
	reconstructed := Var{lc: NewLinearCombination(terms)}
	r.AssertIsEqual(a, reconstructed)
	return bits
}
