// Package commitment implements the Poseidon-based inventory commitment:
// native hashing for out-of-circuit use and an in-circuit gadget producing
// the same output from witness variables, so a prover's commitment and a
// circuit's recomputation of it always agree.
package commitment

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/inventory-privacy/inventory"
)

// permute runs the Poseidon permutation over state in place: halfFullRounds
// full rounds, then PartialRounds partial rounds, then halfFullRounds more
// full rounds. A full round applies the alpha-power S-box to every state
// element; a partial round applies it only to state[0]. Every round adds the
// round's constants, then multiplies by the MDS matrix.
func permute(state []fr.Element, p *Params) {
	round := 0
	for r := 0; r < halfFullRounds; r++ {
		fullRound(state, p, round)
		round++
	}
	for r := 0; r < PartialRounds; r++ {
		partialRound(state, p, round)
		round++
	}
	for r := 0; r < halfFullRounds; r++ {
		fullRound(state, p, round)
		round++
	}
}

func fullRound(state []fr.Element, p *Params, round int) {
	addRoundConstants(state, p, round)
	for i := range state {
		sbox(&state[i])
	}
	applyMDS(state, p)
}

func partialRound(state []fr.Element, p *Params, round int) {
	addRoundConstants(state, p, round)
	sbox(&state[0])
	applyMDS(state, p)
}

func addRoundConstants(state []fr.Element, p *Params, round int) {
	rc := p.RoundConstants[round]
	for i := range state {
		state[i].Add(&state[i], &rc[i])
	}
}

// sbox raises x to the fifth power: x^5 = x^4 * x = (x^2)^2 * x.
func sbox(x *fr.Element) {
	var x2, x4 fr.Element
	x2.Square(x)
	x4.Square(&x2)
	x.Mul(&x4, x)
}

func applyMDS(state []fr.Element, p *Params) {
	next := make([]fr.Element, len(state))
	for i := range next {
		var acc fr.Element
		row := p.MDS[i]
		for j := range state {
			var term fr.Element
			term.Mul(&row[j], &state[j])
			acc.Add(&acc, &term)
		}
		next[i] = acc
	}
	copy(state, next)
}

// Hash absorbs inputs (in Rate-sized chunks, final chunk possibly shorter)
// into a fresh sponge state and squeezes one field element.
func Hash(inputs []fr.Element, p *Params) fr.Element {
	state := make([]fr.Element, Width)
	for i := 0; i < len(inputs); i += Rate {
		end := i + Rate
		if end > len(inputs) {
			end = len(inputs)
		}
		chunk := inputs[i:end]
		for j, v := range chunk {
			state[j].Add(&state[j], &v)
		}
		permute(state, p)
	}
	return state[0]
}

// Commit computes C = H(id_0, qty_0, ..., id_15, qty_15, blinding), the
// inventory commitment, using params as the hash configuration.
func Commit(inv inventory.Inventory, blinding fr.Element, params *Params) fr.Element {
	inputs := inv.ToFieldElements()
	inputs = append(inputs, blinding)
	return Hash(inputs, params)
}
