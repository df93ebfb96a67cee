package commitment

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/inventory-privacy/inventory"
)

// Gadget computes Poseidon hashes and inventory commitments in-circuit,
// using the same Params a matching native Hash/Commit call uses.
type Gadget struct {
	params *Params
}

// NewGadget builds a Gadget bound to params.
func NewGadget(params *Params) *Gadget {
	return &Gadget{params: params}
}

func (g *Gadget) sbox(api frontend.API, x frontend.Variable) frontend.Variable {
	x2 := api.Mul(x, x)
	x4 := api.Mul(x2, x2)
	return api.Mul(x4, x)
}

func (g *Gadget) applyMDS(api frontend.API, state []frontend.Variable) []frontend.Variable {
	next := make([]frontend.Variable, len(state))
	for i := range next {
		acc := frontend.Variable(0)
		row := g.params.MDS[i]
		for j := range state {
			acc = api.Add(acc, api.Mul(row[j], state[j]))
		}
		next[i] = acc
	}
	return next
}

func (g *Gadget) addRoundConstants(api frontend.API, state []frontend.Variable, round int) []frontend.Variable {
	rc := g.params.RoundConstants[round]
	out := make([]frontend.Variable, len(state))
	for i := range state {
		out[i] = api.Add(state[i], rc[i])
	}
	return out
}

func (g *Gadget) permute(api frontend.API, state []frontend.Variable) []frontend.Variable {
	round := 0
	for r := 0; r < halfFullRounds; r++ {
		state = g.addRoundConstants(api, state, round)
		for i := range state {
			state[i] = g.sbox(api, state[i])
		}
		state = g.applyMDS(api, state)
		round++
	}
	for r := 0; r < PartialRounds; r++ {
		state = g.addRoundConstants(api, state, round)
		state[0] = g.sbox(api, state[0])
		state = g.applyMDS(api, state)
		round++
	}
	for r := 0; r < halfFullRounds; r++ {
		state = g.addRoundConstants(api, state, round)
		for i := range state {
			state[i] = g.sbox(api, state[i])
		}
		state = g.applyMDS(api, state)
		round++
	}
	return state
}

// Hash absorbs inputs into a fresh sponge and returns one squeezed element,
// mirroring the native Hash function exactly round-for-round.
func (g *Gadget) Hash(api frontend.API, inputs []frontend.Variable) frontend.Variable {
	state := make([]frontend.Variable, Width)
	for i := range state {
		state[i] = frontend.Variable(0)
	}
	for i := 0; i < len(inputs); i += Rate {
		end := i + Rate
		if end > len(inputs) {
			end = len(inputs)
		}
		chunk := inputs[i:end]
		for j, v := range chunk {
			state[j] = api.Add(state[j], v)
		}
		state = g.permute(api, state)
	}
	return state[0]
}

// CommitInventory computes the in-circuit commitment of an inventory.Var
// under blinding, matching commitment.Commit's native output bit-for-bit
// when given the same Params.
func (g *Gadget) CommitInventory(api frontend.API, inv *inventory.Var, blinding frontend.Variable) frontend.Variable {
	inputs := inv.ToFieldVars()
	inputs = append(inputs, blinding)
	return g.Hash(api, inputs)
}
