package plonk

import (
	"math/big"
)

// PermutationEvalAssign computes the divided-by-Z_H contribution of the
// copy-constraint argument
//
//	perm(ζ) = α⁰ · zkpm(ζ) · [ z(ζ)   · Π_i (w[i](ζ) + γ + β·shift[i]·ζ)
//	                         - z(ζ·ω) · Π_{i<W-1} (w[i](ζ) + γ + β·σ[i](ζ)) · (w[W-1](ζ) + γ) ]
//
// and writes it to permOut, where α⁰ is AlphaPowers[AlphaPerm0].
//
// The last wire of the right product carries no β·σ term: its permutation
// polynomial is constant and cancels against an identical omission in the
// linearized identity the caller checks. Completing the term here would
// break that cancellation.
func (v *Verifier) PermutationEvalAssign(ev Evaluations, ch Challenges, permOut *big.Int) {
	v.buffer.left.Set(ev.Z)
	for i := 0; i < Wires; i++ {
		v.field.MulAssign(ch.Beta, v.Shifts[i], v.buffer.term)
		v.field.MulAssign(v.buffer.term, ch.Zeta, v.buffer.term)
		v.field.AddAssign(v.buffer.term, ev.Wires[i], v.buffer.term)
		v.field.AddAssign(v.buffer.term, ch.Gamma, v.buffer.term)
		v.field.MulAssign(v.buffer.left, v.buffer.term, v.buffer.left)
	}

	v.buffer.right.Set(ev.ZOmega)
	for i := 0; i < Wires-1; i++ {
		v.field.MulAssign(ch.Beta, ev.Sigma[i], v.buffer.term)
		v.field.AddAssign(v.buffer.term, ev.Wires[i], v.buffer.term)
		v.field.AddAssign(v.buffer.term, ch.Gamma, v.buffer.term)
		v.field.MulAssign(v.buffer.right, v.buffer.term, v.buffer.right)
	}
	v.field.AddAssign(ev.Wires[Wires-1], ch.Gamma, v.buffer.term)
	v.field.MulAssign(v.buffer.right, v.buffer.term, v.buffer.right)

	v.field.SubAssign(v.buffer.left, v.buffer.right, permOut)
	v.field.MulAssign(permOut, ev.ZkMask, permOut)
	v.field.MulAssign(permOut, ch.AlphaPowers[AlphaPerm0], permOut)
}
