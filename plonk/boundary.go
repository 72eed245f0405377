package plonk

import (
	"math/big"
)

// BoundaryEvalAssign computes the boundary contribution of the permutation
// argument
//
//	bnd(ζ) = α¹ · (z(ζ) - 1) / (ζ - 1)  +  α² · (z(ζ) - 1) / (ζ - ω^(n-k))
//
// and writes it to bndOut, where α¹, α² are AlphaPowers[AlphaPerm1] and
// AlphaPowers[AlphaPerm2]. The two terms enforce z = 1 at the first domain
// point and at the close-out point before the zero-knowledge padding rows.
//
// The result is NOT divided by Z_H(ζ): it is a quotient-side term, added to
// the already-divided contribution without further division. The 1/n factor
// and the ω^(n-k) coset factor of the full Lagrange basis are intentionally
// omitted; they cancel against the matching omissions in the quotient.
// Invariant: bnd and the corresponding Lagrange contribution in t(ζ) must
// omit the same constants.
//
// Returns [ErrDegenerateEvaluationPoint] if ζ = 1 or ζ = ω^(n-k).
func (v *Verifier) BoundaryEvalAssign(ev Evaluations, ch Challenges, bndOut *big.Int) error {
	one := big.NewInt(1)
	v.field.SubAssign(ev.Z, one, v.buffer.num)

	v.field.SubAssign(ch.Zeta, one, v.buffer.den)
	if !v.field.InverseAssign(v.buffer.den, v.buffer.den) {
		return ErrDegenerateEvaluationPoint
	}
	v.field.MulAssign(v.buffer.num, v.buffer.den, bndOut)
	v.field.MulAssign(bndOut, ch.AlphaPowers[AlphaPerm1], bndOut)

	v.field.SubAssign(ch.Zeta, v.Domain.BoundaryRoot(), v.buffer.den)
	if !v.field.InverseAssign(v.buffer.den, v.buffer.den) {
		return ErrDegenerateEvaluationPoint
	}
	v.field.MulAssign(v.buffer.num, v.buffer.den, v.buffer.term)
	v.field.MulAssign(v.buffer.term, ch.AlphaPowers[AlphaPerm2], v.buffer.term)

	v.field.AddAssign(bndOut, v.buffer.term, bndOut)

	return nil
}
