// Package plonk implements the final polynomial identity check of a
// PLONK-style proof verifier: the single scalar equality tying together the
// gate-constraint aggregate, the public-input contribution, the permutation
// argument and the claimed quotient, all evaluated at one challenge point
// over the scalar field.
//
// The polynomial commitment scheme, the Fiat-Shamir transcript and the
// gate-constraint aggregate are external collaborators; this package consumes
// only their scalar outputs.
package plonk

import (
	"math/big"

	"github.com/zkcollective/zeta-snark/bigfield"
)

// Wires is the circuit width W: the number of wire columns.
const Wires = 7

// Indices into [Challenges.AlphaPowers] reserved for the permutation
// argument. The caller passes the slice of its alpha register that starts at
// the permutation argument's first power.
const (
	// AlphaPerm0 batches the permutation quotient term.
	AlphaPerm0 = iota
	// AlphaPerm1 batches the accumulator initialization at the first
	// domain point.
	AlphaPerm1
	// AlphaPerm2 batches the accumulator close-out before the
	// zero-knowledge padding rows.
	AlphaPerm2

	// AlphaPermCount is the number of alpha powers the permutation
	// argument consumes.
	AlphaPermCount
)

// Challenges holds the verifier challenges for one verification.
// All values are produced by the external transcript and are read-only here.
type Challenges struct {
	// Zeta is the evaluation point.
	Zeta *big.Int
	// Beta and Gamma are the permutation randomizers.
	Beta  *big.Int
	Gamma *big.Int
	// AlphaPowers are consecutive powers of the batching challenge alpha,
	// indexed by [AlphaPerm0], [AlphaPerm1] and [AlphaPerm2].
	AlphaPowers []*big.Int
}

// ExpandAlpha returns the first count powers of alpha, starting at alpha^1.
func ExpandAlpha(field *bigfield.Field, alpha *big.Int, count int) []*big.Int {
	if count <= 0 {
		return nil
	}

	pow := make([]*big.Int, count)
	pow[0] = big.NewInt(0).Set(alpha)
	for i := 1; i < count; i++ {
		pow[i] = big.NewInt(0)
		field.MulAssign(pow[i-1], alpha, pow[i])
	}
	return pow
}

// Evaluations holds the scalar evaluations consumed by the final identity
// check, all at the challenge point zeta unless noted otherwise.
// Decoding them from the proof object is the caller's responsibility.
type Evaluations struct {
	// Wires are the wire column evaluations w[0](ζ), ..., w[W-1](ζ).
	// Must have length [Wires].
	Wires []*big.Int

	// Sigma are the permutation polynomial evaluations
	// σ[0](ζ), ..., σ[W-2](ζ). The last wire has no sigma term.
	// Must have length [Wires] - 1.
	Sigma []*big.Int

	// Z and ZOmega are the permutation accumulator evaluations
	// z(ζ) and z(ζ·ω).
	Z      *big.Int
	ZOmega *big.Int

	// ZkMask is zkpm(ζ), the evaluation of the polynomial vanishing on
	// the zero-knowledge padding rows.
	ZkMask *big.Int

	// Quotient is the claimed quotient evaluation t(ζ).
	Quotient *big.Int
}
