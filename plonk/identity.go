package plonk

import (
	"math/big"

	"github.com/zkcollective/zeta-snark/bigfield"
	"github.com/zkcollective/zeta-snark/domain"
)

// Verifier checks the final polynomial identity of one proof.
//
// Verifier is not safe for concurrent use.
// Use [Verifier.ShallowCopy] to get a copy that is safe for concurrent use;
// independent verifications share no state beyond the domain parameters.
type Verifier struct {
	Domain *domain.Domain
	Shifts Shifts

	field *bigfield.Field

	buffer verifierBuffer
}

type verifierBuffer struct {
	zh   *big.Int
	perm *big.Int
	bnd  *big.Int

	term   *big.Int
	left   *big.Int
	right  *big.Int
	num    *big.Int
	den    *big.Int
	linear *big.Int
	check  *big.Int
}

func newVerifierBuffer() verifierBuffer {
	return verifierBuffer{
		zh:   big.NewInt(0),
		perm: big.NewInt(0),
		bnd:  big.NewInt(0),

		term:   big.NewInt(0),
		left:   big.NewInt(0),
		right:  big.NewInt(0),
		num:    big.NewInt(0),
		den:    big.NewInt(0),
		linear: big.NewInt(0),
		check:  big.NewInt(0),
	}
}

// NewVerifier creates a new Verifier over the given domain.
//
// Returns [ErrMalformedInput] if the shifts do not have length [Wires],
// do not start at 1, or are not pairwise distinct and non-zero.
func NewVerifier(dom *domain.Domain, shifts Shifts) (*Verifier, error) {
	if err := shifts.validate(Wires); err != nil {
		return nil, err
	}

	return &Verifier{
		Domain: dom,
		Shifts: shifts,

		field: dom.Field(),

		buffer: newVerifierBuffer(),
	}, nil
}

// ShallowCopy creates a shallow copy of Verifier that is thread-safe.
func (v *Verifier) ShallowCopy() *Verifier {
	return &Verifier{
		Domain: v.Domain.ShallowCopy(),
		Shifts: v.Shifts,

		field: v.field.ShallowCopy(),

		buffer: newVerifierBuffer(),
	}
}

// validate checks the arity of the evaluations and challenges.
func (v *Verifier) validate(ev Evaluations, ch Challenges) error {
	if len(ev.Wires) != Wires || len(ev.Sigma) != Wires-1 {
		return ErrMalformedInput
	}
	for i := range ev.Wires {
		if ev.Wires[i] == nil {
			return ErrMalformedInput
		}
	}
	for i := range ev.Sigma {
		if ev.Sigma[i] == nil {
			return ErrMalformedInput
		}
	}
	if ev.Z == nil || ev.ZOmega == nil || ev.ZkMask == nil || ev.Quotient == nil {
		return ErrMalformedInput
	}

	if ch.Zeta == nil || ch.Beta == nil || ch.Gamma == nil {
		return ErrMalformedInput
	}
	if len(ch.AlphaPowers) < AlphaPermCount {
		return ErrMalformedInput
	}
	for i := 0; i < AlphaPermCount; i++ {
		if ch.AlphaPowers[i] == nil {
			return ErrMalformedInput
		}
	}

	return nil
}

// CheckIdentity checks the single scalar equality
//
//	f(ζ) + pub(ζ) - t(ζ)·Z_H(ζ) = 0
//
// given the fully folded constraint aggregate f(ζ), the public input
// evaluation pub(ζ), the vanishing evaluation Z_H(ζ) and the claimed
// quotient evaluation t(ζ).
//
// Returns [ErrVerificationFailed] if the equality does not hold. The check
// is a single comparison; no partial diagnostics are exposed.
func (v *Verifier) CheckIdentity(fEval, publicEval, zh, quotient *big.Int) error {
	v.field.AddAssign(fEval, publicEval, v.buffer.linear)
	v.field.MulAssign(quotient, zh, v.buffer.check)

	if v.buffer.linear.Cmp(v.buffer.check) != 0 {
		return ErrVerificationFailed
	}
	return nil
}

// CheckFinalIdentity verifies the final polynomial identity for one proof.
//
// gateEval is the externally computed aggregate f(ζ) of all non-permutation
// gate constraints, and publicEval is the public input evaluation pub(ζ);
// both are produced by external collaborators. The permutation quotient and
// boundary contributions are computed here, kept in separate divided and
// undivided accumulators, and combined only in the final comparison
//
//	gates(ζ) + perm(ζ) + pub(ζ) + bnd(ζ)·Z_H(ζ) - t(ζ)·Z_H(ζ) = 0.
//
// The boundary accumulator is added undivided: it is a quotient-side term,
// multiplied by Z_H(ζ) here rather than divided out of the left-hand side.
//
// Returns [ErrMalformedInput] on wrong arity, [ErrDegenerateEvaluationPoint]
// if ζ lands on a domain boundary point, and [ErrVerificationFailed] if the
// identity does not hold.
func (v *Verifier) CheckFinalIdentity(ev Evaluations, ch Challenges, gateEval, publicEval *big.Int) error {
	if err := v.validate(ev, ch); err != nil {
		return err
	}
	if gateEval == nil || publicEval == nil {
		return ErrMalformedInput
	}

	v.Domain.VanishingEvalAssign(ch.Zeta, v.buffer.zh)

	v.PermutationEvalAssign(ev, ch, v.buffer.perm)
	if err := v.BoundaryEvalAssign(ev, ch, v.buffer.bnd); err != nil {
		return err
	}

	v.field.AddAssign(gateEval, v.buffer.perm, v.buffer.left)
	v.field.MulAssign(v.buffer.bnd, v.buffer.zh, v.buffer.bnd)
	v.field.AddAssign(v.buffer.left, v.buffer.bnd, v.buffer.left)

	return v.CheckIdentity(v.buffer.left, publicEval, v.buffer.zh, ev.Quotient)
}
