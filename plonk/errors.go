package plonk

import (
	"errors"

	"github.com/zkcollective/zeta-snark/domain"
)

var (
	// ErrVerificationFailed is returned when the final algebraic identity
	// does not hold. This is the expected outcome for an invalid or forged
	// proof, and the only failure mode exposed for adversarial inputs:
	// it carries no information about which term diverged.
	ErrVerificationFailed = errors.New("algebraic relation does not hold")

	// ErrMalformedInput is returned when the evaluations or challenges have
	// the wrong arity or are missing. It signals a caller bug, not an
	// adversarial proof.
	ErrMalformedInput = errors.New("malformed input")

	// ErrDegenerateEvaluationPoint is returned when the challenge point
	// coincides with a domain boundary point, making a required division
	// by zero. The proof must be rejected; resampling is a transcript
	// concern.
	ErrDegenerateEvaluationPoint = domain.ErrDegenerateEvaluationPoint
)
