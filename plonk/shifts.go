package plonk

import (
	"math/big"

	"github.com/zkcollective/zeta-snark/bigfield"
)

// Shifts are the per-wire coset representatives of the permutation argument:
// shift[0] = 1, and the rest place each wire column on a distinct coset of
// the evaluation domain.
type Shifts []*big.Int

// NewShifts computes w shift constants as consecutive powers of the smallest
// quadratic non-residue of the field, so that the cosets are pairwise
// distinct.
func NewShifts(field *bigfield.Field, w int) Shifts {
	g := field.NonResidue()

	shifts := make(Shifts, w)
	shifts[0] = big.NewInt(1)
	for i := 1; i < w; i++ {
		shifts[i] = big.NewInt(0)
		field.MulAssign(shifts[i-1], g, shifts[i])
	}
	return shifts
}

// validate checks that the shifts have length w, start at 1, and are
// pairwise distinct and non-zero.
func (s Shifts) validate(w int) error {
	if len(s) != w {
		return ErrMalformedInput
	}
	for i := 0; i < len(s); i++ {
		if s[i] == nil || s[i].Sign() == 0 {
			return ErrMalformedInput
		}
		for j := i + 1; j < len(s); j++ {
			if s[i].Cmp(s[j]) == 0 {
				return ErrMalformedInput
			}
		}
	}
	if s[0].Cmp(big.NewInt(1)) != 0 {
		return ErrMalformedInput
	}
	return nil
}
