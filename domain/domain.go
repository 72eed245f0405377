// Package domain implements the evaluation domain of a PLONK-style proof
// system: a power-of-two subgroup of the multiplicative group of the scalar
// field, together with the closed-form evaluation of its vanishing polynomial,
// its boundary Lagrange basis polynomials, and its zero-knowledge padding mask.
package domain

import (
	"errors"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/zkcollective/zeta-snark/bigfield"
	"github.com/zkcollective/zeta-snark/num"
)

var (
	// ErrMalformedDomain is returned when the domain parameters are
	// inconsistent: n is not a power of two, k is out of range,
	// or the generator does not have order exactly n.
	ErrMalformedDomain = errors.New("malformed evaluation domain")

	// ErrDegenerateEvaluationPoint is returned when the evaluation point
	// coincides with a domain boundary point, making a required division
	// by zero.
	ErrDegenerateEvaluationPoint = errors.New("evaluation point coincides with a domain boundary point")
)

// Domain is an evaluation domain of size n: the subgroup of the scalar field
// generated by a primitive nth root of unity, with the last k positions
// reserved as zero-knowledge padding rows.
//
// Domain is not safe for concurrent use.
// Use [Domain.ShallowCopy] to get a copy that is safe for concurrent use.
type Domain struct {
	field *bigfield.Field

	n int
	k int

	generator    *big.Int
	boundaryRoot *big.Int
	sizeInv      *big.Int

	paddingMask *bitset.BitSet

	buffer domainBuffer
}

type domainBuffer struct {
	zh  *big.Int
	den *big.Int
	pow *big.Int
	one *big.Int
}

func newDomainBuffer() domainBuffer {
	return domainBuffer{
		zh:  big.NewInt(0),
		den: big.NewInt(0),
		pow: big.NewInt(0),
		one: big.NewInt(1),
	}
}

// NewDomain creates a new Domain of size N with generator g and K
// zero-knowledge padding rows.
//
// Returns [ErrMalformedDomain] if N is not a power of two, K is not in
// [0, N), g does not have order exactly N, or N is not invertible
// modulo the field modulus.
func NewDomain(field *bigfield.Field, N, K int, g *big.Int) (*Domain, error) {
	if !num.IsPowerOfTwo(N) {
		return nil, ErrMalformedDomain
	}
	if K < 0 || K >= N {
		return nil, ErrMalformedDomain
	}
	if g.Sign() <= 0 || g.Cmp(field.Modulus()) >= 0 {
		return nil, ErrMalformedDomain
	}

	gPowN := big.NewInt(0).Exp(g, big.NewInt(int64(N)), field.Modulus())
	if gPowN.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrMalformedDomain
	}
	if N > 1 {
		gPowNHalf := big.NewInt(0).Exp(g, big.NewInt(int64(N/2)), field.Modulus())
		if gPowNHalf.Cmp(big.NewInt(1)) == 0 {
			return nil, ErrMalformedDomain
		}
	}

	sizeInv := big.NewInt(0)
	if sizeInv.ModInverse(big.NewInt(int64(N)), field.Modulus()) == nil {
		return nil, ErrMalformedDomain
	}

	boundaryRoot := big.NewInt(0).Exp(g, big.NewInt(int64(N-K)), field.Modulus())

	paddingMask := bitset.New(uint(N))
	for i := N - K; i < N; i++ {
		paddingMask.Set(uint(i))
	}

	return &Domain{
		field: field,

		n: N,
		k: K,

		generator:    big.NewInt(0).Set(g),
		boundaryRoot: boundaryRoot,
		sizeInv:      sizeInv,

		paddingMask: paddingMask,

		buffer: newDomainBuffer(),
	}, nil
}

// NewDomainFromField creates a new Domain of size N with K zero-knowledge
// padding rows, searching the field for a primitive Nth root of unity.
func NewDomainFromField(field *bigfield.Field, N, K int) (*Domain, error) {
	if !num.IsPowerOfTwo(N) {
		return nil, ErrMalformedDomain
	}

	g, err := field.NthRoot(N)
	if err != nil {
		return nil, ErrMalformedDomain
	}
	return NewDomain(field, N, K, g)
}

// ShallowCopy creates a shallow copy of Domain that is thread-safe.
func (d *Domain) ShallowCopy() *Domain {
	return &Domain{
		field: d.field.ShallowCopy(),

		n: d.n,
		k: d.k,

		generator:    d.generator,
		boundaryRoot: d.boundaryRoot,
		sizeInv:      d.sizeInv,

		paddingMask: d.paddingMask,

		buffer: newDomainBuffer(),
	}
}

// Field returns the scalar field of the Domain.
func (d *Domain) Field() *bigfield.Field {
	return d.field
}

// Size returns the size n of the Domain.
func (d *Domain) Size() int {
	return d.n
}

// ZkRows returns the number of zero-knowledge padding rows k.
func (d *Domain) ZkRows() int {
	return d.k
}

// Generator returns the generator ω of the Domain.
func (d *Domain) Generator() *big.Int {
	return d.generator
}

// BoundaryRoot returns ω^(n-k), the domain point where the permutation
// accumulator must close out.
func (d *Domain) BoundaryRoot() *big.Int {
	return d.boundaryRoot
}

// PaddingMask returns the set of zero-knowledge padding rows,
// i.e. the last k positions of the Domain.
// The returned bitset is shared and must not be modified.
func (d *Domain) PaddingMask() *bitset.BitSet {
	return d.paddingMask
}

// VanishingEvalAssign computes Z_H(zeta) = zeta^n - 1 and writes it to zhOut.
func (d *Domain) VanishingEvalAssign(zeta, zhOut *big.Int) {
	d.field.ExpAssign(zeta, int64(d.n), zhOut)
	d.field.SubAssign(zhOut, d.buffer.one, zhOut)
}

// BoundaryLagrangeEvalsAssign computes the two boundary Lagrange basis
// evaluations
//
//	L_0(zeta)     = (zeta^n - 1) / (n * (zeta - 1))
//	L_(n-k)(zeta) = ω^(n-k) * (zeta^n - 1) / (n * (zeta - ω^(n-k)))
//
// and writes them to l0Out and lbOut.
//
// Returns [ErrDegenerateEvaluationPoint] if zeta = 1 or zeta = ω^(n-k).
func (d *Domain) BoundaryLagrangeEvalsAssign(zeta, l0Out, lbOut *big.Int) error {
	d.VanishingEvalAssign(zeta, d.buffer.zh)

	d.field.SubAssign(zeta, d.buffer.one, d.buffer.den)
	if !d.field.InverseAssign(d.buffer.den, d.buffer.den) {
		return ErrDegenerateEvaluationPoint
	}
	d.field.MulAssign(d.buffer.zh, d.buffer.den, l0Out)
	d.field.MulAssign(l0Out, d.sizeInv, l0Out)

	d.field.SubAssign(zeta, d.boundaryRoot, d.buffer.den)
	if !d.field.InverseAssign(d.buffer.den, d.buffer.den) {
		return ErrDegenerateEvaluationPoint
	}
	d.field.MulAssign(d.buffer.zh, d.buffer.den, lbOut)
	d.field.MulAssign(lbOut, d.sizeInv, lbOut)
	d.field.MulAssign(lbOut, d.boundaryRoot, lbOut)

	return nil
}

// ZkMaskEvalAssign computes the evaluation of the zero-knowledge masking
// polynomial zkpm(zeta) = Π (zeta - ω^j) over the padding rows j,
// and writes it to zOut.
func (d *Domain) ZkMaskEvalAssign(zeta, zOut *big.Int) {
	zOut.SetUint64(1)
	for j, ok := d.paddingMask.NextSet(0); ok; j, ok = d.paddingMask.NextSet(j + 1) {
		d.field.ExpAssign(d.generator, int64(j), d.buffer.pow)
		d.field.SubAssign(zeta, d.buffer.pow, d.buffer.pow)
		d.field.MulAssign(zOut, d.buffer.pow, zOut)
	}
}
