package csprng

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Oracle is a random oracle over a prime modulus, used to derive scalar
// field challenges from absorbed data.
type Oracle struct {
	*UniformSampler

	modulus *big.Int
	modBuf  []byte
	msbMask byte
}

// NewOracle creates a new Oracle with a random seed.
//
// Panics when read from crypto/rand fails.
func NewOracle(modulus *big.Int) *Oracle {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewOracleWithSeed(modulus, seed)
}

// NewOracleWithSeed creates a new Oracle with user supplied seed.
func NewOracleWithSeed(modulus *big.Int, seed []byte) *Oracle {
	k := (modulus.BitLen() + 7) / 8
	b := uint(modulus.BitLen() % 8)
	if b == 0 {
		b = 8
	}

	modBuf := make([]byte, k)
	msbMask := byte((1 << b) - 1)

	return &Oracle{
		UniformSampler: NewUniformSamplerWithSeed(seed),

		modulus: modulus,
		modBuf:  modBuf,
		msbMask: msbMask,
	}
}

// WriteBigInt writes a big.Int to the random oracle.
func (o *Oracle) WriteBigInt(x *big.Int) {
	_, err := o.Write(x.Bytes())
	if err != nil {
		panic(err)
	}
}

// SampleMod samples a uniformly random value modulo modulus.
func (o *Oracle) SampleMod() *big.Int {
	r := big.NewInt(0)
	o.SampleModAssign(r)
	return r
}

// SampleModAssign samples a uniformly random value modulo modulus.
func (o *Oracle) SampleModAssign(xOut *big.Int) {
	for {
		_, err := io.ReadFull(o, o.modBuf)
		if err != nil {
			panic(err)
		}

		o.modBuf[0] &= o.msbMask

		xOut.SetBytes(o.modBuf)
		if xOut.Cmp(o.modulus) < 0 {
			return
		}
	}
}
