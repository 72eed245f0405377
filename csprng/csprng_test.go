package csprng_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkcollective/zeta-snark/csprng"
)

func TestUniformSampler(t *testing.T) {
	s0 := csprng.NewUniformSamplerWithSeed([]byte("seed"))
	s1 := csprng.NewUniformSamplerWithSeed([]byte("seed"))

	for i := 0; i < 16; i++ {
		assert.Equal(t, s0.Sample(), s1.Sample())
	}

	s2 := csprng.NewUniformSamplerWithSeed([]byte("other"))
	assert.NotEqual(t, s0.Sample(), s2.Sample())
}

func TestSampleN(t *testing.T) {
	s := csprng.NewUniformSampler()
	for i := 0; i < 128; i++ {
		assert.Less(t, s.SampleN(17), uint64(17))
	}
}

func TestOracle(t *testing.T) {
	q := big.NewInt(17)

	o0 := csprng.NewOracleWithSeed(q, []byte("seed"))
	o1 := csprng.NewOracleWithSeed(q, []byte("seed"))

	for i := 0; i < 32; i++ {
		x := o0.SampleMod()
		assert.Equal(t, x, o1.SampleMod())
		assert.Less(t, x.Int64(), int64(17))
	}
}

func TestOracleAbsorb(t *testing.T) {
	q := big.NewInt(17)

	o0 := csprng.NewOracleWithSeed(q, []byte("seed"))
	o1 := csprng.NewOracleWithSeed(q, []byte("seed"))

	o0.WriteBigInt(big.NewInt(42))
	o0.Finalize()
	o1.WriteBigInt(big.NewInt(43))
	o1.Finalize()

	same := true
	for i := 0; i < 8; i++ {
		if o0.SampleMod().Cmp(o1.SampleMod()) != 0 {
			same = false
		}
	}
	assert.False(t, same)
}
