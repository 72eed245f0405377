package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkcollective/zeta-snark/bigfield"
	"github.com/zkcollective/zeta-snark/domain"
	"github.com/zkcollective/zeta-snark/num"
)

// testDomain is the toy domain used throughout:
// F_17, n = 4, generator 4, one zero-knowledge padding row.
func testDomain(t *testing.T) (*bigfield.Field, *domain.Domain) {
	f := bigfield.NewField(big.NewInt(17))
	d, err := domain.NewDomain(f, 4, 1, big.NewInt(4))
	assert.NoError(t, err)
	return f, d
}

func TestNewDomain(t *testing.T) {
	f := bigfield.NewField(big.NewInt(17))

	_, err := domain.NewDomain(f, 4, 1, big.NewInt(4))
	assert.NoError(t, err)

	// n not a power of two
	_, err = domain.NewDomain(f, 6, 1, big.NewInt(4))
	assert.ErrorIs(t, err, domain.ErrMalformedDomain)

	// k out of range
	_, err = domain.NewDomain(f, 4, 4, big.NewInt(4))
	assert.ErrorIs(t, err, domain.ErrMalformedDomain)
	_, err = domain.NewDomain(f, 4, -1, big.NewInt(4))
	assert.ErrorIs(t, err, domain.ErrMalformedDomain)

	// generator of order 2, not 4
	_, err = domain.NewDomain(f, 4, 1, big.NewInt(16))
	assert.ErrorIs(t, err, domain.ErrMalformedDomain)

	// generator of order 1
	_, err = domain.NewDomain(f, 4, 1, big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrMalformedDomain)
}

func TestNewDomainFromField(t *testing.T) {
	f := bigfield.NewField(big.NewInt(17))
	d, err := domain.NewDomainFromField(f, 4, 1)
	assert.NoError(t, err)

	g := d.Generator()
	gPow := big.NewInt(0).Exp(g, big.NewInt(4), f.Modulus())
	assert.Equal(t, int64(1), gPow.Int64())
}

func TestVanishingEval(t *testing.T) {
	_, d := testDomain(t)

	zh := big.NewInt(0)
	d.VanishingEvalAssign(big.NewInt(2), zh)
	assert.Equal(t, int64(15), zh.Int64())
}

func TestBoundaryLagrangeEvals(t *testing.T) {
	_, d := testDomain(t)

	// omega^(n-k) = 4^3 = 13 mod 17
	assert.Equal(t, int64(num.ModExp(4, 3, 17)), d.BoundaryRoot().Int64())

	l0 := big.NewInt(0)
	lb := big.NewInt(0)
	err := d.BoundaryLagrangeEvalsAssign(big.NewInt(2), l0, lb)
	assert.NoError(t, err)

	// L_0(2) = 15 / (4 * 1) = 15 * 13 = 8 mod 17
	assert.Equal(t, int64(8), l0.Int64())
	// L_3(2) = 13 * 15 / (4 * (2 - 13)) = 8 * 7^-1 = 8 * 5 = 6 mod 17
	assert.Equal(t, int64(6), lb.Int64())
}

func TestDegenerateEvaluationPoint(t *testing.T) {
	_, d := testDomain(t)

	l0 := big.NewInt(0)
	lb := big.NewInt(0)

	err := d.BoundaryLagrangeEvalsAssign(big.NewInt(1), l0, lb)
	assert.ErrorIs(t, err, domain.ErrDegenerateEvaluationPoint)

	err = d.BoundaryLagrangeEvalsAssign(big.NewInt(13), l0, lb)
	assert.ErrorIs(t, err, domain.ErrDegenerateEvaluationPoint)
}

func TestPaddingMask(t *testing.T) {
	_, d := testDomain(t)

	mask := d.PaddingMask()
	assert.Equal(t, uint(1), mask.Count())
	assert.True(t, mask.Test(3))
	assert.False(t, mask.Test(0))
}

func TestZkMaskEval(t *testing.T) {
	_, d := testDomain(t)

	// zkpm(X) = X - omega^3 = X - 13, so zkpm(2) = -11 = 6 mod 17.
	z := big.NewInt(0)
	d.ZkMaskEvalAssign(big.NewInt(2), z)
	assert.Equal(t, int64(6), z.Int64())

	// zkpm vanishes on the padding row.
	d.ZkMaskEvalAssign(big.NewInt(13), z)
	assert.Equal(t, int64(0), z.Int64())
}

func TestShallowCopy(t *testing.T) {
	_, d := testDomain(t)
	dd := d.ShallowCopy()

	zh := big.NewInt(0)
	dd.VanishingEvalAssign(big.NewInt(2), zh)
	assert.Equal(t, int64(15), zh.Int64())
	assert.Equal(t, d.Size(), dd.Size())
}

func TestPresets(t *testing.T) {
	f, d, err := domain.NewBN254Domain(1<<4, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1<<4, d.Size())
	assert.Equal(t, 3, d.ZkRows())
	assert.Equal(t, 4, num.Log2(d.Size()))

	gPow := big.NewInt(0).Exp(d.Generator(), big.NewInt(1<<4), f.Modulus())
	assert.Equal(t, int64(1), gPow.Int64())

	_, dd, err := domain.NewBLS12381Domain(1<<4, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1<<4, dd.Size())
}
