package domain

import (
	"math/big"

	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fft_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fft_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/zkcollective/zeta-snark/bigfield"
)

// NewBN254Domain creates a Domain of size N with K zero-knowledge padding
// rows over the BN254 scalar field, with the subgroup generator taken from
// gnark-crypto's FFT domain.
func NewBN254Domain(N, K int) (*bigfield.Field, *Domain, error) {
	field := bigfield.NewField(fr_bn254.Modulus())

	fftDomain := fft_bn254.NewDomain(uint64(N))
	g := big.NewInt(0)
	fftDomain.Generator.BigInt(g)

	d, err := NewDomain(field, N, K, g)
	if err != nil {
		return nil, nil, err
	}
	return field, d, nil
}

// NewBLS12381Domain creates a Domain of size N with K zero-knowledge padding
// rows over the BLS12-381 scalar field, with the subgroup generator taken
// from gnark-crypto's FFT domain.
func NewBLS12381Domain(N, K int) (*bigfield.Field, *Domain, error) {
	field := bigfield.NewField(fr_bls12381.Modulus())

	fftDomain := fft_bls12381.NewDomain(uint64(N))
	g := big.NewInt(0)
	fftDomain.Generator.BigInt(g)

	d, err := NewDomain(field, N, K, g)
	if err != nil {
		return nil, nil, err
	}
	return field, d, nil
}
