// Package bigfield implements arithmetic over an arbitrary prime scalar field
// using math/big integers. All elements are kept in the range [0, q).
package bigfield

import (
	"fmt"
	"math/big"
)

// Field is a prime scalar field of modulus q.
// All inputs to field operations are assumed to be in the range [0, q).
//
// Field is not safe for concurrent use.
// Use [Field.ShallowCopy] to get a copy that is safe for concurrent use.
type Field struct {
	*Reducer

	buffer fieldBuffer
}

type fieldBuffer struct {
	inv *big.Int
}

// NewField creates a new Field with the given modulus q.
// Panics if q is not positive.
func NewField(q *big.Int) *Field {
	return &Field{
		Reducer: NewReducer(q),

		buffer: fieldBuffer{
			inv: big.NewInt(0),
		},
	}
}

// ShallowCopy creates a shallow copy of Field that is thread-safe.
func (f *Field) ShallowCopy() *Field {
	return &Field{
		Reducer: f.Reducer.ShallowCopy(),

		buffer: fieldBuffer{
			inv: big.NewInt(0),
		},
	}
}

// Modulus returns the modulus of the Field.
func (f *Field) Modulus() *big.Int {
	return f.Q
}

// NewElement creates a field element from x, reduced modulo q.
func (f *Field) NewElement(x int64) *big.Int {
	e := big.NewInt(x)
	return e.Mod(e, f.Q)
}

// AddAssign computes zOut = x + y.
func (f *Field) AddAssign(x, y, zOut *big.Int) {
	zOut.Add(x, y)
	if zOut.Cmp(f.Q) >= 0 {
		zOut.Sub(zOut, f.Q)
	}
}

// SubAssign computes zOut = x - y.
func (f *Field) SubAssign(x, y, zOut *big.Int) {
	zOut.Sub(x, y)
	if zOut.Sign() < 0 {
		zOut.Add(zOut, f.Q)
	}
}

// NegAssign computes zOut = -x.
func (f *Field) NegAssign(x, zOut *big.Int) {
	if x.Sign() == 0 {
		zOut.SetUint64(0)
		return
	}
	zOut.Sub(f.Q, x)
}

// MulAssign computes zOut = x * y.
func (f *Field) MulAssign(x, y, zOut *big.Int) {
	zOut.Mul(x, y)
	f.Reduce(zOut)
}

// ExpAssign computes zOut = x^e.
func (f *Field) ExpAssign(x *big.Int, e int64, zOut *big.Int) {
	zOut.Exp(x, big.NewInt(e), f.Q)
}

// InverseAssign computes zOut = x^-1.
// Returns false if x is not invertible modulo q, in which case zOut is
// left untouched.
func (f *Field) InverseAssign(x, zOut *big.Int) bool {
	if f.buffer.inv.ModInverse(x, f.Q) == nil {
		return false
	}
	zOut.Set(f.buffer.inv)
	return true
}

// NthRoot returns a primitive Nth root of unity modulo q,
// for N a power of two dividing q - 1.
func (f *Field) NthRoot(N int) (*big.Int, error) {
	QSubOne := big.NewInt(0).Sub(f.Q, big.NewInt(1))
	if big.NewInt(0).Mod(QSubOne, big.NewInt(int64(N))).Sign() != 0 {
		return nil, fmt.Errorf("no Nth root of unity modulo q")
	}

	exp1 := big.NewInt(0).Div(QSubOne, big.NewInt(int64(N)))
	exp2 := big.NewInt(int64(N / 2))
	g := big.NewInt(0)
	for x := big.NewInt(2); x.Cmp(f.Q) < 0; x.Add(x, big.NewInt(1)) {
		g.Exp(x, exp1, f.Q)
		gPow := big.NewInt(0).Exp(g, exp2, f.Q)
		if gPow.Cmp(big.NewInt(1)) != 0 {
			return g, nil
		}
	}

	return nil, fmt.Errorf("no Nth root of unity modulo q")
}

// NonResidue returns the smallest quadratic non-residue modulo q.
func (f *Field) NonResidue() *big.Int {
	exp := big.NewInt(0).Sub(f.Q, big.NewInt(1))
	exp.Rsh(exp, 1)

	gPow := big.NewInt(0)
	for x := big.NewInt(2); x.Cmp(f.Q) < 0; x.Add(x, big.NewInt(1)) {
		gPow.Exp(x, exp, f.Q)
		if gPow.Cmp(big.NewInt(1)) != 0 {
			return big.NewInt(0).Set(x)
		}
	}

	panic("no quadratic non-residue modulo q")
}
