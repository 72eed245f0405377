// Package num implements various utility functions regarding numeric types.
package num

// IsPowerOfTwo returns whether x is a power of two.
// Returns false if x <= 0.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns the integer base-2 logarithm of x.
// Panics if x is not a power of two.
func Log2(x int) int {
	if !IsPowerOfTwo(x) {
		panic("input must be a power of two")
	}

	l := 0
	for x > 1 {
		x >>= 1
		l++
	}
	return l
}

// ModInverse returns the modular inverse of x modulo m,
// where m is a power of two.
// Output is always positive.
// Panics if x and m are not coprime.
func ModInverse(x, m uint64) uint64 {
	x %= m

	a, b := x, m
	u, v := uint64(1), uint64(0)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		u, v = v, u-q*v
	}

	if a != 1 {
		panic("modular inverse does not exist")
	}

	return u % m
}

// ModExp returns x^y mod q.
func ModExp(x, y, q uint64) uint64 {
	r := uint64(1)
	x %= q
	for y > 0 {
		if y&1 == 1 {
			r = (r * x) % q
		}
		x = (x * x) % q
		y >>= 1
	}
	return r
}
