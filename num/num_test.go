package num_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkcollective/zeta-snark/num"
)

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, num.IsPowerOfTwo(1))
	assert.True(t, num.IsPowerOfTwo(2))
	assert.True(t, num.IsPowerOfTwo(1<<10))

	assert.False(t, num.IsPowerOfTwo(0))
	assert.False(t, num.IsPowerOfTwo(-4))
	assert.False(t, num.IsPowerOfTwo(6))
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, num.Log2(1))
	assert.Equal(t, 10, num.Log2(1<<10))
	assert.Panics(t, func() { num.Log2(3) })
}

func TestModExp(t *testing.T) {
	assert.Equal(t, uint64(1), num.ModExp(4, 4, 17))
	assert.Equal(t, uint64(13), num.ModExp(4, 3, 17))
	assert.Equal(t, uint64(16), num.ModExp(2, 4, 17))
}

func TestModInverse(t *testing.T) {
	assert.Equal(t, uint64(43691), num.ModInverse(3, 1<<16))
	assert.Equal(t, uint64(183), num.ModInverse(7, 1<<8))
	assert.Panics(t, func() { num.ModInverse(2, 1<<8) })
}
