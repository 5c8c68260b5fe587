package bitmask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colorcode-go/subiso/bitmask"
)

func TestSetUnsetTest(t *testing.T) {
	m := bitmask.Empty
	m = m.Set(2).Set(5)
	assert.True(t, m.Test(2))
	assert.True(t, m.Test(5))
	assert.False(t, m.Test(0))

	m = m.Unset(2)
	assert.False(t, m.Test(2))
	assert.True(t, m.Test(5))
}

func TestFullAndComplement(t *testing.T) {
	full := bitmask.Full(5)
	assert.Equal(t, 5, full.Popcount())
	for v := 0; v < 5; v++ {
		assert.True(t, full.Test(v))
	}

	sub := bitmask.Single(1).Union(bitmask.Single(3))
	comp := sub.Complement(5)
	assert.Equal(t, bitmask.Full(5), sub.Union(comp))
	assert.Equal(t, bitmask.Empty, sub.Intersect(comp))
}

func TestBitsAscending(t *testing.T) {
	m := bitmask.Single(4).Union(bitmask.Single(1)).Union(bitmask.Single(9))
	assert.Equal(t, []int{1, 4, 9}, m.Bits())
}

func TestLowest(t *testing.T) {
	_, ok := bitmask.Empty.Lowest()
	assert.False(t, ok)

	v, ok := bitmask.Single(3).Union(bitmask.Single(7)).Lowest()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestPopcountAndEmpty(t *testing.T) {
	assert.True(t, bitmask.Empty.Empty())
	assert.False(t, bitmask.Single(0).Empty())
	assert.Equal(t, 0, bitmask.Empty.Popcount())
	assert.Equal(t, 1, bitmask.Single(19).Popcount())
}
