package resultbuffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorcode-go/subiso/resultbuffer"
)

func TestPushReadRoundTrip(t *testing.T) {
	b := resultbuffer.NewResultBuffer()
	require.NoError(t, b.Push([]int32{3, 7, 2}, []uint32{0b101, 0b010}))
	require.NoError(t, b.Push([]int32{9}, []uint32{0b1}))

	b.SetMode(resultbuffer.Read)

	phi, colors, ok, err := b.Read()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int32{3, 7, 2}, phi)
	assert.Equal(t, []uint32{0b101, 0b010}, colors)

	phi, colors, ok, err = b.Read()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int32{9}, phi)
	assert.Equal(t, []uint32{0b1}, colors)

	_, _, ok, err = b.Read()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPushInReadModeFails(t *testing.T) {
	b := resultbuffer.NewResultBuffer()
	b.SetMode(resultbuffer.Read)
	err := b.Push([]int32{1}, nil)
	assert.ErrorIs(t, err, resultbuffer.ErrWrongMode)
}

func TestReadInWriteModeFails(t *testing.T) {
	b := resultbuffer.NewResultBuffer()
	_, _, _, err := b.Read()
	assert.ErrorIs(t, err, resultbuffer.ErrWrongMode)
}

func TestEmptyRecordsRoundTrip(t *testing.T) {
	b := resultbuffer.NewResultBuffer()
	require.NoError(t, b.Push(nil, nil))
	b.SetMode(resultbuffer.Read)

	phi, colors, ok, err := b.Read()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, phi)
	assert.Empty(t, colors)
}
