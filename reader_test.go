package pgpframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderMaybeByte(t *testing.T) {
	r := NewReader([]byte{0xAB, 0xCD})

	b, ok := r.MaybeByte()
	require.True(t, ok)
	assert.Equal(t, byte(0xAB), b)

	b, ok = r.MaybeByte()
	require.True(t, ok)
	assert.Equal(t, byte(0xCD), b)

	_, ok = r.MaybeByte()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestReaderReadByte(t *testing.T) {
	r := NewReader([]byte{0x01})

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	_, err = r.ReadByte()
	assert.ErrorIs(t, err, ErrPrematureEOF)
}

func TestReaderReadBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := NewReader(data)

	b, err := r.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, data[:3], b)
	assert.Equal(t, 2, r.Len())

	// A failed read must not consume anything.
	_, err = r.ReadBytes(3)
	assert.ErrorIs(t, err, ErrPrematureEOF)
	assert.Equal(t, 2, r.Len())

	b, err = r.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, data[3:], b)
	assert.Equal(t, 0, r.Len())

	b, err = r.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestReaderReadBeUint32(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0xFF})

	v, err := r.ReadBeUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v)
	assert.Equal(t, 1, r.Len())

	_, err = r.ReadBeUint32()
	assert.ErrorIs(t, err, ErrPrematureEOF)
	assert.Equal(t, 1, r.Len())
}

func TestReaderBorrowsInput(t *testing.T) {
	data := []byte{1, 2, 3}
	r := NewReader(data)

	b, err := r.ReadBytes(3)
	require.NoError(t, err)

	// Reads alias the input buffer instead of copying it.
	data[0] = 9
	assert.Equal(t, byte(9), b[0])
}
