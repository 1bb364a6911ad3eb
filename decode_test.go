package bch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBitsCleanChannel(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	msg := make([]int, c.K())
	for i := range msg {
		msg[i] = (i * 5) % 2
	}

	cw, err := c.EncodeBits(msg)
	require.NoError(t, err)

	out := make([]int, c.K())
	ok, err := c.DecodeBits(cw, out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, msg, out)
}

func TestDecodeBitsSingleBitFlipAnyIndex(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	msg := make([]int, c.K())
	for i := range msg {
		msg[i] = (i + 1) % 2
	}
	cw, err := c.EncodeBits(msg)
	require.NoError(t, err)

	for idx := 0; idx < c.N(); idx++ {
		received := make([]int, c.N())
		copy(received, cw)
		received[idx] ^= 1

		out := make([]int, c.K())
		ok, err := c.DecodeBits(received, out)
		require.NoError(t, err)
		assert.Truef(t, ok, "flip at index %d failed to correct", idx)
		assert.Equalf(t, msg, out, "flip at index %d corrected to wrong message", idx)
	}
}

func TestDecodeBitsThreeBitFlips(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	msg := make([]int, c.K())
	for i := range msg {
		msg[i] = (i + 1) % 2 // alternating 0/1/0/1...
	}
	cw, err := c.EncodeBits(msg)
	require.NoError(t, err)

	received := make([]int, c.N())
	copy(received, cw)
	for _, idx := range []int{0, 10, 20} {
		received[idx] ^= 1
	}

	out := make([]int, c.K())
	ok, err := c.DecodeBits(received, out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, msg, out)
}

func TestDecodeBytesAgreesWithDecodeBits(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	msg := make([]int, c.K())
	for i := range msg {
		msg[i] = (i * 11) % 2
	}

	cw, err := c.EncodeBits(msg)
	require.NoError(t, err)

	received := make([]int, c.N())
	copy(received, cw)
	received[2] ^= 1
	received[17] ^= 1

	out := make([]int, c.K())
	ok, err := c.DecodeBits(received, out)
	require.NoError(t, err)
	require.True(t, ok)

	data := packMessageBytes(msg)
	ecc := make([]byte, c.ECCBytes())
	require.NoError(t, c.EncodeBytes(data, ecc))

	rdata := make([]byte, len(data))
	copy(rdata, data)
	recc := make([]byte, len(ecc))
	copy(recc, ecc)
	flipCodewordBit(rdata, recc, c.K(), c.NRdncy(), 2)
	flipCodewordBit(rdata, recc, c.K(), c.NRdncy(), 17)

	count, err := c.DecodeBytes(rdata, recc)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, data, rdata)
	assert.Equal(t, ecc, recc)
	assert.Equal(t, out, unpackMessageBytes(rdata, c.K()))
}

func TestDecodeBitsUncorrectableReturnsFalse(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	msg := make([]int, c.K())
	cw, err := c.EncodeBits(msg)
	require.NoError(t, err)

	// Flip t+1 bits: one more than the code can correct. (Flipping every
	// bit would yield the all-ones word, which is itself a codeword.)
	received := make([]int, c.N())
	copy(received, cw)
	for i := 0; i <= c.T(); i++ {
		received[i] ^= 1
	}

	out := make([]int, c.K())
	ok, err := c.DecodeBits(received, out)
	require.NoError(t, err)
	assert.False(t, ok)
}
