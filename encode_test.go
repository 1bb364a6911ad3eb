package bch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBitsSystematic(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	msg := make([]int, c.K())
	for i := range msg {
		msg[i] = (i * 7) % 2
	}

	cw, err := c.EncodeBits(msg)
	require.NoError(t, err)
	assert.Len(t, cw, c.N())
	assert.Equal(t, msg, cw[c.NRdncy():])
}

func TestEncodeBitsBytesAgree(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	msg := make([]int, c.K())
	for i := range msg {
		msg[i] = (i*3 + 1) % 2
	}

	cw, err := c.EncodeBits(msg)
	require.NoError(t, err)

	data := packMessageBytes(msg)
	ecc := make([]byte, c.ECCBytes())
	require.NoError(t, c.EncodeBytes(data, ecc))

	wantParBits := cw[:c.NRdncy()]
	gotParBits := unpackECCBytes(ecc, c.NRdncy())
	assert.Equal(t, wantParBits, gotParBits)
}

func TestEncodeBytesRejectsBadLengths(t *testing.T) {
	c, err := Construct(31, 3, nil, Options{})
	require.NoError(t, err)

	err = c.EncodeBytes(make([]byte, 0), make([]byte, c.ECCBytes()))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = c.EncodeBytes(make([]byte, c.DataBytes()), make([]byte, c.ECCBytes()+1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPackUnpackMessageBytesRoundTrip(t *testing.T) {
	msg := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}
	data := packMessageBytes(msg)
	got := unpackMessageBytes(data, len(msg))
	assert.Equal(t, msg, got)
}

func TestPackUnpackECCBytesRoundTrip(t *testing.T) {
	par := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1}
	ecc := packECCBytes(par)
	got := unpackECCBytes(ecc, len(par))
	assert.Equal(t, par, got)
}
