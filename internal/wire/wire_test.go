package wire_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamwhite/binel/internal/wire"
)

func TestReadStringHeader(t *testing.T) {
	s, rest, err := wire.ReadString([]byte("\x0bCELESTE MAPdummy"))
	require.NoError(t, err)
	assert.Equal(t, "CELESTE MAP", s)
	assert.Equal(t, []byte("dummy"), rest)
}

func TestNullTerminatedStringRoundTrip(t *testing.T) {
	buf := wire.PutNullTerminatedString(nil, "hello")
	s, rest, err := wire.ReadNullTerminatedString(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Empty(t, rest)
}

func TestRLESingleByteMax(t *testing.T) {
	s := strings.Repeat("a", 255)
	rle := wire.EncodeRLE(s)
	assert.Len(t, rle, 2)

	buf := wire.PutRLEString(nil, rle)
	assert.Len(t, buf, 4) // 2-byte length prefix + 2-byte payload

	decoded, rest, err := wire.ReadRLEString(buf)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Empty(t, rest)
}

func TestRLEChoosesSmallerOnlyWhenBeneficial(t *testing.T) {
	s := "ab"
	rle := wire.EncodeRLE(s)
	// "ab" RLE-encodes to 4 bytes (two singleton runs), longer than the raw
	// 2-byte string, so callers must not select RLE here.
	assert.Greater(t, len(rle), len(s))
}

func TestFixedWidthRoundTrip(t *testing.T) {
	buf := wire.PutU16(nil, 0xBEEF)
	v, rest, err := wire.ReadU16(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), v)
	assert.Empty(t, rest)

	buf = wire.PutI32(nil, -4)
	iv, rest, err := wire.ReadI32(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(-4), iv)
	assert.Empty(t, rest)

	buf = wire.PutF32(nil, 1.5)
	fv, rest, err := wire.ReadF32(buf)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), fv)
	assert.Empty(t, rest)
}
