package codec

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint256(t *testing.T) {
	v, err := ParseUint256("difficulty", "")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = ParseUint256("difficulty", "0x2a")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v.Uint64())

	v, err = ParseUint256("timestamp", "42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v.Uint64())

	_, err = ParseUint256("difficulty", "0x"+strings.Repeat("ff", 33))
	require.Error(t, err)
	assert.IsType(t, &IntOverflowError{}, err)

	_, err = ParseUint256("difficulty", "not-a-number")
	require.Error(t, err)
}

func TestCanonicalUintBytes(t *testing.T) {
	assert.Equal(t, []byte{}, CanonicalUintBytes(new(uint256.Int)))
	assert.Equal(t, []byte{0x2a}, CanonicalUintBytes(uint256.NewInt(42)))
}

func TestDecodeCanonicalUint(t *testing.T) {
	v, err := DecodeCanonicalUint("difficulty", nil)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = DecodeCanonicalUint("difficulty", []byte{0x2a})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v.Uint64())

	_, err = DecodeCanonicalUint("difficulty", []byte{0x00, 0x2a})
	require.Error(t, err)
	assert.IsType(t, &NonCanonicalIntError{}, err)

	overlong := make([]byte, 33)
	overlong[0] = 0x01
	_, err = DecodeCanonicalUint("difficulty", overlong)
	require.Error(t, err)
	assert.IsType(t, &IntOverflowError{}, err)
}
