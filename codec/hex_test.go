package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToFixedBytes(t *testing.T) {
	b, err := HexToFixedBytes("parent_hash", "0x"+"ab"+"00"+"11"+("cd00112233445566778899aabbccddeeff00112233445566778899aabb"), 32)
	require.NoError(t, err)
	assert.Len(t, b, 32)

	_, err = HexToFixedBytes("nonce", "0xabcd", 8)
	require.Error(t, err)
	assert.IsType(t, &BadFieldWidthError{}, err)

	b, err = HexToFixedBytes("nonce", "", 8)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 8), b)

	_, err = HexToFixedBytes("nonce", "zzzzzzzzzzzzzzzz", 8)
	require.Error(t, err)
	assert.IsType(t, &BadHexError{}, err)
}

func TestHexToFixedBytesLenient(t *testing.T) {
	b, err := HexToFixedBytesLenient("withdrawals_root", "0xab", 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0xab}, b)

	_, err = HexToFixedBytesLenient("withdrawals_root", "0xaabbccddee", 4)
	require.Error(t, err)
	assert.IsType(t, &BadFieldWidthError{}, err)
}

func TestHexToBytes(t *testing.T) {
	b, err := HexToBytes("extra_data", "")
	require.NoError(t, err)
	assert.Equal(t, []byte{}, b)

	b, err = HexToBytes("extra_data", "0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)
}

func TestBytesToHex(t *testing.T) {
	assert.Equal(t, "0xdeadbeef", BytesToHex([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, "0x", BytesToHex([]byte{}))
}
