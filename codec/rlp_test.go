package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeListRoundTrip(t *testing.T) {
	items := [][]byte{{0x01}, {}, {0xde, 0xad}, make([]byte, 32)}
	buf, err := EncodeList(items)
	require.NoError(t, err)

	got, err := DecodeList("genesis", buf, len(items))
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestDecodeListBadArity(t *testing.T) {
	buf, err := EncodeList([][]byte{{0x01}, {0x02}})
	require.NoError(t, err)

	_, err = DecodeList("genesis", buf, 15)
	require.Error(t, err)
	assert.IsType(t, &BadArityError{}, err)
}

func TestDecodeListTrailingBytes(t *testing.T) {
	buf, err := EncodeList([][]byte{{0x01}})
	require.NoError(t, err)
	buf = append(buf, 0xff)

	_, err = DecodeList("genesis", buf, 1)
	require.Error(t, err)
	assert.IsType(t, &TrailingBytesError{}, err)
}

func TestKeccak256DeterministicAndDistinguishing(t *testing.T) {
	a := Keccak256([]byte("block-a"))
	b := Keccak256([]byte("block-a"))
	c := Keccak256([]byte("block-b"))

	assert.Equal(t, a, b, "hashing the same input twice must be deterministic")
	assert.NotEqual(t, a, c, "different inputs must not collide")
}
