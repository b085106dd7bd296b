package codec

import (
	"errors"

	"github.com/ethereum/go-ethereum/rlp"
)

// EncodeList RLP-encodes items as a list of strings, one per header field.
// Every field in every era schema — digest, address, bloom, nonce,
// extra_data, or a canonicalized big-integer — is, at the RLP level, a
// byte string; the schema-specific work is only in how each field's bytes
// are derived, not in how they're wrapped. This mirrors the teacher's
// getEncoded, which builds a []interface{} of raw []byte values and hands
// the whole thing to rlp.Encode in one call.
func EncodeList(items [][]byte) ([]byte, error) {
	return rlp.EncodeToBytes(items)
}

// DecodeList RLP-decodes buf as a list of strings and requires it to
// contain exactly `expected` items with no trailing bytes.
func DecodeList(era string, buf []byte, expected int) ([][]byte, error) {
	var items [][]byte
	err := rlp.DecodeBytes(buf, &items)
	if err != nil {
		if errors.Is(err, rlp.ErrMoreThanOneValue) {
			n := len(buf)
			if _, rest, splitErr := rlp.SplitList(buf); splitErr == nil {
				n = len(rest)
			}
			return nil, &TrailingBytesError{Era: era, N: n}
		}
		return nil, err
	}
	if len(items) != expected {
		return nil, &BadArityError{Era: era, Expected: expected, Got: len(items)}
	}
	return items, nil
}

// Keccak256 is the Ethereum-flavor Keccak-256 hash (NIST-3 variant, not
// FIPS-202 SHA3).
func Keccak256(data []byte) [32]byte {
	h := newKeccak()
	h.Write(data)
	var out [32]byte
	h.Sum(out[:0])
	return out
}
