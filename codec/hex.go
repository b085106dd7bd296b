package codec

import (
	"encoding/hex"
	"strings"
)

// HexToFixedBytes parses a hex string (optionally "0x"-prefixed) into an
// exactly-N-byte array. An empty string or the literal "0x" yields N
// zero bytes — upstream records frequently carry null for fields that
// don't apply to an older era, and the adapter must tolerate that.
//
// Ported from the teacher's hexToBytes helper (cmd/verify_roots/main.go)
// and the original Rust BlockHeaderTrait::hex_to_fixed_array, generalized
// to return a BadFieldWidthError instead of panicking.
func HexToFixedBytes(field, s string, n int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return make([]byte, n), nil
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &BadHexError{Field: field, Value: s}
	}
	if len(b) != n {
		return nil, &BadFieldWidthError{Field: field, Expected: n, Got: len(b)}
	}
	return b, nil
}

// HexToFixedBytesLenient is the adapter-level counterpart to
// HexToFixedBytes: the upstream record may supply a byte-string field as
// hex shorter than its target width (a digest given without leading zero
// nibbles, say), which is left-padded with zero bytes to width. Hex longer
// than the target width still fails with BadFieldWidthError.
func HexToFixedBytesLenient(field, s string, n int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return make([]byte, n), nil
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &BadHexError{Field: field, Value: s}
	}
	if len(b) < n {
		padded := make([]byte, n)
		copy(padded[n-len(b):], b)
		return padded, nil
	}
	if len(b) > n {
		return nil, &BadFieldWidthError{Field: field, Expected: n, Got: len(b)}
	}
	return b, nil
}

// HexToBytes parses a variable-length hex string (optionally "0x"-prefixed)
// with no width requirement, used for extra_data. Empty or "0x" yields a
// zero-length slice, not nil, so callers can encode it unconditionally.
func HexToBytes(field, s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return []byte{}, nil
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &BadHexError{Field: field, Value: s}
	}
	return b, nil
}

// BytesToHex renders b as a lowercase "0x"-prefixed hex string, the
// adapter's back-conversion representation for every byte-string field.
func BytesToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
