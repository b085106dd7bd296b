package codec

import (
	"errors"
	"strings"

	"github.com/holiman/uint256"
)

// ParseUint256 accepts either "0x"-prefixed hex (any length up to 64
// nibbles) or plain decimal text — the upstream record stores some
// numeric fields (timestamp, difficulty, base fee, blob gases) as decimal
// strings and others as hex. Leading zero nibbles are allowed. Empty
// string and a bare "0x" parse to zero, matching the adapter's lax
// missing-field policy for big-integer fields.
func ParseUint256(field, s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	v := new(uint256.Int)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if len(s)-2 > 64 {
			return nil, &IntOverflowError{Field: field, Value: s}
		}
		digits := strings.TrimLeft(s[2:], "0")
		if digits == "" {
			return v, nil
		}
		if err := v.SetFromHex("0x" + digits); err != nil {
			return nil, &BadHexError{Field: field, Value: s}
		}
		return v, nil
	}
	if err := v.SetFromDecimal(s); err != nil {
		if errors.Is(err, uint256.ErrBig256Range) {
			return nil, &IntOverflowError{Field: field, Value: s}
		}
		return nil, &BadHexError{Field: field, Value: s}
	}
	return v, nil
}

// CanonicalUintBytes returns the minimal big-endian encoding of v, with
// zero represented by an empty slice — the RLP integer canonical form.
func CanonicalUintBytes(v *uint256.Int) []byte {
	if v == nil || v.IsZero() {
		return []byte{}
	}
	return v.Bytes()
}

// DecodeCanonicalUint parses an RLP integer payload back into a uint256,
// rejecting encodings with a leading zero byte. The empty payload is the
// canonical encoding of zero and is accepted.
func DecodeCanonicalUint(field string, payload []byte) (*uint256.Int, error) {
	if len(payload) == 0 {
		return new(uint256.Int), nil
	}
	if payload[0] == 0x00 {
		return nil, &NonCanonicalIntError{Field: field}
	}
	if len(payload) > 32 {
		return nil, &IntOverflowError{Field: field, Value: BytesToHex(payload)}
	}
	return new(uint256.Int).SetBytes(payload), nil
}
