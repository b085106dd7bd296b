// Package header defines the normalized in-memory block header: every
// field any era schema might need, at its canonical semantic width. Era
// schemas (package era) each read a subset of these fields, in a fixed
// order, to build their RLP encoding.
package header

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Fixed field widths for the byte-string fields below.
const (
	DigestWidth    = 32 // parent_hash, ommers_hash, state_root, ...
	AddressWidth   = 20 // beneficiary
	LogsBloomWidth = 256
	NonceWidth     = 8
)

// Header is the normalized header value. It is immutable once built by
// the adapter — every field is a value type or an owned slice, and
// nothing here mutates a Header after construction.
type Header struct {
	ParentHash       common.Hash
	OmmersHash       common.Hash
	Beneficiary      common.Address
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	ReceiptsRoot     common.Hash
	LogsBloom        [LogsBloomWidth]byte
	Difficulty       *uint256.Int
	Number           *uint256.Int
	GasLimit         *uint256.Int
	GasUsed          *uint256.Int
	Timestamp        *uint256.Int
	ExtraData        []byte
	MixHash          common.Hash
	Nonce            [NonceWidth]byte
	BaseFeePerGas    *uint256.Int // London+

	WithdrawalsRoot common.Hash // Shapella+

	BlobGasUsed           *uint256.Int // Dencun+
	ExcessBlobGas         *uint256.Int // Dencun+
	ParentBeaconBlockRoot common.Hash  // Dencun+
}

// New returns a Header with every big-integer field set to a non-nil
// zero value, so callers (and tests) that only care about a subset of
// fields never have to guard against a nil *uint256.Int.
func New() *Header {
	return &Header{
		Difficulty:    new(uint256.Int),
		Number:        new(uint256.Int),
		GasLimit:      new(uint256.Int),
		GasUsed:       new(uint256.Int),
		Timestamp:     new(uint256.Int),
		ExtraData:     []byte{},
		BaseFeePerGas: new(uint256.Int),
		BlobGasUsed:   new(uint256.Int),
		ExcessBlobGas: new(uint256.Int),
	}
}
