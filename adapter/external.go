// Package adapter converts the loosely typed, schema-loose upstream
// header record (every field a string or absent) into the typed,
// era-specific header.Header the codec operates on, and back.
package adapter

import "go.uber.org/zap"

// ExternalHeader is the upstream record contract. Every field is either a
// hex/decimal string or the Go zero value for "absent" — the upstream
// source is a schema-loose database-like record that frequently stores
// null for fields inapplicable to an older era.
type ExternalHeader struct {
	// digest / address / bloom / nonce / roots: "0x"-prefixed hex, any
	// even length up to the field's target width, or empty/"0x"/unset
	// for zero bytes.
	ParentHash            string
	OmmersHash            string // sha3Uncles
	Beneficiary           string // miner
	StateRoot             string
	TransactionsRoot      string
	ReceiptsRoot          string
	LogsBloom             string
	MixHash               string
	Nonce                 string
	WithdrawalsRoot       string
	ParentBeaconBlockRoot string

	// extra_data: "0x"-prefixed hex of any length, or empty/unset for
	// the empty byte string.
	ExtraData string

	// number, gas_limit, gas_used: native nonnegative int64.
	Number   int64
	GasLimit int64
	GasUsed  int64

	// difficulty, total_difficulty, base_fee_per_gas, timestamp,
	// blob_gas_used, excess_blob_gas: "0x"-prefixed hex OR decimal text.
	Difficulty      string
	TotalDifficulty string // never part of any era's encoded list
	BaseFeePerGas   string
	Timestamp       string
	BlobGasUsed     string
	ExcessBlobGas   string

	// block_hash: "0x"-prefixed 32-byte hex, an assertion compared
	// against the computed hash — never part of the encoded payload.
	BlockHash string
}

// noopLogger is the zero-value logger every adapter call falls back to
// when the caller doesn't wire one in, so the core never forces callers
// to configure logging. See verify.WithLogger.
var noopLogger = zap.NewNop().Sugar()
