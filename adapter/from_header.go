package adapter

import (
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/era"
	"github.com/ethverify/headerverify/header"
)

// FromHeader is the inverse of ToHeader: it populates every field era t's
// schema carries as a lowercase "0x"-prefixed hex string (byte fields) or
// a decimal string (numeric fields). Fields not in t's list are left at
// the zero value. block_hash is left empty — it's an assertion about the
// hash, not part of the payload — and total_difficulty is likewise never
// populated here, since it isn't carried by header.Header at all.
func FromHeader(t era.Tag, h *header.Header) *ExternalHeader {
	ext := &ExternalHeader{
		ParentHash:       codec.BytesToHex(h.ParentHash.Bytes()),
		OmmersHash:       codec.BytesToHex(h.OmmersHash.Bytes()),
		Beneficiary:      codec.BytesToHex(h.Beneficiary.Bytes()),
		StateRoot:        codec.BytesToHex(h.StateRoot.Bytes()),
		TransactionsRoot: codec.BytesToHex(h.TransactionsRoot.Bytes()),
		ReceiptsRoot:     codec.BytesToHex(h.ReceiptsRoot.Bytes()),
		LogsBloom:        codec.BytesToHex(h.LogsBloom[:]),
		MixHash:          codec.BytesToHex(h.MixHash.Bytes()),
		Nonce:            codec.BytesToHex(h.Nonce[:]),
		ExtraData:        codec.BytesToHex(h.ExtraData),
		Number:           int64(h.Number.Uint64()),
		GasLimit:         int64(h.GasLimit.Uint64()),
		GasUsed:          int64(h.GasUsed.Uint64()),
		Difficulty:       h.Difficulty.Dec(),
		Timestamp:        h.Timestamp.Dec(),
	}

	if t >= era.London {
		ext.BaseFeePerGas = h.BaseFeePerGas.Dec()
	}
	if t >= era.Shapella {
		ext.WithdrawalsRoot = codec.BytesToHex(h.WithdrawalsRoot.Bytes())
	}
	if t >= era.Dencun {
		ext.BlobGasUsed = h.BlobGasUsed.Dec()
		ext.ExcessBlobGas = h.ExcessBlobGas.Dec()
		ext.ParentBeaconBlockRoot = codec.BytesToHex(h.ParentBeaconBlockRoot.Bytes())
	}

	return ext
}
