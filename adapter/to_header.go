package adapter

import (
	"errors"

	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/era"
	"github.com/ethverify/headerverify/header"
	"go.uber.org/zap"
)

// ToHeader builds the typed Header era t requires from the loose external
// record. In its default (non-strict) mode it never fails solely because a
// field the era needs was absent from ext — that's zero-filled and logged.
// It fails only when a present field is malformed (bad hex, wrong width,
// integer overflow), returned as a *FailureError.
//
// strict switches to a stricter adapter variant: an absent field the era
// requires is itself a failure instead of a zero-fill. extraDataMaxBytes,
// if nonzero, caps extra_data length for consensus-aware callers; 0 leaves
// it uncapped, matching the core codec.
func ToHeader(t era.Tag, ext *ExternalHeader, log *zap.SugaredLogger, strict bool, extraDataMaxBytes int) (*header.Header, error) {
	if log == nil {
		log = noopLogger
	}

	h := header.New()
	var err error

	checkAbsent := func(field, value string) bool {
		if err != nil {
			return false
		}
		if value != "" && value != "0x" {
			return true
		}
		if strict {
			err = &FailureError{Field: field, Cause: errors.New("field required by era is absent")}
			return false
		}
		log.Warnw("adapter: zero-filling absent field required by era", "field", field, "era", t.String())
		return true
	}

	setDigest := func(field string, dst *[32]byte, value string) {
		if err != nil {
			return
		}
		checkAbsent(field, value)
		if err != nil {
			return
		}
		var b []byte
		if b, err = codec.HexToFixedBytesLenient(field, value, 32); err != nil {
			err = &FailureError{Field: field, Cause: err}
			return
		}
		copy(dst[:], b)
	}

	var parentHash, ommersHash, stateRoot, txRoot, receiptsRoot, mixHash [32]byte
	setDigest("parent_hash", &parentHash, ext.ParentHash)
	setDigest("ommers_hash", &ommersHash, ext.OmmersHash)
	setDigest("state_root", &stateRoot, ext.StateRoot)
	setDigest("transactions_root", &txRoot, ext.TransactionsRoot)
	setDigest("receipts_root", &receiptsRoot, ext.ReceiptsRoot)
	setDigest("mix_hash", &mixHash, ext.MixHash)
	if err != nil {
		return nil, err
	}
	h.ParentHash.SetBytes(parentHash[:])
	h.OmmersHash.SetBytes(ommersHash[:])
	h.StateRoot.SetBytes(stateRoot[:])
	h.TransactionsRoot.SetBytes(txRoot[:])
	h.ReceiptsRoot.SetBytes(receiptsRoot[:])
	h.MixHash.SetBytes(mixHash[:])

	if !checkAbsent("beneficiary", ext.Beneficiary) {
		return nil, err
	}
	addr, err2 := codec.HexToFixedBytesLenient("beneficiary", ext.Beneficiary, header.AddressWidth)
	if err2 != nil {
		return nil, &FailureError{Field: "beneficiary", Cause: err2}
	}
	h.Beneficiary.SetBytes(addr)

	if !checkAbsent("logs_bloom", ext.LogsBloom) {
		return nil, err
	}
	bloom, err2 := codec.HexToFixedBytesLenient("logs_bloom", ext.LogsBloom, header.LogsBloomWidth)
	if err2 != nil {
		return nil, &FailureError{Field: "logs_bloom", Cause: err2}
	}
	copy(h.LogsBloom[:], bloom)

	if !checkAbsent("nonce", ext.Nonce) {
		return nil, err
	}
	nonce, err2 := codec.HexToFixedBytesLenient("nonce", ext.Nonce, header.NonceWidth)
	if err2 != nil {
		return nil, &FailureError{Field: "nonce", Cause: err2}
	}
	copy(h.Nonce[:], nonce)

	if !checkAbsent("extra_data", ext.ExtraData) {
		return nil, err
	}
	if h.ExtraData, err2 = codec.HexToBytes("extra_data", ext.ExtraData); err2 != nil {
		return nil, &FailureError{Field: "extra_data", Cause: err2}
	}
	if extraDataMaxBytes > 0 && len(h.ExtraData) > extraDataMaxBytes {
		return nil, &FailureError{Field: "extra_data", Cause: &codec.BadFieldWidthError{
			Field: "extra_data", Expected: extraDataMaxBytes, Got: len(h.ExtraData),
		}}
	}

	h.Number.SetUint64(uint64(ext.Number))
	h.GasLimit.SetUint64(uint64(ext.GasLimit))
	h.GasUsed.SetUint64(uint64(ext.GasUsed))

	if !checkAbsent("difficulty", ext.Difficulty) {
		return nil, err
	}
	if h.Difficulty, err2 = codec.ParseUint256("difficulty", ext.Difficulty); err2 != nil {
		return nil, &FailureError{Field: "difficulty", Cause: err2}
	}

	if !checkAbsent("timestamp", ext.Timestamp) {
		return nil, err
	}
	if h.Timestamp, err2 = codec.ParseUint256("timestamp", ext.Timestamp); err2 != nil {
		return nil, &FailureError{Field: "timestamp", Cause: err2}
	}

	if t >= era.London {
		if !checkAbsent("base_fee_per_gas", ext.BaseFeePerGas) {
			return nil, err
		}
		if h.BaseFeePerGas, err2 = codec.ParseUint256("base_fee_per_gas", ext.BaseFeePerGas); err2 != nil {
			return nil, &FailureError{Field: "base_fee_per_gas", Cause: err2}
		}
	}

	if t >= era.Shapella {
		if !checkAbsent("withdrawals_root", ext.WithdrawalsRoot) {
			return nil, err
		}
		wr, err3 := codec.HexToFixedBytesLenient("withdrawals_root", ext.WithdrawalsRoot, header.DigestWidth)
		if err3 != nil {
			return nil, &FailureError{Field: "withdrawals_root", Cause: err3}
		}
		h.WithdrawalsRoot.SetBytes(wr)
	}

	if t >= era.Dencun {
		if !checkAbsent("blob_gas_used", ext.BlobGasUsed) {
			return nil, err
		}
		if h.BlobGasUsed, err2 = codec.ParseUint256("blob_gas_used", ext.BlobGasUsed); err2 != nil {
			return nil, &FailureError{Field: "blob_gas_used", Cause: err2}
		}
		if !checkAbsent("excess_blob_gas", ext.ExcessBlobGas) {
			return nil, err
		}
		if h.ExcessBlobGas, err2 = codec.ParseUint256("excess_blob_gas", ext.ExcessBlobGas); err2 != nil {
			return nil, &FailureError{Field: "excess_blob_gas", Cause: err2}
		}
		if !checkAbsent("parent_beacon_block_root", ext.ParentBeaconBlockRoot) {
			return nil, err
		}
		pbr, err3 := codec.HexToFixedBytesLenient("parent_beacon_block_root", ext.ParentBeaconBlockRoot, header.DigestWidth)
		if err3 != nil {
			return nil, &FailureError{Field: "parent_beacon_block_root", Cause: err3}
		}
		h.ParentBeaconBlockRoot.SetBytes(pbr)
	}

	return h, nil
}
