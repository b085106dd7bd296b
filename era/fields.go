package era

import (
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/header"
)

// coreFields returns the 15 fields every era shares, in their fixed order.
// Every era's Encode starts from this slice and appends its own trailing
// fields; every era's Decode parses these 15 positions identically before
// parsing whatever comes after.
func coreFields(h *header.Header) [][]byte {
	return [][]byte{
		h.ParentHash.Bytes(),
		h.OmmersHash.Bytes(),
		h.Beneficiary.Bytes(),
		h.StateRoot.Bytes(),
		h.TransactionsRoot.Bytes(),
		h.ReceiptsRoot.Bytes(),
		h.LogsBloom[:],
		codec.CanonicalUintBytes(h.Difficulty),
		codec.CanonicalUintBytes(h.Number),
		codec.CanonicalUintBytes(h.GasLimit),
		codec.CanonicalUintBytes(h.GasUsed),
		codec.CanonicalUintBytes(h.Timestamp),
		h.ExtraData,
		h.MixHash.Bytes(),
		h.Nonce[:],
	}
}

// coreFieldNames mirrors coreFields' order, for error messages.
var coreFieldNames = [15]string{
	"parent_hash", "ommers_hash", "beneficiary", "state_root",
	"transactions_root", "receipts_root", "logs_bloom", "difficulty",
	"number", "gas_limit", "gas_used", "timestamp", "extra_data",
	"mix_hash", "nonce",
}

// decodeCore parses items[0:15] into h's shared fields, applying each
// field's width/canonical-int rule.
func decodeCore(items [][]byte) (*header.Header, error) {
	h := header.New()

	if len(items[0]) != header.DigestWidth {
		return nil, widthErr(coreFieldNames[0], header.DigestWidth, len(items[0]))
	}
	h.ParentHash.SetBytes(items[0])

	if len(items[1]) != header.DigestWidth {
		return nil, widthErr(coreFieldNames[1], header.DigestWidth, len(items[1]))
	}
	h.OmmersHash.SetBytes(items[1])

	if len(items[2]) != header.AddressWidth {
		return nil, widthErr(coreFieldNames[2], header.AddressWidth, len(items[2]))
	}
	h.Beneficiary.SetBytes(items[2])

	if len(items[3]) != header.DigestWidth {
		return nil, widthErr(coreFieldNames[3], header.DigestWidth, len(items[3]))
	}
	h.StateRoot.SetBytes(items[3])

	if len(items[4]) != header.DigestWidth {
		return nil, widthErr(coreFieldNames[4], header.DigestWidth, len(items[4]))
	}
	h.TransactionsRoot.SetBytes(items[4])

	if len(items[5]) != header.DigestWidth {
		return nil, widthErr(coreFieldNames[5], header.DigestWidth, len(items[5]))
	}
	h.ReceiptsRoot.SetBytes(items[5])

	if len(items[6]) != header.LogsBloomWidth {
		return nil, widthErr(coreFieldNames[6], header.LogsBloomWidth, len(items[6]))
	}
	copy(h.LogsBloom[:], items[6])

	var err error
	if h.Difficulty, err = codec.DecodeCanonicalUint(coreFieldNames[7], items[7]); err != nil {
		return nil, err
	}
	if h.Number, err = codec.DecodeCanonicalUint(coreFieldNames[8], items[8]); err != nil {
		return nil, err
	}
	if h.GasLimit, err = codec.DecodeCanonicalUint(coreFieldNames[9], items[9]); err != nil {
		return nil, err
	}
	if h.GasUsed, err = codec.DecodeCanonicalUint(coreFieldNames[10], items[10]); err != nil {
		return nil, err
	}
	if h.Timestamp, err = codec.DecodeCanonicalUint(coreFieldNames[11], items[11]); err != nil {
		return nil, err
	}

	h.ExtraData = append([]byte{}, items[12]...)

	if len(items[13]) != header.DigestWidth {
		return nil, widthErr(coreFieldNames[13], header.DigestWidth, len(items[13]))
	}
	h.MixHash.SetBytes(items[13])

	if len(items[14]) != header.NonceWidth {
		return nil, widthErr(coreFieldNames[14], header.NonceWidth, len(items[14]))
	}
	copy(h.Nonce[:], items[14])

	return h, nil
}

func widthErr(field string, expected, got int) error {
	return &codec.BadFieldWidthError{Field: field, Expected: expected, Got: got}
}
