package era

import (
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/header"
)

// Dencun adds blob_gas_used, excess_blob_gas, and parent_beacon_block_root
// (EIP-4844) as fields 18-20, on top of Shapella's 17.
func encodeDencun(h *header.Header) ([]byte, error) {
	fields := coreFields(h)
	fields = append(fields,
		codec.CanonicalUintBytes(h.BaseFeePerGas),
		h.WithdrawalsRoot.Bytes(),
		codec.CanonicalUintBytes(h.BlobGasUsed),
		codec.CanonicalUintBytes(h.ExcessBlobGas),
		h.ParentBeaconBlockRoot.Bytes(),
	)
	return codec.EncodeList(fields)
}

func decodeDencun(buf []byte) (*header.Header, error) {
	items, err := codec.DecodeList(Dencun.String(), buf, FieldCount(Dencun))
	if err != nil {
		return nil, err
	}
	h, err := decodeCore(items)
	if err != nil {
		return nil, err
	}
	if h.BaseFeePerGas, err = codec.DecodeCanonicalUint("base_fee_per_gas", items[15]); err != nil {
		return nil, err
	}
	if len(items[16]) != header.DigestWidth {
		return nil, widthErr("withdrawals_root", header.DigestWidth, len(items[16]))
	}
	h.WithdrawalsRoot.SetBytes(items[16])

	if h.BlobGasUsed, err = codec.DecodeCanonicalUint("blob_gas_used", items[17]); err != nil {
		return nil, err
	}
	if h.ExcessBlobGas, err = codec.DecodeCanonicalUint("excess_blob_gas", items[18]); err != nil {
		return nil, err
	}
	if len(items[19]) != header.DigestWidth {
		return nil, widthErr("parent_beacon_block_root", header.DigestWidth, len(items[19]))
	}
	h.ParentBeaconBlockRoot.SetBytes(items[19])

	return h, nil
}
