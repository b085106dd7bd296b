package era

import (
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/header"
)

// Shapella adds withdrawals_root as field 17, on top of London/Paris's 16.
func encodeShapella(h *header.Header) ([]byte, error) {
	fields := coreFields(h)
	fields = append(fields,
		codec.CanonicalUintBytes(h.BaseFeePerGas),
		h.WithdrawalsRoot.Bytes(),
	)
	return codec.EncodeList(fields)
}

func decodeShapella(buf []byte) (*header.Header, error) {
	items, err := codec.DecodeList(Shapella.String(), buf, FieldCount(Shapella))
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
	return h, nil
}
