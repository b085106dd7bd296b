package era

import (
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/header"
)

// London adds base_fee_per_gas (EIP-1559) as field 16, on top of the 15
// Genesis fields.
func encodeLondon(h *header.Header) ([]byte, error) {
	fields := coreFields(h)
	fields = append(fields, codec.CanonicalUintBytes(h.BaseFeePerGas))
	return codec.EncodeList(fields)
}

func decodeLondon(buf []byte) (*header.Header, error) {
	items, err := codec.DecodeList(London.String(), buf, FieldCount(London))
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
	return h, nil
}
