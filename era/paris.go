package era

import (
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/header"
)

// Paris (the Merge) keeps London's 16-field layout unchanged — difficulty
// is conventionally zero post-merge, but that's a data convention, not a
// schema change, so the field list is identical to London's.
func encodeParis(h *header.Header) ([]byte, error) {
	fields := coreFields(h)
	fields = append(fields, codec.CanonicalUintBytes(h.BaseFeePerGas))
	return codec.EncodeList(fields)
}

func decodeParis(buf []byte) (*header.Header, error) {
	items, err := codec.DecodeList(Paris.String(), buf, FieldCount(Paris))
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
