package era

import (
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/header"
)

// Genesis is the pre-London schema: the 15 fields shared by every later
// era, nothing more.
func encodeGenesis(h *header.Header) ([]byte, error) {
	return codec.EncodeList(coreFields(h))
}

func decodeGenesis(buf []byte) (*header.Header, error) {
	items, err := codec.DecodeList(Genesis.String(), buf, FieldCount(Genesis))
	if err != nil {
		return nil, err
	}
	return decodeCore(items)
}
