package verify

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethverify/headerverify/adapter"
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/header"
)

// AreBlocksAndChainValid reports whether every header in the sequence
// verifies individually against its own claimed hash, and every
// consecutive pair links by parent_hash == previous block_hash. It
// short-circuits on the first failure of either kind — a sequence
// collapses to false on any outcome other than Valid.
func (e *Engine) AreBlocksAndChainValid(headers []*adapter.ExternalHeader) bool {
	var prevHash [header.DigestWidth]byte
	for i, h := range headers {
		claimed, err := hashBytes(h.BlockHash)
		if err != nil {
			return false
		}

		outcome, err := e.VerifySingle(uint64(h.Number), h, common.BytesToHash(claimed))
		if err != nil || outcome != Valid {
			return false
		}

		if i > 0 {
			parent, err := hashBytes(h.ParentHash)
			if err != nil || !bytes.Equal(parent, prevHash[:]) {
				return false
			}
		}
		copy(prevHash[:], claimed)
	}
	return true
}

func hashBytes(s string) ([]byte, error) {
	return codec.HexToFixedBytesLenient("block_hash", s, header.DigestWidth)
}

// AreBlocksAndChainValid is the package-level convenience wrapper over the
// default Engine.
func AreBlocksAndChainValid(headers []*adapter.ExternalHeader) bool {
	return defaultEngine.AreBlocksAndChainValid(headers)
}
