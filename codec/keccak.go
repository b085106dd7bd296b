package codec

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// newKeccak returns the legacy (pre-FIPS-202) Keccak-256 hasher, the
// variant Ethereum actually uses. Split into its own file so Keccak256's
// doc comment in rlp.go stays next to the public API it documents.
func newKeccak() hash.Hash {
	return sha3.NewLegacyKeccak256()
}
