// Package era implements the per-era header schemas and the block-number
// selector that picks among them. Each era is a tagged variant with its
// own encode/decode pair; selection and dispatch live in one switch per
// operation rather than parallel function-pointer tables.
package era

import (
	"fmt"

	"github.com/ethverify/headerverify/header"
)

// Tag identifies which header schema applies to a block.
type Tag int

const (
	Genesis Tag = iota
	London
	Paris
	Shapella
	Dencun
)

func (t Tag) String() string {
	switch t {
	case Genesis:
		return "genesis"
	case London:
		return "london"
	case Paris:
		return "paris"
	case Shapella:
		return "shapella"
	case Dencun:
		return "dencun"
	default:
		return fmt.Sprintf("era(%d)", int(t))
	}
}

// Era-number boundaries, ported from the Rust original's constants.rs;
// Dencun is unbounded above.
const (
	GenesisEnd    = 12_964_999
	LondonStart   = 12_965_000
	LondonEnd     = 15_537_393
	ParisStart    = 15_537_394
	ParisEnd      = 17_034_869
	ShapellaStart = 17_034_870
	ShapellaEnd   = 19_426_586
	DencunStart   = 19_426_587
)

// Select maps a block number to its era using the mainnet boundaries.
// Total over all uint64 — every nonnegative integer lands in exactly one
// era.
func Select(number uint64) Tag {
	return SelectWithOverrides(number, nil)
}

// SelectWithOverrides is Select generalized to a non-mainnet network: any
// of "london_start", "paris_start", "shapella_start", "dencun_start"
// present in overrides replaces the corresponding mainnet fork block
// (config.EngineConfig.EraOverrides). Each era runs from its start up to
// (but not including) the next era's start; Dencun remains unbounded
// above. A nil or empty overrides map is exactly Select.
func SelectWithOverrides(number uint64, overrides map[string]uint64) Tag {
	londonStart := uint64(LondonStart)
	parisStart := uint64(ParisStart)
	shapellaStart := uint64(ShapellaStart)
	dencunStart := uint64(DencunStart)

	if v, ok := overrides["london_start"]; ok {
		londonStart = v
	}
	if v, ok := overrides["paris_start"]; ok {
		parisStart = v
	}
	if v, ok := overrides["shapella_start"]; ok {
		shapellaStart = v
	}
	if v, ok := overrides["dencun_start"]; ok {
		dencunStart = v
	}

	switch {
	case number < londonStart:
		return Genesis
	case number < parisStart:
		return London
	case number < shapellaStart:
		return Paris
	case number < dencunStart:
		return Shapella
	default:
		return Dencun
	}
}

// FieldCount returns the number of ordered fields an era's schema encodes.
func FieldCount(t Tag) int {
	switch t {
	case Genesis:
		return 15
	case London:
		return 16
	case Paris:
		return 16
	case Shapella:
		return 17
	case Dencun:
		return 20
	default:
		return 0
	}
}

// Encode RLP-encodes h according to era t's field list.
func Encode(t Tag, h *header.Header) ([]byte, error) {
	switch t {
	case Genesis:
		return encodeGenesis(h)
	case London:
		return encodeLondon(h)
	case Paris:
		return encodeParis(h)
	case Shapella:
		return encodeShapella(h)
	case Dencun:
		return encodeDencun(h)
	default:
		return nil, fmt.Errorf("era: %w", &unknownEraError{t})
	}
}

// Decode parses buf as era t's field list into a Header.
func Decode(t Tag, buf []byte) (*header.Header, error) {
	switch t {
	case Genesis:
		return decodeGenesis(buf)
	case London:
		return decodeLondon(buf)
	case Paris:
		return decodeParis(buf)
	case Shapella:
		return decodeShapella(buf)
	case Dencun:
		return decodeDencun(buf)
	default:
		return nil, fmt.Errorf("era: %w", &unknownEraError{t})
	}
}

type unknownEraError struct{ t Tag }

func (e *unknownEraError) Error() string {
	return fmt.Sprintf("no era tag %d", int(e.t))
}
