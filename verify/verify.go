// Package verify is the verification façade: single-block verify, sequence
// verify, and the encode/decode entry points dispatched by era.
package verify

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethverify/headerverify/adapter"
	"github.com/ethverify/headerverify/codec"
	"github.com/ethverify/headerverify/config"
	"github.com/ethverify/headerverify/era"
	"go.uber.org/zap"
)

// Outcome is the result of a single-block verification. It is data, not
// an error — an Invalid outcome is a legitimate answer and must never be
// conflated with a malformed-input error.
type Outcome int

const (
	Valid Outcome = iota
	Invalid
)

func (o Outcome) String() string {
	if o == Valid {
		return "valid"
	}
	return "invalid"
}

// Engine holds verification-wide configuration: the logger the adapter
// uses to warn on lax zero-fill, and the EngineConfig
// governing adapter strictness and era boundaries. Build one with New;
// the zero value has a nil EngineConfig, which every method dereferences,
// so it is not usable. Callers who don't need to configure anything can
// use the package-level wrappers, which share a default Engine.
type Engine struct {
	log *zap.SugaredLogger
	cfg *config.EngineConfig
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger wires a *zap.Logger for the adapter's absent-field warnings.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l.Sugar() }
}

// WithConfig replaces the Engine's EngineConfig, governing adapter
// strictness, extra_data length capping, and per-network era boundary
// overrides (config.Load).
func WithConfig(cfg *config.EngineConfig) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// New builds an Engine. With no options it uses a no-op logger and
// config.Default().
func New(opts ...Option) *Engine {
	e := &Engine{cfg: config.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

func (e *Engine) selectEra(number uint64) era.Tag {
	return era.SelectWithOverrides(number, e.cfg.EraOverrides)
}

// VerifySingle computes this Engine's era selection for number, builds the
// typed header via the adapter, RLP-encodes it, hashes it, and compares
// against claimed. It returns an error only for adapter/codec failures —
// never for a hash mismatch, which is reported as Invalid.
func (e *Engine) VerifySingle(number uint64, ext *adapter.ExternalHeader, claimed common.Hash) (Outcome, error) {
	t := e.selectEra(number)

	h, err := adapter.ToHeader(t, ext, e.log, e.cfg.StrictAdapter, e.cfg.ExtraDataMaxBytes)
	if err != nil {
		return Invalid, err
	}

	encoded, err := era.Encode(t, h)
	if err != nil {
		return Invalid, err
	}

	got := codec.Keccak256(encoded)
	if bytes.Equal(got[:], claimed.Bytes()) {
		return Valid, nil
	}
	return Invalid, nil
}

// EncodeBlockHeader RLP-encodes ext under the schema this Engine's era
// selection picks for number. It only ever errors on a malformed field —
// era selection is total over every block number, so "no era matches"
// never happens.
func (e *Engine) EncodeBlockHeader(number uint64, ext *adapter.ExternalHeader) ([]byte, error) {
	t := e.selectEra(number)
	h, err := adapter.ToHeader(t, ext, e.log, e.cfg.StrictAdapter, e.cfg.ExtraDataMaxBytes)
	if err != nil {
		return nil, err
	}
	return era.Encode(t, h)
}

// DecodeBlockHeader parses buf as this Engine's era-selection field list
// and back-converts it into an ExternalHeader. It returns an error on any
// decode failure (bad arity, non-canonical int, wrong width, trailing
// bytes).
func (e *Engine) DecodeBlockHeader(number uint64, buf []byte) (*adapter.ExternalHeader, error) {
	t := e.selectEra(number)
	h, err := era.Decode(t, buf)
	if err != nil {
		return nil, err
	}
	return adapter.FromHeader(t, h), nil
}

// Package-level convenience wrappers over a shared default Engine (a
// no-op logger, config.Default()) for callers that don't need to
// configure anything.

func VerifySingle(number uint64, ext *adapter.ExternalHeader, claimed common.Hash) (Outcome, error) {
	return defaultEngine.VerifySingle(number, ext, claimed)
}

func EncodeBlockHeader(number uint64, ext *adapter.ExternalHeader) ([]byte, error) {
	return defaultEngine.EncodeBlockHeader(number, ext)
}

func DecodeBlockHeader(number uint64, buf []byte) (*adapter.ExternalHeader, error) {
	return defaultEngine.DecodeBlockHeader(number, buf)
}
