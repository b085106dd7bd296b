// Package config loads engine-wide configuration: whether the adapter
// runs in its default lax mode or a stricter variant, and per-network era
// boundary overrides for chains other than Ethereum mainnet.
//
// This generalizes the teacher's BlockHashConfig/ConfigForBlockNumber
// pattern (rskblocks/block_header_hash_helper.go), which picks per-network
// RSKIP activation heights, to Ethereum mainnet's per-network fork block
// numbers — a private or test network with different fork heights can
// override the era boundaries without touching the codec.
package config

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EngineConfig is the engine's tunable surface. Default() returns the
// baseline: lax adapter, mainnet era boundaries, no extra_data cap.
type EngineConfig struct {
	// StrictAdapter rejects absent/ambiguous fields instead of the
	// default zero-fill-and-warn behavior. Offered as an opt-in for
	// callers that want stricter validation; the default stays lax so
	// the adapter keeps accepting the upstream record's schema drift.
	StrictAdapter bool

	// ExtraDataMaxBytes caps extra_data length for consensus-aware
	// callers. Zero leaves it unenforced at the codec level — the
	// codec itself accepts any length; a consensus-aware layer may
	// impose a cap on top of it.
	ExtraDataMaxBytes int

	// EraOverrides replaces the mainnet era.Select boundaries for a
	// network other than mainnet. Keys are "london_start", "paris_start",
	// "shapella_start", "dencun_start"; each era ends just before the next
	// era's start, so no end keys are read. Any key not present keeps the
	// mainnet default.
	EraOverrides map[string]uint64
}

// Default returns the mainnet-compatible, lax-adapter configuration.
func Default() *EngineConfig {
	return &EngineConfig{
		StrictAdapter:     false,
		ExtraDataMaxBytes: 0,
		EraOverrides:      map[string]uint64{},
	}
}

// Load builds an EngineConfig from command-line flags, environment
// variables prefixed ETHVERIFY_, and (if present) a config file named by
// --config. Flags and env vars win over the config file; unset values
// fall back to Default().
func Load(args []string) (*EngineConfig, error) {
	fs := pflag.NewFlagSet("headerverify", pflag.ContinueOnError)
	fs.Bool("strict-adapter", false, "reject absent/ambiguous external-record fields instead of zero-filling")
	fs.Int("extra-data-max-bytes", 0, "reject extra_data longer than this many bytes (0 = unbounded)")
	fs.String("config", "", "path to a config file (yaml/json/toml)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("ETHVERIFY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if cfgFile, _ := fs.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	cfg.StrictAdapter = v.GetBool("strict-adapter")
	cfg.ExtraDataMaxBytes = v.GetInt("extra-data-max-bytes")

	overrides := v.GetStringMap("era-overrides")
	for k, raw := range overrides {
		if n, err := cast.ToUint64E(raw); err == nil {
			cfg.EraOverrides[k] = n
		}
	}

	return cfg, nil
}
