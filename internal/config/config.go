// Package config loads the thin CLI/server adapters' settings: paths to
// proving/verifying keys, the hash-parameter table, the proof-server listen
// address, and the optimizer preset. None of this is consulted by the core
// packages, which take their inputs as plain Go values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultListenAddr     = "127.0.0.1:8080"
	defaultOptimizerLevel = "default"
)

// Config holds the resolved settings for the inventoryctl CLI and the
// proof-server HTTP adapter.
type Config struct {
	// KeyDir holds the proving/verifying key files, one per circuit.
	KeyDir string
	// HashParamsPath names an external Poseidon/Anemoi parameter table. No
	// table is loaded from it: serve logs a warning when it is set and uses
	// the built-in audited table either way.
	HashParamsPath string
	// ListenAddr is the proof-server's bind address.
	ListenAddr string
	// OptimizerLevel selects one of the optimizer.Config presets by name.
	OptimizerLevel string
}

// Load resolves configuration from (in increasing priority) a config file at
// path, environment variables prefixed INVENTORY_, and explicit overrides
// supplied by the caller (typically parsed CLI flags). path may be empty, in
// which case only environment variables and overrides apply.
func Load(path string, overrides Config) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("inventory")
	v.AutomaticEnv()
	v.SetDefault("listen_addr", defaultListenAddr)
	v.SetDefault("optimizer_level", defaultOptimizerLevel)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg := Config{
		KeyDir:         v.GetString("key_dir"),
		HashParamsPath: v.GetString("hash_params_path"),
		ListenAddr:     v.GetString("listen_addr"),
		OptimizerLevel: strings.ToLower(v.GetString("optimizer_level")),
	}

	if overrides.KeyDir != "" {
		cfg.KeyDir = overrides.KeyDir
	}
	if overrides.HashParamsPath != "" {
		cfg.HashParamsPath = overrides.HashParamsPath
	}
	if overrides.ListenAddr != "" {
		cfg.ListenAddr = overrides.ListenAddr
	}
	if overrides.OptimizerLevel != "" {
		cfg.OptimizerLevel = strings.ToLower(overrides.OptimizerLevel)
	}

	return cfg, nil
}

// EnvInt reads an integer environment variable, falling back to def when
// unset or unparsable.
func EnvInt(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
