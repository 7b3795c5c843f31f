package main

import (
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all colominer settings,
// e.g. COLOMINER_MINPREV overrides minPrev.
const envPrefix = "COLOMINER"

// runConfig mirrors colocation.Config's tunables plus the CLI-only fields
// (input path, output format) that never belong in the library API.
type runConfig struct {
	Input            string  `mapstructure:"input"`
	NeighborDistance float64 `mapstructure:"neighborDistance"`
	MinPrev          float64 `mapstructure:"minPrev"`
	Workers          int     `mapstructure:"workers"`
	LogLevel         string  `mapstructure:"logLevel"`
	Format           string  `mapstructure:"format"`
}

// newViper builds a pre-configured Viper instance: YAML config file,
// COLOMINER_ env prefix, automatic env binding, and a "." -> "_" key
// replacer so nested keys resolve the same way flags do.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("minPrev", 0.6)
	v.SetDefault("workers", 1)
	v.SetDefault("logLevel", "info")
	v.SetDefault("format", "text")

	return v
}

// loadConfig reads configPath (if non-empty) and merges CLI flag
// overrides on top, giving flags > env > file > defaults.
func loadConfig(configPath string, flags runConfig, flagsSet map[string]bool) (*runConfig, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, wrapf(err, "reading config file %q", configPath)
		}
	}

	cfg := &runConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, wrapf(err, "unmarshaling configuration")
	}

	if flagsSet["input"] || cfg.Input == "" {
		cfg.Input = flags.Input
	}
	if flagsSet["neighbor-distance"] {
		cfg.NeighborDistance = flags.NeighborDistance
	}
	if flagsSet["min-prev"] {
		cfg.MinPrev = flags.MinPrev
	}
	if flagsSet["workers"] {
		cfg.Workers = flags.Workers
	}
	if flagsSet["format"] {
		cfg.Format = flags.Format
	}

	return cfg, nil
}
