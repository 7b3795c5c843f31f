package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithNoFile(t *testing.T) {
	flags := runConfig{Input: "objects.csv", NeighborDistance: 2, MinPrev: 0.6, Workers: 1, Format: "text"}
	flagsSet := map[string]bool{
		"input":             true,
		"neighbor-distance": true,
	}

	cfg, err := loadConfig("", flags, flagsSet)
	require.NoError(t, err)
	require.Equal(t, "objects.csv", cfg.Input)
	require.Equal(t, 2.0, cfg.NeighborDistance)
	require.Equal(t, 0.6, cfg.MinPrev)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, "info", cfg.LogLevel) // logLevel has no flag; comes from viper defaults
}

func TestLoadConfigFlagsOverrideDefaults(t *testing.T) {
	flags := runConfig{Input: "objects.csv", NeighborDistance: 5, MinPrev: 0.9, Workers: 8, Format: "json"}
	flagsSet := map[string]bool{
		"input":             true,
		"neighbor-distance": true,
		"min-prev":          true,
		"workers":           true,
		"format":            true,
	}

	cfg, err := loadConfig("", flags, flagsSet)
	require.NoError(t, err)
	require.Equal(t, 5.0, cfg.NeighborDistance)
	require.Equal(t, 0.9, cfg.MinPrev)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, "json", cfg.Format)
}

func TestLoadConfigRejectsMissingFile(t *testing.T) {
	_, err := loadConfig("/nonexistent/path/config.yaml", runConfig{}, map[string]bool{})
	require.Error(t, err)
}
