package config_test

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/katalvlaran/montepi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MONTEPI_SAMPLES", "MONTEPI_DIMENSION", "MONTEPI_SEED", "MONTEPI_FORMAT",
		"MONTEPI_DB", "MONTEPI_TRAJECTORY", "MONTEPI_STUDY_RUNS", "MONTEPI_HISTORY",
		"MONTEPI_OTEL_ENDPOINT", "MONTEPI_OTEL_ENABLED",
	} {
		t.Setenv(k, "") // restores the original value after the test
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Samples)
	assert.Equal(t, 2, cfg.Dimension)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, "table", cfg.Format)
	assert.True(t, cfg.OTelEnabled)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONTEPI_SAMPLES", "500")
	t.Setenv("MONTEPI_DIMENSION", "4")
	t.Setenv("MONTEPI_SEED", "9")

	cfg, err := config.Load([]string{"-d", "3"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Samples) // env
	assert.Equal(t, 3, cfg.Dimension) // flag wins
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(9), *cfg.Seed)

	cfg, err = config.Load([]string{"-seed", "-12", "-format", "json", "-study-runs", "20"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, int64(-12), *cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 20, cfg.StudyRuns)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	var stderr bytes.Buffer

	_, err := config.Load([]string{"-seed", "abc"}, &stderr)
	assert.Error(t, err)

	_, err = config.Load([]string{"extra"}, &stderr)
	assert.Error(t, err)

	_, err = config.Load([]string{"-h"}, &stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)

	t.Setenv("MONTEPI_SAMPLES", "many")
	_, err = config.Load(nil, &stderr)
	assert.Error(t, err)
}

func TestLoad_History(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONTEPI_DB", "runs.db")

	cfg, err := config.Load([]string{"-history", "5"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.History)
	assert.Equal(t, "runs.db", cfg.DBPath)
}

func TestLoad_InvalidOptions(t *testing.T) {
	clearEnv(t)
	cases := []struct {
		name string
		args []string
	}{
		{"study with trajectory", []string{"-study-runs", "3", "-trajectory", "t.jsonl"}},
		{"study with db", []string{"-study-runs", "3", "-db", "runs.db"}},
		{"history without db", []string{"-history", "2"}},
		{"history with study", []string{"-history", "2", "-db", "runs.db", "-study-runs", "3"}},
		{"history with trajectory", []string{"-history", "2", "-db", "runs.db", "-trajectory", "t.jsonl"}},
		{"negative study runs", []string{"-study-runs", "-1"}},
		{"negative history", []string{"-history", "-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(tc.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, config.ErrInvalidOptions)
		})
	}
}
