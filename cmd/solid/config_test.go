package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_Defaults(t *testing.T) {
	// act
	cfg, err := loadConfig(nil, io.Discard)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"dip", "lsp", "ocp", "srp"}, cfg.Examples)
	assert.Equal(t, "sqlite", cfg.CatalogDriver)
	assert.Equal(t, ":memory:", cfg.CatalogDSN)
	assert.Equal(t, "none", cfg.Metrics)
	assert.False(t, cfg.OTel)

	level, levelErr := cfg.slogLevel()
	require.NoError(t, levelErr)
	assert.Equal(t, slog.LevelWarn, level)
}

func Test_LoadConfig_EnvAndFlags(t *testing.T) {
	// arrange
	t.Setenv("SOLID_EXAMPLES", "ocp, srp")
	t.Setenv("SOLID_LOG_LEVEL", "debug")
	t.Setenv("SOLID_JOURNAL_PATH", "/tmp/from-env.txt")

	// act
	cfg, err := loadConfig([]string{"-journal-path", "/tmp/from-flag.txt", "-metrics", "prometheus"}, io.Discard)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"ocp", "srp"}, cfg.Examples)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/from-flag.txt", cfg.JournalPath)
	assert.Equal(t, "prometheus", cfg.Metrics)
}

func Test_LoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown example", args: []string{"-examples", "isp"}},
		{name: "unknown driver", args: []string{"-catalog-driver", "oracle"}},
		{name: "unknown metrics backend", args: []string{"-metrics", "statsd"}},
		{name: "unknown log format", args: []string{"-log-format", "xml"}},
		{name: "unknown log level", args: []string{"-log-level", "loud"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(tc.args, io.Discard)

			assert.ErrorIs(t, err, errInvalidConf)
		})
	}
}

func Test_LoadConfig_InvalidEnv(t *testing.T) {
	t.Setenv("SOLID_OTEL", "maybe")

	_, err := loadConfig(nil, io.Discard)

	assert.ErrorContains(t, err, "parse env:")
}
