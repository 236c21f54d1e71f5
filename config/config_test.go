package config_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/config"
)

type fakeFlags struct {
	strings map[string]string
	bools   map[string]bool
}

func (f fakeFlags) String(name string) string { return f.strings[name] }
func (f fakeFlags) Bool(name string) bool     { return f.bools[name] }

func defaults() fakeFlags {
	return fakeFlags{
		strings: map[string]string{
			"log-level":  "info",
			"log-format": "console",
			"prompt":     ">> ",
		},
		bools: map[string]bool{},
	}
}

func TestReadDefaults(t *testing.T) {
	cfg, err := config.Read(defaults())
	require.NoError(t, err)

	assert.Equal(t, &config.Config{
		LogLevel:  zerolog.InfoLevel,
		LogFormat: config.LogFormatConsole,
		Prompt:    ">> ",
	}, cfg)
	assert.Empty(t, cfg.ParserOptions())
}

func TestReadValues(t *testing.T) {
	flags := defaults()
	flags.strings["log-level"] = "debug"
	flags.strings["log-format"] = "json"
	flags.bools["lenient"] = true
	flags.bools["dump-ast"] = true

	cfg, err := config.Read(flags)
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
	assert.True(t, cfg.Lenient)
	assert.True(t, cfg.DumpAST)
	assert.Len(t, cfg.ParserOptions(), 1)
}

func TestReadEmptyValues(t *testing.T) {
	cfg, err := config.Read(fakeFlags{})
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, config.LogFormatConsole, cfg.LogFormat)
}

func TestReadErrors(t *testing.T) {
	type testCase struct {
		name  string
		flag  string
		value string
	}

	tests := []testCase{
		{name: "log level", flag: "log-level", value: "loud"},
		{name: "log format", flag: "log-format", value: "xml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flags := defaults()
			flags.strings[tc.flag] = tc.value
			cfg, err := config.Read(flags)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: zerolog.WarnLevel, LogFormat: config.LogFormatJSON}
	logger := cfg.Logger(&buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Str("input", "1 / 0").Msg("evaluate")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"input":"1 / 0"`)
}
