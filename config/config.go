package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"go.creack.net/calc/parser"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Flagger exposes resolved flag values. *cli.Context satisfies it; flags
// declare their CALC_* environment variables so an explicit flag wins over
// the environment, which wins over the default.
type Flagger interface {
	String(name string) string
	Bool(name string) bool
}

type Config struct {
	LogLevel  zerolog.Level
	LogFormat string
	Prompt    string
	Lenient   bool
	DumpAST   bool
}

// Read validates the resolved flag values.
func Read(flags Flagger) (*Config, error) {
	levelStr := flags.String("log-level")
	if levelStr == "" {
		levelStr = zerolog.LevelInfoValue
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	format := flags.String("log-format")
	switch format {
	case "":
		format = LogFormatConsole
	case LogFormatConsole, LogFormatJSON:
	default:
		return nil, fmt.Errorf("invalid log format %q: want %q or %q", format, LogFormatConsole, LogFormatJSON)
	}

	cfg := Config{
		LogLevel:  level,
		LogFormat: format,
		Prompt:    flags.String("prompt"),
		Lenient:   flags.Bool("lenient"),
		DumpAST:   flags.Bool("dump-ast"),
	}

	return &cfg, nil
}

// ParserOptions returns the parser options matching the configuration.
func (c *Config) ParserOptions() []parser.Option {
	if c.Lenient {
		return []parser.Option{parser.WithTrailingTokens()}
	}
	return nil
}

// Logger builds the logger writing to w.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	if c.LogFormat == LogFormatConsole {
		out := w
		w = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = out
			cw.NoColor = true
		})
	}
	return zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
}

func Print(cfg *Config, logger zerolog.Logger) {
	logger.Debug().
		Str("log_level", cfg.LogLevel.String()).
		Str("log_format", cfg.LogFormat).
		Str("prompt", cfg.Prompt).
		Bool("lenient", cfg.Lenient).
		Bool("dump_ast", cfg.DumpAST).
		Msg("running with config")
}
