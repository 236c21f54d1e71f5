package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"go.creack.net/calc/asmgen"
	"go.creack.net/calc/config"
	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/parser"
	"go.creack.net/calc/repl"
)

var ErrCommandFailed = errors.New("command failed")

func newApp(stdin io.Reader, stdout, stderr io.Writer, isTerminal bool) *cli.App {
	commonFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error).",
				Value:   "info",
				EnvVars: []string{"CALC_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format, console or json.",
				Value:   config.LogFormatConsole,
				EnvVars: []string{"CALC_LOG_FORMAT"},
			},
			&cli.BoolFlag{
				Name:    "lenient",
				Usage:   "Ignore tokens following a complete expression.",
				EnvVars: []string{"CALC_LENIENT"},
			},
			&cli.BoolFlag{
				Name:  "dump-ast",
				Usage: "Print the parsed tree before the value.",
			},
		}
	}

	replFlags := func() []cli.Flag {
		return append([]cli.Flag{
			&cli.StringFlag{
				Name:  "prompt",
				Usage: "Prompt shown when stdin is a terminal.",
				Value: ">> ",
			},
		}, commonFlags()...)
	}

	runRepl := func(cliCtx *cli.Context) error {
		cfg, logger, err := setup(cliCtx, stderr)
		if err != nil {
			return err
		}

		opts := []repl.Option{repl.WithParserOptions(cfg.ParserOptions()...)}
		if isTerminal {
			opts = append(opts, repl.WithPrompt(cfg.Prompt))
		}
		if cfg.DumpAST {
			opts = append(opts, repl.WithDumpAST())
		}

		return repl.Run(logger.WithContext(cliCtx.Context), stdin, stdout, opts...)
	}

	return &cli.App{
		Name:      "calc",
		Usage:     "Evaluates integer arithmetic expressions.",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     replFlags(),
		Action:    runRepl,
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "Reads one expression per line until EOF or \"exit\".",
				Flags:  replFlags(),
				Action: runRepl,
			},
			{
				Name:      "eval",
				Usage:     "Evaluates each argument as an expression.",
				ArgsUsage: "EXPR...",
				Flags:     commonFlags(),
				Action: func(cliCtx *cli.Context) error {
					return runEval(cliCtx, stdout, stderr)
				},
			},
			{
				Name:      "asm",
				Usage:     "Emits accumulator assembly for a sum of numbers.",
				ArgsUsage: "EXPR",
				Flags:     commonFlags(),
				Action: func(cliCtx *cli.Context) error {
					return runAsm(cliCtx, stdout, stderr)
				},
			},
		},
	}
}

func setup(cliCtx *cli.Context, stderr io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Read(cliCtx)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid config: %w", err)
	}
	logger := cfg.Logger(stderr)
	config.Print(cfg, logger)
	return cfg, logger, nil
}

func runEval(cliCtx *cli.Context, stdout, stderr io.Writer) error {
	cfg, logger, err := setup(cliCtx, stderr)
	if err != nil {
		return err
	}
	if cliCtx.NArg() == 0 {
		return fmt.Errorf("eval: missing expression")
	}

	failed := false
	for _, input := range cliCtx.Args().Slice() {
		expr, err := parser.Parse(input, cfg.ParserOptions()...)
		if err != nil {
			logger.Error().Err(err).Str("input", input).Msg("parse")
			failed = true
			continue
		}
		if cfg.DumpAST {
			if _, err := pretty.Fprintf(stdout, "%# v\n", expr); err != nil {
				return fmt.Errorf("write tree: %w", err)
			}
		}
		value, err := evaluator.Evaluate(expr)
		if err != nil {
			logger.Error().Err(err).Str("input", input).Msg("evaluate")
			failed = true
			continue
		}
		if _, err := fmt.Fprintln(stdout, value); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if failed {
		return ErrCommandFailed
	}
	return nil
}

func runAsm(cliCtx *cli.Context, stdout, stderr io.Writer) error {
	_, logger, err := setup(cliCtx, stderr)
	if err != nil {
		return err
	}
	if cliCtx.NArg() != 1 {
		return fmt.Errorf("asm: want exactly one expression, got %d", cliCtx.NArg())
	}

	input := cliCtx.Args().First()
	out, err := asmgen.Generate(input)
	if err != nil {
		logger.Error().Err(err).Str("input", input).Msg("generate")
		return ErrCommandFailed
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
