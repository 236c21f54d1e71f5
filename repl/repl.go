// Package repl wires the lexer, parser and evaluator together: a one-shot
// Eval and a line-oriented interactive loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"

	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/parser"
)

// ExitCommand terminates the loop.
const ExitCommand = "exit"

// Eval parses and evaluates a single expression.
func Eval(input string, opts ...parser.Option) (int64, error) {
	expr, err := parser.Parse(input, opts...)
	if err != nil {
		return 0, err
	}
	return evaluator.Evaluate(expr)
}

type loop struct {
	prompt     string
	dumpAST    bool
	parserOpts []parser.Option
}

type Option func(*loop)

// WithPrompt writes prompt before reading each line.
func WithPrompt(prompt string) Option {
	return func(l *loop) { l.prompt = prompt }
}

// WithDumpAST prints the parsed tree before its value.
func WithDumpAST() Option {
	return func(l *loop) { l.dumpAST = true }
}

func WithParserOptions(opts ...parser.Option) Option {
	return func(l *loop) { l.parserOpts = append(l.parserOpts, opts...) }
}

// Run reads expressions from in, one per line, and writes each value to out.
// A line that fails to parse or evaluate produces no output; the failure is
// logged with the logger attached to ctx. Lines have no length limit. Run
// returns nil on EOF or on an "exit" line.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	l := &loop{}
	for _, opt := range opts {
		opt(l)
	}

	logger := zerolog.Ctx(ctx)
	reader := bufio.NewReader(in)
	for lineno := 1; ; lineno++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if l.prompt != "" {
			if _, err := io.WriteString(out, l.prompt); err != nil {
				return fmt.Errorf("write prompt: %w", err)
			}
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if line != "" {
			done, err := l.evalLine(logger, out, lineno, line)
			if err != nil || done {
				return err
			}
		}
		if readErr != nil {
			return nil
		}
	}
}

// evalLine handles a single input line. done is set when the line asks the
// loop to stop.
func (l *loop) evalLine(logger *zerolog.Logger, out io.Writer, lineno int, line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	switch line {
	case ExitCommand:
		return true, nil
	case "":
		return false, nil
	}

	expr, err := parser.Parse(line, l.parserOpts...)
	if err != nil {
		logger.Warn().Err(err).Int("line", lineno).Str("input", truncate(line)).Msg("parse")
		return false, nil
	}
	if l.dumpAST {
		if _, err := pretty.Fprintf(out, "%# v\n", expr); err != nil {
			return false, fmt.Errorf("write tree: %w", err)
		}
	}

	value, err := evaluator.Evaluate(expr)
	if err != nil {
		logger.Warn().Err(err).Int("line", lineno).Str("input", truncate(line)).Msg("evaluate")
		return false, nil
	}
	logger.Debug().Int("line", lineno).Str("input", truncate(line)).Int64("value", value).Msg("evaluated")

	if _, err := fmt.Fprintln(out, value); err != nil {
		return false, fmt.Errorf("write result: %w", err)
	}
	return false, nil
}

const maxLoggedInput = 256

func truncate(line string) string {
	if len(line) <= maxLoggedInput {
		return line
	}
	return line[:maxLoggedInput] + "..."
}
