package lox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.followtheprocess.codes/lox/internal/format"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
	"go.followtheprocess.codes/lox/internal/syntax/scanner"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// DefaultFormat is the default output format of the ast subcommand.
const DefaultFormat = "text"

// ASTOptions are the options passed to the ast subcommand.
type ASTOptions struct {
	// Format is the output format, one of [format.Names].
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Tokens implements the tokens subcommand, printing every token in file, one
// per line, up to and including the EOF.
//
// Lexical errors are printed as error tokens rather than failing, the scanner
// recovers and carries on so the whole stream is visible.
func (l Lox) Tokens(ctx context.Context, file string) error {
	logger := l.logger.Prefixed("tokens").With(slog.String("file", file))

	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	count := 0

	for tok := range scanner.New(file, src).All() {
		count++

		lexeme := tok.Lexeme(src)
		if tok.Is(token.String, token.ErrorUnterminatedString) {
			// Strings may span lines, keep one token per line
			lexeme = strconv.Quote(lexeme)
		}

		line := fmt.Sprintf("%4d %-20s %s", tok.Line, tok.Kind, lexeme)
		fmt.Fprintln(l.stdout, strings.TrimRight(line, " "))
	}

	logger.Debug("Scanned file", slog.Int("tokens", count))

	return nil
}

// AST implements the ast subcommand, parsing file and dumping the syntax tree
// in the requested format.
func (l Lox) AST(ctx context.Context, file string, options ASTOptions) error {
	logger := l.logger.Prefixed("ast").With(slog.String("file", file), slog.String("format", options.Format))

	exporter, err := format.Lookup(options.Format)
	if err != nil {
		return fmt.Errorf("invalid option for --format: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	prog, err := parser.New(file, src).Parse()
	if err != nil {
		return newError(SyntaxStage, file, src, err)
	}

	logger.Debug("Parsed file", slog.Int("statements", len(prog)))

	if err := exporter.Export(l.stdout, prog); err != nil {
		return fmt.Errorf("could not export AST as %s: %w", options.Format, err)
	}

	return nil
}
