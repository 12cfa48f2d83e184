package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/lox/internal/interpreter"
	"go.followtheprocess.codes/lox/internal/syntax"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Styles.
const (
	// errorStyle is the style used for the stage label of an error.
	errorStyle = hue.Red | hue.Bold

	// positionStyle is the style used for the file:line:col of a diagnostic.
	positionStyle = hue.Bold

	// hintStyle is the style used for "did you mean" hints.
	hintStyle = hue.Cyan | hue.Italic

	// caretStyle is the style used for the ^^^ underlining the offending source.
	caretStyle = hue.Red
)

// Stage is the stage of execution an [Error] came from.
type Stage int

//go:generate stringer -type Stage -linecomment
const (
	SyntaxStage  Stage = iota // Syntax
	ResolveStage              // Resolve
	RuntimeStage              // Runtime
)

// Error is the error returned from executing lox source, it wraps the underlying
// [*parser.Error], [*resolver.Error] or [*interpreter.Error] and records the stage
// that raised it.
type Error struct {
	// Err is the underlying error.
	Err error

	// Src is the source text that was executed.
	Src []byte

	// Diagnostic locates the error in the source.
	Diagnostic syntax.Diagnostic

	// Stage is the stage of execution the error came from.
	Stage Stage
}

// newError builds an [*Error] from a stage error.
func newError(stage Stage, name string, src []byte, err error) *Error {
	tok, ok := locate(err)

	var pos syntax.Position
	if ok {
		pos = syntax.Locate(name, src, tok.Start, tok.End)
	} else {
		pos = syntax.Position{Name: name, Line: max(tok.Line, 1), StartCol: 1, EndCol: 1}
	}

	return &Error{
		Err: err,
		Src: src,
		Diagnostic: syntax.Diagnostic{
			Msg:      err.Error(),
			Position: pos,
		},
		Stage: stage,
	}
}

// Error implements the error interface for [Error].
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Report writes a styled report of the error to w, pointing to the offending
// source line.
func (e *Error) Report(w io.Writer) {
	pos := e.Diagnostic.Position
	fmt.Fprintf(w, "%s: %s: %s\n", positionStyle.Text(pos.String()), errorStyle.Text(e.Stage.String()+" error"), e.Err)

	if line, ok := sourceLine(e.Src, pos.Line); ok && strings.TrimSpace(line) != "" {
		width := max(pos.EndCol-pos.StartCol+1, 1)
		gutter := fmt.Sprintf("%4d | ", pos.Line)

		fmt.Fprintf(w, "%s%s\n", gutter, line)
		fmt.Fprintf(
			w,
			"%s%s\n",
			strings.Repeat(" ", len(gutter)+pos.StartCol-1),
			caretStyle.Text(strings.Repeat("^", width)),
		)
	}

	if e.Diagnostic.Hint != "" {
		fmt.Fprintf(w, "%s\n", hintStyle.Text(e.Diagnostic.Hint))
	}
}

// locate returns the token an error refers to, and whether it has a usable position.
func locate(err error) (token.Token, bool) {
	var (
		parseErr   *parser.Error
		resolveErr *resolver.Error
		runtimeErr *interpreter.Error
	)

	var tok token.Token

	switch {
	case errors.As(err, &parseErr):
		tok = parseErr.Token
		tok.Line = parseErr.Line
	case errors.As(err, &resolveErr):
		tok = resolveErr.Token
		tok.Line = resolveErr.Line
	case errors.As(err, &runtimeErr):
		tok = runtimeErr.Token
		tok.Line = runtimeErr.Line
	default:
		return token.Token{}, false
	}

	return tok, tok.Line > 0
}

// hint returns a "did you mean" suggestion if err is an unbound variable that closely
// matches one of the defined names.
func hint(err error, names []string) string {
	var runtimeErr *interpreter.Error
	if !errors.As(err, &runtimeErr) || runtimeErr.Kind != interpreter.UnboundVariable {
		return ""
	}

	matches := fuzzy.Find(runtimeErr.Name, names)
	if len(matches) == 0 {
		return ""
	}

	return fmt.Sprintf("Did you mean %q?", matches[0].Str)
}

// sourceLine returns the given (1 indexed) line of src.
func sourceLine(src []byte, line int) (string, bool) {
	if line < 1 {
		return "", false
	}

	lines := strings.Split(string(src), "\n")
	if line > len(lines) {
		return "", false
	}

	return strings.TrimRight(lines[line-1], "\r"), true
}
