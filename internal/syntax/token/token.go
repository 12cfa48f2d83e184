// Package token provides the set of lexical tokens for a lox source file.
package token

import (
	"fmt"
	"slices"
)

// Token is a lexical token in a lox source file.
//
// Tokens hold no text, the lexeme is recovered from the source with
// src[Start:End]. For string literals the range excludes the quotes.
type Token struct {
	Kind  Kind `json:"kind" toml:"kind" yaml:"kind"`  // The kind of token this is
	Line  int  `json:"line" toml:"line" yaml:"line"`  // Source line (1 indexed) the token is tagged with
	Start int  `json:"start" toml:"start" yaml:"start"` // Byte offset from the start of the file to the start of this token
	End   int  `json:"end" toml:"end" yaml:"end"`   // Byte offset from the start of the file to the end of this token
}

// String implement [fmt.Stringer] for a [Token].
func (t Token) String() string {
	return fmt.Sprintf("<Token::%s line=%d, start=%d, end=%d>", t.Kind, t.Line, t.Start, t.End)
}

// Is reports whether the token is any of the provided [Kind]s.
func (t Token) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// Lexeme returns the text of the token from the source it was scanned from.
//
// If the token's range does not fit within src, "" is returned.
func (t Token) Lexeme(src []byte) string {
	if t.Start < 0 || t.End > len(src) || t.Start > t.End {
		return ""
	}

	return string(src[t.Start:t.End])
}

// keywords maps reserved identifier spellings to their [Kind].
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Keyword reports whether a string refers to a keyword, returning it's [Kind]
// and true if it is. Otherwise [Ident] and false are returned.
func Keyword(text string) (kind Kind, ok bool) {
	kind, ok = keywords[text]
	if !ok {
		return Ident, false
	}

	return kind, true
}
