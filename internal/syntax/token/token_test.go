package token_test

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"testing"

	"go.followtheprocess.codes/lox/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

var (
	// Everything else has these, this allows passing -update or -clean to go test ./...
	// and not getting a flag not defined error.
	_ = flag.Bool("update", false, "Update snapshots")
	_ = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func FuzzTokenString(f *testing.F) {
	// Generate some random integers as seeds
	for range 100 {
		f.Add(rand.Int(), rand.Int(), rand.Int(), rand.Int())
	}

	f.Fuzz(func(t *testing.T, kind, line, start, end int) {
		tok := token.Token{
			Kind:  token.Kind(kind),
			Line:  line,
			Start: start,
			End:   end,
		}

		got := tok.String()

		// It should always look like this, regardless of the numbers
		want := fmt.Sprintf("<Token::%s line=%d, start=%d, end=%d>", token.Kind(kind), line, start, end)

		test.Equal(t, got, want)
	})
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		text string     // Text input
		want token.Kind // Expected token Kind return
		ok   bool       // Expected ok return
	}{
		{text: "and", want: token.And, ok: true},
		{text: "class", want: token.Class, ok: true},
		{text: "else", want: token.Else, ok: true},
		{text: "false", want: token.False, ok: true},
		{text: "for", want: token.For, ok: true},
		{text: "fun", want: token.Fun, ok: true},
		{text: "if", want: token.If, ok: true},
		{text: "nil", want: token.Nil, ok: true},
		{text: "or", want: token.Or, ok: true},
		{text: "print", want: token.Print, ok: true},
		{text: "return", want: token.Return, ok: true},
		{text: "super", want: token.Super, ok: true},
		{text: "this", want: token.This, ok: true},
		{text: "true", want: token.True, ok: true},
		{text: "var", want: token.Var, ok: true},
		{text: "while", want: token.While, ok: true},
		{text: "While", want: token.Ident, ok: false},
		{text: "variable", want: token.Ident, ok: false},
		{text: "_private", want: token.Ident, ok: false},
		{text: "fun2", want: token.Ident, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := token.Keyword(tt.text)
			test.Equal(t, ok, tt.ok)
			test.Equal(t, got, tt.want)
		})
	}
}

func TestLexeme(t *testing.T) {
	src := []byte(`var x = "hello";`)

	tests := []struct {
		name string      // Name of the test case
		want string      // Expected lexeme
		tok  token.Token // Token under test
	}{
		{name: "keyword", tok: token.Token{Kind: token.Var, Line: 1, Start: 0, End: 3}, want: "var"},
		{name: "ident", tok: token.Token{Kind: token.Ident, Line: 1, Start: 4, End: 5}, want: "x"},
		{name: "string", tok: token.Token{Kind: token.String, Line: 1, Start: 9, End: 14}, want: "hello"},
		{name: "eof", tok: token.Token{Kind: token.EOF, Line: 1, Start: 16, End: 16}, want: ""},
		{name: "out of range", tok: token.Token{Kind: token.Ident, Line: 1, Start: 12, End: 99}, want: ""},
		{name: "inverted", tok: token.Token{Kind: token.Ident, Line: 1, Start: 5, End: 2}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.tok.Lexeme(src), tt.want)
		})
	}
}

func TestIsError(t *testing.T) {
	for kind := token.EOF; kind <= token.While; kind++ {
		want := kind == token.ErrorUnknown || kind == token.ErrorUnterminatedString ||
			kind == token.ErrorMalformedNumber
		test.Equal(t, kind.IsError(), want, test.Context("%s.IsError()", kind))
	}
}
