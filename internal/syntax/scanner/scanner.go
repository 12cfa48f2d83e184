// Package scanner implements a lexical scanner for lox source, reading the raw source
// text and producing a stream of tokens on demand.
//
// The scanner is a state-function based scanner similar to that described by
// Rob Pike in his talk [Lexical Scanning in Go], based on the implementation of [text/template].
//
// The scanner proceeds one utf8 rune at a time until a particular token is recognised. Unlike
// the talk, the state machine is not run in its own goroutine, each call to [Scanner.Scan]
// steps the machine only until the next token has been emitted. This makes the token stream
// lazy and means a parser that bails out early never leaves anything running behind it.
//
// Malformed input never stops the scanner, unterminated strings, malformed numbers and
// unknown characters are emitted as error tokens for the parser to report.
//
// A similar approach is taken in [BurntSushi/toml].
//
// [Lexical Scanning in Go]: https://go.dev/talks/2011/lex.slide#1
// [BurntSushi/toml]: https://github.com/BurntSushi/toml/blob/master/lex.go
package scanner

import (
	"bytes"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// eof signifies we have reached the end of the input.
const eof = rune(-1)

// stateFn represents the state of the scanner as a function that does the work
// associated with the current state, then returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner is the lox source scanner.
type Scanner struct {
	state   stateFn     // The state to run next, nil once EOF has been emitted
	name    string      // Name of the file
	src     []byte      // Raw source text
	current token.Token // The most recently emitted token
	start   int         // The start position of the current token
	pos     int         // Current scanner position in src (bytes, 0 indexed)
	line    int         // Current line number (1 indexed)
	ready   bool        // Whether current holds a token not yet returned by Scan
}

// New returns a new [Scanner].
func New(name string, src []byte) *Scanner {
	return &Scanner{
		state: scanStart,
		name:  name,
		src:   src,
		line:  1,
	}
}

// Name returns the name of the file being scanned.
func (s *Scanner) Name() string {
	return s.name
}

// Scan scans the input and returns the next token.
//
// The final token is always a single [token.EOF], once that has been returned
// every subsequent call returns the same EOF token again without doing any
// more work.
func (s *Scanner) Scan() token.Token {
	for !s.ready {
		if s.state == nil {
			// Finished, keep handing out the EOF
			return s.current
		}

		s.state = s.state(s)
	}

	s.ready = false

	return s.current
}

// All returns an iterator over the remaining tokens in the input, the last
// token yielded is the [token.EOF].
func (s *Scanner) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		if s.state == nil && !s.ready {
			// Already exhausted
			return
		}

		for {
			tok := s.Scan()
			if !yield(tok) || tok.Is(token.EOF) {
				return
			}
		}
	}
}

// atEOF reports whether the scanner is at the end of the input.
func (s *Scanner) atEOF() bool {
	return s.pos >= len(s.src)
}

// char returns the next utf8 rune in the input or [eof], along with it's width.
//
// Invalid utf8 is returned as [utf8.RuneError] with a width of 1 so the scanner
// always makes progress.
func (s *Scanner) char() (rune, int) {
	if s.atEOF() {
		return eof, 0
	}

	return utf8.DecodeRune(s.src[s.pos:])
}

// next returns the next utf8 rune in the input or [eof], and advances
// the scanner over that rune such that successive calls to next iterate
// through src one rune at a time.
func (s *Scanner) next() rune {
	char, width := s.char()

	s.pos += width

	if char == '\n' {
		s.line++
	}

	return char
}

// peek returns the next utf8 rune in the input or [eof], but does not
// advance the scanner. Successive calls to peek return the same char
// over and over again.
func (s *Scanner) peek() rune {
	char, _ := s.char()
	return char
}

// discard brings the start position up to current, effectively discarding
// any text the scanner has "collected" up to this point.
func (s *Scanner) discard() {
	s.start = s.pos
}

// rest returns the rest of the input from the current scanner position,
// or nil if the scanner is an EOF.
func (s *Scanner) rest() []byte {
	if s.atEOF() {
		return nil
	}

	return s.src[s.pos:]
}

// restHasPrefix reports whether the remainder of the input begins with the
// provided run of characters.
func (s *Scanner) restHasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.rest(), []byte(prefix))
}

// skip ignores any characters for which the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the
// first 'false' char.
//
// The scanner start position is brought up to the current position before returning, effectively
// ignoring everything it's travelled over in the meantime.
func (s *Scanner) skip(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}

	s.discard()
}

// take consumes the next rune if it's from the valid set, and returns
// whether it was accepted.
func (s *Scanner) take(valid string) bool {
	if strings.ContainsRune(valid, s.peek()) {
		s.next()
		return true
	}

	return false
}

// takeWhile consumes characters so long as the predicate returns true, stopping at the
// first one that returns false such that after it returns, [Scanner.next] returns the first 'false' rune.
func (s *Scanner) takeWhile(predicate func(r rune) bool) {
	for predicate(s.peek()) {
		s.next()
	}
}

// takeUntil consumes characters until it hits any of the specified runes.
//
// It stops before it consumes the first specified rune such that after it returns,
// the next call to [Scanner.next] returns the offending rune.
//
//	s.takeUntil('\n', '\t') // Consume runes until you hit a newline or a tab
func (s *Scanner) takeUntil(runes ...rune) {
	for {
		next := s.peek()
		if next == eof || slices.Contains(runes, next) {
			return
		}

		s.next()
	}
}

// emit records a token of the given kind tagged with the current line, using the
// scanner's internal state to populate position information.
func (s *Scanner) emit(kind token.Kind) {
	s.emitLine(kind, s.line)
}

// emitLine is like emit but tags the token with an explicit line, string literals
// may span lines and are reported at the line they started on.
func (s *Scanner) emitLine(kind token.Kind, line int) {
	s.current = token.Token{
		Kind:  kind,
		Line:  line,
		Start: s.start,
		End:   s.pos,
	}
	s.ready = true

	// We've just emitted it, no need to keep it
	s.discard()
}

// scanStart is the initial state of the scanner, it skips whitespace and comments
// and dispatches on the first character of the next token.
func scanStart(s *Scanner) stateFn {
	s.skip(isSpace)

	if s.restHasPrefix("//") {
		return scanComment
	}

	switch char := s.next(); char {
	case eof:
		s.emit(token.EOF)
		return nil
	case '(':
		s.emit(token.LeftParen)
	case ')':
		s.emit(token.RightParen)
	case '{':
		s.emit(token.LeftBrace)
	case '}':
		s.emit(token.RightBrace)
	case ',':
		s.emit(token.Comma)
	case '.':
		s.emit(token.Dot)
	case '-':
		s.emit(token.Minus)
	case '+':
		s.emit(token.Plus)
	case ';':
		s.emit(token.Semicolon)
	case '*':
		s.emit(token.Star)
	case '/':
		s.emit(token.Slash)
	case '!':
		s.emitEither('=', token.BangEqual, token.Bang)
	case '=':
		s.emitEither('=', token.EqualEqual, token.Equal)
	case '<':
		s.emitEither('=', token.LessEqual, token.Less)
	case '>':
		s.emitEither('=', token.GreaterEqual, token.Greater)
	case '"':
		return scanString
	default:
		switch {
		case isDigit(char):
			return scanNumber
		case isAlpha(char):
			return scanIdent
		default:
			s.emit(token.ErrorUnknown)
		}
	}

	return scanStart
}

// emitEither emits long if the next character is want (consuming it), otherwise
// it emits short. Used for the one-or-two character operators.
func (s *Scanner) emitEither(want rune, long, short token.Kind) {
	if s.take(string(want)) {
		s.emit(long)
		return
	}

	s.emit(short)
}

// scanComment scans a '//' line comment, discarding it entirely.
func scanComment(s *Scanner) stateFn {
	s.takeUntil('\n')
	s.discard()

	return scanStart
}

// scanString scans a string literal, the emitted token spans the contents
// between (not including) the quotes.
//
// It assumes the opening '"' has already been consumed.
func scanString(s *Scanner) stateFn {
	s.discard()
	startLine := s.line

	s.takeUntil('"')

	if s.atEOF() {
		// Ran out of input before the closing quote, hand the parser the
		// partial contents and the line we got to
		s.emit(token.ErrorUnterminatedString)
		return scanStart
	}

	s.emitLine(token.String, startLine)

	// Now the closing quote
	s.next()
	s.discard()

	return scanStart
}

// scanNumber scans a number literal, a run of digits optionally followed by
// a '.' and another run of digits.
//
// It assumes the first digit has already been consumed.
func scanNumber(s *Scanner) stateFn {
	s.takeWhile(isDigit)

	if s.take(".") {
		if !isDigit(s.peek()) {
			// Something like '12.', there must be a digit after the point
			s.emit(token.ErrorMalformedNumber)
			return scanStart
		}

		s.takeWhile(isDigit)
	}

	s.emit(token.Number)

	return scanStart
}

// scanIdent scans an identifier or keyword.
//
// It assumes the first character has already been consumed.
func scanIdent(s *Scanner) stateFn {
	s.takeWhile(isIdent)

	kind, _ := token.Keyword(string(s.src[s.start:s.pos]))
	s.emit(kind)

	return scanStart
}

// isSpace reports whether r is whitespace that separates tokens.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isAlpha reports whether r is a valid first character in an identifier.
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isDigit reports whether r is a valid ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdent reports whether r is a valid identifier character.
func isIdent(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
