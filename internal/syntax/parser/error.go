package parser

import (
	"fmt"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// maxArgs is the maximum number of parameters a function may declare and the
// maximum number of arguments a call may pass.
const maxArgs = 255

// ErrorKind is the category of a parse [Error].
type ErrorKind int

//go:generate stringer -type ErrorKind -linecomment
const (
	UnexpectedEnd      ErrorKind = iota // UnexpectedEnd
	UnexpectedToken                     // UnexpectedToken
	InvalidAssignment                   // InvalidAssignment
	TooManyParameters                   // TooManyParameters
	TooManyArguments                    // TooManyArguments
	UnterminatedString                  // UnterminatedString
	MalformedNumber                     // MalformedNumber
	UnknownCharacter                    // UnknownCharacter
)

// Error is a syntax error, the parser stops at the first one.
//
// Lexical errors (unterminated strings, malformed numbers and unknown characters)
// are reported by the parser as an Error of the matching kind when it reaches the
// offending token.
type Error struct {
	// Expected describes what the parser was looking for, only set for
	// [UnexpectedEnd] and [UnexpectedToken].
	Expected string

	// Lexeme is the source text of the offending token.
	Lexeme string

	// Token is the offending token, it locates the error in the source.
	Token token.Token

	// Kind is the kind of syntax error.
	Kind ErrorKind

	// Actual is the kind of token that was found.
	Actual token.Kind

	// Line is the source line the error is reported at.
	Line int
}

// Error implements the error interface for [Error].
func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		return fmt.Sprintf("Expected %s, but ran out of tokens.", e.Expected)
	case UnexpectedToken:
		return fmt.Sprintf("Expected %s on line %d, but found %s '%s'.", e.Expected, e.Line, e.Actual, e.Lexeme)
	case InvalidAssignment:
		return fmt.Sprintf("Invalid assignment target on line %d.", e.Line)
	case TooManyParameters:
		return fmt.Sprintf("Parameters to a function are capped at %d (line %d).", maxArgs, e.Line)
	case TooManyArguments:
		return fmt.Sprintf("Arguments to a function are capped at %d (line %d).", maxArgs, e.Line)
	case UnterminatedString:
		return fmt.Sprintf("Unterminated string on line %d: %q.", e.Line, e.Lexeme)
	case MalformedNumber:
		return fmt.Sprintf("Malformed number on line %d: '%s'.", e.Line, e.Lexeme)
	case UnknownCharacter:
		return fmt.Sprintf("Unknown character on line %d: '%s'.", e.Line, e.Lexeme)
	default:
		return fmt.Sprintf("%s error on line %d.", e.Kind, e.Line)
	}
}
