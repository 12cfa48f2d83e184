package interpreter

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// ErrorKind is the category of a runtime [Error].
type ErrorKind int

//go:generate stringer -type ErrorKind -linecomment
const (
	TypeError       ErrorKind = iota // TypeError
	UnboundVariable                  // UnboundVariable
	NotCallable                      // NotCallable
	ArityMismatch                    // ArityMismatch
	RedefineGlobal                   // RedefineGlobal
	AssignGlobal                     // AssignGlobal
	StackOverflow                    // StackOverflow
)

// Error is a runtime error raised while evaluating a program.
//
// Output written before the error was raised (by print statements) is not
// undone.
type Error struct {
	// Name is the variable or function the error refers to, if any.
	Name string

	// Msg is additional detail, for a [TypeError] it describes the operator
	// and the operand types, for [NotCallable] the type of the callee.
	Msg string

	// Kind is the kind of runtime error.
	Kind ErrorKind

	// Token is the token the error was raised at, it locates the error in the source.
	Token token.Token

	// Line is the source line the error was raised on.
	Line int

	// Arity is the number of parameters the function declares, only set
	// for [ArityMismatch].
	Arity int

	// Got is the number of arguments the function was called with, only set
	// for [ArityMismatch].
	Got int

	// Depth is the maximum call depth that was exceeded, only set
	// for [StackOverflow].
	Depth int
}

// Error implements the error interface for [Error].
func (e *Error) Error() string {
	switch e.Kind {
	case TypeError:
		return fmt.Sprintf("Type error: %s on line %d.", e.Msg, e.Line)
	case UnboundVariable:
		return fmt.Sprintf("Unbound variable: %s on line %d.", e.Name, e.Line)
	case NotCallable:
		return fmt.Sprintf("Can only call functions, got %s on line %d.", e.Msg, e.Line)
	case ArityMismatch:
		return fmt.Sprintf(
			"Function %s expects %d %s but got %d on line %d.",
			e.Name,
			e.Arity,
			plural(e.Arity, "argument"),
			e.Got,
			e.Line,
		)
	case RedefineGlobal:
		return fmt.Sprintf("Trying to redefine an existing global variable: %s on line %d.", e.Name, e.Line)
	case AssignGlobal:
		return fmt.Sprintf("Trying to assign an existing global variable: %s on line %d.", e.Name, e.Line)
	case StackOverflow:
		return fmt.Sprintf("Stack overflow: maximum call depth of %d exceeded calling %s on line %d.", e.Depth, e.Name, e.Line)
	default:
		return fmt.Sprintf("%s error on line %d.", e.Kind, e.Line)
	}
}

// at positions err at tok, if it is an [*Error] that does not already
// have a position.
func at(err error, tok token.Token) error {
	var runtimeErr *Error
	if errors.As(err, &runtimeErr) && runtimeErr.Line == 0 {
		runtimeErr.Token = tok
		runtimeErr.Line = tok.Line
	}

	return err
}

// plural returns word, pluralised if n is not 1.
func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
