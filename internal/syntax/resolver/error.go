package resolver

import (
	"fmt"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// ErrorKind is the category of a resolve [Error].
type ErrorKind int

//go:generate stringer -type ErrorKind -linecomment
const (
	SelfInitialization ErrorKind = iota // SelfInitialization
)

// Error is a static error found while resolving.
type Error struct {
	// Name is the variable the error refers to.
	Name string

	// Token is the offending reference, it locates the error in the source.
	Token token.Token

	// Kind is the kind of resolve error.
	Kind ErrorKind

	// Line is the source line of the offending reference.
	Line int
}

// Error implements the error interface for [Error].
func (e *Error) Error() string {
	switch e.Kind {
	case SelfInitialization:
		return fmt.Sprintf("Cannot read variable %s in its own initializer on line %d.", e.Name, e.Line)
	default:
		return fmt.Sprintf("%s error on line %d.", e.Kind, e.Line)
	}
}
