package interpreter

import (
	"math"
	"strconv"
	"strings"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
)

// Value is a lox runtime value, it is always one of:
//
//   - nil
//   - bool
//   - float64
//   - string
//   - [*Function]
type Value any

// Function is a user defined function closed over the environment it was
// declared in.
type Function struct {
	decl     *ast.Function     // The declaration
	closure  *Environment      // The environment active when the declaration was executed
	bindings resolver.Bindings // The bindings the body was resolved with
}

// Name returns the name of the function.
func (f *Function) Name() string {
	return f.decl.Name
}

// Arity returns the number of parameters the function declares.
func (f *Function) Arity() int {
	return len(f.decl.Params)
}

// String implements [fmt.Stringer] for a [Function].
func (f *Function) String() string {
	return "func " + f.decl.Name + "(" + strings.Join(f.decl.Params, ", ") + ")"
}

// Display returns the printed form of a value, as written by a print statement.
func Display(value Value) string {
	switch value := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return formatNumber(value)
	case string:
		return strconv.Quote(value)
	case *Function:
		return value.String()
	default:
		return "<unknown value>"
	}
}

// Truthy reports whether value counts as true in a condition, nil and false
// are false, everything else (including 0 and "") is true.
func Truthy(value Value) bool {
	switch value := value.(type) {
	case nil:
		return false
	case bool:
		return value
	default:
		return true
	}
}

// Equal reports whether two values are equal.
//
// Values of different types are never equal, functions are only equal
// to themselves.
func Equal(a, b Value) bool {
	// Every Value is a comparable type so interface equality is exactly
	// what we want, including NaN != NaN
	return a == b
}

// TypeName returns the name of the type of value, as used in error messages.
func TypeName(value Value) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function:
		return "function"
	default:
		return "unknown"
	}
}

// formatNumber formats a number in it's shortest decimal form.
func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "nan"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}
