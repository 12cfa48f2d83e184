package ast

// Kind is the type of an ast Node.
type Kind int

// AST Node kinds.
//
//go:generate stringer -type Kind -linecomment
const (
	KindInvalid    Kind = iota // Invalid
	KindProgram                // Program
	KindLiteral                // Literal
	KindUnary                  // Unary
	KindBinary                 // Binary
	KindLogical                // Logical
	KindGrouping               // Grouping
	KindVariable               // Variable
	KindAssign                 // Assign
	KindCall                   // Call
	KindExpression             // Expression
	KindPrint                  // Print
	KindVar                    // Var
	KindBlock                  // Block
	KindIf                     // If
	KindWhile                  // While
	KindFunction               // Function
	KindReturn                 // Return
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
