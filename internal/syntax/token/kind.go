package token

// Kind is the kind of a token.
type Kind int

// Token definitions.
//
//go:generate stringer -type Kind -linecomment
const (
	EOF                     Kind = iota // EOF
	ErrorUnknown                        // ErrorUnknown
	ErrorUnterminatedString             // ErrorUnterminatedString
	ErrorMalformedNumber                // ErrorMalformedNumber
	LeftParen                           // LeftParen
	RightParen                          // RightParen
	LeftBrace                           // LeftBrace
	RightBrace                          // RightBrace
	Comma                               // Comma
	Dot                                 // Dot
	Minus                               // Minus
	Plus                                // Plus
	Semicolon                           // Semicolon
	Slash                               // Slash
	Star                                // Star
	Bang                                // Bang
	BangEqual                           // BangEqual
	Equal                               // Equal
	EqualEqual                          // EqualEqual
	Greater                             // Greater
	GreaterEqual                        // GreaterEqual
	Less                                // Less
	LessEqual                           // LessEqual
	Ident                               // Ident
	String                              // String
	Number                              // Number
	And                                 // And
	Class                               // Class
	Else                                // Else
	False                               // False
	For                                 // For
	Fun                                 // Fun
	If                                  // If
	Nil                                 // Nil
	Or                                  // Or
	Print                               // Print
	Return                              // Return
	Super                               // Super
	This                                // This
	True                                // True
	Var                                 // Var
	While                               // While
)

// IsError reports whether the kind is one of the lexical error kinds.
func (k Kind) IsError() bool {
	return k == ErrorUnknown || k == ErrorUnterminatedString || k == ErrorMalformedNumber
}

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
