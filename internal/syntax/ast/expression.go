package ast

import "go.followtheprocess.codes/lox/internal/syntax/token"

// Expr is an expression node.
type Expr interface {
	Node

	// ExprID returns the parser assigned identity of the expression.
	ExprID() ID

	exprNode() // Prevents accidental misuse as another node type
}

// Literal is a literal value expression.
type Literal struct {
	// Value is the literal value, one of nil, bool, float64 or string.
	Value any `json:"value" toml:"value" yaml:"value"`

	// Token is the token the literal was parsed from.
	Token token.Token `json:"-" toml:"-" yaml:"-"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindLiteral].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the first token of the Literal, which is
// obviously just it's own token.
func (l *Literal) Start() token.Token {
	return l.Token
}

// End returns the last token of the Literal, which is also it's
// only token.
func (l *Literal) End() token.Token {
	return l.Token
}

// Kind returns [KindLiteral].
func (l *Literal) Kind() Kind {
	return l.Type
}

// ExprID returns the identity of the Literal.
func (l *Literal) ExprID() ID {
	return l.ID
}

func (l *Literal) exprNode() {}

// Unary is a prefix operator expression e.g. '-x' or '!ok'.
type Unary struct {
	// Right is the operand.
	Right Expr `json:"right" toml:"right" yaml:"right"`

	// Op is the operator token, [token.Minus] or [token.Bang].
	Op token.Token `json:"op" toml:"op" yaml:"op"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindUnary].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the operator token.
func (u *Unary) Start() token.Token {
	return u.Op
}

// End returns the last token in the operand.
func (u *Unary) End() token.Token {
	if u.Right == nil {
		return u.Op
	}

	return u.Right.End()
}

// Kind returns [KindUnary].
func (u *Unary) Kind() Kind {
	return u.Type
}

// ExprID returns the identity of the Unary.
func (u *Unary) ExprID() ID {
	return u.ID
}

func (u *Unary) exprNode() {}

// Binary is an infix arithmetic, comparison or equality expression.
type Binary struct {
	// Left is the left hand operand.
	Left Expr `json:"left" toml:"left" yaml:"left"`

	// Right is the right hand operand.
	Right Expr `json:"right" toml:"right" yaml:"right"`

	// Op is the operator token.
	Op token.Token `json:"op" toml:"op" yaml:"op"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindBinary].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the first token of the left operand.
func (b *Binary) Start() token.Token {
	return b.Left.Start()
}

// End returns the last token of the right operand.
func (b *Binary) End() token.Token {
	return b.Right.End()
}

// Kind returns [KindBinary].
func (b *Binary) Kind() Kind {
	return b.Type
}

// ExprID returns the identity of the Binary.
func (b *Binary) ExprID() ID {
	return b.ID
}

func (b *Binary) exprNode() {}

// Logical is a short circuiting 'and' or 'or' expression.
type Logical struct {
	// Left is the left hand operand, always evaluated.
	Left Expr `json:"left" toml:"left" yaml:"left"`

	// Right is the right hand operand, only evaluated if Left does not
	// decide the result.
	Right Expr `json:"right" toml:"right" yaml:"right"`

	// Op is the operator token, [token.And] or [token.Or].
	Op token.Token `json:"op" toml:"op" yaml:"op"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindLogical].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the first token of the left operand.
func (l *Logical) Start() token.Token {
	return l.Left.Start()
}

// End returns the last token of the right operand.
func (l *Logical) End() token.Token {
	return l.Right.End()
}

// Kind returns [KindLogical].
func (l *Logical) Kind() Kind {
	return l.Type
}

// ExprID returns the identity of the Logical.
func (l *Logical) ExprID() ID {
	return l.ID
}

func (l *Logical) exprNode() {}

// Grouping is a parenthesised expression.
type Grouping struct {
	// Expr is the expression inside the parens.
	Expr Expr `json:"expr" toml:"expr" yaml:"expr"`

	// Open is the opening '('.
	Open token.Token `json:"-" toml:"-" yaml:"-"`

	// Close is the closing ')'.
	Close token.Token `json:"-" toml:"-" yaml:"-"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindGrouping].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the opening paren.
func (g *Grouping) Start() token.Token {
	return g.Open
}

// End returns the closing paren.
func (g *Grouping) End() token.Token {
	return g.Close
}

// Kind returns [KindGrouping].
func (g *Grouping) Kind() Kind {
	return g.Type
}

// ExprID returns the identity of the Grouping.
func (g *Grouping) ExprID() ID {
	return g.ID
}

func (g *Grouping) exprNode() {}

// Variable is a reference to a named variable.
type Variable struct {
	// Name is the variable's name.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Token is the [token.Ident] token.
	Token token.Token `json:"-" toml:"-" yaml:"-"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindVariable].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the [token.Ident].
func (v *Variable) Start() token.Token {
	return v.Token
}

// End returns the [token.Ident].
func (v *Variable) End() token.Token {
	return v.Token
}

// Kind returns [KindVariable].
func (v *Variable) Kind() Kind {
	return v.Type
}

// ExprID returns the identity of the Variable.
func (v *Variable) ExprID() ID {
	return v.ID
}

func (v *Variable) exprNode() {}

// Assign is an assignment to an existing variable e.g. 'x = 1'.
type Assign struct {
	// Value is the expression being assigned.
	Value Expr `json:"value" toml:"value" yaml:"value"`

	// Name is the name of the variable being assigned to.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Token is the [token.Ident] token of the target.
	Token token.Token `json:"-" toml:"-" yaml:"-"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindAssign].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the target [token.Ident].
func (a *Assign) Start() token.Token {
	return a.Token
}

// End returns the last token in the value.
func (a *Assign) End() token.Token {
	if a.Value == nil {
		return a.Token
	}

	return a.Value.End()
}

// Kind returns [KindAssign].
func (a *Assign) Kind() Kind {
	return a.Type
}

// ExprID returns the identity of the Assign.
func (a *Assign) ExprID() ID {
	return a.ID
}

func (a *Assign) exprNode() {}

// Call is a function call expression e.g. 'add(1, 2)'.
type Call struct {
	// Callee is the expression that evaluates to the thing being called.
	Callee Expr `json:"callee" toml:"callee" yaml:"callee"`

	// Args are the argument expressions in source order.
	Args []Expr `json:"args" toml:"args" yaml:"args"`

	// Close is the closing ')', runtime errors raised by the call
	// are reported at it's line.
	Close token.Token `json:"-" toml:"-" yaml:"-"`

	// ID is the expression's identity.
	ID ID `json:"id" toml:"id" yaml:"id"`

	// Type is the kind of node [KindCall].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the first token of the callee.
func (c *Call) Start() token.Token {
	return c.Callee.Start()
}

// End returns the closing paren.
func (c *Call) End() token.Token {
	return c.Close
}

// Kind returns [KindCall].
func (c *Call) Kind() Kind {
	return c.Type
}

// ExprID returns the identity of the Call.
func (c *Call) ExprID() ID {
	return c.ID
}

func (c *Call) exprNode() {}
