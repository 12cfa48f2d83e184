package ast

import "go.followtheprocess.codes/lox/internal/syntax/token"

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode() // Prevents accidental misuse as another node type
}

// Expression is an expression evaluated for it's side effects, the
// value is discarded.
type Expression struct {
	// Expr is the expression.
	Expr Expr `json:"expr" toml:"expr" yaml:"expr"`

	// Semi is the terminating ';'.
	Semi token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindExpression].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the first token in the expression.
func (e *Expression) Start() token.Token {
	return e.Expr.Start()
}

// End returns the terminating ';'.
func (e *Expression) End() token.Token {
	return e.Semi
}

// Kind returns [KindExpression].
func (e *Expression) Kind() Kind {
	return e.Type
}

// stmtNode marks an [Expression] as an [ast.Stmt].
func (e *Expression) stmtNode() {}

// Print evaluates an expression and writes it's display form followed
// by a newline.
type Print struct {
	// Expr is the expression to print.
	Expr Expr `json:"expr" toml:"expr" yaml:"expr"`

	// Keyword is the 'print' keyword.
	Keyword token.Token `json:"-" toml:"-" yaml:"-"`

	// Semi is the terminating ';'.
	Semi token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindPrint].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the 'print' keyword.
func (p *Print) Start() token.Token {
	return p.Keyword
}

// End returns the terminating ';'.
func (p *Print) End() token.Token {
	return p.Semi
}

// Kind returns [KindPrint].
func (p *Print) Kind() Kind {
	return p.Type
}

// stmtNode marks a [Print] as an [ast.Stmt].
func (p *Print) stmtNode() {}

// A Var is a single variable declaration.
type Var struct {
	// Init is the optional initialiser, nil if absent in which
	// case the variable is bound to nil.
	Init Expr `json:"init,omitempty" toml:"init,omitempty" yaml:"init,omitempty"`

	// Name is the name of the variable being declared.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Keyword is the 'var' keyword.
	Keyword token.Token `json:"-" toml:"-" yaml:"-"`

	// Ident is the [token.Ident] naming the variable.
	Ident token.Token `json:"-" toml:"-" yaml:"-"`

	// Semi is the terminating ';'.
	Semi token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindVar].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the 'var' keyword.
func (v *Var) Start() token.Token {
	return v.Keyword
}

// End returns the terminating ';'.
func (v *Var) End() token.Token {
	return v.Semi
}

// Kind returns [KindVar].
func (v *Var) Kind() Kind {
	return v.Type
}

// stmtNode marks a [Var] as an [ast.Stmt].
func (v *Var) stmtNode() {}

// Block is a braced list of statements executed in a new scope.
type Block struct {
	// Stmts are the statements inside the block.
	Stmts []Stmt `json:"stmts" toml:"stmts" yaml:"stmts"`

	// Open is the opening '{'.
	Open token.Token `json:"-" toml:"-" yaml:"-"`

	// Close is the closing '}'.
	Close token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindBlock].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the opening brace.
func (b *Block) Start() token.Token {
	return b.Open
}

// End returns the closing brace.
func (b *Block) End() token.Token {
	return b.Close
}

// Kind returns [KindBlock].
func (b *Block) Kind() Kind {
	return b.Type
}

// stmtNode marks a [Block] as an [ast.Stmt].
func (b *Block) stmtNode() {}

// If is a conditional statement with an optional else branch.
type If struct {
	// Cond is the condition.
	Cond Expr `json:"cond" toml:"cond" yaml:"cond"`

	// Then is the statement executed when Cond is truthy.
	Then Stmt `json:"then" toml:"then" yaml:"then"`

	// Else is the optional statement executed when Cond is falsey.
	Else Stmt `json:"else,omitempty" toml:"else,omitempty" yaml:"else,omitempty"`

	// Keyword is the 'if' keyword.
	Keyword token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindIf].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the 'if' keyword.
func (i *If) Start() token.Token {
	return i.Keyword
}

// End returns the last token in whichever branch comes last.
func (i *If) End() token.Token {
	if i.Else != nil {
		return i.Else.End()
	}

	return i.Then.End()
}

// Kind returns [KindIf].
func (i *If) Kind() Kind {
	return i.Type
}

// stmtNode marks an [If] as an [ast.Stmt].
func (i *If) stmtNode() {}

// While is a loop, 'for' loops are desugared into a While by the parser.
type While struct {
	// Cond is the loop condition, evaluated before every iteration.
	Cond Expr `json:"cond" toml:"cond" yaml:"cond"`

	// Body is the loop body.
	Body Stmt `json:"body" toml:"body" yaml:"body"`

	// Keyword is the 'while' (or 'for') keyword.
	Keyword token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindWhile].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the loop keyword.
func (w *While) Start() token.Token {
	return w.Keyword
}

// End returns the last token in the body.
func (w *While) End() token.Token {
	return w.Body.End()
}

// Kind returns [KindWhile].
func (w *While) Kind() Kind {
	return w.Type
}

// stmtNode marks a [While] as an [ast.Stmt].
func (w *While) stmtNode() {}

// Function is a named function declaration.
type Function struct {
	// Name is the name of the function.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Params are the parameter names in order.
	Params []string `json:"params" toml:"params" yaml:"params"`

	// Body is the list of statements making up the function body.
	Body []Stmt `json:"body" toml:"body" yaml:"body"`

	// Keyword is the 'fun' keyword.
	Keyword token.Token `json:"-" toml:"-" yaml:"-"`

	// Ident is the [token.Ident] naming the function.
	Ident token.Token `json:"-" toml:"-" yaml:"-"`

	// Close is the '}' closing the body.
	Close token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindFunction].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the 'fun' keyword.
func (f *Function) Start() token.Token {
	return f.Keyword
}

// End returns the closing brace of the body.
func (f *Function) End() token.Token {
	return f.Close
}

// Kind returns [KindFunction].
func (f *Function) Kind() Kind {
	return f.Type
}

// stmtNode marks a [Function] as an [ast.Stmt].
func (f *Function) stmtNode() {}

// Return returns from the enclosing function, with an optional value.
type Return struct {
	// Value is the optional value, nil means return nil.
	Value Expr `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"`

	// Keyword is the 'return' keyword.
	Keyword token.Token `json:"-" toml:"-" yaml:"-"`

	// Semi is the terminating ';'.
	Semi token.Token `json:"-" toml:"-" yaml:"-"`

	// Type is the kind of node [KindReturn].
	Type Kind `json:"kind" toml:"kind" yaml:"kind"`
}

// Start returns the 'return' keyword.
func (r *Return) Start() token.Token {
	return r.Keyword
}

// End returns the terminating ';'.
func (r *Return) End() token.Token {
	return r.Semi
}

// Kind returns [KindReturn].
func (r *Return) Kind() Kind {
	return r.Type
}

// stmtNode marks a [Return] as an [ast.Stmt].
func (r *Return) stmtNode() {}
