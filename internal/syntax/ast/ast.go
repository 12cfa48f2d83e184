// Package ast defines an abstract syntax tree for the lox grammar.
package ast

import (
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Node is the interface for ast nodes.
type Node interface {
	// Start returns the first token associated with the node.
	Start() token.Token

	// End returns the last token associated with the node.
	End() token.Token

	// Kind returns the kind of node this is.
	Kind() Kind
}

// ID uniquely identifies an [Expr] within everything produced by a single parser.
//
// IDs are handed out in creation order starting at 1 and are the keys the resolver
// uses to record binding distances, so two syntactically identical expressions at
// different places in the source are always distinguishable.
type ID int

// Program is the list of top level statements in a lox source file.
type Program []Stmt

// Start returns the first token in the program.
//
// If the program is empty, [token.EOF] is returned.
func (p Program) Start() token.Token {
	if len(p) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return p[0].Start()
}

// End returns the final token in the program.
func (p Program) End() token.Token {
	if len(p) == 0 {
		return token.Token{Kind: token.EOF}
	}

	return p[len(p)-1].End()
}

// Kind returns [KindProgram].
func (p Program) Kind() Kind {
	return KindProgram
}
