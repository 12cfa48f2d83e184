package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// indent is the string used to indent nested statements.
const indent = "  "

// symbols maps operator token kinds to the way they are written in source.
var symbols = map[token.Kind]string{
	token.Minus:        "-",
	token.Plus:         "+",
	token.Slash:        "/",
	token.Star:         "*",
	token.Bang:         "!",
	token.BangEqual:    "!=",
	token.EqualEqual:   "==",
	token.Greater:      ">",
	token.GreaterEqual: ">=",
	token.Less:         "<",
	token.LessEqual:    "<=",
	token.And:          "and",
	token.Or:           "or",
}

// Symbol returns the source form of an operator e.g. "<=" for [token.LessEqual],
// or the kind's name if it is not an operator.
func Symbol(op token.Kind) string {
	if symbol, ok := symbols[op]; ok {
		return symbol
	}

	return op.String()
}

// Fprint writes a parenthesised, lisp like, textual dump of prog to w, one top
// level statement per line with nested statements indented beneath their parent.
//
//	var a = 1 + 2;
//
// Is printed as:
//
//	(var a (+ 1 2))
func Fprint(w io.Writer, prog Program) error {
	p := &printer{}
	for _, stmt := range prog {
		p.stmt(stmt)
		p.buf.WriteByte('\n')
	}

	_, err := io.WriteString(w, p.buf.String())

	return err
}

// String returns the textual dump of a single node, as written by [Fprint].
func String(node Node) string {
	p := &printer{}

	switch node := node.(type) {
	case Program:
		for i, stmt := range node {
			if i > 0 {
				p.buf.WriteByte('\n')
			}

			p.stmt(stmt)
		}
	case Stmt:
		p.stmt(node)
	case Expr:
		p.expr(node)
	default:
		fmt.Fprintf(&p.buf, "<unknown node %T>", node)
	}

	return p.buf.String()
}

// printer accumulates the textual form of a tree.
type printer struct {
	buf   strings.Builder
	depth int
}

// newline starts a new line at the current depth.
func (p *printer) newline() {
	p.buf.WriteByte('\n')
	p.buf.WriteString(strings.Repeat(indent, p.depth))
}

// body writes each statement on it's own line, one level deeper than the parent.
func (p *printer) body(stmts []Stmt) {
	p.depth++
	for _, stmt := range stmts {
		p.newline()
		p.stmt(stmt)
	}
	p.depth--
}

func (p *printer) stmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *Expression:
		p.buf.WriteString("(expr ")
		p.expr(stmt.Expr)
		p.buf.WriteByte(')')
	case *Print:
		p.buf.WriteString("(print ")
		p.expr(stmt.Expr)
		p.buf.WriteByte(')')
	case *Var:
		p.buf.WriteString("(var ")
		p.buf.WriteString(stmt.Name)

		if stmt.Init != nil {
			p.buf.WriteByte(' ')
			p.expr(stmt.Init)
		}

		p.buf.WriteByte(')')
	case *Block:
		p.buf.WriteString("(block")
		p.body(stmt.Stmts)
		p.buf.WriteByte(')')
	case *If:
		p.buf.WriteString("(if ")
		p.expr(stmt.Cond)
		p.body([]Stmt{stmt.Then})

		if stmt.Else != nil {
			p.depth++
			p.newline()
			p.buf.WriteString("(else")
			p.body([]Stmt{stmt.Else})
			p.buf.WriteByte(')')
			p.depth--
		}

		p.buf.WriteByte(')')
	case *While:
		p.buf.WriteString("(while ")
		p.expr(stmt.Cond)
		p.body([]Stmt{stmt.Body})
		p.buf.WriteByte(')')
	case *Function:
		p.buf.WriteString("(fun ")
		p.buf.WriteString(stmt.Name)
		p.buf.WriteString(" (")
		p.buf.WriteString(strings.Join(stmt.Params, " "))
		p.buf.WriteByte(')')
		p.body(stmt.Body)
		p.buf.WriteByte(')')
	case *Return:
		p.buf.WriteString("(return")

		if stmt.Value != nil {
			p.buf.WriteByte(' ')
			p.expr(stmt.Value)
		}

		p.buf.WriteByte(')')
	default:
		fmt.Fprintf(&p.buf, "<unknown stmt %T>", stmt)
	}
}

func (p *printer) expr(expr Expr) {
	switch expr := expr.(type) {
	case *Literal:
		p.buf.WriteString(FormatLiteral(expr.Value))
	case *Unary:
		p.buf.WriteByte('(')
		p.buf.WriteString(symbols[expr.Op.Kind])
		p.buf.WriteByte(' ')
		p.expr(expr.Right)
		p.buf.WriteByte(')')
	case *Binary:
		p.infix(expr.Op.Kind, expr.Left, expr.Right)
	case *Logical:
		p.infix(expr.Op.Kind, expr.Left, expr.Right)
	case *Grouping:
		p.buf.WriteString("(group ")
		p.expr(expr.Expr)
		p.buf.WriteByte(')')
	case *Variable:
		p.buf.WriteString(expr.Name)
	case *Assign:
		p.buf.WriteString("(= ")
		p.buf.WriteString(expr.Name)
		p.buf.WriteByte(' ')
		p.expr(expr.Value)
		p.buf.WriteByte(')')
	case *Call:
		p.buf.WriteString("(call ")
		p.expr(expr.Callee)

		for _, arg := range expr.Args {
			p.buf.WriteByte(' ')
			p.expr(arg)
		}

		p.buf.WriteByte(')')
	default:
		fmt.Fprintf(&p.buf, "<unknown expr %T>", expr)
	}
}

func (p *printer) infix(op token.Kind, left, right Expr) {
	p.buf.WriteByte('(')
	p.buf.WriteString(symbols[op])
	p.buf.WriteByte(' ')
	p.expr(left)
	p.buf.WriteByte(' ')
	p.expr(right)
	p.buf.WriteByte(')')
}

// FormatLiteral returns the source like representation of a literal value.
//
// Numbers are written in their shortest form, so 3.0 is "3" and strings
// are quoted.
func FormatLiteral(value any) string {
	switch value := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case string:
		return strconv.Quote(value)
	default:
		return fmt.Sprintf("<unknown literal %T>", value)
	}
}
