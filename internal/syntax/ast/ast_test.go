package ast_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

func TestNode(t *testing.T) {
	// var a = 1 + b;
	one := &ast.Literal{
		Value: 1.0,
		Token: token.Token{Kind: token.Number, Line: 1, Start: 8, End: 9},
		ID:    1,
		Type:  ast.KindLiteral,
	}
	b := &ast.Variable{
		Name:  "b",
		Token: token.Token{Kind: token.Ident, Line: 1, Start: 12, End: 13},
		ID:    2,
		Type:  ast.KindVariable,
	}
	sum := &ast.Binary{
		Left:  one,
		Right: b,
		Op:    token.Token{Kind: token.Plus, Line: 1, Start: 10, End: 11},
		ID:    3,
		Type:  ast.KindBinary,
	}
	decl := &ast.Var{
		Init:    sum,
		Name:    "a",
		Keyword: token.Token{Kind: token.Var, Line: 1, Start: 0, End: 3},
		Ident:   token.Token{Kind: token.Ident, Line: 1, Start: 4, End: 5},
		Semi:    token.Token{Kind: token.Semicolon, Line: 1, Start: 13, End: 14},
		Type:    ast.KindVar,
	}

	tests := []struct {
		node  ast.Node    // Node under test
		name  string      // Name of the test case
		start token.Token // Expected start token
		end   token.Token // Expected end token
		kind  ast.Kind    // Expected node kind
	}{
		{
			name:  "empty program",
			node:  ast.Program{},
			start: token.Token{Kind: token.EOF},
			end:   token.Token{Kind: token.EOF},
			kind:  ast.KindProgram,
		},
		{
			name:  "literal",
			node:  one,
			start: one.Token,
			end:   one.Token,
			kind:  ast.KindLiteral,
		},
		{
			name:  "binary",
			node:  sum,
			start: one.Token,
			end:   b.Token,
			kind:  ast.KindBinary,
		},
		{
			name:  "var",
			node:  decl,
			start: decl.Keyword,
			end:   decl.Semi,
			kind:  ast.KindVar,
		},
		{
			name:  "program",
			node:  ast.Program{decl},
			start: decl.Keyword,
			end:   decl.Semi,
			kind:  ast.KindProgram,
		},
		{
			name: "if no else",
			node: &ast.If{
				Cond:    b,
				Then:    decl,
				Keyword: token.Token{Kind: token.If, Line: 1, Start: 0, End: 2},
				Type:    ast.KindIf,
			},
			start: token.Token{Kind: token.If, Line: 1, Start: 0, End: 2},
			end:   decl.Semi,
			kind:  ast.KindIf,
		},
		{
			name: "unary missing operand",
			node: &ast.Unary{
				Op:   token.Token{Kind: token.Minus, Line: 1, Start: 0, End: 1},
				Type: ast.KindUnary,
			},
			start: token.Token{Kind: token.Minus, Line: 1, Start: 0, End: 1},
			end:   token.Token{Kind: token.Minus, Line: 1, Start: 0, End: 1},
			kind:  ast.KindUnary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.node.Start(), tt.start, test.Context("Wrong start token"))
			test.Equal(t, tt.node.End(), tt.end, test.Context("Wrong end token"))
			test.Equal(t, tt.node.Kind(), tt.kind, test.Context("Wrong node kind"))
		})
	}
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		value any    // The literal value
		name  string // Name of the test case
		want  string // Expected formatted literal
	}{
		{name: "nil", value: nil, want: "nil"},
		{name: "true", value: true, want: "true"},
		{name: "false", value: false, want: "false"},
		{name: "integer", value: 3.0, want: "3"},
		{name: "float", value: 2.5, want: "2.5"},
		{name: "big", value: 1e21, want: "1000000000000000000000"},
		{name: "inf", value: math.Inf(1), want: "+Inf"},
		{name: "string", value: "hello", want: `"hello"`},
		{name: "string with quote", value: `say "hi"`, want: `"say \"hi\""`},
		{name: "unknown", value: 1, want: "<unknown literal int>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, ast.FormatLiteral(tt.value), tt.want)
		})
	}
}

func TestSymbol(t *testing.T) {
	test.Equal(t, ast.Symbol(token.LessEqual), "<=")
	test.Equal(t, ast.Symbol(token.Or), "or")
	test.Equal(t, ast.Symbol(token.Ident), "Ident")
}

func TestString(t *testing.T) {
	variable := func(name string) *ast.Variable {
		return &ast.Variable{Name: name, Type: ast.KindVariable}
	}
	number := func(n float64) *ast.Literal {
		return &ast.Literal{Value: n, Type: ast.KindLiteral}
	}

	tests := []struct {
		node ast.Node // Node to print
		name string   // Name of the test case
		want string   // Expected textual form
	}{
		{
			name: "literal",
			node: number(42),
			want: "42",
		},
		{
			name: "unary",
			node: &ast.Unary{Right: variable("x"), Op: token.Token{Kind: token.Bang}, Type: ast.KindUnary},
			want: "(! x)",
		},
		{
			name: "logical",
			node: &ast.Logical{
				Left:  variable("a"),
				Right: variable("b"),
				Op:    token.Token{Kind: token.Or},
				Type:  ast.KindLogical,
			},
			want: "(or a b)",
		},
		{
			name: "grouping",
			node: &ast.Grouping{
				Expr: &ast.Binary{
					Left:  number(1),
					Right: number(2),
					Op:    token.Token{Kind: token.LessEqual},
					Type:  ast.KindBinary,
				},
				Type: ast.KindGrouping,
			},
			want: "(group (<= 1 2))",
		},
		{
			name: "assign",
			node: &ast.Assign{Value: number(1), Name: "a", Type: ast.KindAssign},
			want: "(= a 1)",
		},
		{
			name: "call",
			node: &ast.Call{
				Callee: variable("add"),
				Args:   []ast.Expr{number(1), variable("b")},
				Type:   ast.KindCall,
			},
			want: "(call add 1 b)",
		},
		{
			name: "call no args",
			node: &ast.Call{Callee: variable("clock"), Type: ast.KindCall},
			want: "(call clock)",
		},
		{
			name: "var no init",
			node: &ast.Var{Name: "a", Type: ast.KindVar},
			want: "(var a)",
		},
		{
			name: "return nothing",
			node: &ast.Return{Type: ast.KindReturn},
			want: "(return)",
		},
		{
			name: "function",
			node: &ast.Function{
				Name:   "add",
				Params: []string{"a", "b"},
				Body: []ast.Stmt{
					&ast.Return{
						Value: &ast.Binary{
							Left:  variable("a"),
							Right: variable("b"),
							Op:    token.Token{Kind: token.Plus},
							Type:  ast.KindBinary,
						},
						Type: ast.KindReturn,
					},
				},
				Type: ast.KindFunction,
			},
			want: "(fun add (a b)\n  (return (+ a b)))",
		},
		{
			name: "if else",
			node: &ast.If{
				Cond: variable("ok"),
				Then: &ast.Print{Expr: number(1), Type: ast.KindPrint},
				Else: &ast.Print{Expr: number(2), Type: ast.KindPrint},
				Type: ast.KindIf,
			},
			want: "(if ok\n  (print 1)\n  (else\n    (print 2)))",
		},
		{
			name: "while block",
			node: &ast.While{
				Cond: &ast.Literal{Value: true, Type: ast.KindLiteral},
				Body: &ast.Block{
					Stmts: []ast.Stmt{&ast.Expression{Expr: variable("x"), Type: ast.KindExpression}},
					Type:  ast.KindBlock,
				},
				Type: ast.KindWhile,
			},
			want: "(while true\n  (block\n    (expr x)))",
		},
		{
			name: "program",
			node: ast.Program{
				&ast.Var{Name: "a", Init: number(1), Type: ast.KindVar},
				&ast.Print{Expr: variable("a"), Type: ast.KindPrint},
			},
			want: "(var a 1)\n(print a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Diff(t, ast.String(tt.node), tt.want)
		})
	}
}

func TestFprint(t *testing.T) {
	prog := ast.Program{
		&ast.Var{Name: "a", Init: &ast.Literal{Value: "hi", Type: ast.KindLiteral}, Type: ast.KindVar},
		&ast.Block{
			Stmts: []ast.Stmt{
				&ast.Print{Expr: &ast.Variable{Name: "a", Type: ast.KindVariable}, Type: ast.KindPrint},
			},
			Type: ast.KindBlock,
		},
	}

	buf := &bytes.Buffer{}
	test.Ok(t, ast.Fprint(buf, prog))

	want := "(var a \"hi\")\n(block\n  (print a))\n"
	test.Diff(t, buf.String(), want)
}

func TestJSON(t *testing.T) {
	decl := &ast.Var{
		Init: &ast.Literal{Value: 1.0, ID: 1, Type: ast.KindLiteral},
		Name: "a",
		Type: ast.KindVar,
	}

	got, err := json.Marshal(decl)
	test.Ok(t, err)

	want := `{"init":{"value":1,"id":1,"kind":"Literal"},"name":"a","kind":"Var"}`
	test.Equal(t, string(got), want)

	// Operator tokens are part of the encoding, punctuation is not
	neg := &ast.Unary{
		Right: &ast.Variable{Name: "x", ID: 1, Type: ast.KindVariable},
		Op:    token.Token{Kind: token.Minus, Line: 2, Start: 4, End: 5},
		ID:    2,
		Type:  ast.KindUnary,
	}

	got, err = json.Marshal(neg)
	test.Ok(t, err)

	want = `{"right":{"name":"x","id":1,"kind":"Variable"},"op":{"kind":"Minus","line":2,"start":4,"end":5},"id":2,"kind":"Unary"}`
	test.Equal(t, string(got), want)
}
