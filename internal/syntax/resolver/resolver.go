// Package resolver implements the static resolution pass over a parsed lox program.
//
// The resolver walks the tree once before execution, working out for every variable
// reference and assignment how many scopes lie between the use and the declaration
// it refers to. The result is a [Bindings] table the interpreter consults so that
// closures see the variable that was in scope where they were written, rather than
// whatever happens to share the name when they run.
//
// Globals are never recorded, they are looked up by name at runtime which is what
// allows functions to refer to globals declared after them.
package resolver

import (
	"go.followtheprocess.codes/lox/internal/syntax/ast"
)

// Bindings maps a variable or assignment expression, by it's [ast.ID], to the
// number of scopes between it and the declaration of the name it refers to.
//
// Expressions with no entry refer to globals.
type Bindings map[ast.ID]int

// Lookup returns the scope distance for expr, and whether it was resolved
// to a local at all.
func (b Bindings) Lookup(expr ast.Expr) (int, bool) {
	distance, ok := b[expr.ExprID()]
	return distance, ok
}

// Resolver is the static resolver for lox programs.
//
// A Resolver remembers the globals defined by everything it has resolved so far,
// so a REPL may resolve line after line with the same one.
type Resolver struct {
	global   *environment // The global scope, persists across calls to Resolve
	current  *environment // The innermost scope
	bindings Bindings     // Bindings collected by the current call to Resolve
}

// New returns a new [Resolver].
func New() *Resolver {
	global := newEnvironment()

	return &Resolver{
		global:  global,
		current: global,
	}
}

// Resolve resolves every variable reference in prog, returning the binding table.
//
// The returned error, if any, is always an [*Error]. Resolving the same program
// twice produces equal tables.
func (r *Resolver) Resolve(prog ast.Program) (Bindings, error) {
	r.reset()

	for _, stmt := range prog {
		if err := r.resolveStatement(stmt); err != nil {
			return nil, err
		}
	}

	return r.bindings, nil
}

// ResolveExpression resolves a single expression, as evaluated in the global scope.
func (r *Resolver) ResolveExpression(expr ast.Expr) (Bindings, error) {
	r.reset()

	if err := r.resolveExpression(expr); err != nil {
		return nil, err
	}

	return r.bindings, nil
}

// reset prepares the resolver for a new call to Resolve, discarding anything left
// over from a previous one that stopped with an error.
func (r *Resolver) reset() {
	r.global.forget()
	r.current = r.global
	r.bindings = make(Bindings)
}

// beginScope pushes a new innermost scope.
func (r *Resolver) beginScope() {
	r.current = r.current.child()
}

// endScope pops the innermost scope.
func (r *Resolver) endScope() {
	r.current = r.current.parent
}

// resolveStatements resolves a list of statements in order.
func (r *Resolver) resolveStatements(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := r.resolveStatement(stmt); err != nil {
			return err
		}
	}

	return nil
}

// resolveStatement resolves a generic [ast.Stmt].
func (r *Resolver) resolveStatement(statement ast.Stmt) error {
	switch stmt := statement.(type) {
	case *ast.Expression:
		return r.resolveExpression(stmt.Expr)
	case *ast.Print:
		return r.resolveExpression(stmt.Expr)
	case *ast.Var:
		r.current.declare(stmt.Name)

		if stmt.Init != nil {
			if err := r.resolveExpression(stmt.Init); err != nil {
				return err
			}
		}

		r.current.define(stmt.Name)

		return nil
	case *ast.Block:
		r.beginScope()
		defer r.endScope()

		return r.resolveStatements(stmt.Stmts)
	case *ast.If:
		if err := r.resolveExpression(stmt.Cond); err != nil {
			return err
		}

		if err := r.resolveStatement(stmt.Then); err != nil {
			return err
		}

		if stmt.Else != nil {
			return r.resolveStatement(stmt.Else)
		}

		return nil
	case *ast.While:
		if err := r.resolveExpression(stmt.Cond); err != nil {
			return err
		}

		return r.resolveStatement(stmt.Body)
	case *ast.Function:
		// Defined straight away so the function may call itself
		r.current.declare(stmt.Name)
		r.current.define(stmt.Name)

		// Parameters and the body share a single scope
		r.beginScope()
		defer r.endScope()

		for _, param := range stmt.Params {
			r.current.declare(param)
			r.current.define(param)
		}

		return r.resolveStatements(stmt.Body)
	case *ast.Return:
		if stmt.Value != nil {
			return r.resolveExpression(stmt.Value)
		}

		return nil
	default:
		// Nothing else to resolve
		return nil
	}
}

// resolveExpression resolves a generic [ast.Expr].
func (r *Resolver) resolveExpression(expression ast.Expr) error {
	switch expr := expression.(type) {
	case *ast.Literal:
		return nil
	case *ast.Unary:
		return r.resolveExpression(expr.Right)
	case *ast.Binary:
		if err := r.resolveExpression(expr.Left); err != nil {
			return err
		}

		return r.resolveExpression(expr.Right)
	case *ast.Logical:
		if err := r.resolveExpression(expr.Left); err != nil {
			return err
		}

		return r.resolveExpression(expr.Right)
	case *ast.Grouping:
		return r.resolveExpression(expr.Expr)
	case *ast.Variable:
		return r.resolveLocal(expr, expr.Name, expr.Token.Line)
	case *ast.Assign:
		if err := r.resolveExpression(expr.Value); err != nil {
			return err
		}

		return r.resolveLocal(expr, expr.Name, expr.Token.Line)
	case *ast.Call:
		if err := r.resolveExpression(expr.Callee); err != nil {
			return err
		}

		for _, arg := range expr.Args {
			if err := r.resolveExpression(arg); err != nil {
				return err
			}
		}

		return nil
	default:
		return nil
	}
}

// resolveLocal records the scope distance of a reference to name, if it refers to a local.
func (r *Resolver) resolveLocal(expr ast.Expr, name string, line int) error {
	if r.current.initialising(name) {
		return &Error{
			Name:  name,
			Token: expr.Start(),
			Kind:  SelfInitialization,
			Line:  line,
		}
	}

	if distance, ok := r.current.distance(name); ok {
		r.bindings[expr.ExprID()] = distance
	}

	return nil
}
