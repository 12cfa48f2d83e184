// Package interpreter implements the lox tree-walking evaluator, it's runtime values
// and the environment frames variables live in.
//
// The interpreter executes a parsed [ast.Program] directly, consulting the
// [resolver.Bindings] produced by the resolver to find local variables.
package interpreter

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Option is a functional option for configuring an [Interpreter].
type Option func(i *Interpreter)

// WithMaxDepth limits the depth of nested function calls, exceeding it
// raises a [StackOverflow] error. A depth of 0 (the default) means no limit.
func WithMaxDepth(depth int) Option {
	return func(i *Interpreter) {
		i.maxDepth = max(depth, 0)
	}
}

// WithPolicy sets the [GlobalPolicy] applied to the global environment.
//
// If not set, [DefaultPolicy] is used.
func WithPolicy(policy GlobalPolicy) Option {
	return func(i *Interpreter) {
		i.policy = policy
	}
}

// Interpreter is the lox tree-walking interpreter.
//
// Globals persist across calls to [Interpreter.Interpret] so one Interpreter can
// run a REPL session line by line. An Interpreter is not safe for concurrent use,
// independent programs should each get their own.
type Interpreter struct {
	stdout   io.Writer         // Where print statements write to
	globals  *Environment      // The global environment
	env      *Environment      // The current (innermost) environment
	bindings resolver.Bindings // Bindings of the code currently executing
	policy   GlobalPolicy      // Policy applied to globals
	maxDepth int               // Maximum call depth, 0 for unlimited
	depth    int               // Current call depth
}

// New returns a new [Interpreter] that prints to stdout.
func New(stdout io.Writer, options ...Option) *Interpreter {
	i := &Interpreter{
		stdout: stdout,
		policy: DefaultPolicy(),
	}

	for _, option := range options {
		option(i)
	}

	i.globals = NewEnvironment(nil, i.policy)
	i.env = i.globals

	return i
}

// Globals returns the names of all currently defined globals, sorted.
func (i *Interpreter) Globals() []string {
	return i.globals.Names()
}

// Interpret executes prog, using bindings to locate local variables.
//
// Execution stops at the first runtime error, which is always an [*Error].
// A return statement outside of any function ends the program without error.
func (i *Interpreter) Interpret(prog ast.Program, bindings resolver.Bindings) error {
	i.reset(bindings)

	for _, stmt := range prog {
		result, err := i.execute(stmt)
		if err != nil {
			return err
		}

		if result.returning {
			return nil
		}
	}

	return nil
}

// Evaluate evaluates a single expression in the global environment.
func (i *Interpreter) Evaluate(expr ast.Expr, bindings resolver.Bindings) (Value, error) {
	i.reset(bindings)
	return i.evaluate(expr)
}

// reset prepares the interpreter to run a new top level program.
func (i *Interpreter) reset(bindings resolver.Bindings) {
	i.env = i.globals
	i.bindings = bindings
	i.depth = 0
}

// completion is the outcome of executing a statement, either it completed
// normally or a return statement is unwinding to the nearest call.
type completion struct {
	value     Value // The returned value, if returning
	returning bool  // Whether a return is in progress
}

// completed is the normal outcome of a statement.
var completed = completion{}

// execute executes a single statement.
func (i *Interpreter) execute(statement ast.Stmt) (completion, error) {
	switch stmt := statement.(type) {
	case *ast.Expression:
		_, err := i.evaluate(stmt.Expr)
		return completed, err
	case *ast.Print:
		value, err := i.evaluate(stmt.Expr)
		if err != nil {
			return completed, err
		}

		if _, err := fmt.Fprintln(i.stdout, Display(value)); err != nil {
			return completed, fmt.Errorf("could not write output: %w", err)
		}

		return completed, nil
	case *ast.Var:
		var value Value
		if stmt.Init != nil {
			var err error

			value, err = i.evaluate(stmt.Init)
			if err != nil {
				return completed, err
			}
		}

		return completed, at(i.env.Define(stmt.Name, value), stmt.Ident)
	case *ast.Block:
		return i.executeBlock(stmt.Stmts, NewEnvironment(i.env, i.policy))
	case *ast.If:
		cond, err := i.evaluate(stmt.Cond)
		if err != nil {
			return completed, err
		}

		if Truthy(cond) {
			return i.execute(stmt.Then)
		}

		if stmt.Else != nil {
			return i.execute(stmt.Else)
		}

		return completed, nil
	case *ast.While:
		for {
			cond, err := i.evaluate(stmt.Cond)
			if err != nil {
				return completed, err
			}

			if !Truthy(cond) {
				return completed, nil
			}

			result, err := i.execute(stmt.Body)
			if err != nil || result.returning {
				return result, err
			}
		}
	case *ast.Function:
		fn := &Function{
			decl:     stmt,
			closure:  i.env,
			bindings: i.bindings,
		}

		return completed, at(i.env.Define(stmt.Name, fn), stmt.Ident)
	case *ast.Return:
		var value Value
		if stmt.Value != nil {
			var err error

			value, err = i.evaluate(stmt.Value)
			if err != nil {
				return completed, err
			}
		}

		return completion{value: value, returning: true}, nil
	default:
		return completed, fmt.Errorf("unhandled statement %T", stmt)
	}
}

// executeBlock executes stmts in env, restoring the current environment
// afterwards however the block is left.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (completion, error) {
	previous := i.env
	i.env = env

	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		result, err := i.execute(stmt)
		if err != nil || result.returning {
			return result, err
		}
	}

	return completed, nil
}

// evaluate evaluates a single expression.
func (i *Interpreter) evaluate(expression ast.Expr) (Value, error) {
	switch expr := expression.(type) {
	case *ast.Literal:
		return expr.Value, nil
	case *ast.Grouping:
		return i.evaluate(expr.Expr)
	case *ast.Unary:
		right, err := i.evaluate(expr.Right)
		if err != nil {
			return nil, err
		}

		return unary(expr.Op, right)
	case *ast.Binary:
		left, err := i.evaluate(expr.Left)
		if err != nil {
			return nil, err
		}

		right, err := i.evaluate(expr.Right)
		if err != nil {
			return nil, err
		}

		return binary(expr.Op, left, right)
	case *ast.Logical:
		left, err := i.evaluate(expr.Left)
		if err != nil {
			return nil, err
		}

		if expr.Op.Is(token.Or) == Truthy(left) {
			// 'or' with a truthy left, or 'and' with a falsey one
			return left, nil
		}

		return i.evaluate(expr.Right)
	case *ast.Variable:
		return i.lookup(expr, expr.Name, expr.Token)
	case *ast.Assign:
		value, err := i.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}

		if err := i.assign(expr, expr.Name, value, expr.Token); err != nil {
			return nil, err
		}

		return value, nil
	case *ast.Call:
		return i.call(expr)
	default:
		return nil, fmt.Errorf("unhandled expression %T", expr)
	}
}

// lookup reads the variable referenced by expr, going straight to the frame the
// resolver found it in or to the globals if it wasn't resolved.
func (i *Interpreter) lookup(expr ast.Expr, name string, tok token.Token) (Value, error) {
	var (
		value Value
		err   error
	)

	if distance, ok := i.bindings.Lookup(expr); ok {
		value, err = i.env.GetAt(distance, name)
	} else {
		value, err = i.globals.Get(name)
	}

	if err != nil {
		return nil, at(err, tok)
	}

	return value, nil
}

// assign is the mirror of lookup for assignment.
func (i *Interpreter) assign(expr ast.Expr, name string, value Value, tok token.Token) error {
	if distance, ok := i.bindings.Lookup(expr); ok {
		return at(i.env.AssignAt(distance, name, value), tok)
	}

	return at(i.globals.Assign(name, value), tok)
}

// call evaluates a call expression.
func (i *Interpreter) call(expr *ast.Call) (Value, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(expr.Args))
	for _, arg := range expr.Args {
		value, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}

		args = append(args, value)
	}

	closing := expr.Close

	fn, ok := callee.(*Function)
	if !ok {
		return nil, &Error{Msg: TypeName(callee), Kind: NotCallable, Token: closing, Line: closing.Line}
	}

	if len(args) != fn.Arity() {
		return nil, &Error{
			Name:  fn.Name(),
			Kind:  ArityMismatch,
			Token: closing,
			Line:  closing.Line,
			Arity: fn.Arity(),
			Got:   len(args),
		}
	}

	if i.maxDepth > 0 && i.depth >= i.maxDepth {
		return nil, &Error{
			Name:  fn.Name(),
			Kind:  StackOverflow,
			Token: closing,
			Line:  closing.Line,
			Depth: i.maxDepth,
		}
	}

	i.depth++

	previous := i.bindings
	i.bindings = fn.bindings

	defer func() {
		i.depth--
		i.bindings = previous
	}()

	// Parameters and the body share a single frame, enclosed by the closure
	env := NewEnvironment(fn.closure, i.policy)
	for index, param := range fn.decl.Params {
		if err := env.Define(param, args[index]); err != nil {
			return nil, at(err, closing)
		}
	}

	result, err := i.executeBlock(fn.decl.Body, env)
	if err != nil {
		return nil, err
	}

	// A return stops here, it never unwinds past the call
	return result.value, nil
}

// unary applies a prefix operator.
func unary(op token.Token, right Value) (Value, error) {
	switch op.Kind {
	case token.Bang:
		return !Truthy(right), nil
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, &Error{
				Msg:  fmt.Sprintf("operand of '-' must be a number, got %s", TypeName(right)),
				Kind:  TypeError,
				Token: op,
				Line:  op.Line,
			}
		}

		return -n, nil
	default:
		return nil, fmt.Errorf("unhandled unary operator %s", op.Kind)
	}
}

// binary applies an infix operator.
func binary(op token.Token, left, right Value) (Value, error) {
	switch op.Kind {
	case token.EqualEqual:
		return Equal(left, right), nil
	case token.BangEqual:
		return !Equal(left, right), nil
	case token.Plus:
		switch left := left.(type) {
		case float64:
			if right, ok := right.(float64); ok {
				return left + right, nil
			}
		case string:
			if right, ok := right.(string); ok {
				return left + right, nil
			}
		}

		return nil, &Error{
			Msg: fmt.Sprintf(
				"operands of '+' must be two numbers or two strings, got %s and %s",
				TypeName(left),
				TypeName(right),
			),
			Kind:  TypeError,
			Token: op,
			Line:  op.Line,
		}
	}

	// Everything else is numbers only
	l, lok := left.(float64)
	r, rok := right.(float64)

	if !lok || !rok {
		return nil, &Error{
			Msg: fmt.Sprintf(
				"operands of '%s' must be numbers, got %s and %s",
				ast.Symbol(op.Kind),
				TypeName(left),
				TypeName(right),
			),
			Kind:  TypeError,
			Token: op,
			Line:  op.Line,
		}
	}

	switch op.Kind {
	case token.Minus:
		return l - r, nil
	case token.Star:
		return l * r, nil
	case token.Slash:
		// IEEE-754, dividing by zero gives inf or nan
		return l / r, nil
	case token.Greater:
		return l > r, nil
	case token.GreaterEqual:
		return l >= r, nil
	case token.Less:
		return l < r, nil
	case token.LessEqual:
		return l <= r, nil
	default:
		return nil, fmt.Errorf("unhandled binary operator %s", op.Kind)
	}
}
