package interpreter_test

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/lox/internal/interpreter"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
	"go.followtheprocess.codes/lox/internal/syntax/syntaxtest"
	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/txtar"
)

var (
	update = flag.Bool("update", false, "Update testdata")
	_      = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

// run parses, resolves and interprets src returning everything it printed.
func run(t *testing.T, src string, options ...interpreter.Option) (string, error) {
	t.Helper()

	prog, err := parser.New(t.Name(), []byte(src)).Parse()
	test.Ok(t, err, test.Context("unexpected parse error"))

	bindings, err := resolver.New().Resolve(prog)
	test.Ok(t, err, test.Context("unexpected resolve error"))

	stdout := &bytes.Buffer{}
	err = interpreter.New(stdout, options...).Interpret(prog, bindings)

	return stdout.String(), err
}

// lines joins lines with a trailing newline, as print writes them.
func lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Program source
		want string // Expected output
	}{
		{
			name: "empty",
			src:  "",
			want: "",
		},
		{
			name: "literals",
			src:  `print nil; print true; print false; print 3; print 2.5; print "hi";`,
			want: lines("nil", "true", "false", "3", "2.5", `"hi"`),
		},
		{
			name: "arithmetic",
			src:  "print 1 + 2 * 3; print (1 + 2) * 3; print 10 / 4; print -(3);",
			want: lines("7", "9", "2.5", "-3"),
		},
		{
			name: "left associative",
			src:  "print 1 - 2 - 3; print 8 / 4 / 2;",
			want: lines("-4", "1"),
		},
		{
			name: "divide by zero",
			src:  "print 1 / 0; print -1 / 0; print 0 / 0;",
			want: lines("inf", "-inf", "nan"),
		},
		{
			name: "concatenation",
			src:  `print "a" + "b";`,
			want: lines(`"ab"`),
		},
		{
			name: "comparison",
			src:  "print 1 < 2; print 2 <= 2; print 1 > 2; print 3 >= 4;",
			want: lines("true", "true", "false", "false"),
		},
		{
			name: "equality",
			src:  `print 1 == 1; print "a" != "a"; print nil == nil; print 1 == "1"; print nil == false; print 0 / 0 == 0 / 0;`,
			want: lines("true", "false", "true", "false", "false", "false"),
		},
		{
			name: "truthiness",
			src:  `print !nil; print !false; print !0; print !""; print !!true;`,
			want: lines("true", "true", "false", "false", "true"),
		},
		{
			name: "logical",
			src:  `print nil or "yes"; print 1 or 2; print nil and 1; print 1 and 2; print false or false;`,
			want: lines(`"yes"`, "1", "nil", "2", "false"),
		},
		{
			name: "short circuit",
			src:  "var a = 0; false and (a = 1); true or (a = 2); print a;",
			want: lines("0"),
		},
		{
			name: "uninitialised",
			src:  "var a; print a;",
			want: lines("nil"),
		},
		{
			name: "assignment is an expression",
			src:  "var a; var b; a = b = 3; print a; print b;",
			want: lines("3", "3"),
		},
		{
			name: "shadowing",
			src:  "var a=1; { var a=2; print a; } print a;",
			want: lines("2", "1"),
		},
		{
			name: "assign outer",
			src:  "var a = 1; { a = 2; } print a;",
			want: lines("2"),
		},
		{
			name: "if else",
			src:  `if (1 > 2) print "then"; else print "else"; if (nil) print "no";`,
			want: lines(`"else"`),
		},
		{
			name: "while",
			src:  "var i = 0; while (i < 3) { print i; i = i + 1; }",
			want: lines("0", "1", "2"),
		},
		{
			name: "fibonacci",
			src:  "var a=0; var temp; for (var b=1; a<5; b=temp+b){ print a; temp=a; a=b; }",
			want: lines("0", "1", "1", "2", "3"),
		},
		{
			name: "function",
			src:  "fun add(a,b){return a+b;} print add(1,2);",
			want: lines("3"),
		},
		{
			name: "function display",
			src:  "fun add(a, b) {} fun none() {} print add; print none;",
			want: lines("func add(a, b)", "func none()"),
		},
		{
			name: "implicit nil return",
			src:  "fun f() {} print f(); fun g() { return; } print g();",
			want: lines("nil", "nil"),
		},
		{
			name: "return from nested loop",
			src: `
			fun find() {
			  for (var i = 0; i < 10; i = i + 1) {
			    while (true) {
			      if (i == 3) return i;
			      print i;
			      i = i + 1;
			    }
			  }
			  print "unreachable";
			}
			print find();`,
			want: lines("0", "1", "2", "3"),
		},
		{
			name: "recursion",
			src:  "fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } print fib(15);",
			want: lines("610"),
		},
		{
			name: "closure counter",
			src: `
			fun makeCounter() {
			  var count = 0;
			  fun counter() {
			    count = count + 1;
			    return count;
			  }
			  return counter;
			}
			var c = makeCounter();
			c();
			print c();
			var d = makeCounter();
			print d();
			print c();`,
			want: lines("2", "1", "3"),
		},
		{
			name: "closure captures lexical scope",
			src: `
			var a = "global";
			{
			  fun show() { print a; }
			  show();
			  var a = "block";
			  show();
			}`,
			want: lines(`"global"`, `"global"`),
		},
		{
			name: "curried call",
			src:  "fun adder(a) { fun add(b) { return a + b; } return add; } print adder(1)(2);",
			want: lines("3"),
		},
		{
			name: "functions equal only to themselves",
			src:  "fun f() {} fun g() {} var h = f; print f == h; print f == g;",
			want: lines("true", "false"),
		},
		{
			name: "top level return",
			src:  `print "before"; return; print "after";`,
			want: lines(`"before"`),
		},
		{
			name: "global redefinition allowed by default",
			src:  "var a = 1; var a = a + 1; print a;",
			want: lines("2"),
		},
		{
			name: "globals declared later",
			src:  "fun f() { return later; } var later = 42; print f();",
			want: lines("42"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.src)
			test.Ok(t, err)
			test.Diff(t, got, tt.want)
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string               // Name of the test case
		src     string               // Program source
		stdout  string               // Output written before the error
		msg     string               // Expected error message
		options []interpreter.Option // Options to pass to the interpreter
		kind    interpreter.ErrorKind
	}{
		{
			name: "add bool",
			src:  "1 + false;",
			kind: interpreter.TypeError,
			msg:  "Type error: operands of '+' must be two numbers or two strings, got number and bool on line 1.",
		},
		{
			name: "add number and string",
			src:  `"a" + 1;`,
			kind: interpreter.TypeError,
			msg:  "Type error: operands of '+' must be two numbers or two strings, got string and number on line 1.",
		},
		{
			name: "negate string",
			src:  `print "ok";` + "\n" + `-"a";`,
			stdout: lines(`"ok"`),
			kind:   interpreter.TypeError,
			msg:    "Type error: operand of '-' must be a number, got string on line 2.",
		},
		{
			name: "compare strings",
			src:  `"a" < "b";`,
			kind: interpreter.TypeError,
			msg:  "Type error: operands of '<' must be numbers, got string and string on line 1.",
		},
		{
			name: "unbound",
			src:  "print nope;",
			kind: interpreter.UnboundVariable,
			msg:  "Unbound variable: nope on line 1.",
		},
		{
			name: "assign unbound",
			src:  "{\n  nope = 1;\n}",
			kind: interpreter.UnboundVariable,
			msg:  "Unbound variable: nope on line 2.",
		},
		{
			name: "call number",
			src:  "var a = 1;\na();",
			kind: interpreter.NotCallable,
			msg:  "Can only call functions, got number on line 2.",
		},
		{
			name: "call nil",
			src:  "nil();",
			kind: interpreter.NotCallable,
			msg:  "Can only call functions, got nil on line 1.",
		},
		{
			name: "too many arguments",
			src:  "fun f() {}\nf(1);",
			kind: interpreter.ArityMismatch,
			msg:  "Function f expects 0 arguments but got 1 on line 2.",
		},
		{
			name: "too few arguments",
			src:  "fun g(a) {}\ng();",
			kind: interpreter.ArityMismatch,
			msg:  "Function g expects 1 argument but got 0 on line 2.",
		},
		{
			name:    "redefine global",
			src:     "var a = 1;\nvar a = 2;",
			options: []interpreter.Option{interpreter.WithPolicy(interpreter.GlobalPolicy{AllowAssign: true})},
			kind:    interpreter.RedefineGlobal,
			msg:     "Trying to redefine an existing global variable: a on line 2.",
		},
		{
			name:    "redefine global function",
			src:     "fun f() {}\nfun f() {}",
			options: []interpreter.Option{interpreter.WithPolicy(interpreter.GlobalPolicy{AllowAssign: true})},
			kind:    interpreter.RedefineGlobal,
			msg:     "Trying to redefine an existing global variable: f on line 2.",
		},
		{
			name:    "assign global",
			src:     "var a = 1;\nfun f() { a = 2; }\nf();",
			options: []interpreter.Option{interpreter.WithPolicy(interpreter.GlobalPolicy{AllowRedefine: true})},
			kind:    interpreter.AssignGlobal,
			msg:     "Trying to assign an existing global variable: a on line 2.",
		},
		{
			name:    "stack overflow",
			src:     "fun forever(n) {\n  return forever(n + 1);\n}\nforever(0);",
			options: []interpreter.Option{interpreter.WithMaxDepth(100)},
			kind:    interpreter.StackOverflow,
			msg:     "Stack overflow: maximum call depth of 100 exceeded calling forever on line 2.",
		},
		{
			name:   "output before error is kept",
			src:    "print 1;\nprint 2;\nprint 3 + nil;\nprint 4;",
			stdout: lines("1", "2"),
			kind:   interpreter.TypeError,
			msg:    "Type error: operands of '+' must be two numbers or two strings, got number and nil on line 3.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := run(t, tt.src, tt.options...)
			test.Err(t, err)

			var runtimeErr *interpreter.Error
			test.True(t, errors.As(err, &runtimeErr), test.Context("error was %T, not *interpreter.Error", err))

			test.Equal(t, runtimeErr.Kind, tt.kind)
			test.Equal(t, err.Error(), tt.msg)
			test.Diff(t, stdout, tt.stdout)
		})
	}
}

func TestArityDetail(t *testing.T) {
	_, err := run(t, "fun none() {} none(1);")
	test.Err(t, err)

	var runtimeErr *interpreter.Error
	test.True(t, errors.As(err, &runtimeErr))

	test.Equal(t, runtimeErr.Name, "none")
	test.Equal(t, runtimeErr.Arity, 0)
	test.Equal(t, runtimeErr.Got, 1)
}

func TestStackGuard(t *testing.T) {
	src := "fun depth(n) { if (n == 0) return 0; return 1 + depth(n - 1); } print depth(100);"

	// Exactly at the limit is fine
	got, err := run(t, src, interpreter.WithMaxDepth(101))
	test.Ok(t, err)
	test.Equal(t, got, lines("100"))

	_, err = run(t, src, interpreter.WithMaxDepth(100))
	test.Err(t, err)

	// 0 disables the guard entirely
	got, err = run(t, src, interpreter.WithMaxDepth(0))
	test.Ok(t, err)
	test.Equal(t, got, lines("100"))
}

func TestSession(t *testing.T) {
	stdout := &bytes.Buffer{}
	interp := interpreter.New(stdout)
	res := resolver.New()

	// exec runs a single REPL style line
	exec := func(line string) error {
		t.Helper()

		prog, err := parser.New("repl", []byte(line)).Parse()
		test.Ok(t, err)

		bindings, err := res.Resolve(prog)
		test.Ok(t, err)

		return interp.Interpret(prog, bindings)
	}

	test.Ok(t, exec("var a = 1;"))
	test.Ok(t, exec("fun inc(x) { var step = 1; return x + step; }"))
	test.Ok(t, exec("{ var b = inc(a); print b; }"))

	// A runtime error does not lose the session
	test.Err(t, exec("print a + nil;"))
	test.Ok(t, exec("a = inc(a); print a;"))

	test.Diff(t, stdout.String(), lines("2", "2"))
	test.EqualFunc(t, interp.Globals(), []string{"a", "inc"}, func(a, b []string) bool {
		return strings.Join(a, ",") == strings.Join(b, ",")
	})

	// Expressions can be evaluated against the same globals
	expr, err := parser.New("repl", []byte("inc(a) * 10")).ParseExpression()
	test.Ok(t, err)

	bindings, err := res.ResolveExpression(expr)
	test.Ok(t, err)

	value, err := interp.Evaluate(expr, bindings)
	test.Ok(t, err)
	test.Equal(t, interpreter.Display(value), "30")
}

// TestClosureAcrossLines checks that a function keeps the bindings it was resolved with
// even when called from code resolved separately, as happens in the REPL where each line
// numbers it's expressions from scratch.
func TestClosureAcrossLines(t *testing.T) {
	stdout := &bytes.Buffer{}
	interp := interpreter.New(stdout)
	res := resolver.New()

	for _, line := range []string{
		"fun outer() { var x = \"captured\"; fun inner() { return x; } return inner; }",
		"var f = outer();",
		"{ var y = \"local\"; { print f(); print y; } }",
	} {
		prog, err := parser.New("repl", []byte(line)).Parse()
		test.Ok(t, err)

		bindings, err := res.Resolve(prog)
		test.Ok(t, err)

		test.Ok(t, interp.Interpret(prog, bindings))
	}

	test.Diff(t, stdout.String(), lines(`"captured"`, `"local"`))
}

// TestPrograms runs the example programs in testdata, each is a txtar archive with a
// src.lox and the expected stdout.txt, and error.txt if the program fails at runtime.
func TestPrograms(t *testing.T) {
	test.ColorEnabled(os.Getenv("CI") == "")

	for file, err := range syntaxtest.AllFilesWithExtension("testdata", ".txtar") {
		test.Ok(t, err)

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			src, ok := archive.Read("src.lox")
			test.True(t, ok, test.Context("%s missing src.lox", file))

			got, err := run(t, src, interpreter.WithMaxDepth(1024))

			gotErr := ""
			if err != nil {
				gotErr = err.Error() + "\n"
			}

			if *update {
				test.Ok(t, archive.Write("stdout.txt", got))

				if gotErr != "" {
					test.Ok(t, archive.Write("error.txt", gotErr))
				}

				test.Ok(t, txtar.DumpFile(file, archive))

				return
			}

			wantStdout, ok := archive.Read("stdout.txt")
			test.True(t, ok, test.Context("%s missing stdout.txt", file))

			wantErr, _ := archive.Read("error.txt")

			test.Diff(t, strings.TrimSpace(got), strings.TrimSpace(wantStdout))
			test.Diff(t, strings.TrimSpace(gotErr), strings.TrimSpace(wantErr))
		})
	}
}

func BenchmarkInterpreter(b *testing.B) {
	src := []byte("fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } fib(15);")

	prog, err := parser.New("bench", src).Parse()
	test.Ok(b, err)

	bindings, err := resolver.New().Resolve(prog)
	test.Ok(b, err)

	for b.Loop() {
		err := interpreter.New(&bytes.Buffer{}).Interpret(prog, bindings)
		test.Ok(b, err)
	}
}
