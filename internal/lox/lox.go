// Package lox implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package lox

import (
	"io"
	"log/slog"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/lox/internal/config"
	"go.followtheprocess.codes/lox/internal/interpreter"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
)

// Lox represents the lox program.
type Lox struct {
	stdin   io.Reader     // Input is read from here, the REPL reads lines from it
	stdout  io.Writer     // Normal program output is written here
	stderr  io.Writer     // Logs and errors are written here
	logger  *log.Logger   // The logger for the application
	version string        // The lox version
	config  config.Config // The loaded configuration
}

// New returns a new [Lox].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Lox {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(
		stderr,
		log.Prefix("lox"),
		log.WithLevel(level),
		log.TimeFormat(time.RFC3339Nano),
	)

	return Lox{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
		config:  config.Default(),
	}
}

// WithConfig returns a copy of the [Lox] using cfg.
func (l Lox) WithConfig(cfg config.Config) Lox {
	l.config = cfg
	return l
}

// Config returns the configuration in use.
func (l Lox) Config() config.Config {
	return l.config
}

// Session is a single lox execution context, the globals defined by one call to
// [Session.Execute] are visible to the next.
//
// Sessions are independent of each other, they share no state and so separate sessions
// may be used concurrently.
type Session struct {
	resolver    *resolver.Resolver
	interpreter *interpreter.Interpreter
	logger      *log.Logger
}

// NewSession returns a new [Session] that prints to stdout, configured by the
// application config.
func (l Lox) NewSession(stdout io.Writer) *Session {
	return &Session{
		resolver: resolver.New(),
		interpreter: interpreter.New(
			stdout,
			interpreter.WithMaxDepth(l.config.MaxDepth),
			interpreter.WithPolicy(l.config.Policy()),
		),
		logger: l.logger.Prefixed("session"),
	}
}

// Execute runs src through every stage, scanning, parsing, resolving and then
// interpreting it.
//
// The first error from any stage is returned as an [*Error] tagged with the stage
// that raised it.
func (l Lox) Execute(name string, src []byte) error {
	return l.NewSession(l.stdout).Execute(name, src)
}

// Execute runs src in the session.
func (s *Session) Execute(name string, src []byte) error {
	logger := s.logger.With(slog.String("name", name))

	start := time.Now()

	prog, err := parser.New(name, src).Parse()
	if err != nil {
		return newError(SyntaxStage, name, src, err)
	}

	logger.Debug("Parsed source", slog.Int("statements", len(prog)), slog.Duration("took", time.Since(start)))

	start = time.Now()

	bindings, err := s.resolver.Resolve(prog)
	if err != nil {
		return newError(ResolveStage, name, src, err)
	}

	logger.Debug("Resolved program", slog.Int("locals", len(bindings)), slog.Duration("took", time.Since(start)))

	start = time.Now()

	if err := s.interpreter.Interpret(prog, bindings); err != nil {
		return s.runtimeError(name, src, err)
	}

	logger.Debug("Interpreted program", slog.Duration("took", time.Since(start)))

	return nil
}

// Evaluate parses src as a single expression and evaluates it in the session,
// returning the printed form of the result.
//
// ok is false if src is not an expression on it's own, in which case it should be
// executed as a program instead.
func (s *Session) Evaluate(name string, src []byte) (display string, ok bool, err error) {
	expr, err := parser.New(name, src).ParseExpression()
	if err != nil {
		return "", false, nil
	}

	bindings, err := s.resolver.ResolveExpression(expr)
	if err != nil {
		return "", true, newError(ResolveStage, name, src, err)
	}

	value, err := s.interpreter.Evaluate(expr, bindings)
	if err != nil {
		return "", true, s.runtimeError(name, src, err)
	}

	return interpreter.Display(value), true, nil
}

// Globals returns the names of the globals defined in the session.
func (s *Session) Globals() []string {
	return s.interpreter.Globals()
}

// runtimeError wraps a runtime err, adding a hint for unbound variables that look like
// a typo of a defined global.
func (s *Session) runtimeError(name string, src []byte, err error) error {
	e := newError(RuntimeStage, name, src, err)
	e.Diagnostic.Hint = hint(err, s.interpreter.Globals())

	return e
}
