package lox

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"go.followtheprocess.codes/lox/internal/syntax/parser"
)

// continuation is the prompt shown while an unfinished statement is being entered.
const continuation = "... "

// replName is the file name given to source typed into the REPL.
const replName = "repl"

// lineReader reads lines of input for the REPL, it's implemented by [liner.State].
type lineReader interface {
	// Prompt shows prompt and reads a line, returning io.EOF at end of input.
	Prompt(prompt string) (string, error)

	// AppendHistory adds a line to the history.
	AppendHistory(line string)

	// Close releases the reader.
	Close() error
}

// Repl starts an interactive lox session, reading source a line at a time and executing it.
//
// Globals persist from one line to the next. A line that is an expression on it's own has
// it's value printed. Errors are reported and the session carries on.
func (l Lox) Repl(ctx context.Context) error {
	logger := l.logger.Prefixed("repl")

	reader, history := l.lineReader()
	defer reader.Close()

	if history != "" {
		defer l.saveHistory(reader, history)
	}

	logger.Debug("Starting REPL", slog.String("history", history))

	fmt.Fprintf(l.stdout, "lox %s, press Ctrl+D to exit\n", l.version)

	session := l.NewSession(l.stdout)

	var pending strings.Builder

	for {
		if err := ctx.Err(); err != nil {
			return nil //nolint:nilerr // Cancellation is how the REPL is stopped
		}

		prompt := l.config.Prompt
		if pending.Len() > 0 {
			prompt = continuation
		}

		line, err := reader.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(l.stdout)
				return nil
			}

			if errors.Is(err, liner.ErrPromptAborted) {
				// Ctrl+C throws away whatever was being typed
				pending.Reset()
				continue
			}

			return fmt.Errorf("could not read input: %w", err)
		}

		blank := strings.TrimSpace(line) == ""
		if blank && pending.Len() == 0 {
			continue
		}

		if !blank {
			reader.AppendHistory(line)
		}

		pending.WriteString(line)
		pending.WriteByte('\n')

		err = session.eval(l.stdout, []byte(pending.String()))

		// A blank line gives up on an unfinished statement so the error is shown
		if incomplete(err) && !blank {
			logger.Debug("Incomplete input, reading more")
			continue
		}

		if err != nil {
			Report(l.stderr, err)
		}

		pending.Reset()
	}
}

// eval executes one complete REPL entry, printing it's value if it was an expression.
func (s *Session) eval(stdout io.Writer, src []byte) error {
	display, ok, err := s.Evaluate(replName, src)
	if !ok {
		return s.Execute(replName, src)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, display)

	return nil
}

// incomplete reports whether err is a syntax error caused by the input ending
// part way through, meaning the user hasn't finished typing yet.
func incomplete(err error) bool {
	var parseErr *parser.Error
	return errors.As(err, &parseErr) && parseErr.Kind == parser.UnexpectedEnd
}

// lineReader returns the reader for REPL input and the history file path it should
// save to, if any.
//
// Interactive line editing is only used when reading from the real stdin, anything
// else (tests, pipes through a custom reader) is read plainly.
func (l Lox) lineReader() (lineReader, string) {
	if l.stdin != os.Stdin {
		return newPlainReader(l.stdin, l.stdout), ""
	}

	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetMultiLineMode(true)

	history := l.historyFile()
	if history == "" {
		return state, ""
	}

	if f, err := os.Open(history); err == nil {
		if _, err := state.ReadHistory(f); err != nil {
			l.logger.Warn("Could not read REPL history", slog.String("file", history), slog.String("error", err.Error()))
		}

		f.Close()
	}

	return state, history
}

// historyFile returns the absolute path of the REPL history file, empty if
// history is disabled.
func (l Lox) historyFile() string {
	history := l.config.HistoryFile
	if history == "" || filepath.IsAbs(history) {
		return history
	}

	home, err := os.UserHomeDir()
	if err != nil {
		l.logger.Warn("Could not locate home directory, REPL history disabled", slog.String("error", err.Error()))
		return ""
	}

	return filepath.Join(home, history)
}

// saveHistory writes the REPL history to file.
func (l Lox) saveHistory(reader lineReader, file string) {
	state, ok := reader.(*liner.State)
	if !ok {
		return
	}

	f, err := os.Create(file)
	if err != nil {
		l.logger.Warn("Could not save REPL history", slog.String("file", file), slog.String("error", err.Error()))
		return
	}
	defer f.Close()

	if _, err := state.WriteHistory(f); err != nil {
		l.logger.Warn("Could not save REPL history", slog.String("file", file), slog.String("error", err.Error()))
	}
}

// plainReader is a [lineReader] over any io.Reader, with no line editing or history.
type plainReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// newPlainReader returns a new [plainReader] reading from r and writing prompts to out.
func newPlainReader(r io.Reader, out io.Writer) *plainReader {
	return &plainReader{
		scanner: bufio.NewScanner(r),
		out:     out,
	}
}

// Prompt implements [lineReader] for a [plainReader].
func (p *plainReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return p.scanner.Text(), nil
}

// AppendHistory implements [lineReader] for a [plainReader], there is no history.
func (p *plainReader) AppendHistory(string) {}

// Close implements [lineReader] for a [plainReader].
func (p *plainReader) Close() error {
	return nil
}
