package lox

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"go.followtheprocess.codes/hue"
	"golang.org/x/sync/errgroup"
)

// Markers for expectations in lox test files.
const (
	expectOutput = "// expect: "
	expectError  = "// expect error: "
)

// Styles for the test report.
const (
	success = hue.Green | hue.Bold
	failure = hue.Red | hue.Bold
	dimmed  = hue.BrightBlack | hue.Italic
)

// TestOptions are the options passed to the test subcommand.
type TestOptions struct {
	// Path is the path (file or directory) to test.
	Path string

	// Debug enables debug logging.
	Debug bool

	// Verbose shows the passing tests as well as the failures.
	Verbose bool
}

// TestFailedError is returned from [Lox.Test] when one or more tests did not pass.
type TestFailedError struct {
	Failed int // Number of failed tests
	Total  int // Number of tests run
}

// Error implements the error interface for [TestFailedError].
func (t TestFailedError) Error() string {
	return fmt.Sprintf("%d of %d test(s) failed", t.Failed, t.Total)
}

// expectation is the expected behaviour of a lox test file.
type expectation struct {
	errMsg string   // Expected substring of the error, empty if it should succeed
	output []string // Expected lines of output
}

// result is the outcome of running a single lox test file.
type result struct {
	path     string
	failures []string
	took     time.Duration
}

// Passed reports whether the test passed.
func (r result) Passed() bool {
	return len(r.failures) == 0
}

// Test implements the test subcommand.
//
// Each lox file under the path is executed and it's output compared against the
// expectations written in it's comments:
//
//	print 1 + 2; // expect: 3
//	print x;     // expect error: Unbound variable: x
//
// Files are run concurrently, each in it's own session.
func (l Lox) Test(ctx context.Context, options TestOptions) error {
	logger := l.logger.Prefixed("test").With(slog.String("path", options.Path))
	logger.Debug("Collecting tests in path")

	start := time.Now()

	paths, err := collect(options.Path)
	if err != nil {
		return err
	}

	logger.Debug("Running tests", slog.Int("number", len(paths)))

	results := make([]result, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := l.testFile(path)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	failed := 0

	for _, res := range results {
		if res.Passed() {
			if options.Verbose {
				fmt.Fprintf(l.stdout, "%s %s %s\n", success.Text("PASS"), res.path, dimmed.Text(res.took.String()))
			}

			continue
		}

		failed++

		fmt.Fprintf(l.stdout, "%s %s %s\n", failure.Text("FAIL"), res.path, dimmed.Text(res.took.String()))

		for _, reason := range res.failures {
			fmt.Fprintf(l.stdout, "    %s\n", reason)
		}
	}

	fmt.Fprintf(
		l.stdout,
		"\n%s %d passed, %d failed %s\n",
		hue.Bold.Text("Tests:"),
		len(results)-failed,
		failed,
		dimmed.Text(time.Since(start).String()),
	)

	if failed > 0 {
		return TestFailedError{Failed: failed, Total: len(results)}
	}

	return nil
}

// testFile runs a single test file and checks it against it's expectations.
//
// The returned error is only for failing to run the test at all, a test that
// ran and failed is reported in the result.
func (l Lox) testFile(path string) (result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return result{}, fmt.Errorf("could not read file: %w", err)
	}

	want := expectations(src)

	start := time.Now()

	stdout := &bytes.Buffer{}
	err = l.NewSession(stdout).Execute(path, src)

	res := result{path: path, took: time.Since(start)}

	switch {
	case err != nil && want.errMsg == "":
		res.failures = append(res.failures, fmt.Sprintf("unexpected error: %v", err))
	case err == nil && want.errMsg != "":
		res.failures = append(res.failures, fmt.Sprintf("expected error containing %q, got none", want.errMsg))
	case err != nil && !strings.Contains(err.Error(), want.errMsg):
		res.failures = append(res.failures, fmt.Sprintf("expected error containing %q, got %q", want.errMsg, err.Error()))
	}

	res.failures = append(res.failures, compareOutput(want.output, stdout.String())...)

	return res, nil
}

// expectations extracts the expected output and error from the comments in src.
func expectations(src []byte) expectation {
	var want expectation

	for line := range strings.Lines(string(src)) {
		line = strings.TrimRight(line, "\r\n")

		if _, message, ok := strings.Cut(line, expectError); ok {
			want.errMsg = strings.TrimSpace(message)
			continue
		}

		if _, output, ok := strings.Cut(line, expectOutput); ok {
			want.output = append(want.output, output)
		}
	}

	return want
}

// compareOutput compares the expected lines of output to what was actually
// printed, returning a description of every mismatch.
func compareOutput(want []string, got string) []string {
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if got == "" {
		lines = nil
	}

	var failures []string

	for i := range max(len(want), len(lines)) {
		switch {
		case i >= len(lines):
			failures = append(failures, fmt.Sprintf("line %d: expected %q, got nothing", i+1, want[i]))
		case i >= len(want):
			failures = append(failures, fmt.Sprintf("line %d: unexpected output %q", i+1, lines[i]))
		case want[i] != lines[i]:
			failures = append(failures, fmt.Sprintf("line %d: expected %q, got %q", i+1, want[i], lines[i]))
		}
	}

	return failures
}
