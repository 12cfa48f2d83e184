package cmd_test

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.followtheprocess.codes/lox/internal/cmd"
	"go.followtheprocess.codes/lox/internal/lox"
	"go.followtheprocess.codes/test"
)

var update = flag.Bool("update", false, "Update testscript snapshots")

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"lox": func() {
			cli, err := cmd.Build()
			if err == nil {
				err = cli.Execute(context.Background())
			}

			if err != nil {
				lox.Report(os.Stderr, err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
	})
}

func TestSmoke(t *testing.T) {
	_, err := cmd.Build()
	test.Ok(t, err)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		UpdateScripts:       *update,
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
		Setup: func(e *testscript.Env) error {
			e.Setenv("NO_COLOR", "1")
			return nil
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"replace": Replace,
		},
	})
}

// Replace is a testscript command that replaces text in a file by way of a regex
// pattern match, useful for replacing non-deterministic output like durations
// with placeholders to facilitate deterministic comparison in tests.
//
// Usage:
//
//	replace <file> <regex> <replacement>
//
// It cannot be negated, regex must be valid, and the file must exist in the
// work directory, copy stdout or stderr to a file first with cp.
func Replace(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! replace")
	}

	if len(args) != 3 {
		ts.Fatalf("Usage: replace <file> <regex> <replacement>")
	}

	file := ts.MkAbs(args[0])
	ts.Logf("replace in file: %s", file)

	contents := ts.ReadFile(file)

	re, err := regexp.Compile(args[1])
	ts.Check(err)

	replaced := re.ReplaceAllString(contents, args[2])

	err = os.WriteFile(file, []byte(replaced), 0o644)
	ts.Check(err)
}
