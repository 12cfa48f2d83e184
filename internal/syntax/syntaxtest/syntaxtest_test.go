// That's right... how meta is this.
package syntaxtest_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.followtheprocess.codes/lox/internal/syntax/syntaxtest"
	"go.followtheprocess.codes/test"
)

func TestAllFilesWithExtension(t *testing.T) {
	cwd, err := os.Getwd()
	test.Ok(t, err)

	var results []string

	for file, err := range syntaxtest.AllFilesWithExtension(cwd, ".go") {
		test.Ok(t, err)

		results = append(results, file)
	}

	slices.Sort(results)

	want := []string{
		// Just the two files
		filepath.Join(cwd, "syntaxtest.go"),
		filepath.Join(cwd, "syntaxtest_test.go"),
	}

	test.EqualFunc(t, results, want, slices.Equal)
}
