package lox

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go.followtheprocess.codes/lox/internal/syntax/parser"
	"go.followtheprocess.codes/lox/internal/syntax/resolver"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

// Extension is the file extension of lox source files.
const Extension = ".lox"

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand, it parses and resolves every lox file
// under a path without running any of them.
func (l Lox) Check(ctx context.Context, options CheckOptions) error {
	logger := l.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	paths, err := collect(options.Path)
	if err != nil {
		return err
	}

	logger.Debug("Checking lox files given by path", slog.Int("number", len(paths)))

	group, ctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return l.checkFile(path)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(l.stdout, "%s is valid", path)
	}

	return nil
}

// checkFile runs a parse and resolve check on a single file.
func (l Lox) checkFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	prog, err := parser.New(path, src).Parse()
	if err != nil {
		return newError(SyntaxStage, path, src, err)
	}

	// Every file gets it's own resolver, they are separate programs
	if _, err := resolver.New().Resolve(prog); err != nil {
		return newError(ResolveStage, path, src, err)
	}

	return nil
}

// collect returns the lox files given by path, path itself if it is a file or
// every lox file beneath it (recursively) if it's a directory.
func collect(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string

	err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() && filepath.Ext(path) == Extension {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", path, err)
	}

	return paths, nil
}
