package lox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	"go.followtheprocess.codes/msg"
)

// RunOptions are the options passed to the run subcommand.
type RunOptions struct {
	// CPUProfile is the directory in which to write a CPU profile of the run,
	// empty means no profiling.
	CPUProfile string

	// Debug enables debug logging.
	Debug bool
}

// Run implements the run subcommand, executing a single lox file.
func (l Lox) Run(ctx context.Context, file string, options RunOptions) error {
	logger := l.logger.Prefixed("run").With(slog.String("file", file))
	logger.Debug("Run configuration", slog.String("options", fmt.Sprintf("%+v", options)))
	logger.Debug("Config", slog.String("config", fmt.Sprintf("%+v", l.config)))

	if options.CPUProfile != "" {
		logger.Debug("Enabling CPU profiling", slog.String("dir", options.CPUProfile))
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(options.CPUProfile), profile.Quiet).Stop()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	if err := l.Execute(file, src); err != nil {
		return err
	}

	logger.Debug("Executed file successfully", slog.Duration("took", time.Since(start)))

	return nil
}

// Report writes err to w, a lox [*Error] gets a full diagnostic pointing at the offending
// source, anything else is written as a plain error message.
func Report(w io.Writer, err error) {
	var loxErr *Error
	if errors.As(err, &loxErr) {
		loxErr.Report(w)
		return
	}

	msg.Ferror(w, "%v", err)
}
