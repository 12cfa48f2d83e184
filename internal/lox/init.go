package lox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/lox/internal/config"
	"go.followtheprocess.codes/msg"
)

// configFile is the name of the config file written by init.
const configFile = "lox.toml"

// InitOptions are the options passed to the init subcommand.
type InitOptions struct {
	// Dir is the directory in which to write the config file.
	Dir string

	// Defaults skips the interactive form and writes the default config.
	Defaults bool

	// Force overwrites an existing config file.
	Force bool

	// Debug enables debug logging.
	Debug bool
}

// Init implements the init subcommand, writing a lox.toml config file.
//
// Unless the defaults are requested, the user is asked for each setting with
// the defaults filled in.
func (l Lox) Init(ctx context.Context, options InitOptions) error {
	path := filepath.Join(options.Dir, configFile)
	logger := l.logger.Prefixed("init").With(slog.String("path", path))

	if !options.Force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite it", path)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not check for existing config: %w", err)
		}
	}

	cfg := config.Default()

	if !options.Defaults {
		logger.Debug("Asking for config")

		var err error

		cfg, err = l.ask(ctx, cfg)
		if err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	if err := config.Write(buf, cfg); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}

	logger.Debug("Wrote config", slog.String("config", fmt.Sprintf("%+v", cfg)))
	msg.Fsuccess(l.stdout, "Wrote %s", path)

	return nil
}

// ask fills in cfg with an interactive form, starting from the values already in it.
func (l Lox) ask(ctx context.Context, cfg config.Config) (config.Config, error) {
	depth := strconv.Itoa(cfg.MaxDepth)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("REPL prompt").
				Value(&cfg.Prompt),
			huh.NewInput().
				Title("REPL history file").
				Description("Relative to your home directory, leave empty to disable history").
				Value(&cfg.HistoryFile),
			huh.NewInput().
				Title("Maximum call depth").
				Description("0 means no limit").
				Value(&depth).
				Validate(validateDepth),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Allow redefining global variables?").
				Value(&cfg.Globals.AllowRedefine),
			huh.NewConfirm().
				Title("Allow assigning to global variables?").
				Value(&cfg.Globals.AllowAssign),
		),
	).WithInput(l.stdin).WithOutput(l.stdout)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return config.Config{}, errors.New("init cancelled")
		}

		return config.Config{}, fmt.Errorf("could not run config form: %w", err)
	}

	maxDepth, err := strconv.Atoi(depth)
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid maximum call depth %q: %w", depth, err)
	}

	cfg.MaxDepth = maxDepth

	return cfg, nil
}

// validateDepth validates the maximum call depth typed into the init form.
func validateDepth(depth string) error {
	n, err := strconv.Atoi(depth)
	if err != nil {
		return errors.New("must be a whole number")
	}

	if n < 0 {
		return errors.New("cannot be negative")
	}

	return nil
}
