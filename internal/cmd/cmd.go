// Package cmd implements lox's CLI.
package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/lox/internal/config"
	"go.followtheprocess.codes/lox/internal/lox"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// useConfig is the default for --max-depth, meaning take the depth from the config file.
const useConfig = -1

// Build builds and returns the lox CLI.
func Build() (*cli.Command, error) {
	var (
		settings settings
		debug    bool
	)

	return cli.New(
		"lox",
		cli.Short("A tree-walking interpreter for the lox scripting language"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Start an interactive session", "lox"),
		cli.Example("Execute a lox file", "lox run ./hello.lox"),
		cli.Example("Check for syntax errors in every file under a directory", "lox check ./examples"),
		cli.Example("Run the lox tests in a directory", "lox test ./tests"),
		cli.Example("Dump the syntax tree of a file as JSON", "lox ast ./hello.lox --format json"),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&debug, "debug", 'd', "Enable debug logs"),
		cli.Flag(&settings.file, "config", 'c', "Path to a lox.toml or lox.yaml config file"),
		cli.Flag(
			&settings.maxDepth,
			"max-depth",
			flag.NoShortHand,
			"Maximum depth of nested calls, overrides the config file",
			cli.FlagDefault(useConfig),
		),
		cli.Flag(&settings.noRedefine, "no-global-redefine", flag.NoShortHand, "Forbid redefining global variables"),
		cli.Flag(&settings.noAssign, "no-global-assign", flag.NoShortHand, "Forbid assigning to global variables"),
		cli.SubCommands(run, check, tokens, ast, test, initialise),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings.load()
			if err != nil {
				return err
			}

			app := lox.New(debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr()).WithConfig(cfg)

			return app.Repl(ctx)
		}),
	)
}

// settings are the flags that control how lox code is executed, they
// override the config file.
type settings struct {
	file       string // Explicit config file, empty means discover one in the working directory
	maxDepth   int    // Maximum call depth, [useConfig] to keep the configured one
	noRedefine bool   // Forbid redefining globals
	noAssign   bool   // Forbid assigning to globals
}

// load loads the config and applies the flag overrides on top.
func (s settings) load() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)

	if s.file != "" {
		cfg, err = config.Load(s.file)
	} else {
		cfg, err = config.Discover(".")
	}

	if err != nil {
		return config.Config{}, err
	}

	if s.maxDepth != useConfig {
		cfg.MaxDepth = s.maxDepth
	}

	if s.noRedefine {
		cfg.Globals.AllowRedefine = false
	}

	if s.noAssign {
		cfg.Globals.AllowAssign = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
