package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/lox/internal/lox"
)

const runLong = `
The file is scanned, parsed and resolved before any of it is run, so
a syntax error anywhere in the file means nothing is executed.

Settings from a lox.toml (or lox.yaml) in the current directory are
used if present, they may be overridden by the use of command line
flags like '--max-depth'.

A CPU profile of the run can be written with '--cpuprofile <dir>'.
`

// run returns the lox run subcommand.
func run() (*cli.Command, error) {
	var (
		options  lox.RunOptions
		settings settings
		file     string
	)

	return cli.New(
		"run",
		cli.Short("Execute a lox file"),
		cli.Long(runLong),
		cli.Arg(&file, "file", "Path to the .lox file"),
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
		cli.Flag(&options.CPUProfile, "cpuprofile", flag.NoShortHand, "Write a CPU profile to this directory"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings.load()
			if err != nil {
				return err
			}

			app := lox.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr()).WithConfig(cfg)

			return app.Run(ctx, file, options)
		}),
	)
}
