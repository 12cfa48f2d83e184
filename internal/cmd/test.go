package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/lox/internal/lox"
)

const testLong = `
The test command executes a collection of lox files as tests.

Expected output is written in comments alongside the code that
produces it, and a file that should fail declares the error it
expects:

    print 1 + 2;   // expect: 3
    print nope;    // expect error: Unbound variable

Path is a .lox file or a directory containing .lox files, in the latter case,
the directory is recursed and all .lox files collected for testing.

Only failures are shown by default, pass '--verbose' to see every test.
`

// test returns the lox test subcommand.
func test() (*cli.Command, error) {
	var (
		options  lox.TestOptions
		settings settings
	)

	return cli.New(
		"test",
		cli.Short("Run lox files as tests"),
		cli.Long(testLong),
		cli.Arg(&options.Path, "path", "Path to test, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&settings.file, "config", 'c', "Path to a lox.toml or lox.yaml config file"),
		cli.Flag(
			&settings.maxDepth,
			"max-depth",
			flag.NoShortHand,
			"Maximum depth of nested calls, overrides the config file",
			cli.FlagDefault(useConfig),
		),
		cli.Flag(&options.Verbose, "verbose", 'v', "Show passing tests too"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings.load()
			if err != nil {
				return err
			}

			app := lox.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr()).WithConfig(cfg)

			return app.Test(ctx, options)
		}),
	)
}
