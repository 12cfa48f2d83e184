package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/lox/internal/lox"
)

const initLong = `
Init asks for each setting in turn, with the defaults filled in, and
writes them to a lox.toml in the current directory.

Pass '--defaults' to skip the questions and write the default config.
An existing lox.toml is never overwritten unless '--force' is used.
`

// initialise returns the lox init subcommand.
func initialise() (*cli.Command, error) {
	options := lox.InitOptions{Dir: "."}

	return cli.New(
		"init",
		cli.Short("Create a lox.toml config file"),
		cli.Long(initLong),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&options.Defaults, "defaults", flag.NoShortHand, "Write the default config without asking"),
		cli.Flag(&options.Force, "force", 'f', "Overwrite an existing lox.toml"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Init(ctx, options)
		}),
	)
}
