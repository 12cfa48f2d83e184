package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/lox/internal/format"
	"go.followtheprocess.codes/lox/internal/lox"
)

// tokens returns the lox tokens subcommand.
func tokens() (*cli.Command, error) {
	var (
		file  string
		debug bool
	)

	return cli.New(
		"tokens",
		cli.Short("Print the tokens in a lox file"),
		cli.Arg(&file, "file", "Path to the .lox file"),
		cli.Flag(&debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Tokens(ctx, file)
		}),
	)
}

// ast returns the lox ast subcommand.
func ast() (*cli.Command, error) {
	var (
		options lox.ASTOptions
		file    string
	)

	return cli.New(
		"ast",
		cli.Short("Print the syntax tree of a lox file"),
		cli.Arg(&file, "file", "Path to the .lox file"),
		cli.Flag(
			&options.Format,
			"format",
			'f',
			fmt.Sprintf("Output format, one of (%s)", strings.Join(format.Names(), "|")),
			cli.FlagDefault(lox.DefaultFormat),
		),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := lox.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.AST(ctx, file, options)
		}),
	)
}
