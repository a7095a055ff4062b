package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

func Main(args []string, journal, output io.Writer) {
	App := cli.NewApp()

	App.Name = "fisca"
	App.Usage = "Compute taxes and benefits.  Serve them over http."
	App.Version = "0.0.1"

	App.Writer = journal

	App.Commands = []cli.Command{
		ServeCommandPattern(journal),
		CalcCommandPattern(journal, output),
		LintCommandPattern(journal, output),
		EntrypointCommandPattern(journal),
	}

	// Reporting "no help topic for 'zyx'" and exiting with a *zero* is... silly.
	// A failure to hit a command should be an error.  Like, if an orchestrator's
	// command override says `fisca somethingimportant`, there's no way it
	// shouldn't *stop* when that's not there.
	App.CommandNotFound = func(ctx *cli.Context, command string) {
		fmt.Fprintf(ctx.App.Writer, "'%s %v' is not a fisca subcommand\n", ctx.App.Name, command)
		os.Exit(int(EXIT_BADARGS))
	}

	// Invoking version as a subcommand should also fly.
	App.Commands = append(App.Commands,
		cli.Command{
			Name:  "version",
			Usage: "Shows the version of fisca",
			Action: func(ctx *cli.Context) {
				cli.ShowVersion(ctx)
			},
		},
	)

	App.Run(args)
}
