package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"yuisekin.net/fisca/boot"
)

func LintCommandPattern(journal, output io.Writer) cli.Command {
	return cli.Command{
		Name:  "lint",
		Usage: "Check the runtime contract without performing any of it (for CI and image smoke tests)",
		Flags: planFlags(),
		Action: func(ctx *cli.Context) {
			log := mkJournal(journal)
			problems := boot.Lint(planFromEnv(ctx, log))

			for _, p := range problems {
				tag := "info"
				if p.Fatal {
					tag = "fatal"
				}
				fmt.Fprintf(output, "%s: %s\n", tag, p.Message)
			}
			if problems.Fatal() {
				panic(Exit.NewWith("the runtime contract is violated", SetExitCode(EXIT_CONTRACT)))
			}
			fmt.Fprintf(output, "ok\n")
		},
	}
}
