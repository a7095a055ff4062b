package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/polydawn/gosh"
	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"
	"github.com/urfave/cli"

	"yuisekin.net/fisca/boot"
)

/*
	The container entrypoint: verify the runtime environment, drop to the
	unprivileged identity, then run whatever command was handed off --
	defaulting to an interactive shell, which is the documented way to
	poke around a built image.

	`fisca serve` does its own verify-and-drop, so a container whose
	command *is* serve should just run serve; entrypoint is for running
	anything else (a shell, a one-off calc) under the same contract.
*/
func EntrypointCommandPattern(journal io.Writer) cli.Command {
	return cli.Command{
		Name:  "entrypoint",
		Usage: "Verify the runtime, drop privileges, then run the given command (default: an interactive shell)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "user, u",
				Usage: "Unprivileged account to switch to when started as root (overrides FISCA_USER)",
			},
			cli.StringFlag{
				Name:  "workdir, w",
				Usage: "Working directory the runtime contract requires populated (overrides FISCA_WORKDIR)",
			},
			cli.StringFlag{
				Name:  "rules, r",
				Usage: "URI of the rule bundle (overrides FISCA_RULES)",
			},
		},
		Action: func(ctx *cli.Context) {
			log := mkJournal(journal)
			plan := planFromEnv(ctx, log)

			try.Do(func() {
				plan.Verify().DropPrivileges()
			}).Catch(boot.Error, func(err *errors.Error) {
				panic(Error.NewWith(err.Message(), SetExitCode(EXIT_STARTUP)))
			}).Done()

			argv := []string(ctx.Args())
			if len(argv) == 0 {
				argv = []string{"/bin/sh"}
			}

			p := gosh.Gosh(
				argv[0], argv[1:],
				gosh.Opts{
					In:     os.Stdin,
					Out:    os.Stdout,
					Err:    os.Stderr,
					OkExit: gosh.AnyExit,
				},
			).Run()
			if code := p.GetExitCode(); code != 0 {
				panic(Exit.NewWith(
					fmt.Sprintf("command exited with status %d", code),
					SetExitCode(ExitCode(code)),
				))
			}
		},
	}
}
