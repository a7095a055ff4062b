package cli

import (
	"io"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"
	"github.com/urfave/cli"

	"yuisekin.net/fisca/boot"
	"yuisekin.net/fisca/config"
	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/engine"
	"yuisekin.net/fisca/web"
)

func ServeCommandPattern(journal io.Writer) cli.Command {
	return cli.Command{
		Name:  "serve",
		Usage: "Run the bootstrap sequence and serve the http api until signalled",
		Flags: append(planFlags(),
			cli.DurationFlag{
				Name:  "grace",
				Usage: "How long to drain in-flight requests on shutdown (overrides FISCA_GRACE; default 10s)",
			},
		),
		Action: func(ctx *cli.Context) {
			log := mkJournal(journal)
			plan := planFromEnv(ctx, log)
			grace := config.GracePeriod()
			if ctx.IsSet("grace") {
				grace = ctx.Duration("grace")
				if grace <= 0 {
					panic(Error.NewWith("Malformed argument: \"grace\" must be a positive duration", SetExitCode(EXIT_BADARGS)))
				}
			}

			try.Do(func() {
				// The whole sequence, in its one legal order.  Any panic
				// here is fatal: a service that can't start correctly
				// must not start at all.
				verified := plan.Verify()
				bound := verified.DropPrivileges().Bind()

				eng := engine.New(verified.Registry, verified.Params, log)
				if err := bound.Serve(web.NewHandler(eng, log), grace); err != nil {
					panic(err)
				}
			}).Catch(boot.ShutdownError, func(err *errors.Error) {
				panic(Error.NewWith(err.Message(), SetExitCode(EXIT_DRAIN)))
			}).Catch(boot.Error, func(err *errors.Error) {
				panic(Error.NewWith(err.Message(), SetExitCode(EXIT_STARTUP)))
			}).Catch(def.ConfigError, func(err *errors.Error) {
				panic(Error.NewWith(err.Message(), SetExitCode(EXIT_STARTUP)))
			}).Done()
		},
	}
}
