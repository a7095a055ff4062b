package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"
	"github.com/urfave/cli"

	"yuisekin.net/fisca/boot"
	"yuisekin.net/fisca/config"
	"yuisekin.net/fisca/def"
)

// One journal for a whole command invocation: log15, to stderr (or
// whatever the caller handed Main), leveled per FISCA_LOG_LEVEL.
func mkJournal(w io.Writer) log15.Logger {
	log := log15.New()
	log.SetHandler(log15.LvlFilterHandler(
		config.LogLevel(),
		log15.StreamHandler(w, log15.TerminalFormat()),
	))
	return log
}

/*
	The bootstrap plan, from the environment, with flags winning over env
	vars where both are given.  The flag names here are shared by every
	command that takes a plan (serve, lint, entrypoint).
*/
func planFromEnv(ctx *cli.Context, journal log15.Logger) boot.Plan {
	plan := boot.Plan{
		WorkDir:  config.WorkDir(),
		RulesURI: config.RulesURI(),
		Port:     config.Port(),
		User:     config.User(),
		Journal:  journal,
	}
	if ctx.IsSet("workdir") {
		plan.WorkDir = ctx.String("workdir")
	}
	if ctx.IsSet("rules") {
		plan.RulesURI = ctx.String("rules")
	}
	if ctx.IsSet("port") {
		plan.Port = ctx.Int("port")
	}
	if ctx.IsSet("user") {
		plan.User = ctx.String("user")
	}
	return plan
}

func planFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Usage: "Port to bind (overrides FISCA_PORT; default 5000)",
		},
		cli.StringFlag{
			Name:  "user, u",
			Usage: "Unprivileged account to switch to when started as root (overrides FISCA_USER)",
		},
		cli.StringFlag{
			Name:  "rules, r",
			Usage: "URI of the rule bundle, dir:// or s3:// (overrides FISCA_RULES)",
		},
		cli.StringFlag{
			Name:  "workdir, w",
			Usage: "Working directory the runtime contract requires populated (overrides FISCA_WORKDIR)",
		},
	}
}

// Loads a situation from a file path, "-" meaning stdin.  Accepts json
// or yaml.  Panics cli.Error for everything the user can fix.
func LoadSituationFromFile(path string) *def.Situation {
	if path == "" {
		panic(Error.NewWith("Missing argument: \"input\" is a required parameter", SetExitCode(EXIT_BADARGS)))
	}
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		panic(Error.NewWith(fmt.Sprintf("Could not read situation file %q: %s", path, err), SetExitCode(EXIT_BADARGS)))
	}

	var sit *def.Situation
	try.Do(func() {
		sit = def.ParseSituation(content)
	}).Catch(def.ValidationError, func(err *errors.Error) {
		panic(Error.NewWith(err.Message(), SetExitCode(EXIT_USER)))
	}).Done()
	return sit
}
