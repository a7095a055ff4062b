package cli

import (
	"io"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"
	"github.com/ugorji/go/codec"
	"github.com/urfave/cli"

	"yuisekin.net/fisca/bundle"
	"yuisekin.net/fisca/config"
	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/engine"
	"yuisekin.net/fisca/params"
	"yuisekin.net/fisca/rules"
)

var outputHandle = func() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.Canonical = true
	h.Indent = 2
	return h
}()

func CalcCommandPattern(journal, output io.Writer) cli.Command {
	return cli.Command{
		Name:  "calc",
		Usage: "Run one calculation from a situation file, without any server",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "input, i",
				Usage: "Location of the situation (json or yaml format; \"-\" for stdin)",
			},
			cli.StringFlag{
				Name:  "var",
				Usage: "Compute just this one variable, for every entity it's defined on, instead of the nulls in the situation",
			},
			cli.StringFlag{
				Name:  "period",
				Usage: "Period to compute \"var\" over (\"YYYY\" or \"YYYY-MM\"); required with \"var\"",
			},
			cli.StringFlag{
				Name:  "rules, r",
				Usage: "URI of the rule bundle (overrides FISCA_RULES)",
			},
		},
		Action: func(ctx *cli.Context) {
			log := mkJournal(journal)
			sit := LoadSituationFromFile(ctx.String("input"))
			rulesURI := config.RulesURI()
			if ctx.IsSet("rules") {
				rulesURI = ctx.String("rules")
			}

			try.Do(func() {
				tree := params.LoadDir(bundle.Fetch(rulesURI, log))
				eng := engine.New(rules.Default(), tree, log)

				var result interface{}
				if varName := ctx.String("var"); varName != "" {
					if ctx.String("period") == "" {
						panic(Error.NewWith("Missing argument: \"period\" is required with \"var\"", SetExitCode(EXIT_BADARGS)))
					}
					p := def.ParsePeriod(ctx.String("period"))
					result = map[string]interface{}{
						"variable": varName,
						"period":   p.String(),
						"values":   eng.ComputeAll(sit, varName, p),
					}
				} else {
					result = eng.Run(sit)
				}

				// All logs and progress are routed to "journal" (typically
				// stderr), while this output is routed to "output"
				// (typically stdout), so it can be piped and parsed
				// mechanically.
				if err := codec.NewEncoder(output, outputHandle).Encode(result); err != nil {
					panic(err)
				}
				output.Write([]byte{'\n'})
			}).Catch(def.ValidationError, func(err *errors.Error) {
				panic(Error.NewWith(err.Message(), SetExitCode(EXIT_USER)))
			}).Catch(def.ConfigError, func(err *errors.Error) {
				panic(Error.NewWith(err.Message(), SetExitCode(EXIT_USER)))
			}).Done()
		},
	}
}
