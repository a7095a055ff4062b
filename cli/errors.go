package cli

import (
	"github.com/spacemonkeygo/errors"
)

type ExitCode byte

const (
	EXIT_SUCCESS      = ExitCode(0)
	EXIT_BADARGS      = ExitCode(1)
	EXIT_UNKNOWNPANIC = ExitCode(2)  // same code as golang uses when the process dies naturally on an unhandled panic.
	EXIT_USER         = ExitCode(3)  // grab bag for general user input errors (try to make a more specific code if possible/useful)
	EXIT_CONTRACT     = ExitCode(4)  // lint found the runtime contract violated.
	EXIT_STARTUP      = ExitCode(10) // the bootstrap sequence failed: environment, rules, identity, or bind.
	EXIT_DRAIN        = ExitCode(11) // a terminating service could not drain within the grace period.
)

var ExitCodeKey = errors.GenSym()

/*
	CLI errors are the last line: they should be formatted to be user-facing.
	The main method will convert a CLIError into a short and well-formatted
	message, and will *not* include stack traces unless the user is running
	with debug mode enabled.

	CLI errors are an appropriate wrapping for anything where we can map a
	problem onto something the user can understand and fix.  Errors that are
	a fisca bug or unknown territory should *not* be mapped into a CLIError.
*/
var Error *errors.ErrorClass = errors.NewClass("CLIError")

/*
	Exit is not an error so much as a directive: stop, print this, use
	this code.  Used for flows that are done talking (lint found fatal
	problems; an entrypoint'd command exited nonzero) rather than broken.
*/
var Exit *errors.ErrorClass = errors.NewClass("CLIExit")

/*
	Use this to set a specific error code the process should exit with
	when producing a `cli.Error` or `cli.Exit`.

	Example: `cli.Error.NewWith("something terrible!", SetExitCode(EXIT_BADARGS))`
*/
func SetExitCode(code ExitCode) errors.ErrorOption {
	return errors.SetData(ExitCodeKey, code)
}
