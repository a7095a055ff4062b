package def

import (
	"github.com/spacemonkeygo/errors"
)

/*
	Validation error is a base class for anything that matches the
	description of an HTTP 400: situations referencing persons that don't
	exist, requests for unknown variables, period strings that don't parse,
	formulas asked for a granularity they cannot produce, and so on.

	If the problem should have been caught at load time instead (a broken
	variable registry, say), that's `errors.ProgrammerError`, not this.
*/
var ValidationError *errors.ErrorClass = errors.NewClass("ValidationError")

/*
	Config error covers malformed input that arrives from the environment
	rather than from a request: unparseable parameter files, bad env vars,
	rule bundles that don't exist.  These are fatal at startup and are
	never retried; a misconfigured environment is the orchestrator's
	problem to correct.
*/
var ConfigError *errors.ErrorClass = errors.NewClass("ConfigError")
