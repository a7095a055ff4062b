package params

import (
	"github.com/spacemonkeygo/errors"

	"yuisekin.net/fisca/def"
)

// grouping, do not instantiate
var Error *errors.ErrorClass = def.ConfigError.NewClass("ParamsError")

/*
	Raised when a parameter file doesn't have the shape we expect
	(neither a dated `values` scalar nor a dated `brackets` scale, dates
	that don't parse, etc).
*/
var ParseError *errors.ErrorClass = Error.NewClass("ParamParseError")

/*
	Raised when a formula (or an API client) asks for a parameter path
	that doesn't exist, or that exists but has no value yet at the
	requested instant.
*/
var NotFoundError *errors.ErrorClass = Error.NewClass("ParamNotFoundError")
