package boot

import (
	"github.com/spacemonkeygo/errors"
)

// grouping, do not instantiate
var Error *errors.ErrorClass = errors.NewClass("BootError")

/*
	Raised when the promised runtime environment isn't there: working
	directory missing or empty, rule bundle unloadable.
*/
var RuntimeError *errors.ErrorClass = Error.NewClass("BootRuntimeError")

/*
	Raised when the identity switch cannot be performed: the unprivileged
	account doesn't exist, or the setuid/setgid/capability calls fail.
	Refusing to continue as root is the entire point; this is never
	downgraded to a warning.
*/
var IdentityError *errors.ErrorClass = Error.NewClass("BootIdentityError")

/*
	Raised when the listening socket cannot be opened -- almost always
	"address already in use", i.e. two instances pointed at one port.
*/
var BindError *errors.ErrorClass = Error.NewClass("BootBindError")

/*
	Raised when a terminating service could not drain its in-flight
	requests within the grace period.
*/
var ShutdownError *errors.ErrorClass = Error.NewClass("BootShutdownError")
