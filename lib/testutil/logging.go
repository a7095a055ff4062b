package testutil

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/smartystreets/goconvey/convey"
)

/*
	A log15 logger that routes into the goconvey context, so log output
	shows up attached to the test that produced it instead of splatted
	across the terminal.
*/
func TestLogger(c convey.C) log15.Logger {
	log := log15.New()
	log.SetHandler(log15.StreamHandler(Writer{c}, log15.TerminalFormat()))
	return log
}

// A logger for tests that don't care about output at all.
func SilentLogger() log15.Logger {
	log := log15.New()
	log.SetHandler(log15.DiscardHandler())
	return log
}

var _ io.Writer = Writer{}

// Wraps a goconvey context into an `io.Writer` so logs can be shoveled at it.
type Writer struct {
	Convey convey.C
}

func (lw Writer) Write(msg []byte) (int, error) {
	return lw.Convey.Print(string(msg))
}
