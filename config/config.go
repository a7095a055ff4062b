/*
	The `config` package reads fisca's environment-supplied configuration.

	Configuration is environment-only and read once at startup -- the
	container contract gives us a fixed set of env vars and a populated
	working directory, and nothing else.  Malformed values panic
	`def.ConfigError`: a bad environment is fatal, immediately, so the
	orchestrator sees it; nothing here retries or limps along.
*/
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/inconshreveable/log15"

	"yuisekin.net/fisca/def"
)

/*
	The port the service binds.  Default 5000 -- the port the container
	packaging exposes.  Set by `FISCA_PORT`.
*/
func Port() int {
	raw := os.Getenv("FISCA_PORT")
	if raw == "" {
		return 5000
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		panic(def.ConfigError.New("FISCA_PORT must be a port number, not %q", raw))
	}
	return port
}

/*
	The unprivileged account the process switches to before binding,
	when started as root.  Set by `FISCA_USER`.
*/
func User() string {
	if u := os.Getenv("FISCA_USER"); u != "" {
		return u
	}
	return "fisca"
}

/*
	URI of the rule bundle (the parameter tree the service loads at
	startup).  `dir://` for a local tree -- the default points at the
	`parameters` directory the container build copies into the working
	directory -- or `s3://` for a tar bundle fetched at start.
	Set by `FISCA_RULES`.
*/
func RulesURI() string {
	if uri := os.Getenv("FISCA_RULES"); uri != "" {
		return uri
	}
	return "dir://parameters"
}

// The working directory the runtime contract requires populated.  Set by
// `FISCA_WORKDIR`; defaults to the process cwd.
func WorkDir() string {
	if d := os.Getenv("FISCA_WORKDIR"); d != "" {
		return d
	}
	return "."
}

/*
	How long a terminating service waits for in-flight requests before
	giving up and exiting nonzero.  Set by `FISCA_GRACE` (any
	time.ParseDuration string).
*/
func GracePeriod() time.Duration {
	raw := os.Getenv("FISCA_GRACE")
	if raw == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		panic(def.ConfigError.New("FISCA_GRACE must be a positive duration, not %q", raw))
	}
	return d
}

// If either "DEBUG" or "FISCA_DEBUG" env vars are set, we're in debug mode:
// panics run all the way to death so golang's built in log features fire.
func Debug() bool {
	return len(os.Getenv("DEBUG")) != 0 || len(os.Getenv("FISCA_DEBUG")) != 0
}

// Log level, per log15 level names.  Set by `FISCA_LOG_LEVEL`; default info.
func LogLevel() log15.Lvl {
	raw := os.Getenv("FISCA_LOG_LEVEL")
	if raw == "" {
		return log15.LvlInfo
	}
	lvl, err := log15.LvlFromString(raw)
	if err != nil {
		panic(def.ConfigError.New("FISCA_LOG_LEVEL must be a log level name, not %q", raw))
	}
	return lvl
}
