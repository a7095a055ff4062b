package boot

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"

	"yuisekin.net/fisca/bundle"
	"yuisekin.net/fisca/params"
)

/*
	Lint checks the runtime contract a container instance will be held
	to -- without performing any of it.  No identity is switched, no
	socket is bound, nothing is mutated; this is the preflight the
	`fisca lint` command runs in CI and that an image build can run as a
	smoke test.

	Contract violations (the process *would* run as root; the working
	directory was never populated; the rule bundle doesn't load) come
	back as fatal problems.  Observations worth knowing but not wrong by
	contract come back as info -- notably that the exposed port has
	nothing bound to it unless `serve` actually runs, which is the
	packaging's documented default state.
*/
func Lint(plan Plan) Problems {
	var ps Problems

	// identity surface
	u, err := user.Lookup(plan.User)
	switch {
	case err != nil:
		ps = ps.fatal("unprivileged account %q does not exist: a root-started instance would keep running as root", plan.User)
	default:
		if uid, err := strconv.Atoi(u.Uid); err == nil && uid == 0 {
			ps = ps.fatal("account %q is uid 0: switching to it is not a privilege drop", plan.User)
		}
	}

	// port surface
	if plan.Port < 1 || plan.Port > 65535 {
		ps = ps.fatal("port %d is not a valid port number", plan.Port)
	} else if plan.Port < 1024 {
		ps = ps.info("port %d is privileged; binding it relies on CAP_NET_BIND_SERVICE surviving the identity switch", plan.Port)
	}
	ps = ps.info("port %d is exposed but unbound by default; only `fisca serve` (or an orchestrator command override) binds it", plan.Port)

	// working directory
	if entries, err := os.ReadDir(plan.WorkDir); err != nil {
		ps = ps.fatal("working directory %q is not usable: %s", plan.WorkDir, err)
	} else if len(entries) == 0 {
		ps = ps.fatal("working directory %q is empty; the application files were never put there", plan.WorkDir)
	}

	// rule bundle.  only local bundles are checked; fetching from the
	// network during lint would make CI flaky for the wrong reasons.
	if strings.HasPrefix(plan.RulesURI, "dir://") {
		try.Do(func() {
			params.LoadDir(bundle.Fetch(plan.RulesURI, plan.Journal))
		}).CatchAll(func(err error) {
			ps = ps.fatal("rule bundle %q does not load: %s", plan.RulesURI, errors.GetMessage(err))
		}).Done()
	} else {
		ps = ps.info("rule bundle %q is remote and was not checked", plan.RulesURI)
	}

	return ps
}

type Problems []Problem

type Problem struct {
	Fatal   bool
	Message string
}

// True if any problem is a contract violation (vs. an observation).
func (ps Problems) Fatal() bool {
	for _, p := range ps {
		if p.Fatal {
			return true
		}
	}
	return false
}

func (ps Problems) fatal(f string, args ...interface{}) Problems {
	return append(ps, Problem{Fatal: true, Message: fmt.Sprintf(f, args...)})
}

func (ps Problems) info(f string, args ...interface{}) Problems {
	return append(ps, Problem{Fatal: false, Message: fmt.Sprintf(f, args...)})
}
