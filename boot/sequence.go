package boot

import (
	"fmt"
	"net"
	"os"

	"github.com/inconshreveable/log15"

	"yuisekin.net/fisca/bundle"
	"yuisekin.net/fisca/params"
	"yuisekin.net/fisca/rules"
)

// Plan is the bootstrap's complete input: everything comes from the
// environment before the sequence starts, nothing is negotiated later.
type Plan struct {
	WorkDir  string
	RulesURI string
	Port     int
	User     string
	Journal  log15.Logger
}

/*
	Step 1: verify the runtime environment and load everything that
	needs loading -- while we still have whatever privileges we started
	with, and before any socket exists.

	Checks the working directory is present and populated, moves into
	it, fetches the rule bundle, and loads the parameter tree and
	variable catalogue.  MAY PANIC (RuntimeError, bundle and params
	errors; all fatal).
*/
func (p Plan) Verify() *Verified {
	info, err := os.Stat(p.WorkDir)
	if err != nil {
		panic(RuntimeError.New("working directory %q is not usable: %s", p.WorkDir, err))
	}
	if !info.IsDir() {
		panic(RuntimeError.New("working directory %q is not a directory", p.WorkDir))
	}
	entries, err := os.ReadDir(p.WorkDir)
	if err != nil {
		panic(RuntimeError.New("working directory %q is not readable: %s", p.WorkDir, err))
	}
	if len(entries) == 0 {
		panic(RuntimeError.New("working directory %q is empty; the application files were never put there", p.WorkDir))
	}
	if err := os.Chdir(p.WorkDir); err != nil {
		panic(RuntimeError.New("could not enter working directory %q: %s", p.WorkDir, err))
	}

	rulesDir := bundle.Fetch(p.RulesURI, p.Journal)
	tree := params.LoadDir(rulesDir)
	registry := rules.Default()
	p.Journal.Info("runtime verified",
		"workdir", p.WorkDir,
		"rules", p.RulesURI,
		"parameters", tree.Len(),
		"variables", registry.Len(),
	)

	return &Verified{plan: p, Registry: registry, Params: tree}
}

// The state after Verify: environment checked, rules loaded, still
// possibly root, no socket yet.
type Verified struct {
	plan     Plan
	Registry *rules.Registry
	Params   *params.Tree
}

/*
	Step 2: switch to the unprivileged execution identity.

	If the process is root, this resolves the configured account,
	switches gid then uid to it, and prunes the capability bounding set
	down to the routine set.  If the process is already unprivileged
	(the container runtime's USER directive got there first), this just
	verifies and logs.  MAY PANIC (IdentityError; fatal -- we never
	shrug and continue as root).
*/
func (v *Verified) DropPrivileges() *Deprivileged {
	uid, gid := dropIdentity(v.plan.User, v.plan.Journal)
	return &Deprivileged{verified: v, uid: uid, gid: gid}
}

// The state after the identity switch.  This is the first type a
// listening socket can be made from -- that's the ordering invariant,
// held by construction.
type Deprivileged struct {
	verified *Verified
	uid, gid int
}

func (d *Deprivileged) Uid() int { return d.uid }

/*
	Step 3: open the listening socket on the configured port.  A port
	already bound means two instances were pointed at the same place;
	MAY PANIC (BindError, fatal).
*/
func (d *Deprivileged) Bind() *Bound {
	addr := fmt.Sprintf(":%d", d.verified.plan.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		panic(BindError.New("could not bind %s: %s", addr, err))
	}
	d.verified.plan.Journal.Info("listening", "addr", ln.Addr().String(), "uid", d.uid)
	return &Bound{dep: d, ln: ln}
}

// The terminal pre-serve state: socket open, identity dropped, rules
// loaded.  All that's left is the serve loop (serve.go).
type Bound struct {
	dep *Deprivileged
	ln  net.Listener
}

func (b *Bound) Addr() net.Addr {
	return b.ln.Addr()
}

func (b *Bound) Close() error {
	return b.ln.Close()
}

func (b *Bound) Verified() *Verified {
	return b.dep.verified
}
