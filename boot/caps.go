package boot

import (
	"github.com/inconshreveable/log15"
	"github.com/syndtr/gocapability/capability"
)

/*
	The capabilities a routine service process is allowed to keep in its
	bounding set after the identity switch.  Everything else is pruned
	so no descendant can ever reacquire it, setuid binaries included.

	CAP_NET_BIND_SERVICE is on the list for deployments that remap the
	service onto a port below 1024; the default port 5000 doesn't need it.
*/
func routineCaps() []capability.Cap {
	return []capability.Cap{
		capability.CAP_AUDIT_WRITE,
		capability.CAP_KILL,
		capability.CAP_NET_BIND_SERVICE,
	}
}

// Prune the bounding set down to routineCaps.  Called while still root
// (we need CAP_SETPCAP to do this at all); the subsequent setuid then
// clears the effective/permitted sets the normal kernel way.
func pruneBoundingSet(journal log15.Logger) {
	caps, err := capability.NewPid2(0)
	if err != nil {
		panic(IdentityError.New("could not inspect capabilities: %s", err))
	}
	if err := caps.Load(); err != nil {
		panic(IdentityError.New("could not load capability state: %s", err))
	}
	caps.Clear(capability.BOUNDS)
	caps.Set(capability.BOUNDS, routineCaps()...)
	if err := caps.Apply(capability.BOUNDS); err != nil {
		panic(IdentityError.New("could not prune capability bounding set: %s", err))
	}
	journal.Debug("capability bounding set pruned", "kept", len(routineCaps()))
}
