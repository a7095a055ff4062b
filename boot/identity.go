package boot

import (
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/inconshreveable/log15"
)

/*
	Switch the process to the named unprivileged account, if it is
	currently root.  Returns the uid/gid the process runs as afterward.

	The order matters and is the usual dance: prune the capability
	bounding set while we still hold CAP_SETPCAP, clear supplementary
	groups and set the gid while we still hold CAP_SETGID, and setuid
	last -- after that there's no way back up, which is the point.
*/
func dropIdentity(username string, journal log15.Logger) (int, int) {
	if os.Geteuid() != 0 {
		// The container runtime already did the drop (USER directive or
		// similar).  Verify-only: we just need to not be root.
		journal.Debug("already unprivileged; no identity switch needed", "uid", os.Getuid())
		return os.Getuid(), os.Getgid()
	}

	u, err := user.Lookup(username)
	if err != nil {
		panic(IdentityError.New("unprivileged account %q does not exist; refusing to serve as root: %s", username, err))
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		panic(IdentityError.New("account %q has a non-numeric uid %q", username, u.Uid))
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		panic(IdentityError.New("account %q has a non-numeric gid %q", username, u.Gid))
	}
	if uid == 0 {
		panic(IdentityError.New("account %q is uid 0; that's not an identity drop", username))
	}

	pruneBoundingSet(journal)

	if err := syscall.Setgroups([]int{gid}); err != nil {
		panic(IdentityError.New("could not clear supplementary groups: %s", err))
	}
	if err := syscall.Setgid(gid); err != nil {
		panic(IdentityError.New("could not switch to gid %d: %s", gid, err))
	}
	if err := syscall.Setuid(uid); err != nil {
		panic(IdentityError.New("could not switch to uid %d: %s", uid, err))
	}
	// Belt and braces: a setuid that silently didn't take would put us
	// in exactly the state this whole package exists to prevent.
	if os.Getuid() != uid || os.Geteuid() != uid {
		panic(IdentityError.New("identity switch to uid %d did not take (still uid %d/euid %d)", uid, os.Getuid(), os.Geteuid()))
	}

	journal.Info("dropped privileges", "user", username, "uid", uid, "gid", gid)
	return uid, gid
}
