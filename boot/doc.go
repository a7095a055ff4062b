/*
	The `boot` package brings the service from cold start to serving,
	under the runtime contract the container packaging promises: a
	populated working directory, a dedicated unprivileged account, and a
	fixed port.

	The sequence is linear and one-shot:

	  Plan -> Verify() -> DropPrivileges() -> Bind() -> Serve()

	and the ordering is enforced by the types, not by convention: each
	step returns a value only the next step is defined on, so "bind
	before dropping privileges" is a compile error rather than a code
	review comment.  There is no state machine beyond this chain -- the
	single terminal state is "serving", left only by signal or by a
	fatal setup error.

	Every failure here is fatal and immediate: a port already bound, an
	account that doesn't exist, a working directory that wasn't
	populated -- these mean the *environment* is wrong, and the process's
	job is to exit nonzero loudly so the supervising orchestrator can
	act.  Nothing in this package retries.
*/
package boot
