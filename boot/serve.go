package boot

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

/*
	Step 4: the serve loop.  Runs until SIGINT or SIGTERM; on signal,
	stops accepting, drains in-flight requests for at most `grace`, and
	releases the socket.

	Returns nil on a clean drain.  Returns ShutdownError if the grace
	period was overrun (the caller should exit nonzero: the orchestrator
	deserves to know a SIGKILL was about to be earned), and Error if the
	server fell over without being asked to stop.
*/
func (b *Bound) Serve(h http.Handler, grace time.Duration) error {
	journal := b.dep.verified.plan.Journal
	srv := &http.Server{Handler: h}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(b.ln)
	}()
	journal.Info("serving", "addr", b.ln.Addr().String())

	select {
	case err := <-serveErr:
		// Serve never returns nil; and we haven't called Shutdown yet,
		// so whatever this is, nobody asked for it.
		return Error.New("server stopped unexpectedly: %s", err)
	case sig := <-sigCh:
		journal.Info("termination requested", "signal", sig.String(), "grace", grace.String())
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return ShutdownError.New("in-flight requests outlived the %s grace period: %s", grace, err)
		}
		journal.Info("drained and stopped")
		return nil
	}
}
