package web

import (
	"context"
	"net/http"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/lib/guid"
	"yuisekin.net/fisca/params"
)

type ctxKey struct{}

var journalKey = ctxKey{}

// The per-request journal, carrying the request id.  Falls back to the
// root logger so handlers never have to nil-check.
func journalFor(r *http.Request) log15.Logger {
	if j, ok := r.Context().Value(journalKey).(log15.Logger); ok {
		return j
	}
	return log15.Root()
}

/*
	Outermost wrapper: tags every request with a fresh id, gives it a
	child journal, and writes one access line when it's done.
*/
func accessLog(inner http.Handler, journal log15.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqJournal := journal.New("req", guid.New())
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		ctx := context.WithValue(r.Context(), journalKey, reqJournal)
		inner.ServeHTTP(sw, r.WithContext(ctx))

		reqJournal.Info("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"elapsed", time.Since(start),
		)
	})
}

/*
	Error boundary.  Handlers and the engine panic typed errors; this is
	where they become status codes: malformed situations and unknown
	variables are the client's fault (400), unknown parameter paths are
	404, anything else is ours (500, details in the journal only).
*/
func mapErrors(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		try.Do(func() {
			inner.ServeHTTP(w, r)
		}).Catch(params.NotFoundError, func(e *errors.Error) {
			respond(w, http.StatusNotFound, errorBody{Error: errors.GetMessage(e)})
		}).Catch(def.ValidationError, func(e *errors.Error) {
			respond(w, http.StatusBadRequest, errorBody{Error: errors.GetMessage(e)})
		}).CatchAll(func(err error) {
			journalFor(r).Error("request handling failed", "err", err)
			respond(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		}).Done()
	})
}

type errorBody struct {
	Error string `json:"error"`
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
