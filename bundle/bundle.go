/*
	The `bundle` package resolves a rules URI to a local directory of
	parameter files.

	Two schemes, dispatched by URI:
	  - `dir://path` -- the parameter tree is already on disk (the
	    container build copied it into the working directory).  Verified
	    and used in place.
	  - `s3://bucket/key` -- a tar of the parameter tree, streamed from
	    S3 at startup and unpacked into a temp dir.  Credentials come
	    from the environment (the usual AWS vars); the packaging itself
	    declares no secrets.

	Either way this happens exactly once, before privileges are dropped
	away and the port is bound; a bundle that can't be fetched is a fatal
	config error, not a retry loop.
*/
package bundle

import (
	"net/url"
	"os"
	"path"

	"github.com/inconshreveable/log15"
)

type fetcher func(u *url.URL, journal log15.Logger) string

var fetchers = map[string]fetcher{
	"dir": fetchDir,
	"s3":  fetchS3,
}

// Fetch resolves the URI to a local directory holding the parameter
// tree.  MAY PANIC (Error and subclasses; all fatal).
func Fetch(uri string, journal log15.Logger) string {
	u, err := url.Parse(uri)
	if err != nil {
		panic(Error.New("could not parse rules URI %q: %s", uri, err))
	}
	fetch, ok := fetchers[u.Scheme]
	if !ok {
		panic(Error.New("unrecognized rules URI scheme %q (want dir:// or s3://)", u.Scheme))
	}
	return fetch(u, journal)
}

func fetchDir(u *url.URL, journal log15.Logger) string {
	// `dir://parameters` parses with the path in the host slot; `dir:///abs/path`
	// with an empty host.  Stitch them back together.
	dir := path.Join(u.Host, u.Path)
	info, err := os.Stat(dir)
	if err != nil {
		panic(Error.New("rules dir %q is not usable: %s", dir, err))
	}
	if !info.IsDir() {
		panic(Error.New("rules path %q is not a directory", dir))
	}
	journal.Debug("using local rule bundle", "dir", dir)
	return dir
}
