package bundle

import (
	"archive/tar"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/rlmcpherson/s3gof3r"
)

var s3Conf = &s3gof3r.Config{
	Concurrency: 4,
	PartSize:    20 * 1024 * 1024,
	NTry:        5,
	Md5Check:    false,
	Scheme:      "https",
	Client:      s3gof3r.ClientWithTimeout(15 * time.Second),
}

func fetchS3(u *url.URL, journal log15.Logger) string {
	// load keys from env.  host env is the one channel the orchestrator's
	// secret injection reliably reaches us through.
	keys, err := s3gof3r.EnvKeys()
	if err != nil {
		panic(CredentialsMissingError.Wrap(err))
	}

	bucketName := u.Host
	storePath := u.Path
	journal.Info("fetching rule bundle", "bucket", bucketName, "path", storePath)

	s3 := s3gof3r.New("s3.amazonaws.com", keys)
	r, _, err := s3.Bucket(bucketName).GetReader(storePath, s3Conf)
	if err != nil {
		panic(FetchError.New("could not start bundle fetch from s3://%s%s: %s", bucketName, storePath, err))
	}
	defer r.Close()

	dir, err := os.MkdirTemp("", "fisca-rules-")
	if err != nil {
		panic(FetchError.New("could not make a dir for the rule bundle: %s", err))
	}
	untar(r, dir)
	journal.Info("rule bundle unpacked", "dir", dir)
	return dir
}

/*
	Unpack a tar of parameter files.  This is deliberately a small
	subset of tar: directories and regular files only, links and
	devices refused, and every path confined below the destination.
	Parameter bundles are yaml trees; anything fancier in there is wrong.
*/
func untar(r io.Reader, destRoot string) {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			panic(FetchError.New("corrupt bundle tar: %s", err))
		}
		name := filepath.Clean(hdr.Name)
		if name == "." {
			continue
		}
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			panic(FetchError.New("bundle tar tries to escape its root with path %q", hdr.Name))
		}
		dest := filepath.Join(destRoot, name)
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, 0755); err != nil {
				panic(FetchError.New("could not unpack bundle: %s", err))
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				panic(FetchError.New("could not unpack bundle: %s", err))
			}
			f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				panic(FetchError.New("could not unpack bundle: %s", err))
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				panic(FetchError.New("could not unpack bundle file %q: %s", name, err))
			}
			f.Close()
		default:
			panic(FetchError.New("bundle tar holds a %q entry (%q); parameter bundles are plain files only", string(hdr.Typeflag), hdr.Name))
		}
	}
}
