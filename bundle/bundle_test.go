package bundle

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"yuisekin.net/fisca/lib/testutil"
)

func TestFetchDir(t *testing.T) {
	Convey("Given a local parameter tree", t, testutil.WithTmpdir(func(c C) {
		os.MkdirAll("rules/taxes", 0755)
		os.WriteFile("rules/taxes/rate.yaml", []byte("values:\n  2015-01-01: 0.15\n"), 0644)

		Convey("dir:// resolves to it in place", func() {
			So(Fetch("dir://rules", testutil.TestLogger(c)), ShouldEqual, "rules")
		})

		Convey("a missing dir is a bundle error", func() {
			So(func() {
				Fetch("dir://nope", testutil.TestLogger(c))
			}, testutil.ShouldPanicWith, Error)
		})

		Convey("a file where a dir should be is a bundle error", func() {
			So(func() {
				Fetch("dir://rules/taxes/rate.yaml", testutil.TestLogger(c))
			}, testutil.ShouldPanicWith, Error)
		})
	}))

	Convey("An unrecognized scheme is a bundle error", t, func(c C) {
		So(func() {
			Fetch("ftp://old.school/rules.tar", testutil.TestLogger(c))
		}, testutil.ShouldPanicWith, Error)
	})
}

func TestUntar(t *testing.T) {
	Convey("Given a tarred parameter tree", t, testutil.WithTmpdir(func() {
		var buf bytes.Buffer
		tw := tar.NewWriter(&buf)
		tw.WriteHeader(&tar.Header{Name: "taxes/", Typeflag: tar.TypeDir, Mode: 0755})
		body := []byte("values:\n  2015-01-01: 0.15\n")
		tw.WriteHeader(&tar.Header{Name: "taxes/rate.yaml", Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(body))})
		tw.Write(body)
		tw.Close()

		Convey("it unpacks below the destination", func() {
			untar(bytes.NewReader(buf.Bytes()), ".")
			got, err := os.ReadFile(filepath.Join("taxes", "rate.yaml"))
			So(err, ShouldBeNil)
			So(string(got), ShouldEqual, string(body))
		})
	}))

	Convey("Given a tar that tries to escape", t, testutil.WithTmpdir(func() {
		var buf bytes.Buffer
		tw := tar.NewWriter(&buf)
		body := []byte("gotcha")
		tw.WriteHeader(&tar.Header{Name: "../evil.yaml", Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(body))})
		tw.Write(body)
		tw.Close()

		Convey("it is refused", func() {
			So(func() {
				untar(bytes.NewReader(buf.Bytes()), ".")
			}, testutil.ShouldPanicWith, FetchError)
		})
	}))

	Convey("Given a tar with a symlink", t, testutil.WithTmpdir(func() {
		var buf bytes.Buffer
		tw := tar.NewWriter(&buf)
		tw.WriteHeader(&tar.Header{Name: "link.yaml", Typeflag: tar.TypeSymlink, Linkname: "/etc/passwd"})
		tw.Close()

		Convey("it is refused", func() {
			So(func() {
				untar(bytes.NewReader(buf.Bytes()), ".")
			}, testutil.ShouldPanicWith, FetchError)
		})
	}))
}
