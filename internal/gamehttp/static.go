package gamehttp

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const dirIndex = "index.html"

// staticFiles serves files under a root directory. Names with a segment
// starting with "." are hidden, and a directory serves only its index
// document; there are no listings and no index redirects.
type staticFiles struct {
	root http.FileSystem
}

func newStaticFiles(dir string) *staticFiles {
	return &staticFiles{root: http.Dir(dir)}
}

func (sf *staticFiles) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	f, fi, err := sf.open(path.Clean("/" + r.URL.Path))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}

func (sf *staticFiles) open(name string) (http.File, fs.FileInfo, error) {
	if hiddenPath(name) {
		return nil, nil, fs.ErrNotExist
	}
	f, fi, err := sf.openStat(name)
	if err != nil {
		return nil, nil, err
	}
	if !fi.IsDir() {
		return f, fi, nil
	}
	f.Close()

	f, fi, err = sf.openStat(path.Join(name, dirIndex))
	if err != nil {
		return nil, nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, nil, fs.ErrNotExist
	}
	return f, fi, nil
}

func (sf *staticFiles) openStat(name string) (http.File, fs.FileInfo, error) {
	f, err := sf.root.Open(name)
	if err != nil {
		return nil, nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, fi, nil
}

func hiddenPath(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
