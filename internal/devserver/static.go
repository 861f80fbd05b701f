package devserver

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/MKhiriev/danmu-client/internal/app"
	"github.com/MKhiriev/danmu-client/internal/utils"
)

const indexFile = "index.html"

// spaHandler serves a built single-page app from dir. Paths that match no
// file and carry no extension are client-side routes and get index.html.
type spaHandler struct {
	dir   string
	files http.Handler
}

func newSPAHandler(dir string) *spaHandler {
	return &spaHandler{dir: dir, files: http.FileServer(http.Dir(dir))}
}

func (s *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.dir == "" {
		_, _ = utils.WriteEnvelope(w, http.StatusNotFound, app.MsgNotFound)
		return
	}

	urlPath := path.Clean("/" + r.URL.Path)
	info, err := os.Stat(filepath.Join(s.dir, filepath.FromSlash(urlPath)))
	switch {
	case err == nil && !info.IsDir():
		s.files.ServeHTTP(w, r)
	case err == nil && info.IsDir() && s.hasIndex(urlPath):
		s.files.ServeHTTP(w, r)
	case (err == nil || errors.Is(err, fs.ErrNotExist)) && path.Ext(urlPath) == "" && s.hasIndex("/"):
		http.ServeFile(w, r, filepath.Join(s.dir, indexFile))
	default:
		_, _ = utils.WriteEnvelope(w, http.StatusNotFound, app.MsgNotFound)
	}
}

func (s *spaHandler) hasIndex(dir string) bool {
	info, err := os.Stat(filepath.Join(s.dir, filepath.FromSlash(dir), indexFile))
	return err == nil && !info.IsDir()
}
