package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// StaticHandler serves the built single-page app. Paths that do not name a
// file fall back to index.html so the client router can render them.
type StaticHandler struct {
	dir   string
	files http.Handler
}

// NewStaticHandler serves files under dir. It fails when dir is not a directory.
func NewStaticHandler(dir string) (*StaticHandler, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir %s is not a directory", dir)
	}
	return &StaticHandler{dir: dir, files: http.FileServer(http.Dir(dir))}, nil
}

func (s *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	name := path.Clean("/" + r.URL.Path)
	if name != "/" && !strings.HasSuffix(name, "/index.html") {
		if info, err := os.Stat(filepath.Join(s.dir, filepath.FromSlash(name))); err == nil && !info.IsDir() {
			s.files.ServeHTTP(w, r)
			return
		}
	}
	s.serveIndex(w, r)
}

func (s *StaticHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(s.dir, "index.html"))
	if err != nil {
		slog.WarnContext(r.Context(), "index.html not found in build", "dir", s.dir)
		http.Error(w, "index.html not found in build", http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "index.html not readable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, "index.html", info.ModTime(), f)
}
