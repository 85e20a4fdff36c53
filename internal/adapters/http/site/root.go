// Package site serves the embedded landing page and the iframe height reporter.
package site

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Error constants
var (
	ErrRender = errors.New("site render failed")
	ErrServe  = errors.New("site serve failed")
)

// Register attaches the landing page, its assets and the height reporter to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	root := NewRootHandler()
	mux.HandleFunc("GET /{$}", root.HandleRoot)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(Assets())))
	mux.HandleFunc("GET /iframe-height.js", HandleHeightScript)
}

// RootHandler serves the landing page.
type RootHandler struct {
	index []byte
}

// NewRootHandler creates a new root handler. It panics when the embedded
// page is missing.
func NewRootHandler() *RootHandler {
	index, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		panic(errors.Join(ErrServe, err))
	}
	return &RootHandler{index: index}
}

// HandleRoot handles GET / requests.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.index)
}

// Assets exposes the embedded static directory.
func Assets() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(errors.Join(ErrServe, err))
	}
	return http.FS(sub)
}
