// Package swagger serves the API reference: the embedded OpenAPI document
// and a ReDoc page that renders it.
package swagger

import (
	"bytes"
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"html/template"
	"net/http"
)

// Paths served by Register.
const (
	DocsPath     = "/api-docs"
	DocumentPath = "/openapi.yaml"
)

// OpenAPI is the embedded OpenAPI 3 document for the tradecalc API.
//
//go:embed openapi.yaml
var OpenAPI []byte

// ErrServe is returned when the docs page cannot be rendered.
var ErrServe = errors.New("swagger serve failed")

var (
	documentETag = func() string {
		sum := sha256.Sum256(OpenAPI)
		return `"` + hex.EncodeToString(sum[:8]) + `"`
	}()

	docsPage = template.Must(template.New("redoc").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
    <script>Redoc.init({{.Doc}}, { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`))
)

// Register attaches GET /api-docs and GET /openapi.yaml to mux.
func Register(_ context.Context, mux *http.ServeMux) error {
	if mux == nil {
		return errors.Join(ErrServe, errors.New("mux is nil"))
	}

	var page bytes.Buffer
	if err := docsPage.Execute(&page, struct{ Title, Doc string }{
		Title: "Trade Calculators API - ReDoc",
		Doc:   DocumentPath,
	}); err != nil {
		return errors.Join(ErrServe, err)
	}
	html := page.Bytes()

	mux.HandleFunc("GET "+DocsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(html)
	})
	mux.HandleFunc("GET "+DocumentPath, serveDocument)
	return nil
}

// serveDocument writes the document, answering a matching If-None-Match with 304.
func serveDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", documentETag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == documentETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(OpenAPI)
}
