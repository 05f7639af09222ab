// Package web provides the embedded static frontend: post list, detail,
// and editor pages that talk to the JSON API, compiled into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:ui
var uiFS embed.FS

// UI returns the frontend file tree rooted at the ui/ directory, ready to
// be served by http.FileServer.
func UI() fs.FS {
	sub, err := fs.Sub(uiFS, "ui")
	if err != nil {
		panic(err) // embed guarantees ui/ exists
	}
	return sub
}
