// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
)

// previewRequest is the body of a Markdown preview call.
type previewRequest struct {
	Markdown string `json:"markdown"`
}

// markdownRenderer renders Markdown source to HTML. Satisfied by
// markdown.ToHTML; a function type keeps the handler testable without
// pulling the goldmark setup into every test.
type markdownRenderer func(source string) (string, error)

// Preview returns an http.HandlerFunc that renders Markdown source to HTML
// for the editor's live preview pane.
func Preview(render markdownRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req previewRequest
		if err := decodeJSON(r, &req); err != nil {
			slog.Error("preview: bad request body", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to render preview")
			return
		}

		if strings.TrimSpace(req.Markdown) == "" {
			writeError(w, http.StatusBadRequest, "markdown is required")
			return
		}

		html, err := render(req.Markdown)
		if err != nil {
			slog.Error("preview: render failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to render preview")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"html": html})
	}
}
