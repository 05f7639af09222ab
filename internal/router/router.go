// Package router sets up all HTTP routes and middleware chains for the
// inkpress server. Public read routes and mutation routes are organized
// into separate groups; the embedded frontend is served under /ui/.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/handlers"
	"inkpress/internal/markdown"
	"inkpress/internal/middleware"
	"inkpress/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(posts *handlers.Posts, categories *handlers.Categories) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Public read routes.
	r.Get("/posts", posts.List)
	r.Get("/posts/{id}", posts.Get)
	r.Get("/categories", categories.List)

	// Mutation routes. "admin" is a path prefix only — no authentication
	// is checked anywhere; every route is reachable by any client.
	limiter := middleware.NewRateLimiter(60, time.Minute)
	r.Route("/admin", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", posts.Create)
			r.Put("/{id}", posts.Update)
			r.Delete("/{id}", posts.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categories.Create)
			r.Put("/{id}", categories.Rename)
			r.Delete("/{id}", categories.Delete)
		})

		// Markdown live preview for the editor.
		r.Post("/preview", handlers.Preview(markdown.ToHTML))
	})

	// Embedded static frontend.
	r.Handle("/ui/*", http.StripPrefix("/ui/", http.FileServer(http.FS(web.UI()))))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ui/", http.StatusFound)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
