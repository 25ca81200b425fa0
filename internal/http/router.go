package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tweetstash/internal/bookmarks"
	"tweetstash/internal/handlers"
	"tweetstash/internal/metrics"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Bookmarks *bookmarks.Service
	DB        *sql.DB
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(LoggerMiddleware)
	r.Use(CORS)

	syncHandler := handlers.NewSyncHandler(deps.Bookmarks)
	bookmarksHandler := handlers.NewBookmarksHandler(deps.Bookmarks)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/bookmarks/sync", syncHandler)
		r.Method(http.MethodGet, "/bookmarks", bookmarksHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
