package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"tweetstash/internal/bookmarks"
	"tweetstash/internal/config"
	"tweetstash/internal/http"
	"tweetstash/internal/storage"
	"tweetstash/internal/xapi"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	tweetRepo := storage.NewTweetRepo(db)
	collectionRepo := storage.NewCollectionRepo(db)

	// Create X API client (external service layer)
	xClient := xapi.NewClient(cfg.XAPIBaseURL, cfg.XAPIRPS, cfg.XAPIBurst)

	// Create bookmarks service
	bookmarksService := bookmarks.NewService(xClient, tweetRepo, collectionRepo)
	slog.Info("Bookmarks service initialized", "x_api_base_url", cfg.XAPIBaseURL)

	// Create router with dependencies
	deps := &http.Deps{
		Bookmarks: bookmarksService,
		DB:        db,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
