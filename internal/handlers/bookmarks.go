package handlers

import (
	"net/http"

	"tweetstash/internal/bookmarks"
	"tweetstash/internal/contextutil"
)

// BookmarksHandler serves paginated bookmark listings from the canonical
// store. It never contacts the external provider.
type BookmarksHandler struct {
	service *bookmarks.Service
}

// NewBookmarksHandler creates a new BookmarksHandler.
func NewBookmarksHandler(service *bookmarks.Service) *BookmarksHandler {
	return &BookmarksHandler{service: service}
}

// ServeHTTP returns one page of the connected user's cached bookmarks. The
// cursor query parameter is an opaque offset; absent or invalid means "start
// from the beginning".
func (h *BookmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	accessToken := cookieValue(r, "x_access_token")
	userID := cookieValue(r, "x_user_id")
	if accessToken == "" || userID == "" {
		logger.WarnContext(ctx, "bookmark listing requested without X credentials")
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Not connected to X."})
		return
	}

	page, err := h.service.ListBookmarks(ctx, userID, r.URL.Query().Get("cursor"))
	if err != nil {
		logger.ErrorContext(ctx, "failed to load cached bookmarks", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to load cached bookmarks."})
		return
	}

	writeJSON(w, http.StatusOK, page)
}
