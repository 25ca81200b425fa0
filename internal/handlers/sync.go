package handlers

import (
	"encoding/json"
	"net/http"

	"tweetstash/internal/bookmarks"
	"tweetstash/internal/contextutil"
)

// SyncHandler handles HTTP requests that trigger a bookmark sync from X.
type SyncHandler struct {
	service *bookmarks.Service
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(service *bookmarks.Service) *SyncHandler {
	return &SyncHandler{service: service}
}

// SyncResponse represents the HTTP response payload for a completed sync.
type SyncResponse struct {
	Status string `json:"status"`
	bookmarks.SyncResult
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ServeHTTP runs one sync invocation for the connected user. The X identity
// and access token come from cookies set by the (out of scope) OAuth flow;
// missing cookies are rejected before any provider traffic.
func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	accessToken := cookieValue(r, "x_access_token")
	userID := cookieValue(r, "x_user_id")
	if accessToken == "" || userID == "" {
		logger.WarnContext(ctx, "sync requested without X credentials")
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Not connected to X."})
		return
	}

	result, err := h.service.Sync(ctx, userID, accessToken)
	if err != nil {
		logger.ErrorContext(ctx, "bookmark sync failed", "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   "Failed to sync bookmarks from X.",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, SyncResponse{Status: "ok", SyncResult: result})
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
