package bookmarks

import (
	"context"
	"time"

	"tweetstash/internal/metrics"
	"tweetstash/internal/tweet"
)

// SyncResult is the outcome of one bookmark sync invocation. NextToken is
// the provider's raw next-page token, nil when there are no more pages;
// callers paginate by passing it back on a later invocation of the provider.
type SyncResult struct {
	FetchedCount                 int     `json:"fetched_count"`
	PersistedCount               int     `json:"persisted_count"`
	CanonicalUpserted            int     `json:"canonical_upserted"`
	BookmarksCollectionID        string  `json:"bookmarks_collection_id"`
	RetriedWithoutOptionalFields bool    `json:"retried_without_optional_fields"`
	UsedLegacyOwnerColumn        bool    `json:"used_legacy_owner_column"`
	NextToken                    *string `json:"next_token"`
}

// Sync fetches one page of the owner's bookmarks from the provider, maps it
// into canonical tweets, and reconciles the batch into the store. An empty
// page skips persistence entirely and is not an error. Credentials are
// validated before any I/O happens.
func (s *Service) Sync(ctx context.Context, ownerID, accessToken string) (SyncResult, error) {
	if ownerID == "" {
		return SyncResult{}, &ValidationError{Field: "owner_id", Message: "cannot be empty"}
	}
	if accessToken == "" {
		return SyncResult{}, &ValidationError{Field: "access_token", Message: "cannot be empty"}
	}

	metrics.SyncRuns.Inc()
	start := time.Now()
	defer func() {
		metrics.SyncDuration.Observe(time.Since(start).Seconds())
	}()

	page, err := s.fetcher.FetchBookmarks(ctx, ownerID, accessToken)
	if err != nil {
		metrics.SyncErrors.Inc()
		s.logger.ErrorContext(ctx, "bookmarks fetch failed", "owner_id", ownerID, "error", err)
		return SyncResult{}, WrapError(err, "failed to fetch bookmarks")
	}

	tweets := tweet.MapBookmarks(page.Posts, page.Includes)
	result := SyncResult{FetchedCount: len(tweets)}
	if page.NextToken != "" {
		token := page.NextToken
		result.NextToken = &token
	}

	if len(tweets) == 0 {
		s.logger.InfoContext(ctx, "no bookmarks fetched, skipping persistence", "owner_id", ownerID)
		return result, nil
	}

	persisted, err := s.Persist(ctx, ownerID, tweets)
	if err != nil {
		metrics.SyncErrors.Inc()
		s.logger.ErrorContext(ctx, "bookmark persistence failed", "owner_id", ownerID, "error", err)
		return SyncResult{}, WrapError(err, "failed to persist bookmarks")
	}

	result.PersistedCount = persisted.MembershipUpserted
	result.CanonicalUpserted = persisted.CanonicalUpserted
	result.BookmarksCollectionID = persisted.BookmarksCollectionID
	result.RetriedWithoutOptionalFields = persisted.RetriedWithoutOptionalFields
	result.UsedLegacyOwnerColumn = persisted.UsedLegacyOwnerColumn

	s.logger.InfoContext(ctx, "bookmark sync complete",
		"owner_id", ownerID,
		"fetched", result.FetchedCount,
		"persisted", result.PersistedCount,
		"retried_without_optional_fields", result.RetriedWithoutOptionalFields,
		"used_legacy_owner_column", result.UsedLegacyOwnerColumn,
	)
	return result, nil
}
