package bookmarks

import (
	"context"
	"fmt"
	"strings"

	"tweetstash/internal/metrics"
	"tweetstash/internal/storage"
	"tweetstash/internal/tweet"
)

// PersistResult reports what a reconciliation run wrote and which fallback
// paths it had to take. The two booleans let operators spot lagging schema
// migrations without digging through logs.
type PersistResult struct {
	CanonicalUpserted            int    `json:"canonical_upserted"`
	MembershipUpserted           int    `json:"membership_upserted"`
	BookmarksCollectionID        string `json:"bookmarks_collection_id"`
	RetriedWithoutOptionalFields bool   `json:"retried_without_optional_fields"`
	UsedLegacyOwnerColumn        bool   `json:"used_legacy_owner_column"`
}

// collectionsMigrationHint is appended to collection-phase failures so the
// operator knows which migration is missing.
const collectionsMigrationHint = "Run storage.Migrate to create the collections and collection_tweets tables."

// Persist reconciles a batch of canonical tweets into the store for one
// owner. It dedups the batch by tweet_id (later entries win), then runs three
// strictly ordered upsert phases: canonical tweets, the system bookmarks
// collection, and collection membership. Each phase tolerates exactly one
// schema-drift fallback: the canonical phase retries once without the
// optional quoted_tweet/public_metrics fields, the collection phase retries
// once with the legacy owner column name. A phase failure aborts the run; a
// later phase never executes after an earlier one failed, so a membership
// row can never reference a tweet that was not durably written first.
func (s *Service) Persist(ctx context.Context, ownerID string, tweets []tweet.Tweet) (PersistResult, error) {
	if len(tweets) == 0 {
		return PersistResult{}, nil
	}

	unique := dedupeLastWins(tweets)
	result := PersistResult{
		CanonicalUpserted:  len(unique),
		MembershipUpserted: len(unique),
	}

	err := s.tweets.UpsertTweets(ctx, unique, true)
	if err != nil && storage.IsSchemaDrift(err) {
		s.logger.WarnContext(ctx, "canonical upsert hit schema drift, retrying without optional fields", "error", err)
		metrics.SchemaDriftRetries.Inc()
		result.RetriedWithoutOptionalFields = true
		err = s.tweets.UpsertTweets(ctx, unique, false)
	}
	if err != nil {
		return PersistResult{}, fmt.Errorf("failed to upsert canonical tweets: %s", err.Error())
	}

	collectionID, err := s.collections.UpsertBookmarksCollection(ctx, ownerID, false)
	if err != nil || collectionID == "" {
		s.logger.WarnContext(ctx, "collection upsert failed on current owner column, trying legacy", "error", err)
		metrics.LegacyOwnerFallbacks.Inc()
		result.UsedLegacyOwnerColumn = true
		collectionID, err = s.collections.UpsertBookmarksCollection(ctx, ownerID, true)
	}
	if err != nil || collectionID == "" {
		details := "collection row missing after upsert"
		if err != nil {
			details = err.Error()
		}
		return PersistResult{}, fmt.Errorf("failed to upsert bookmarks collection: %s (%s)", strings.TrimSpace(details), collectionsMigrationHint)
	}
	result.BookmarksCollectionID = collectionID

	ids := make([]string, len(unique))
	for i, t := range unique {
		ids[i] = t.TweetID
	}
	if err := s.collections.UpsertMemberships(ctx, collectionID, ids); err != nil {
		return PersistResult{}, fmt.Errorf("failed to upsert collection membership: %s", err.Error())
	}

	return result, nil
}

// dedupeLastWins collapses the batch by tweet_id. Order follows the first
// occurrence of each id; the value is the last occurrence, so a re-fetched
// tweet later in the page replaces an earlier copy.
func dedupeLastWins(tweets []tweet.Tweet) []tweet.Tweet {
	index := make(map[string]int, len(tweets))
	unique := make([]tweet.Tweet, 0, len(tweets))
	for _, t := range tweets {
		if i, seen := index[t.TweetID]; seen {
			unique[i] = t
			continue
		}
		index[t.TweetID] = len(unique)
		unique = append(unique, t)
	}
	return unique
}
