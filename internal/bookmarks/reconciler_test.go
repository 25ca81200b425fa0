package bookmarks_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"tweetstash/internal/bookmarks"
	"tweetstash/internal/bookmarks/mocks"
	"tweetstash/internal/storage"
	"tweetstash/internal/tweet"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func textTweet(id, text string) tweet.Tweet {
	return tweet.Tweet{
		ID:        tweet.SyntheticID(id),
		TweetID:   id,
		TweetText: &text,
		SourceURL: "https://x.com/i/status/" + id,
		Media:     []tweet.MediaItem{},
		LinkCards: []tweet.LinkCard{},
		Tags:      []string{},
	}
}

func TestPersist_EmptyInputShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No store expectations: the datastore must not be contacted.
	svc := bookmarks.NewService(nil, mocks.NewMockTweetStore(ctrl), mocks.NewMockCollectionStore(ctrl))

	result, err := svc.Persist(context.Background(), "owner-1", nil)
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if result != (bookmarks.PersistResult{}) {
		t.Errorf("Persist() = %+v, want zero result", result)
	}
}

func TestPersist_DedupLastWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tweetStore := mocks.NewMockTweetStore(ctrl)
	collectionStore := mocks.NewMockCollectionStore(ctrl)
	svc := bookmarks.NewService(nil, tweetStore, collectionStore)

	var upserted []tweet.Tweet
	tweetStore.EXPECT().
		UpsertTweets(gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, tweets []tweet.Tweet, _ bool) error {
			upserted = tweets
			return nil
		})
	collectionStore.EXPECT().
		UpsertBookmarksCollection(gomock.Any(), "owner-1", false).
		Return("col-1", nil)
	collectionStore.EXPECT().
		UpsertMemberships(gomock.Any(), "col-1", []string{"a", "b"}).
		Return(nil)

	batch := []tweet.Tweet{
		textTweet("a", "first version"),
		textTweet("b", "other"),
		textTweet("a", "second version"),
	}

	result, err := svc.Persist(context.Background(), "owner-1", batch)
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	if len(upserted) != 2 {
		t.Fatalf("upserted %d rows, want 2", len(upserted))
	}
	if upserted[0].TweetID != "a" || *upserted[0].TweetText != "second version" {
		t.Errorf("duplicate id kept %q, want the later occurrence", *upserted[0].TweetText)
	}
	if result.CanonicalUpserted != 2 || result.MembershipUpserted != 2 {
		t.Errorf("counts = %d/%d, want 2/2", result.CanonicalUpserted, result.MembershipUpserted)
	}
	if result.BookmarksCollectionID != "col-1" {
		t.Errorf("collection id = %q, want col-1", result.BookmarksCollectionID)
	}
}

func TestPersist_SchemaDriftRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tweetStore := mocks.NewMockTweetStore(ctrl)
	collectionStore := mocks.NewMockCollectionStore(ctrl)
	svc := bookmarks.NewService(nil, tweetStore, collectionStore)

	driftErr := &storage.StoreError{
		Message: "could not find the 'quoted_tweet' column of 'tweets' in the schema cache",
	}

	gomock.InOrder(
		tweetStore.EXPECT().
			UpsertTweets(gomock.Any(), gomock.Any(), true).
			Return(driftErr),
		tweetStore.EXPECT().
			UpsertTweets(gomock.Any(), gomock.Any(), false).
			Return(nil),
	)
	collectionStore.EXPECT().
		UpsertBookmarksCollection(gomock.Any(), "owner-1", false).
		Return("col-1", nil)
	collectionStore.EXPECT().
		UpsertMemberships(gomock.Any(), "col-1", gomock.Any()).
		Return(nil)

	result, err := svc.Persist(context.Background(), "owner-1", []tweet.Tweet{textTweet("a", "x")})
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if !result.RetriedWithoutOptionalFields {
		t.Error("RetriedWithoutOptionalFields = false, want true")
	}
}

func TestPersist_SchemaDriftRetryExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tweetStore := mocks.NewMockTweetStore(ctrl)
	collectionStore := mocks.NewMockCollectionStore(ctrl)
	svc := bookmarks.NewService(nil, tweetStore, collectionStore)

	gomock.InOrder(
		tweetStore.EXPECT().
			UpsertTweets(gomock.Any(), gomock.Any(), true).
			Return(&storage.StoreError{Message: "table tweets has no column named public_metrics"}),
		tweetStore.EXPECT().
			UpsertTweets(gomock.Any(), gomock.Any(), false).
			Return(&storage.StoreError{Message: "disk I/O error"}),
	)
	// No collection or membership expectations: step 2/3 must not run.

	_, err := svc.Persist(context.Background(), "owner-1", []tweet.Tweet{textTweet("a", "x")})
	if err == nil {
		t.Fatal("Persist() error = nil, want failure after exhausted retry")
	}
	if !strings.HasPrefix(err.Error(), "failed to upsert canonical tweets:") {
		t.Errorf("error = %q, want canonical-phase prefix", err)
	}
}

func TestPersist_CanonicalFailureStopsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tweetStore := mocks.NewMockTweetStore(ctrl)
	collectionStore := mocks.NewMockCollectionStore(ctrl)
	svc := bookmarks.NewService(nil, tweetStore, collectionStore)

	tweetStore.EXPECT().
		UpsertTweets(gomock.Any(), gomock.Any(), true).
		Return(&storage.StoreError{Code: "42501", Message: "permission denied for table tweets"})
	// A permission error is not schema drift: no retry, no collection or
	// membership calls.

	_, err := svc.Persist(context.Background(), "owner-1", []tweet.Tweet{textTweet("a", "x")})
	if err == nil {
		t.Fatal("Persist() error = nil, want failure")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("error = %q, want underlying message preserved", err)
	}
}

func TestPersist_LegacyOwnerColumnFallback(t *testing.T) {
	tests := []struct {
		name       string
		modernID   string
		modernErr  error
		legacyID   string
		legacyErr  error
		wantLegacy bool
		wantErr    bool
	}{
		{
			name:       "modern column works",
			modernID:   "col-modern",
			wantLegacy: false,
		},
		{
			name:       "modern errors, legacy works",
			modernErr:  &storage.StoreError{Message: "no such column: owner_user_id"},
			legacyID:   "col-legacy",
			wantLegacy: true,
		},
		{
			name:       "modern returns no id without error, legacy works",
			modernID:   "",
			legacyID:   "col-legacy",
			wantLegacy: true,
		},
		{
			name:       "both attempts fail",
			modernErr:  &storage.StoreError{Message: "no such table: collections"},
			legacyErr:  &storage.StoreError{Message: "no such table: collections"},
			wantLegacy: true,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tweetStore := mocks.NewMockTweetStore(ctrl)
			collectionStore := mocks.NewMockCollectionStore(ctrl)
			svc := bookmarks.NewService(nil, tweetStore, collectionStore)

			tweetStore.EXPECT().UpsertTweets(gomock.Any(), gomock.Any(), true).Return(nil)
			collectionStore.EXPECT().
				UpsertBookmarksCollection(gomock.Any(), "owner-1", false).
				Return(tt.modernID, tt.modernErr)
			if tt.modernErr != nil || tt.modernID == "" {
				collectionStore.EXPECT().
					UpsertBookmarksCollection(gomock.Any(), "owner-1", true).
					Return(tt.legacyID, tt.legacyErr)
			}
			if !tt.wantErr {
				wantID := tt.modernID
				if wantID == "" {
					wantID = tt.legacyID
				}
				collectionStore.EXPECT().
					UpsertMemberships(gomock.Any(), wantID, gomock.Any()).
					Return(nil)
			}

			result, err := svc.Persist(context.Background(), "owner-1", []tweet.Tweet{textTweet("a", "x")})
			if tt.wantErr {
				if err == nil {
					t.Fatal("Persist() error = nil, want failure")
				}
				if !strings.Contains(err.Error(), "storage.Migrate") {
					t.Errorf("error = %q, want migration hint appended", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Persist() error = %v", err)
			}
			if result.UsedLegacyOwnerColumn != tt.wantLegacy {
				t.Errorf("UsedLegacyOwnerColumn = %v, want %v", result.UsedLegacyOwnerColumn, tt.wantLegacy)
			}
		})
	}
}

func TestPersist_MembershipFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tweetStore := mocks.NewMockTweetStore(ctrl)
	collectionStore := mocks.NewMockCollectionStore(ctrl)
	svc := bookmarks.NewService(nil, tweetStore, collectionStore)

	tweetStore.EXPECT().UpsertTweets(gomock.Any(), gomock.Any(), true).Return(nil)
	collectionStore.EXPECT().UpsertBookmarksCollection(gomock.Any(), "owner-1", false).Return("col-1", nil)
	collectionStore.EXPECT().
		UpsertMemberships(gomock.Any(), "col-1", gomock.Any()).
		Return(&storage.StoreError{Message: "foreign key constraint failed"})

	_, err := svc.Persist(context.Background(), "owner-1", []tweet.Tweet{textTweet("a", "x")})
	if err == nil {
		t.Fatal("Persist() error = nil, want failure")
	}
	if !strings.HasPrefix(err.Error(), "failed to upsert collection membership:") {
		t.Errorf("error = %q, want membership-phase prefix", err)
	}
}

// TestPersist_IdempotentResync runs the reconciler twice against a real
// SQLite store and checks that a repeat sync changes nothing.
func TestPersist_IdempotentResync(t *testing.T) {
	db, err := storage.New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	svc := bookmarks.NewService(nil, storage.NewTweetRepo(db), storage.NewCollectionRepo(db))
	batch := []tweet.Tweet{textTweet("a", "one"), textTweet("b", "two")}

	first, err := svc.Persist(context.Background(), "owner-1", batch)
	if err != nil {
		t.Fatalf("first Persist() error = %v", err)
	}
	second, err := svc.Persist(context.Background(), "owner-1", batch)
	if err != nil {
		t.Fatalf("second Persist() error = %v", err)
	}

	for _, result := range []bookmarks.PersistResult{first, second} {
		if result.CanonicalUpserted != 2 || result.MembershipUpserted != 2 {
			t.Errorf("counts = %d/%d, want 2/2", result.CanonicalUpserted, result.MembershipUpserted)
		}
	}
	if first.BookmarksCollectionID != second.BookmarksCollectionID {
		t.Errorf("collection id changed across syncs: %q vs %q", first.BookmarksCollectionID, second.BookmarksCollectionID)
	}

	var tweetCount, memberCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM tweets").Scan(&tweetCount); err != nil {
		t.Fatalf("count tweets: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM collection_tweets").Scan(&memberCount); err != nil {
		t.Fatalf("count memberships: %v", err)
	}
	if tweetCount != 2 || memberCount != 2 {
		t.Errorf("row counts = %d tweets, %d memberships; want 2/2", tweetCount, memberCount)
	}
}
