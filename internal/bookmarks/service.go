package bookmarks

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tweet_store.go -package=mocks tweetstash/internal/bookmarks TweetStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collection_store.go -package=mocks tweetstash/internal/bookmarks CollectionStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_fetcher.go -package=mocks tweetstash/internal/bookmarks Fetcher

import (
	"context"
	"log/slog"

	"tweetstash/internal/tweet"
	"tweetstash/internal/xapi"
)

// TweetStore is the canonical tweet side of the datastore, defined from the
// service's perspective (consumer-first).
type TweetStore interface {
	// UpsertTweets upserts one row per tweet keyed by tweet_id
	// (last-write-wins). includeOptional controls whether the quoted_tweet
	// and public_metrics columns are part of the write.
	UpsertTweets(ctx context.Context, tweets []tweet.Tweet, includeOptional bool) error
	// GetTweetsByID returns stored rows for the given ids; missing ids are
	// absent from the result.
	GetTweetsByID(ctx context.Context, ids []string) ([]tweet.Tweet, error)
}

// CollectionStore is the collection and membership side of the datastore.
type CollectionStore interface {
	// UpsertBookmarksCollection creates or reuses the owner's system
	// bookmarks collection and returns its id. legacy selects the
	// pre-migration owner column.
	UpsertBookmarksCollection(ctx context.Context, ownerID string, legacy bool) (string, error)
	// FindBookmarksCollectionID returns the owner's bookmarks collection id
	// or storage.ErrNotFound.
	FindBookmarksCollectionID(ctx context.Context, ownerID string, legacy bool) (string, error)
	// UpsertMemberships adds membership rows with duplicate-ignoring
	// semantics.
	UpsertMemberships(ctx context.Context, collectionID string, tweetIDs []string) error
	// ListMembershipTweetIDs returns one page of member tweet ids, most
	// recently added first.
	ListMembershipTweetIDs(ctx context.Context, collectionID string, offset, limit int) ([]string, error)
}

// Fetcher retrieves one page of bookmarks from the external provider.
type Fetcher interface {
	FetchBookmarks(ctx context.Context, userID, accessToken string) (*xapi.BookmarksPage, error)
}

// Service wires the bookmark pipeline: fetch, map, reconcile, and the cached
// read path. All datastore access goes through the injected stores so the
// service is testable with substitutes.
type Service struct {
	fetcher     Fetcher
	tweets      TweetStore
	collections CollectionStore
	logger      *slog.Logger
}

// NewService creates a new bookmarks Service.
func NewService(fetcher Fetcher, tweets TweetStore, collections CollectionStore) *Service {
	return &Service{
		fetcher:     fetcher,
		tweets:      tweets,
		collections: collections,
		logger:      slog.Default(),
	}
}
