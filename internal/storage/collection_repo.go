package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CollectionRepo persists named collections and their tweet memberships.
type CollectionRepo struct {
	db *sql.DB
}

// NewCollectionRepo creates a new CollectionRepo.
func NewCollectionRepo(db *sql.DB) *CollectionRepo {
	return &CollectionRepo{db: db}
}

func ownerColumn(legacy bool) string {
	// Deployments that have not yet run the collections migration still carry
	// the old owner column name.
	if legacy {
		return "owner_x_user_id"
	}
	return "owner_user_id"
}

// UpsertBookmarksCollection inserts or reuses the system "Bookmarks"
// collection for the owner, keyed by (owner, slug), and returns its id. The
// legacy flag switches the owner column to its pre-migration name.
func (r *CollectionRepo) UpsertBookmarksCollection(ctx context.Context, ownerID string, legacy bool) (string, error) {
	col := ownerColumn(legacy)
	query := fmt.Sprintf(`INSERT INTO collections (id, %s, name, slug, visibility, is_system)
		VALUES (?, ?, 'Bookmarks', 'bookmarks', 'private', 1)
		ON CONFLICT(%s, slug) DO UPDATE SET
			name = excluded.name,
			is_system = excluded.is_system
		RETURNING id`, col, col)

	var id string
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), ownerID).Scan(&id)
	if err != nil {
		return "", wrapStoreError(err)
	}
	return id, nil
}

// FindBookmarksCollectionID returns the id of the owner's bookmarks
// collection, or ErrNotFound when none exists yet.
func (r *CollectionRepo) FindBookmarksCollectionID(ctx context.Context, ownerID string, legacy bool) (string, error) {
	query := fmt.Sprintf("SELECT id FROM collections WHERE %s = ? AND slug = 'bookmarks'", ownerColumn(legacy))

	var id string
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrapStoreError(err)
	}
	return id, nil
}

// UpsertMemberships adds one membership row per tweet id to the collection.
// Conflicts on (collection_id, tweet_id) are ignored: re-bookmarking an
// already-saved tweet is a no-op, not an error.
func (r *CollectionRepo) UpsertMemberships(ctx context.Context, collectionID string, tweetIDs []string) error {
	if len(tweetIDs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreError(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	prepared, err := tx.PrepareContext(ctx,
		`INSERT INTO collection_tweets (collection_id, tweet_id) VALUES (?, ?)
		 ON CONFLICT(collection_id, tweet_id) DO NOTHING`)
	if err != nil {
		return wrapStoreError(err)
	}
	defer func() {
		_ = prepared.Close()
	}()

	for _, tweetID := range tweetIDs {
		if _, err := prepared.ExecContext(ctx, collectionID, tweetID); err != nil {
			return wrapStoreError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

// ListMembershipTweetIDs returns one page of tweet ids for the collection,
// most recently bookmarked first. Ties on added_at fall back to insertion
// order so pagination stays stable within a sync batch.
func (r *CollectionRepo) ListMembershipTweetIDs(ctx context.Context, collectionID string, offset, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tweet_id FROM collection_tweets
		 WHERE collection_id = ?
		 ORDER BY added_at DESC, rowid DESC
		 LIMIT ? OFFSET ?`,
		collectionID, limit, offset,
	)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, wrapStoreError(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(err)
	}
	return ids, nil
}
