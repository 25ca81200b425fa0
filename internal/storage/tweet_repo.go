package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"tweetstash/internal/tweet"
)

// TweetRepo persists canonical tweet rows.
type TweetRepo struct {
	db *sql.DB
}

// NewTweetRepo creates a new TweetRepo.
func NewTweetRepo(db *sql.DB) *TweetRepo {
	return &TweetRepo{db: db}
}

const tweetUpsertBase = `INSERT INTO tweets (
	tweet_id, tweet_text, author_handle, author_display_name, author_avatar_url,
	timestamp, source_url, media, link_cards, tags, notes,
	quoted_tweet_id, in_reply_to_tweet_id, conversation_id, raw_json
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(tweet_id) DO UPDATE SET
	tweet_text = excluded.tweet_text,
	author_handle = excluded.author_handle,
	author_display_name = excluded.author_display_name,
	author_avatar_url = excluded.author_avatar_url,
	timestamp = excluded.timestamp,
	source_url = excluded.source_url,
	media = excluded.media,
	link_cards = excluded.link_cards,
	quoted_tweet_id = excluded.quoted_tweet_id,
	in_reply_to_tweet_id = excluded.in_reply_to_tweet_id,
	conversation_id = excluded.conversation_id,
	raw_json = excluded.raw_json`

const tweetUpsertFull = `INSERT INTO tweets (
	tweet_id, tweet_text, author_handle, author_display_name, author_avatar_url,
	timestamp, source_url, media, link_cards, tags, notes,
	quoted_tweet_id, in_reply_to_tweet_id, conversation_id, raw_json,
	quoted_tweet, public_metrics
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(tweet_id) DO UPDATE SET
	tweet_text = excluded.tweet_text,
	author_handle = excluded.author_handle,
	author_display_name = excluded.author_display_name,
	author_avatar_url = excluded.author_avatar_url,
	timestamp = excluded.timestamp,
	source_url = excluded.source_url,
	media = excluded.media,
	link_cards = excluded.link_cards,
	quoted_tweet_id = excluded.quoted_tweet_id,
	in_reply_to_tweet_id = excluded.in_reply_to_tweet_id,
	conversation_id = excluded.conversation_id,
	raw_json = excluded.raw_json,
	quoted_tweet = excluded.quoted_tweet,
	public_metrics = excluded.public_metrics`

// UpsertTweets inserts or updates one canonical row per tweet, keyed by
// tweet_id with last-write-wins semantics. When includeOptional is false the
// quoted_tweet and public_metrics columns are left out of the statement
// entirely, so the write succeeds against schemas that predate those columns.
func (r *TweetRepo) UpsertTweets(ctx context.Context, tweets []tweet.Tweet, includeOptional bool) error {
	if len(tweets) == 0 {
		return nil
	}

	stmt := tweetUpsertBase
	if includeOptional {
		stmt = tweetUpsertFull
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStoreError(err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	prepared, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return wrapStoreError(err)
	}
	defer func() {
		_ = prepared.Close()
	}()

	for _, t := range tweets {
		args, err := tweetArgs(t, includeOptional)
		if err != nil {
			return err
		}
		if _, err := prepared.ExecContext(ctx, args...); err != nil {
			return wrapStoreError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

// GetTweetsByID returns the stored canonical rows for the given ids. Missing
// ids are simply absent from the result, in no particular order.
func (r *TweetRepo) GetTweetsByID(ctx context.Context, ids []string) ([]tweet.Tweet, error) {
	if len(ids) == 0 {
		return []tweet.Tweet{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := fmt.Sprintf(`SELECT
		tweet_id, tweet_text, author_handle, author_display_name, author_avatar_url,
		timestamp, source_url, media, link_cards, tags, notes,
		quoted_tweet_id, quoted_tweet, in_reply_to_tweet_id, conversation_id,
		raw_json, public_metrics, saved_at
	FROM tweets WHERE tweet_id IN (%s)`, placeholders)

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tweets []tweet.Tweet
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(err)
	}
	return tweets, nil
}

func tweetArgs(t tweet.Tweet, includeOptional bool) ([]any, error) {
	media, err := marshalList(t.Media)
	if err != nil {
		return nil, err
	}
	linkCards, err := marshalList(t.LinkCards)
	if err != nil {
		return nil, err
	}
	tags, err := marshalList(t.Tags)
	if err != nil {
		return nil, err
	}

	var rawJSON any
	if len(t.RawJSON) > 0 {
		rawJSON = string(t.RawJSON)
	}

	args := []any{
		t.TweetID, t.TweetText, t.AuthorHandle, t.AuthorDisplayName, t.AuthorAvatarURL,
		t.Timestamp, t.SourceURL, media, linkCards, tags, t.Notes,
		t.QuotedTweetID, t.InReplyToTweetID, t.ConversationID, rawJSON,
	}
	if !includeOptional {
		return args, nil
	}

	var quoted any
	if t.QuotedTweet != nil {
		encoded, err := json.Marshal(t.QuotedTweet)
		if err != nil {
			return nil, fmt.Errorf("failed to encode quoted tweet: %w", err)
		}
		quoted = string(encoded)
	}
	var metrics any
	if t.PublicMetrics != nil {
		encoded, err := json.Marshal(t.PublicMetrics)
		if err != nil {
			return nil, fmt.Errorf("failed to encode public metrics: %w", err)
		}
		metrics = string(encoded)
	}
	return append(args, quoted, metrics), nil
}

func marshalList(v any) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode list column: %w", err)
	}
	if string(encoded) == "null" {
		return "[]", nil
	}
	return string(encoded), nil
}

func scanTweet(rows *sql.Rows) (tweet.Tweet, error) {
	var t tweet.Tweet
	var media, linkCards, tags string
	var quoted, metrics, rawJSON sql.NullString

	err := rows.Scan(
		&t.TweetID, &t.TweetText, &t.AuthorHandle, &t.AuthorDisplayName, &t.AuthorAvatarURL,
		&t.Timestamp, &t.SourceURL, &media, &linkCards, &tags, &t.Notes,
		&t.QuotedTweetID, &quoted, &t.InReplyToTweetID, &t.ConversationID,
		&rawJSON, &metrics, &t.SavedAt,
	)
	if err != nil {
		return tweet.Tweet{}, wrapStoreError(err)
	}

	t.ID = tweet.SyntheticID(t.TweetID)
	t.Media = []tweet.MediaItem{}
	t.LinkCards = []tweet.LinkCard{}
	t.Tags = []string{}
	_ = json.Unmarshal([]byte(media), &t.Media)
	_ = json.Unmarshal([]byte(linkCards), &t.LinkCards)
	_ = json.Unmarshal([]byte(tags), &t.Tags)
	if quoted.Valid && quoted.String != "" {
		var q tweet.QuotedTweet
		if err := json.Unmarshal([]byte(quoted.String), &q); err == nil {
			t.QuotedTweet = &q
		}
	}
	if metrics.Valid && metrics.String != "" {
		var m tweet.PublicMetrics
		if err := json.Unmarshal([]byte(metrics.String), &m); err == nil {
			t.PublicMetrics = &m
		}
	}
	if rawJSON.Valid && rawJSON.String != "" {
		t.RawJSON = json.RawMessage(rawJSON.String)
	}
	return t, nil
}
