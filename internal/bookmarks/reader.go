package bookmarks

import (
	"context"
	"strconv"

	"tweetstash/internal/tweet"
)

// pageSize is the fixed number of memberships per read-path page.
const pageSize = 20

// BookmarkPage is one page of cached bookmarks. NextToken is the offset of
// the following page, nil when this page was the last one.
type BookmarkPage struct {
	Tweets    []tweet.Tweet `json:"tweets"`
	NextToken *string       `json:"next_token"`
}

// ListBookmarks serves a page of the owner's bookmarks from the canonical
// store without touching the provider. A missing collection means nothing has
// been synced yet and yields an empty page, never an error. Stored rows with
// empty link cards get them re-derived on the fly from the retained raw
// payload so old rows still render previews.
func (s *Service) ListBookmarks(ctx context.Context, ownerID, cursor string) (BookmarkPage, error) {
	empty := BookmarkPage{Tweets: []tweet.Tweet{}}

	collectionID, err := s.collections.FindBookmarksCollectionID(ctx, ownerID, false)
	if err != nil || collectionID == "" {
		collectionID, err = s.collections.FindBookmarksCollectionID(ctx, ownerID, true)
	}
	if err != nil || collectionID == "" {
		return empty, nil
	}

	offset := parseCursor(cursor)
	ids, err := s.collections.ListMembershipTweetIDs(ctx, collectionID, offset, pageSize)
	if err != nil {
		s.logger.WarnContext(ctx, "membership page lookup failed", "owner_id", ownerID, "error", err)
		return empty, nil
	}
	if len(ids) == 0 {
		return empty, nil
	}

	stored, err := s.tweets.GetTweetsByID(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "tweet lookup failed", "owner_id", ownerID, "error", err)
		return empty, nil
	}

	byID := make(map[string]tweet.Tweet, len(stored))
	for _, t := range stored {
		if len(t.LinkCards) == 0 && len(t.RawJSON) > 0 {
			t.LinkCards = tweet.DeriveLinkCardsFromRaw(t.RawJSON)
		}
		byID[t.TweetID] = t
	}

	// Membership order is authoritative; canonical rows missing for a
	// membership id are skipped.
	page := BookmarkPage{Tweets: make([]tweet.Tweet, 0, len(ids))}
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			page.Tweets = append(page.Tweets, t)
		}
	}

	if len(ids) == pageSize {
		next := strconv.Itoa(offset + pageSize)
		page.NextToken = &next
	}
	return page, nil
}

// parseCursor interprets the opaque cursor as a non-negative decimal offset.
// Anything else means "start from the beginning".
func parseCursor(cursor string) int {
	if cursor == "" {
		return 0
	}
	offset, err := strconv.Atoi(cursor)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
