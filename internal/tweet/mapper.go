package tweet

import "encoding/json"

// MapBookmarks converts a page of provider posts plus its includes side-tables
// into canonical Tweet records. Mapping is total: missing or malformed fields
// degrade to nil/empty values, and a single bad post never prevents the rest
// of the batch from being mapped.
func MapBookmarks(posts []Post, includes Includes) []Tweet {
	usersByID := make(map[string]User, len(includes.Users))
	for _, u := range includes.Users {
		usersByID[u.ID] = u
	}
	mediaByKey := make(map[string]Media, len(includes.Media))
	for _, m := range includes.Media {
		mediaByKey[m.MediaKey] = m
	}
	quotedByID := make(map[string]Post, len(includes.Posts))
	for _, p := range includes.Posts {
		quotedByID[p.ID] = p
	}

	tweets := make([]Tweet, 0, len(posts))
	for _, post := range posts {
		var handle string
		var author User
		var hasAuthor bool
		if post.AuthorID != "" {
			author, hasAuthor = usersByID[post.AuthorID]
		}
		if hasAuthor {
			handle = author.Username
		}

		var quotedRef *ReferencedPost
		for i := range post.ReferencedPosts {
			if post.ReferencedPosts[i].Type == "quoted" {
				quotedRef = &post.ReferencedPosts[i]
				break
			}
		}

		t := Tweet{
			ID:                SyntheticID(post.ID),
			TweetID:           post.ID,
			TweetText:         optional(post.Text),
			Timestamp:         optional(post.CreatedAt),
			SourceURL:         sourceURL(handle, post.ID),
			Media:             mapMedia(post.Attachments, mediaByKey),
			LinkCards:         DeriveLinkCards(post),
			InReplyToTweetID:  optional(post.InReplyToUserID),
			ConversationID:    optional(post.ConversationID),
			RawJSON:           post.Raw,
			Tags:              []string{},
			PublicMetrics:     mapPublicMetrics(post.PublicMetrics),
		}
		if hasAuthor {
			t.AuthorHandle = optional(author.Username)
			t.AuthorDisplayName = optional(author.Name)
			t.AuthorAvatarURL = optional(author.ProfileImageURL)
		}
		if quotedRef != nil {
			id := quotedRef.ID
			t.QuotedTweetID = &id
			t.QuotedTweet = mapQuotedTweet(*quotedRef, quotedByID, usersByID, mediaByKey)
		}
		tweets = append(tweets, t)
	}
	return tweets
}

// DeriveLinkCardsFromRaw re-derives link cards from a stored raw provider
// payload. Used by the read path when a persisted row predates link card
// extraction and carries an empty link_cards column. Malformed payloads
// yield an empty list, never an error.
func DeriveLinkCardsFromRaw(raw json.RawMessage) []LinkCard {
	if len(raw) == 0 {
		return []LinkCard{}
	}
	var post Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return []LinkCard{}
	}
	return DeriveLinkCards(post)
}

// mapQuotedTweet resolves a quoted reference into a depth-1 snapshot. Only
// posts already present in the fetched side-table are resolved; no further
// lookups happen. Returns nil when the quoted post's body is absent.
func mapQuotedTweet(ref ReferencedPost, quotedByID map[string]Post, usersByID map[string]User, mediaByKey map[string]Media) *QuotedTweet {
	quoted, ok := quotedByID[ref.ID]
	if !ok {
		return nil
	}

	var handle string
	if quoted.AuthorID != "" {
		if author, ok := usersByID[quoted.AuthorID]; ok {
			handle = author.Username
		}
	}

	snapshot := &QuotedTweet{
		TweetID:           quoted.ID,
		TweetText:         quoted.Text,
		AuthorHandle:      "unknown",
		AuthorDisplayName: "Unknown",
		Timestamp:         optional(quoted.CreatedAt),
		SourceURL:         sourceURL(handle, quoted.ID),
		Media:             mapMedia(quoted.Attachments, mediaByKey),
		LinkCards:         DeriveLinkCards(quoted),
	}
	if handle != "" {
		snapshot.AuthorHandle = handle
	}
	if quoted.AuthorID != "" {
		if author, ok := usersByID[quoted.AuthorID]; ok {
			if author.Name != "" {
				snapshot.AuthorDisplayName = author.Name
			}
			snapshot.AuthorAvatarURL = author.ProfileImageURL
		}
	}
	return snapshot
}

func mapMedia(attachments *PostAttachments, mediaByKey map[string]Media) []MediaItem {
	items := []MediaItem{}
	if attachments == nil {
		return items
	}
	for _, key := range attachments.MediaKeys {
		m, ok := mediaByKey[key]
		if !ok {
			continue
		}
		mediaType := "video"
		switch m.Type {
		case "photo":
			mediaType = "image"
		case "animated_gif":
			mediaType = "gif"
		}
		url := m.URL
		if url == "" {
			url = m.PreviewImageURL
		}
		if url == "" {
			continue
		}
		items = append(items, MediaItem{Type: mediaType, URL: url})
	}
	return items
}

func mapPublicMetrics(metrics *PostMetrics) *PublicMetrics {
	if metrics == nil {
		return nil
	}
	return &PublicMetrics{
		LikeCount:       metrics.LikeCount,
		RetweetCount:    metrics.RetweetCount,
		ReplyCount:      metrics.ReplyCount,
		BookmarkCount:   metrics.BookmarkCount,
		ImpressionCount: metrics.ImpressionCount,
	}
}

func sourceURL(handle, id string) string {
	if handle != "" {
		return "https://x.com/" + handle + "/status/" + id
	}
	return "https://x.com/i/status/" + id
}

// SyntheticID derives a deterministic negative synthetic id from the
// external string id. The value is a display-only fallback so rows mapped
// locally are visually distinguishable from database-assigned ids; it is not
// collision-free and must never be used as a join key.
func SyntheticID(id string) int64 {
	var h int32
	for _, c := range id {
		h = (h<<5 - h) + int32(c)
	}
	v := int64(h)
	if v == 0 {
		v = 1
	}
	if v < 0 {
		v = -v
	}
	return -v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
