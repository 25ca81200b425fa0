package tweet

import "encoding/json"

// MediaItem is a single attached media entry on a canonical tweet.
type MediaItem struct {
	Type string `json:"type"` // "image", "video", or "gif"
	URL  string `json:"url"`
}

// LinkCard is the preview-card metadata for a URL mentioned in a tweet.
type LinkCard struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SiteName    string `json:"site_name"`
}

// PublicMetrics holds engagement counts for a tweet. ImpressionCount stays
// nil when the API tier does not expose it.
type PublicMetrics struct {
	LikeCount       int  `json:"like_count"`
	RetweetCount    int  `json:"retweet_count"`
	ReplyCount      int  `json:"reply_count"`
	BookmarkCount   int  `json:"bookmark_count"`
	ImpressionCount *int `json:"impression_count,omitempty"`
}

// QuotedTweet is a denormalized snapshot of a quoted tweet's public fields,
// captured at sync time so the feed can render the quote without a second fetch.
type QuotedTweet struct {
	TweetID           string      `json:"tweet_id"`
	TweetText         string      `json:"tweet_text"`
	AuthorHandle      string      `json:"author_handle"`
	AuthorDisplayName string      `json:"author_display_name"`
	AuthorAvatarURL   string      `json:"author_avatar_url"`
	Timestamp         *string     `json:"timestamp"`
	SourceURL         string      `json:"source_url"`
	Media             []MediaItem `json:"media"`
	LinkCards         []LinkCard  `json:"link_cards"`
}

// Tweet is the canonical record stored for each saved post. TweetID is the
// stable external identifier and the unique key in the canonical store; ID is
// a locally derived negative fallback used only for display.
type Tweet struct {
	ID                int64           `json:"id"`
	TweetID           string          `json:"tweet_id"`
	TweetText         *string         `json:"tweet_text"`
	AuthorHandle      *string         `json:"author_handle"`
	AuthorDisplayName *string         `json:"author_display_name"`
	AuthorAvatarURL   *string         `json:"author_avatar_url"`
	Timestamp         *string         `json:"timestamp"`
	SourceURL         string          `json:"source_url"`
	Media             []MediaItem     `json:"media"`
	LinkCards         []LinkCard      `json:"link_cards"`
	QuotedTweetID     *string         `json:"quoted_tweet_id"`
	QuotedTweet       *QuotedTweet    `json:"quoted_tweet"`
	InReplyToTweetID  *string         `json:"in_reply_to_tweet_id"`
	ConversationID    *string         `json:"conversation_id"`
	RawJSON           json.RawMessage `json:"raw_json"`
	Tags              []string        `json:"tags"`
	Notes             *string         `json:"notes"`
	SavedAt           *string         `json:"saved_at"`
	PublicMetrics     *PublicMetrics  `json:"public_metrics,omitempty"`
}

// Provider-side payload types, matching the X API v2 bookmarks response.

// PostMetrics mirrors the provider's public_metrics object.
type PostMetrics struct {
	LikeCount       int  `json:"like_count"`
	RetweetCount    int  `json:"retweet_count"`
	ReplyCount      int  `json:"reply_count"`
	BookmarkCount   int  `json:"bookmark_count"`
	ImpressionCount *int `json:"impression_count,omitempty"`
}

// User is a referenced user from the includes side-table.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Username        string `json:"username,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// Media is a referenced media item from the includes side-table.
type Media struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type,omitempty"` // "photo", "video", "animated_gif"
	URL             string `json:"url,omitempty"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
}

// URLEntity is a URL mention embedded in a post's entities.
type URLEntity struct {
	URL         string       `json:"url,omitempty"`
	ExpandedURL string       `json:"expanded_url,omitempty"`
	UnwoundURL  string       `json:"unwound_url,omitempty"`
	DisplayURL  string       `json:"display_url,omitempty"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Images      []EntityImage `json:"images,omitempty"`
}

// EntityImage is a preview image attached to a URL entity.
type EntityImage struct {
	URL string `json:"url,omitempty"`
}

// ReferencedPost links a post to another post (quote, retweet, reply).
type ReferencedPost struct {
	ID   string `json:"id"`
	Type string `json:"type"` // "quoted", "retweeted", "replied_to"
}

// Article is the provider's long-form article metadata, attached when the
// post itself is an article.
type Article struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// PostEntities holds the entity side of a post; only URLs are used here.
type PostEntities struct {
	URLs []URLEntity `json:"urls,omitempty"`
}

// PostAttachments holds media key references for a post.
type PostAttachments struct {
	MediaKeys []string `json:"media_keys,omitempty"`
}

// Post is a single post as returned by the provider. Raw retains the exact
// bytes it was decoded from so the record can be reprocessed later without
// another provider fetch.
type Post struct {
	ID               string           `json:"id"`
	Text             string           `json:"text,omitempty"`
	AuthorID         string           `json:"author_id,omitempty"`
	CreatedAt        string           `json:"created_at,omitempty"`
	PublicMetrics    *PostMetrics     `json:"public_metrics,omitempty"`
	Entities         *PostEntities    `json:"entities,omitempty"`
	Article          *Article         `json:"article,omitempty"`
	Attachments      *PostAttachments `json:"attachments,omitempty"`
	ReferencedPosts  []ReferencedPost `json:"referenced_tweets,omitempty"`
	InReplyToUserID  string           `json:"in_reply_to_user_id,omitempty"`
	ConversationID   string           `json:"conversation_id,omitempty"`
	Raw              json.RawMessage  `json:"-"`
}

// UnmarshalJSON keeps a copy of the raw payload alongside the decoded fields.
func (p *Post) UnmarshalJSON(data []byte) error {
	type alias Post
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Post(a)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Includes carries the provider's side-tables of referenced objects. All of
// them are optional and may be partial.
type Includes struct {
	Users []User  `json:"users,omitempty"`
	Media []Media `json:"media,omitempty"`
	Posts []Post  `json:"tweets,omitempty"`
}
