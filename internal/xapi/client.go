package xapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"tweetstash/internal/tweet"
)

// BookmarksPage is one page of the provider's bookmarks response: the posts,
// the includes side-tables, and the raw next-page token (empty at the end).
type BookmarksPage struct {
	Posts     []tweet.Post
	Includes  tweet.Includes
	NextToken string
}

// APIError is a non-2xx response from the provider. The body is preserved so
// callers can surface the provider's own error message.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bookmarks fetch failed with status %d: %s", e.StatusCode, e.Body)
}

// Client is a bearer-token client for the X API v2 bookmarks endpoint.
type Client struct {
	BaseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a new bookmarks client. The limiter keeps bursts of sync
// requests inside the provider's per-user rate window.
func NewClient(baseURL string, rps float64, burst int) *Client {
	return &Client{
		BaseURL: baseURL,
		client:  http.DefaultClient,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchBookmarks fetches a single page of the user's bookmarks. The field and
// expansion parameters request everything the mapper can use: engagement
// metrics, URL entities, reply/conversation linkage, attachments, referenced
// posts, and embedded article metadata. Pagination beyond one page is the
// caller's responsibility via BookmarksPage.NextToken.
func (c *Client) FetchBookmarks(ctx context.Context, userID, accessToken string) (*BookmarksPage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/bookmarks", c.BaseURL, url.PathEscape(userID))

	params := url.Values{}
	params.Set("tweet.fields", "created_at,public_metrics,entities,in_reply_to_user_id,conversation_id,referenced_tweets,attachments,article")
	params.Set("expansions", "author_id,attachments.media_keys,referenced_tweets.id,referenced_tweets.id.author_id")
	params.Set("user.fields", "name,username,profile_image_url")
	params.Set("media.fields", "url,preview_image_url,type,width,height")
	params.Set("max_results", "100")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var payload struct {
		Data     []tweet.Post   `json:"data"`
		Includes tweet.Includes `json:"includes"`
		Meta     struct {
			NextToken string `json:"next_token"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &BookmarksPage{
		Posts:     payload.Data,
		Includes:  payload.Includes,
		NextToken: payload.Meta.NextToken,
	}, nil
}
