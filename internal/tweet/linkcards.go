package tweet

import (
	"net/url"
	"strings"
)

// DeriveLinkCards extracts preview cards from a post's URL entities and its
// optional article metadata.
//
// Per entity the target URL is the unwound URL, else the expanded URL, else
// the raw short URL. Unresolved t.co links are kept as placeholder cards so a
// downstream enrichment job can fill them in later. Links back to the
// platform itself (x.com/twitter.com including subdomains) are dropped unless
// they are /i/article/ deep links.
func DeriveLinkCards(post Post) []LinkCard {
	cards := []LinkCard{}
	if post.Entities == nil {
		return cards
	}

	for _, entry := range post.Entities.URLs {
		target := entry.UnwoundURL
		if target == "" {
			target = entry.ExpandedURL
		}
		if target == "" {
			target = entry.URL
		}
		if target == "" {
			continue
		}

		unresolvedShortener := toDomain(target) == "t.co"
		if !unresolvedShortener && isPlatformURL(target) && !isArticleURL(target) {
			continue
		}

		title := strings.TrimSpace(entry.Title)
		if title == "" && post.Article != nil {
			title = strings.TrimSpace(post.Article.Title)
		}
		if title == "" {
			title = entry.DisplayURL
		}
		if title == "" {
			title = target
		}

		description := strings.TrimSpace(entry.Description)
		if description == "" && post.Article != nil {
			description = strings.TrimSpace(post.Article.Description)
		}

		image := ""
		if len(entry.Images) > 0 {
			image = entry.Images[0].URL
		}
		if image == "" && post.Article != nil {
			image = post.Article.ImageURL
		}

		cards = append(cards, LinkCard{
			URL:         target,
			Title:       title,
			Description: description,
			Image:       image,
			SiteName:    toDomain(target),
		})
	}
	return cards
}

// toDomain returns the hostname with a leading "www." stripped, or "" when
// the value does not parse as a URL.
func toDomain(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// isPlatformURL reports whether the URL points at the hosting platform
// itself, covering the current and legacy domain names, their subdomains,
// and the link-shortener domain.
func isPlatformURL(raw string) bool {
	domain := toDomain(raw)
	return domain == "x.com" || strings.HasSuffix(domain, ".x.com") ||
		domain == "twitter.com" || strings.HasSuffix(domain, ".twitter.com") ||
		domain == "t.co"
}

// isArticleURL reports whether the URL is a platform long-form article deep
// link (/i/article/<id>), which is a useful preview target unlike plain
// status or profile permalinks.
func isArticleURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	if host != "x.com" && host != "twitter.com" {
		return false
	}
	return strings.HasPrefix(parsed.Path, "/i/article/")
}
