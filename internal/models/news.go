package models

import (
	"time"
)

// RawNewsItem is a news record exactly as the upstream provider returns it.
// The upstream schema is unstable: older payloads carry flat title/publisher/
// link fields with an epoch publish time, newer ones nest everything under a
// "content" object with an RFC3339 pubDate. All fields are optional.
type RawNewsItem struct {
	// Legacy flat layout
	Title               string `json:"title,omitempty"`
	Publisher           string `json:"publisher,omitempty"`
	Link                string `json:"link,omitempty"`
	ProviderPublishTime int64  `json:"providerPublishTime,omitempty"`

	// Nested layout
	Content *RawNewsContent `json:"content,omitempty"`
}

// RawNewsContent is the nested payload layout.
type RawNewsContent struct {
	Title        string           `json:"title,omitempty"`
	PubDate      string           `json:"pubDate,omitempty"`
	Provider     *RawNewsProvider `json:"provider,omitempty"`
	CanonicalURL *RawCanonicalURL `json:"canonicalUrl,omitempty"`
}

// RawNewsProvider identifies the publishing outlet in the nested layout.
type RawNewsProvider struct {
	DisplayName string `json:"displayName,omitempty"`
}

// RawCanonicalURL wraps the article link in the nested layout.
type RawCanonicalURL struct {
	URL string `json:"url,omitempty"`
}

// NewsItem is the canonical shape every downstream component sees.
// Produced once at the ingestion boundary so shape-sniffing never leaks
// into classification, scoring or weighting.
type NewsItem struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Time      int64  `json:"time"` // epoch seconds
	URL       string `json:"url"`
}

// Normalize collapses the raw item into the canonical NewsItem. Timestamp
// extraction is best effort across the known field layouts; anything
// missing or malformed falls back to now. Millisecond epochs are scaled
// down to seconds.
func (r RawNewsItem) Normalize(now time.Time) NewsItem {
	item := NewsItem{
		Title:     r.Title,
		Publisher: r.Publisher,
		URL:       r.Link,
		Time:      now.Unix(),
	}

	if r.Content != nil {
		if r.Content.Title != "" {
			item.Title = r.Content.Title
		}
		if r.Content.Provider != nil && r.Content.Provider.DisplayName != "" {
			item.Publisher = r.Content.Provider.DisplayName
		}
		if r.Content.CanonicalURL != nil && r.Content.CanonicalURL.URL != "" {
			item.URL = r.Content.CanonicalURL.URL
		}
	}

	if ts, ok := r.publishTime(); ok {
		item.Time = ts
	}

	return item
}

// publishTime extracts the publish timestamp from whichever field layout
// is populated. Returns false when no usable timestamp exists.
func (r RawNewsItem) publishTime() (int64, bool) {
	if r.ProviderPublishTime > 0 {
		return ToEpochSeconds(r.ProviderPublishTime), true
	}
	if r.Content != nil && r.Content.PubDate != "" {
		if t, err := time.Parse(time.RFC3339, r.Content.PubDate); err == nil {
			return t.Unix(), true
		}
		// Some feeds omit the timezone designator
		if t, err := time.Parse("2006-01-02T15:04:05", r.Content.PubDate); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}

// ToEpochSeconds normalizes an epoch value that may be expressed in
// milliseconds down to seconds. Negative values clamp to zero.
func ToEpochSeconds(ts int64) int64 {
	if ts > 1_000_000_000_000 {
		ts /= 1000
	}
	if ts < 0 {
		return 0
	}
	return ts
}
