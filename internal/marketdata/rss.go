package marketdata

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/models"
)

// RSSSource pulls headlines from a per-ticker RSS feed as a secondary
// news stream. The feed URL template carries one %s verb that is
// replaced with the ticker symbol.
type RSSSource struct {
	feedURL string
	parser  *gofeed.Parser
	logger  arbor.ILogger
}

// NewRSSSource creates an RSS source for the given URL template.
func NewRSSSource(feedURL string, logger arbor.ILogger) *RSSSource {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &RSSSource{
		feedURL: feedURL,
		parser:  parser,
		logger:  logger,
	}
}

// Fetch retrieves and converts the feed for a ticker. Items without a
// parseable publish time are kept; the ingestion boundary stamps them
// with the current time.
func (s *RSSSource) Fetch(ctx context.Context, ticker string) ([]models.RawNewsItem, error) {
	feedURL := fmt.Sprintf(s.feedURL, ticker)

	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	publisher := feed.Title

	items := make([]models.RawNewsItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry == nil || entry.Title == "" {
			continue
		}

		item := models.RawNewsItem{
			Title:     entry.Title,
			Publisher: publisher,
			Link:      entry.Link,
		}
		if entry.PublishedParsed != nil {
			item.ProviderPublishTime = entry.PublishedParsed.Unix()
		}

		items = append(items, item)
	}

	if s.logger != nil {
		s.logger.Debug().Str("ticker", ticker).Int("count", len(items)).Msg("RSS feed fetched")
	}

	return items, nil
}
