// Package interfaces provides service interfaces for dependency injection.
package interfaces

import (
	"context"
	"time"

	"github.com/ternarybob/tickerpulse/internal/models"
)

// NewsProvider returns raw news items for a ticker. Implementations own
// any retry or timeout policy; the sentiment core performs none.
type NewsProvider interface {
	// FetchNews retrieves the currently available news items for a ticker.
	// Items arrive in provider order; the caller sorts and filters.
	FetchNews(ctx context.Context, ticker string) ([]models.RawNewsItem, error)
}

// ProfileProvider returns company metadata used for dynamic relevance
// keyword derivation. Best effort: implementations should return an
// empty profile rather than an error wherever possible.
type ProfileProvider interface {
	FetchProfile(ctx context.Context, ticker string) (models.CompanyProfile, error)
}

// PriceProvider returns historical bars and live quotes.
type PriceProvider interface {
	// FetchHistory retrieves daily bars for a period such as "5d", "1mo", "1y".
	FetchHistory(ctx context.Context, ticker string, period string) ([]models.PriceBar, error)
	// FetchQuote retrieves the latest quote for a ticker.
	FetchQuote(ctx context.Context, ticker string) (*models.Quote, error)
}

// Clock abstracts wall-clock access so the pipeline can capture one
// consistent "now" per invocation and tests can supply a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// NewsCache is an optional time-bounded cache of raw news keyed by
// ticker. A miss must always fall through to a live fetch; the cache is
// a performance optimization, never a correctness dependency.
type NewsCache interface {
	Get(ticker string) ([]models.RawNewsItem, bool)
	Put(ticker string, items []models.RawNewsItem)
}
