// Package marketdata provides a client for the upstream finance API:
// ticker news, company profiles, price history and quotes.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/models"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the base URL for the finance API.
	DefaultBaseURL = "https://query1.finance.yahoo.com"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10

	// newsCount is how many news items the search endpoint is asked for.
	newsCount = 50

	// The API rejects requests without a browser-like user agent.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// relatedTickers maps liquid tickers to broad-market symbols whose news
// streams often carry additional coverage of the company. Headlines
// fetched through these are kept only when the relevance filter accepts
// them for the target ticker.
var relatedTickers = map[string][]string{
	"AAPL":  {"SPY", "QQQ"},
	"MSFT":  {"SPY", "QQQ"},
	"NVDA":  {"SPY", "QQQ"},
	"GOOGL": {"SPY", "QQQ"},
	"AMZN":  {"SPY", "QQQ"},
	"META":  {"SPY", "QQQ"},
	"TSLA":  {"SPY", "QQQ"},
	"TSM":   {"SPY", "QQQ", "SMH"},
}

// RelevanceFilter reports whether a headline is about a ticker. Used to
// gate news pulled in from related-ticker feeds.
type RelevanceFilter func(ctx context.Context, title string, ticker string) bool

// Client is a finance API client. It implements the news, profile and
// price provider interfaces.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
	relevant   RelevanceFilter
	rss        *RSSSource
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithRelevanceFilter enables related-ticker news enrichment, gated by
// the supplied filter.
func WithRelevanceFilter(filter RelevanceFilter) ClientOption {
	return func(c *Client) {
		c.relevant = filter
	}
}

// WithRSSSource adds a secondary RSS news source.
func WithRSSSource(rss *RSSSource) ClientOption {
	return func(c *Client) {
		c.rss = rss
	}
}

// NewClient creates a new finance API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an error response from the finance API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("finance API error: %s (status %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// RateLimitError indicates the upstream throttled the request.
type RateLimitError struct {
	Endpoint string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("finance API rate limited (endpoint: %s)", e.Endpoint)
}

// get performs a GET request to the API.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path).
			Msg("Finance API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{Endpoint: path}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// FetchNews retrieves news for a ticker: the primary feed, plus
// relevance-filtered items from related broad-market tickers and the
// optional RSS source. Secondary source failures are logged and
// skipped; only a primary feed failure surfaces as an error. The merged
// stream is deduplicated by exact title.
func (c *Client) FetchNews(ctx context.Context, ticker string) ([]models.RawNewsItem, error) {
	primary, err := c.searchNews(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news for %s: %w", ticker, err)
	}

	all := make([]models.RawNewsItem, 0, len(primary))
	all = append(all, primary...)

	if c.relevant != nil {
		for _, related := range relatedTickers[strings.ToUpper(ticker)] {
			items, err := c.searchNews(ctx, related)
			if err != nil {
				if c.logger != nil {
					c.logger.Warn().Err(err).Str("ticker", related).Msg("Related news fetch failed")
				}
				continue
			}
			for _, item := range items {
				if title := rawTitle(item); title != "" && c.relevant(ctx, title, ticker) {
					all = append(all, item)
				}
			}
		}
	}

	if c.rss != nil {
		items, err := c.rss.Fetch(ctx, ticker)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn().Err(err).Str("ticker", ticker).Msg("RSS news fetch failed")
			}
		} else {
			all = append(all, items...)
		}
	}

	return dedupeByTitle(all), nil
}

// searchNews queries the search endpoint for a single ticker's news.
func (c *Client) searchNews(ctx context.Context, ticker string) ([]models.RawNewsItem, error) {
	params := url.Values{}
	params.Set("q", ticker)
	params.Set("newsCount", fmt.Sprintf("%d", newsCount))
	params.Set("quotesCount", "0")

	var response searchResponse
	if err := c.get(ctx, "/v1/finance/search", params, &response); err != nil {
		return nil, err
	}
	return response.News, nil
}

// FetchProfile retrieves company metadata for dynamic relevance
// keyword derivation. The CEO is the first officer whose title mentions
// the role.
func (c *Client) FetchProfile(ctx context.Context, ticker string) (models.CompanyProfile, error) {
	params := url.Values{}
	params.Set("modules", "assetProfile,price")

	var response quoteSummaryResponse
	path := fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(ticker))
	if err := c.get(ctx, path, params, &response); err != nil {
		return models.CompanyProfile{}, fmt.Errorf("failed to fetch profile for %s: %w", ticker, err)
	}

	if response.QuoteSummary.Error != nil {
		return models.CompanyProfile{}, fmt.Errorf("failed to fetch profile for %s: %s", ticker, response.QuoteSummary.Error.Description)
	}
	if len(response.QuoteSummary.Result) == 0 {
		return models.CompanyProfile{}, nil
	}

	result := response.QuoteSummary.Result[0]
	profile := models.CompanyProfile{}

	if result.Price != nil {
		profile.Name = result.Price.LongName
		if profile.Name == "" {
			profile.Name = result.Price.ShortName
		}
	}
	if result.AssetProfile != nil {
		profile.Industry = result.AssetProfile.Industry
		profile.Sector = result.AssetProfile.Sector
		profile.Summary = result.AssetProfile.LongBusinessSummary
		for _, officer := range result.AssetProfile.CompanyOfficers {
			title := strings.ToLower(officer.Title)
			if strings.Contains(title, "ceo") || strings.Contains(title, "chief executive") {
				profile.CEO = officer.Name
				break
			}
		}
	}

	return profile, nil
}

// FetchHistory retrieves bars for a period. Intraday resolution is used
// for short periods, daily bars otherwise; bars with no close are
// dropped and output is ascending by time.
func (c *Client) FetchHistory(ctx context.Context, ticker string, period string) ([]models.PriceBar, error) {
	period, interval := normalizePeriod(period)

	params := url.Values{}
	params.Set("range", period)
	params.Set("interval", interval)
	params.Set("includePrePost", "true")
	params.Set("events", "div,splits")

	result, err := c.chart(ctx, ticker, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", ticker, err)
	}

	return barsFromChart(result), nil
}

// FetchQuote retrieves the latest quote. Change is computed against the
// chart's previous close; a missing previous close yields zero change.
func (c *Client) FetchQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	params := url.Values{}
	params.Set("range", "2d")
	params.Set("interval", "1d")

	result, err := c.chart(ctx, ticker, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", ticker, err)
	}

	price := result.Meta.RegularMarketPrice
	prevClose := result.Meta.ChartPreviousClose

	var change, changePct float64
	if prevClose != 0 {
		change = price - prevClose
		changePct = change / prevClose * 100.0
	}

	quote := &models.Quote{
		Ticker:    strings.ToUpper(ticker),
		Price:     round2(price),
		Change:    round2(change),
		ChangePct: round5(changePct),
		PrevClose: round2(prevClose),
		Time:      result.Meta.RegularMarketTime,
	}
	if quote.Time == 0 {
		quote.Time = time.Now().Unix()
	}

	return quote, nil
}

// chart calls the chart endpoint and unwraps the single-result payload.
func (c *Client) chart(ctx context.Context, ticker string, params url.Values) (*chartResult, error) {
	var response chartResponse
	path := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(ticker))
	if err := c.get(ctx, path, params, &response); err != nil {
		return nil, err
	}

	if response.Chart.Error != nil {
		return nil, fmt.Errorf("%s: %s", response.Chart.Error.Code, response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result")
	}

	return &response.Chart.Result[0], nil
}

// normalizePeriod maps a requested period onto a supported range and
// matching interval. Unknown values fall back to one month of dailies.
func normalizePeriod(period string) (string, string) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "1d":
		return "1d", "5m"
	case "5d", "7d":
		return "7d", "60m"
	case "1mo", "":
		return "1mo", "1d"
	case "3mo":
		return "3mo", "1d"
	case "6mo":
		return "6mo", "1d"
	case "1y":
		return "1y", "1d"
	case "2y":
		return "2y", "1d"
	case "5y":
		return "5y", "1d"
	case "max":
		return "max", "1d"
	default:
		return "1mo", "1d"
	}
}

// barsFromChart zips the parallel chart arrays into bars.
func barsFromChart(result *chartResult) []models.PriceBar {
	if len(result.Indicators.Quote) == 0 {
		return []models.PriceBar{}
	}

	quote := result.Indicators.Quote[0]
	var adjClose []float64
	if len(result.Indicators.Adjclose) > 0 {
		adjClose = result.Indicators.Adjclose[0].Adjclose
	}

	bars := make([]models.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == 0 {
			continue
		}

		bar := models.PriceBar{
			Date:     time.Unix(ts, 0).UTC(),
			Close:    quote.Close[i],
			AdjClose: quote.Close[i],
		}
		bar.DateStr = bar.Date.Format("2006-01-02")
		if i < len(quote.Open) {
			bar.Open = quote.Open[i]
		}
		if i < len(quote.High) {
			bar.High = quote.High[i]
		}
		if i < len(quote.Low) {
			bar.Low = quote.Low[i]
		}
		if i < len(quote.Volume) {
			bar.Volume = quote.Volume[i]
		}
		if i < len(adjClose) && adjClose[i] != 0 {
			bar.AdjClose = adjClose[i]
		}

		bars = append(bars, bar)
	}

	return bars
}

// rawTitle extracts the headline from either raw layout.
func rawTitle(item models.RawNewsItem) string {
	if item.Content != nil && item.Content.Title != "" {
		return item.Content.Title
	}
	return item.Title
}

// dedupeByTitle keeps the first occurrence of each exact title.
func dedupeByTitle(items []models.RawNewsItem) []models.RawNewsItem {
	seen := make(map[string]bool, len(items))
	out := make([]models.RawNewsItem, 0, len(items))
	for _, item := range items {
		title := rawTitle(item)
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		out = append(out, item)
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round5(v float64) float64 { return math.Round(v*100000) / 100000 }
