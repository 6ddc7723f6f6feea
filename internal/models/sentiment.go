package models

// Article is a fully processed news article: relevance-filtered, scored
// and weighted. Immutable once the pipeline emits it.
type Article struct {
	Title        string  `json:"title"`
	Publisher    string  `json:"publisher"`
	Time         int64   `json:"time"` // epoch seconds
	Compound     float64 `json:"compound"`
	Score        float64 `json:"score"` // round((compound+1)*50, 1)
	URL          string  `json:"url"`
	TimeWeight   float64 `json:"time_weight"`
	DupWeight    float64 `json:"dup_weight"`
	SourceTicker string  `json:"source_ticker,omitempty"` // set on multi-ticker merges
}

// Weight is the article's combined influence on aggregate metrics.
func (a Article) Weight() float64 {
	return a.TimeWeight * a.DupWeight
}

// TickerSentiment is the composite sentiment reading for one ticker.
// Computed fresh per call, never mutated afterwards, never persisted.
type TickerSentiment struct {
	Ticker       string    `json:"ticker"`
	Score        float64   `json:"score"`   // 0..100, 50 = neutral
	Breadth      float64   `json:"breadth"` // weighted share of net-positive coverage, %
	Count        int       `json:"count"`
	Publishers   int       `json:"publishers"`
	EffectiveN   float64   `json:"effectiveN"`
	WindowDays   int       `json:"windowDays"`
	LowSample    bool      `json:"lowSample"`
	AsOf         string    `json:"asOf"`     // RFC3339 UTC, second precision
	Articles     []Article `json:"articles"` // top 5 by impact and recency
	ArticlesFull []Article `json:"articles_full"`
	Error        string    `json:"error,omitempty"`
}

// TickerSummary is the per-ticker digest carried on multi-ticker results.
type TickerSummary struct {
	Ticker     string  `json:"ticker"`
	Score      float64 `json:"score"`
	Breadth    float64 `json:"breadth"`
	Count      int     `json:"count"`
	Publishers int     `json:"publishers"`
	LowSample  bool    `json:"lowSample"`
}

// MultiTickerSentiment merges several per-ticker runs into one
// recency-sorted composite view.
type MultiTickerSentiment struct {
	Tickers          []string        `json:"tickers"`
	CombinedScore    float64         `json:"combined_score"`
	CombinedBreadth  float64         `json:"combined_breadth"`
	TotalArticles    int             `json:"total_articles"`
	AsOf             string          `json:"asOf"`
	IndividualScores []TickerSummary `json:"individual_scores"`
	Articles         []Article       `json:"articles"` // top 5 of the merged stream
	Error            string          `json:"error,omitempty"`
}
