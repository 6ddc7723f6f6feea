package sentiment

import (
	"context"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/interfaces"
	"github.com/ternarybob/tickerpulse/internal/models"
)

const topArticleCount = 5

// Service runs the full sentiment pipeline for one or more tickers.
// Analyze never returns a Go error: every failure path degrades to a
// structurally valid neutral result so callers always have something to
// serialize.
type Service struct {
	news       interfaces.NewsProvider
	cache      interfaces.NewsCache
	clock      interfaces.Clock
	classifier *Classifier
	scorer     *Scorer
	config     common.SentimentConfig
	logger     arbor.ILogger
}

// NewService wires the pipeline. cache may be nil (every call fetches
// live); clock must not be nil.
func NewService(
	news interfaces.NewsProvider,
	profiles interfaces.ProfileProvider,
	cache interfaces.NewsCache,
	clock interfaces.Clock,
	analyzer PolarityAnalyzer,
	config common.SentimentConfig,
	logger arbor.ILogger,
) *Service {
	return &Service{
		news:       news,
		cache:      cache,
		clock:      clock,
		classifier: NewClassifier(profiles, logger),
		scorer:     NewScorer(analyzer),
		config:     config,
		logger:     logger,
	}
}

// Analyze computes the composite sentiment reading for a ticker.
// limit <= 0 uses the configured default. One "now" is captured up
// front and used for window selection and every recency weight, so the
// numeric output is reproducible for a fixed item set.
func (s *Service) Analyze(ctx context.Context, ticker string, limit int) models.TickerSentiment {
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}
	now := s.clock.Now()

	raw, err := s.fetchNews(ctx, ticker)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("News fetch failed")
		return s.errorResult(ticker, now, err.Error())
	}

	items := make([]models.NewsItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, r.Normalize(now))
	}

	usedDays, windowed := s.selectWindow(ctx, ticker, items, now, limit)

	processed := make([]models.Article, 0, limit)
	for i, item := range windowed {
		if i >= limit {
			break
		}

		title := CleanTitle(item.Title)
		if title == "" {
			continue
		}
		if !s.classifier.Relevant(ctx, title, ticker) {
			continue
		}

		polarity := s.scorer.Score(title)
		compound := ClampCompound(polarity.Compound)

		processed = append(processed, models.Article{
			Title:      title,
			Publisher:  item.Publisher,
			Time:       item.Time,
			Compound:   compound,
			Score:      Round1((compound + 1) * 50),
			URL:        item.URL,
			TimeWeight: TimeWeight(item.Time, now.Unix(), s.config.HalfLifeHours),
		})
	}

	processed = SoftDedupe(processed, s.config.DupWindowHours, s.config.DupPenalty)
	processed = SortByImpactAndRecency(processed)

	metrics := WeightedMetrics(processed, s.config.PosThreshold)
	effectiveN := EffectiveSample(processed)
	lowSample := len(processed) < s.config.MinArticles && effectiveN < s.config.TargetEffectiveN

	s.logger.Debug().
		Str("ticker", ticker).
		Int("count", len(processed)).
		Int("window_days", usedDays).
		Float64("score", metrics.Score).
		Msg("Sentiment computed")

	return models.TickerSentiment{
		Ticker:       ticker,
		Score:        metrics.Score,
		Breadth:      metrics.Breadth,
		Count:        len(processed),
		Publishers:   distinctPublishers(processed),
		EffectiveN:   Round2(effectiveN),
		WindowDays:   usedDays,
		LowSample:    lowSample,
		AsOf:         asOf(now),
		Articles:     topSlice(processed),
		ArticlesFull: processed,
	}
}

// AnalyzeMulti runs the pipeline per ticker and merges the article
// streams into one recency-sorted composite view. A single ticker's
// failure never aborts its siblings; the empty ticker list is the one
// input error.
func (s *Service) AnalyzeMulti(ctx context.Context, tickers []string, limitPerTicker int) models.MultiTickerSentiment {
	now := s.clock.Now()

	if len(tickers) == 0 {
		return models.MultiTickerSentiment{
			AsOf:  asOf(now),
			Error: "no tickers provided",
		}
	}

	if limitPerTicker <= 0 {
		limitPerTicker = s.config.MultiLimit
	}

	summaries := make([]models.TickerSummary, 0, len(tickers))
	var combined []models.Article
	totalArticles := 0

	for _, ticker := range tickers {
		result := s.Analyze(ctx, ticker, limitPerTicker)

		summaries = append(summaries, models.TickerSummary{
			Ticker:     result.Ticker,
			Score:      result.Score,
			Breadth:    result.Breadth,
			Count:      result.Count,
			Publishers: result.Publishers,
			LowSample:  result.LowSample,
		})
		totalArticles += result.Count

		for _, a := range result.ArticlesFull {
			a.SourceTicker = result.Ticker
			combined = append(combined, a)
		}
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].Time > combined[j].Time
	})

	metrics := WeightedMetrics(combined, s.config.PosThreshold)

	return models.MultiTickerSentiment{
		Tickers:          tickers,
		CombinedScore:    metrics.Score,
		CombinedBreadth:  metrics.Breadth,
		TotalArticles:    totalArticles,
		AsOf:             asOf(now),
		IndividualScores: summaries,
		Articles:         topSlice(combined),
	}
}

// Relevant reports whether a headline concerns a ticker, using the
// service's classifier and its memoized keyword sets.
func (s *Service) Relevant(ctx context.Context, title string, ticker string) bool {
	return s.classifier.Relevant(ctx, title, ticker)
}

// fetchNews consults the cache first when one is configured; a miss or
// stale entry always falls through to a live fetch.
func (s *Service) fetchNews(ctx context.Context, ticker string) ([]models.RawNewsItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.Get(ticker); ok {
			return items, nil
		}
	}

	items, err := s.news.FetchNews(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Put(ticker, items)
	}
	return items, nil
}

// errorResult is the neutral fallback for pipeline-level failures: the
// caller always receives a structurally valid result.
func (s *Service) errorResult(ticker string, now time.Time, message string) models.TickerSentiment {
	return models.TickerSentiment{
		Ticker:       ticker,
		Score:        50.0,
		Breadth:      0.0,
		Count:        0,
		Publishers:   0,
		EffectiveN:   0.0,
		WindowDays:   s.config.LookbackDays[0],
		LowSample:    true,
		AsOf:         asOf(now),
		Articles:     []models.Article{},
		ArticlesFull: []models.Article{},
		Error:        message,
	}
}

func distinctPublishers(articles []models.Article) int {
	seen := make(map[string]bool, len(articles))
	for _, a := range articles {
		if a.Publisher != "" {
			seen[a.Publisher] = true
		}
	}
	return len(seen)
}

func topSlice(articles []models.Article) []models.Article {
	if len(articles) > topArticleCount {
		return articles[:topArticleCount]
	}
	if articles == nil {
		return []models.Article{}
	}
	return articles
}

// asOf formats the invocation timestamp: RFC3339 UTC, second precision.
func asOf(now time.Time) string {
	return now.UTC().Truncate(time.Second).Format(time.RFC3339)
}
