// -----------------------------------------------------------------------
// Last Modified: Friday, 28th August 2026 11:02:33 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

// Package app wires configuration, services and handlers into one
// application object the server and CLI share.
package app

import (
	"context"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/handlers"
	"github.com/ternarybob/tickerpulse/internal/interfaces"
	"github.com/ternarybob/tickerpulse/internal/marketdata"
	"github.com/ternarybob/tickerpulse/internal/services/history"
	"github.com/ternarybob/tickerpulse/internal/services/newscache"
	"github.com/ternarybob/tickerpulse/internal/services/sentiment"
	"github.com/ternarybob/tickerpulse/internal/services/watchlist"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Market data provider
	Client *marketdata.Client

	// Core services
	NewsCache        interfaces.NewsCache
	SentimentService *sentiment.Service
	HistoryService   *history.Service
	WatchlistService *watchlist.Service

	// HTTP handlers
	APIHandler       *handlers.APIHandler
	SentimentHandler *handlers.SentimentHandler
	MarketHandler    *handlers.MarketHandler

	cacheCloser func() error
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	clock := interfaces.SystemClock{}

	// The relevance filter closes over the app so the client and the
	// sentiment service share one classifier. The client never consults
	// it before initialization completes.
	clientOpts := []marketdata.ClientOption{
		marketdata.WithBaseURL(cfg.Provider.BaseURL),
		marketdata.WithLogger(logger),
		marketdata.WithRateLimit(cfg.Provider.RateLimit),
		marketdata.WithRelevanceFilter(func(ctx context.Context, title, ticker string) bool {
			if app.SentimentService == nil {
				return false
			}
			return app.SentimentService.Relevant(ctx, title, ticker)
		}),
	}
	if cfg.Provider.RequestTimeout > 0 {
		clientOpts = append(clientOpts, marketdata.WithHTTPClient(&http.Client{Timeout: cfg.Provider.RequestTimeout}))
	}
	if cfg.Provider.RSSFeedURL != "" {
		clientOpts = append(clientOpts, marketdata.WithRSSSource(marketdata.NewRSSSource(cfg.Provider.RSSFeedURL, logger)))
	}
	app.Client = marketdata.NewClient(clientOpts...)

	cache, closer, err := newscache.New(cfg.Cache, clock, logger)
	if err != nil {
		return nil, err
	}
	app.NewsCache = cache
	app.cacheCloser = closer

	app.SentimentService = sentiment.NewService(
		app.Client,
		app.Client,
		app.NewsCache,
		clock,
		sentiment.NewVaderAnalyzer(),
		cfg.Sentiment,
		logger,
	)
	app.HistoryService = history.NewService(app.Client, logger)
	app.WatchlistService = watchlist.NewService(app.SentimentService, cfg.Watchlist, logger)

	app.APIHandler = handlers.NewAPIHandler()
	app.SentimentHandler = handlers.NewSentimentHandler(app.SentimentService, logger)
	app.MarketHandler = handlers.NewMarketHandler(app.HistoryService, logger)

	logger.Info().
		Bool("cache_enabled", cfg.Cache.Enabled).
		Bool("watchlist_enabled", cfg.Watchlist.Enabled).
		Msg("Application initialization complete")

	return app, nil
}

// Start launches background services.
func (a *App) Start() error {
	return a.WatchlistService.Start()
}

// Close stops background services and releases storage.
func (a *App) Close() error {
	a.WatchlistService.Stop()
	if a.cacheCloser != nil {
		return a.cacheCloser()
	}
	return nil
}
