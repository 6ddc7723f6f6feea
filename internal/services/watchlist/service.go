// Package watchlist pre-warms the sentiment pipeline for a configured
// set of tickers on a schedule, so interactive requests for popular
// symbols hit a fresh news cache.
package watchlist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/models"
)

const refreshTimeout = 2 * time.Minute

// Analyzer is the slice of the sentiment service the watchlist needs.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string, limit int) models.TickerSentiment
}

// Service runs scheduled watchlist refreshes.
type Service struct {
	analyzer Analyzer
	config   common.WatchlistConfig
	cron     *cron.Cron
	logger   arbor.ILogger
	mu       sync.Mutex
	running  bool
}

// NewService creates a watchlist service.
func NewService(analyzer Analyzer, config common.WatchlistConfig, logger arbor.ILogger) *Service {
	return &Service{
		analyzer: analyzer,
		config:   config,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start schedules the refresh job and runs one refresh immediately in
// the background. No-op when the watchlist is disabled or empty.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("watchlist already running")
	}
	if !s.config.Enabled || len(s.config.Tickers) == 0 {
		s.logger.Debug().Msg("Watchlist disabled")
		return nil
	}

	schedule := s.config.Schedule
	if schedule == "" {
		schedule = "*/10 * * * *"
	}

	_, err := s.cron.AddFunc(schedule, s.refresh)
	if err != nil {
		return fmt.Errorf("failed to add watchlist job: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().
		Str("schedule", schedule).
		Int("tickers", len(s.config.Tickers)).
		Msg("Watchlist started")

	go s.refresh()

	return nil
}

// Stop halts the scheduler.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cron.Stop()
	s.running = false
	s.logger.Info().Msg("Watchlist stopped")
}

// refresh analyzes every configured ticker. Analyze never returns an
// error; a result carrying one is logged and skipped.
func (s *Service) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	warmed := 0

	for _, raw := range s.config.Tickers {
		ticker := common.NormalizeTicker(raw)
		if ticker == "" {
			continue
		}

		result := s.analyzer.Analyze(ctx, ticker, 0)
		if result.Error != "" {
			s.logger.Warn().Str("ticker", ticker).Str("error", result.Error).Msg("Watchlist refresh failed for ticker")
			continue
		}
		warmed++
	}

	s.logger.Info().
		Int("warmed", warmed).
		Int("total", len(s.config.Tickers)).
		Dur("elapsed", time.Since(start)).
		Msg("Watchlist refreshed")
}
