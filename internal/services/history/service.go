// Package history provides thin retrieval of price history and quotes
// on top of the market data provider.
package history

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/interfaces"
	"github.com/ternarybob/tickerpulse/internal/models"
)

// Service retrieves price data. Unlike the sentiment pipeline this
// layer does return errors: price lookups have no meaningful neutral
// fallback.
type Service struct {
	prices interfaces.PriceProvider
	logger arbor.ILogger
}

// NewService creates a history service.
func NewService(prices interfaces.PriceProvider, logger arbor.ILogger) *Service {
	return &Service{
		prices: prices,
		logger: logger,
	}
}

// GetHistory retrieves bars for a ticker over a period such as "5d",
// "1mo" or "1y".
func (s *Service) GetHistory(ctx context.Context, ticker string, period string) (*models.History, error) {
	ticker = common.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("invalid ticker")
	}
	if period == "" {
		period = "1mo"
	}

	bars, err := s.prices.FetchHistory(ctx, ticker, period)
	if err != nil {
		return nil, fmt.Errorf("history lookup failed: %w", err)
	}

	s.logger.Debug().Str("ticker", ticker).Str("period", period).Int("bars", len(bars)).Msg("History retrieved")

	return &models.History{
		Ticker: ticker,
		Period: period,
		Bars:   bars,
	}, nil
}

// GetQuote retrieves the latest quote for a ticker.
func (s *Service) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	ticker = common.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("invalid ticker")
	}

	quote, err := s.prices.FetchQuote(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("quote lookup failed: %w", err)
	}

	return quote, nil
}
