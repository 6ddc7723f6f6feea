package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/models"
	"github.com/ternarybob/tickerpulse/internal/services/history"
)

type stubPrices struct {
	bars  []models.PriceBar
	quote *models.Quote
	err   error
}

func (s *stubPrices) FetchHistory(_ context.Context, _ string, _ string) ([]models.PriceBar, error) {
	return s.bars, s.err
}

func (s *stubPrices) FetchQuote(_ context.Context, _ string) (*models.Quote, error) {
	return s.quote, s.err
}

func newMarketHandler(prices *stubPrices) *MarketHandler {
	svc := history.NewService(prices, common.GetLogger())
	return NewMarketHandler(svc, common.GetLogger())
}

func TestGetHistoryEndpoint(t *testing.T) {
	handler := newMarketHandler(&stubPrices{bars: []models.PriceBar{{DateStr: "2026-03-09", Close: 101.0}}})

	req := httptest.NewRequest(http.MethodGet, "/api/history?ticker=AAPL&period=5d", nil)
	rec := httptest.NewRecorder()
	handler.GetHistory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.History
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, "5d", result.Period)
	require.Len(t, result.Bars, 1)
	assert.Equal(t, 101.0, result.Bars[0].Close)
}

func TestGetHistoryMissingTicker(t *testing.T) {
	handler := newMarketHandler(&stubPrices{})

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	handler.GetHistory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHistoryUpstreamFailure(t *testing.T) {
	handler := newMarketHandler(&stubPrices{err: errors.New("upstream timeout")})

	req := httptest.NewRequest(http.MethodGet, "/api/history?ticker=AAPL", nil)
	rec := httptest.NewRecorder()
	handler.GetHistory(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetQuoteEndpoint(t *testing.T) {
	handler := newMarketHandler(&stubPrices{quote: &models.Quote{Ticker: "AAPL", Price: 150.0, Change: 1.5}})

	req := httptest.NewRequest(http.MethodGet, "/api/quote?ticker=aapl", nil)
	rec := httptest.NewRecorder()
	handler.GetQuote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, 150.0, result.Price)
}

func TestGetQuoteMissingTicker(t *testing.T) {
	handler := newMarketHandler(&stubPrices{})

	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	rec := httptest.NewRecorder()
	handler.GetQuote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
