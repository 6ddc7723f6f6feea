package handlers

import (
	"context"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/models"
)

// SentimentAnalyzer is the slice of the sentiment service the handler needs.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, ticker string, limit int) models.TickerSentiment
	AnalyzeMulti(ctx context.Context, tickers []string, limitPerTicker int) models.MultiTickerSentiment
}

// SentimentHandler serves the sentiment endpoints. The underlying
// service never fails; input validation is the only source of non-200
// responses here.
type SentimentHandler struct {
	service SentimentAnalyzer
	logger  arbor.ILogger
}

// NewSentimentHandler creates a sentiment handler.
func NewSentimentHandler(service SentimentAnalyzer, logger arbor.ILogger) *SentimentHandler {
	return &SentimentHandler{
		service: service,
		logger:  logger,
	}
}

// GetSentiment handles GET /api/sentiment?ticker=AAPL&limit=30
func (h *SentimentHandler) GetSentiment(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	ticker := common.NormalizeTicker(r.URL.Query().Get("ticker"))
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker parameter is required")
		return
	}

	limit := GetIntParam(r, "limit", 0)

	result := h.service.Analyze(r.Context(), ticker, limit)
	WriteJSON(w, http.StatusOK, result)
}

// GetMultiSentiment handles GET /api/sentiment/multi?tickers=AAPL,MSFT&limit=10
func (h *SentimentHandler) GetMultiSentiment(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	tickers := common.SplitTickerList(r.URL.Query().Get("tickers"))
	if len(tickers) == 0 {
		WriteError(w, http.StatusBadRequest, "tickers parameter is required")
		return
	}

	limit := GetIntParam(r, "limit", 0)

	result := h.service.AnalyzeMulti(r.Context(), tickers, limit)
	WriteJSON(w, http.StatusOK, result)
}
