package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/services/history"
)

// MarketHandler serves the price history and quote endpoints.
type MarketHandler struct {
	service *history.Service
	logger  arbor.ILogger
}

// NewMarketHandler creates a market data handler.
func NewMarketHandler(service *history.Service, logger arbor.ILogger) *MarketHandler {
	return &MarketHandler{
		service: service,
		logger:  logger,
	}
}

// GetHistory handles GET /api/history?ticker=AAPL&period=1mo
func (h *MarketHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker parameter is required")
		return
	}
	period := r.URL.Query().Get("period")

	result, err := h.service.GetHistory(r.Context(), ticker, period)
	if err != nil {
		h.logger.Warn().Err(err).Str("ticker", ticker).Msg("History request failed")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// GetQuote handles GET /api/quote?ticker=AAPL
func (h *MarketHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker parameter is required")
		return
	}

	result, err := h.service.GetQuote(r.Context(), ticker)
	if err != nil {
		h.logger.Warn().Err(err).Str("ticker", ticker).Msg("Quote request failed")
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
