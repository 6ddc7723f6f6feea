// -----------------------------------------------------------------------
// Last Modified: Thursday, 27th August 2026 2:18:40 pm
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Sentiment
	mux.HandleFunc("/api/sentiment", s.app.SentimentHandler.GetSentiment)
	mux.HandleFunc("/api/sentiment/multi", s.app.SentimentHandler.GetMultiSentiment)

	// API routes - Market data
	mux.HandleFunc("/api/history", s.app.MarketHandler.GetHistory)
	mux.HandleFunc("/api/quote", s.app.MarketHandler.GetQuote)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
