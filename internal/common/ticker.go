// Package common provides shared utilities across the application.
package common

import (
	"strings"
)

// NormalizeTicker canonicalizes a user-supplied ticker symbol: trimmed,
// upper-cased, with any exchange prefix ("NASDAQ:AAPL") stripped.
// Returns "" for input that cannot be a symbol.
func NormalizeTicker(ticker string) string {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return ""
	}

	// Strip exchange prefix (EXCHANGE:CODE)
	if idx := strings.Index(ticker, ":"); idx > 0 {
		ticker = ticker[idx+1:]
	}

	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if len(ticker) > 10 {
		return ""
	}
	return ticker
}

// SplitTickerList parses a comma-separated ticker list, normalizing each
// entry and dropping empties and duplicates while preserving order.
func SplitTickerList(list string) []string {
	parts := strings.Split(list, ",")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := NormalizeTicker(p)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
