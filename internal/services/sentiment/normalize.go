// Package sentiment implements the news-sentiment aggregation engine:
// headline normalization, relevance classification, polarity scoring,
// progressive look-back, recency/duplicate weighting and composite
// aggregation.
package sentiment

import (
	"regexp"
	"strings"
)

var (
	boilerplatePrefixes = regexp.MustCompile(`(?i)\[Exclusive\]|\[Breaking\]|\[Update\]|\[News\]|Breaking:|Update:|News:|Exclusive:`)
	parenTickerPattern  = regexp.MustCompile(`\([A-Z]{1,5}\)`)
	bracketTickerTag    = regexp.MustCompile(`\[[A-Z]{1,5}\]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
	nonAlphanumeric     = regexp.MustCompile(`[^a-z0-9\s]`)
)

// CleanTitle strips boilerplate prefixes and ticker annotations from a
// headline and collapses whitespace. An empty result means the item
// should be discarded by the caller.
func CleanTitle(title string) string {
	cleaned := boilerplatePrefixes.ReplaceAllString(title, "")
	cleaned = parenTickerPattern.ReplaceAllString(cleaned, "")
	cleaned = bracketTickerTag.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
}

// DedupeKey reduces a headline to its canonical cross-publisher form:
// cleaned, lower-cased, punctuation stripped. Used only for duplicate
// detection, never for display.
func DedupeKey(title string) string {
	s := strings.ToLower(CleanTitle(title))
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
