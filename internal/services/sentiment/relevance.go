package sentiment

import (
	"context"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/interfaces"
)

// Classifier decides whether a headline concerns a ticker. Evaluation
// order, first match wins: direct ticker substring, curated static
// keyword table, dynamically derived keywords from company metadata.
type Classifier struct {
	profiles interfaces.ProfileProvider
	logger   arbor.ILogger

	mu      sync.Mutex
	derived map[string][]string // ticker -> memoized dynamic keywords
}

// NewClassifier creates a relevance classifier. profiles may be nil, in
// which case dynamic keyword derivation is skipped entirely.
func NewClassifier(profiles interfaces.ProfileProvider, logger arbor.ILogger) *Classifier {
	return &Classifier{
		profiles: profiles,
		logger:   logger,
		derived:  make(map[string][]string),
	}
}

// Relevant reports whether the headline concerns the ticker. Empty title
// or ticker is never relevant. Metadata lookup failure degrades to an
// empty dynamic keyword set, not an error.
func (c *Classifier) Relevant(ctx context.Context, title, ticker string) bool {
	if title == "" || ticker == "" {
		return false
	}

	titleLower := strings.ToLower(title)
	tickerLower := strings.ToLower(ticker)

	if strings.Contains(titleLower, tickerLower) {
		return true
	}

	if keywords, ok := staticTickerKeywords[tickerLower]; ok {
		for _, kw := range keywords {
			if strings.Contains(titleLower, kw) {
				return true
			}
		}
	}

	for _, kw := range c.dynamicKeywords(ctx, ticker) {
		if strings.Contains(titleLower, kw) {
			return true
		}
	}

	return false
}

// dynamicKeywords returns the profile-derived keyword set for a ticker,
// memoized per classifier instance so a batch run fetches metadata once.
func (c *Classifier) dynamicKeywords(ctx context.Context, ticker string) []string {
	tickerLower := strings.ToLower(ticker)

	c.mu.Lock()
	if kws, ok := c.derived[tickerLower]; ok {
		c.mu.Unlock()
		return kws
	}
	c.mu.Unlock()

	kws := c.deriveKeywords(ctx, tickerLower)

	c.mu.Lock()
	c.derived[tickerLower] = kws
	c.mu.Unlock()

	return kws
}

func (c *Classifier) deriveKeywords(ctx context.Context, tickerLower string) []string {
	keywords := []string{tickerLower}

	if c.profiles == nil {
		return filterKeywords(keywords)
	}

	profile, err := c.profiles.FetchProfile(ctx, tickerLower)
	if err != nil {
		// Best effort: an unreachable metadata source must not fail
		// classification.
		c.logger.Debug().Err(err).Str("ticker", tickerLower).Msg("Profile lookup failed, using ticker-only keywords")
		return filterKeywords(keywords)
	}

	if profile.Name != "" {
		name := strings.ToLower(profile.Name)
		keywords = append(keywords, name)
		for _, word := range strings.Fields(name) {
			if len(word) > 3 && !corporateSuffixes[word] {
				keywords = append(keywords, word)
			}
		}
	}

	if profile.CEO != "" {
		ceo := strings.ToLower(profile.CEO)
		keywords = append(keywords, ceo)
		keywords = append(keywords, strings.Fields(ceo)...)
	}

	if profile.Industry != "" {
		keywords = append(keywords, strings.ToLower(profile.Industry))
	}
	if profile.Sector != "" {
		keywords = append(keywords, strings.ToLower(profile.Sector))
	}

	if profile.Summary != "" {
		summary := strings.ToLower(profile.Summary)
		for _, term := range businessVocabulary {
			if strings.Contains(summary, term) {
				keywords = append(keywords, term)
			}
		}
	}

	return filterKeywords(keywords)
}

// filterKeywords de-duplicates and drops terms too short to be
// meaningful substring matches.
func filterKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if len(kw) <= 2 || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}
