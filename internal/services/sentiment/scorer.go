package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Polarity is a sentence-level polarity tuple. Negative, Neutral and
// Positive sum to 1 after renormalization; Compound is in [-1, 1].
type Polarity struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// NeutralPolarity is the fallback tuple when scoring fails.
func NeutralPolarity() Polarity {
	return Polarity{Negative: 0, Neutral: 1, Positive: 0, Compound: 0}
}

// PolarityAnalyzer is the pluggable lexicon capability. Any sentence
// level polarity model satisfying this signature is substitutable.
// Implementations must not panic; the Scorer guards regardless.
type PolarityAnalyzer interface {
	Polarity(text string) Polarity
}

// VaderAnalyzer scores text with the VADER lexicon.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer creates a VADER-backed polarity analyzer.
func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns VADER polarity scores for the text.
func (v *VaderAnalyzer) Polarity(text string) Polarity {
	s := v.analyzer.PolarityScores(text)
	return Polarity{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}

// Scorer produces financial-context polarity for headlines: a baseline
// tuple from the lexicon analyzer, adjusted by curated financial term
// lists, then renormalized.
type Scorer struct {
	analyzer PolarityAnalyzer
}

// NewScorer creates a scorer around the given analyzer.
func NewScorer(analyzer PolarityAnalyzer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// Score returns the adjusted polarity tuple for the text. Never fails:
// any panic inside the analyzer degrades to the neutral tuple.
func (s *Scorer) Score(text string) (p Polarity) {
	defer func() {
		if r := recover(); r != nil {
			p = NeutralPolarity()
		}
	}()

	p = s.analyzer.Polarity(text)

	textLower := strings.ToLower(text)
	negCount := countTerms(textLower, negativeFinancialTerms)
	posCount := countTerms(textLower, positiveFinancialTerms)

	switch {
	case negCount > posCount:
		p.Compound = max(p.Compound-0.3, -1.0)
		p.Negative = min(p.Negative+0.2, 1.0)
		p.Positive = max(p.Positive-0.1, 0.0)
	case posCount > negCount:
		p.Compound = min(p.Compound+0.3, 1.0)
		p.Positive = min(p.Positive+0.2, 1.0)
		p.Negative = max(p.Negative-0.1, 0.0)
	}

	// Renormalize so the three components sum to 1. An all-zero tuple is
	// left untouched.
	total := p.Positive + p.Negative + p.Neutral
	if total > 0 {
		p.Positive /= total
		p.Negative /= total
		p.Neutral /= total
	}

	return p
}

// countTerms counts how many terms from the list occur in the text.
// Substring containment, one count per term regardless of repeats.
func countTerms(textLower string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(textLower, term) {
			count++
		}
	}
	return count
}
