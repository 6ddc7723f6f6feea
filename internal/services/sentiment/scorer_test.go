package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubAnalyzer returns a canned polarity for every text.
type stubAnalyzer struct {
	polarity Polarity
}

func (s stubAnalyzer) Polarity(string) Polarity { return s.polarity }

// panicAnalyzer simulates a broken lexicon backend.
type panicAnalyzer struct{}

func (panicAnalyzer) Polarity(string) Polarity { panic("lexicon unavailable") }

func neutralBaseline() Polarity {
	return Polarity{Negative: 0.1, Neutral: 0.8, Positive: 0.1, Compound: 0.0}
}

func TestScorerNegativeFinancialAdjustment(t *testing.T) {
	scorer := NewScorer(stubAnalyzer{polarity: neutralBaseline()})

	p := scorer.Score("Shares plunge after analysts downgrade the stock")

	assert.InDelta(t, -0.3, p.Compound, 1e-9)
	assert.Greater(t, p.Negative, p.Positive)
	assert.InDelta(t, 1.0, p.Negative+p.Neutral+p.Positive, 1e-9)
}

func TestScorerPositiveFinancialAdjustment(t *testing.T) {
	scorer := NewScorer(stubAnalyzer{polarity: neutralBaseline()})

	p := scorer.Score("Analysts upgrade on strong growth and record rally")

	assert.InDelta(t, 0.3, p.Compound, 1e-9)
	assert.Greater(t, p.Positive, p.Negative)
	assert.InDelta(t, 1.0, p.Negative+p.Neutral+p.Positive, 1e-9)
}

func TestScorerTieLeavesBaseline(t *testing.T) {
	scorer := NewScorer(stubAnalyzer{polarity: neutralBaseline()})

	// "buy" and "miss" balance to a tie; no adjustment applies.
	p := scorer.Score("Investors buy the dip after earnings miss")

	assert.InDelta(t, 0.0, p.Compound, 1e-9)
	assert.InDelta(t, 0.1, p.Negative, 1e-9)
	assert.InDelta(t, 0.1, p.Positive, 1e-9)
}

func TestScorerNoFinancialTerms(t *testing.T) {
	scorer := NewScorer(stubAnalyzer{polarity: Polarity{Negative: 0.2, Neutral: 0.5, Positive: 0.3, Compound: 0.25}})

	p := scorer.Score("Company schedules annual shareholder meeting")

	assert.InDelta(t, 0.25, p.Compound, 1e-9)
	assert.InDelta(t, 1.0, p.Negative+p.Neutral+p.Positive, 1e-9)
}

func TestScorerCompoundFloorAndCeiling(t *testing.T) {
	negScorer := NewScorer(stubAnalyzer{polarity: Polarity{Negative: 0.9, Neutral: 0.1, Positive: 0, Compound: -0.9}})
	p := negScorer.Score("Stock crash: shares plunge and tank")
	assert.Equal(t, -1.0, p.Compound)

	posScorer := NewScorer(stubAnalyzer{polarity: Polarity{Negative: 0, Neutral: 0.1, Positive: 0.9, Compound: 0.9}})
	p = posScorer.Score("Record rally: strong growth and gains surge")
	assert.Equal(t, 1.0, p.Compound)
}

func TestScorerAllZeroTupleUnchanged(t *testing.T) {
	scorer := NewScorer(stubAnalyzer{polarity: Polarity{}})

	p := scorer.Score("Company schedules annual shareholder meeting")

	// Degenerate all-zero case: renormalization is skipped.
	assert.Equal(t, 0.0, p.Negative+p.Neutral+p.Positive)
}

func TestScorerPanicRecoversToNeutral(t *testing.T) {
	scorer := NewScorer(panicAnalyzer{})

	p := scorer.Score("anything")

	assert.Equal(t, NeutralPolarity(), p)
}

func TestVaderAnalyzerDirections(t *testing.T) {
	analyzer := NewVaderAnalyzer()

	pos := analyzer.Polarity("This is wonderful, great news!")
	neg := analyzer.Polarity("This is terrible, awful news!")

	assert.Greater(t, pos.Compound, 0.0)
	assert.Less(t, neg.Compound, 0.0)
	assert.True(t, math.Abs(pos.Compound) <= 1.0)
	assert.True(t, math.Abs(neg.Compound) <= 1.0)
}
