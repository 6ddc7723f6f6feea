package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/tickerpulse/internal/models"
)

func TestWeightedMetricsEmpty(t *testing.T) {
	m := WeightedMetrics(nil, 0.05)
	assert.Equal(t, 50.0, m.Score)
	assert.Equal(t, 0.0, m.Breadth)
}

func TestWeightedMetricsZeroDenominator(t *testing.T) {
	articles := []models.Article{
		{Compound: 0.8, TimeWeight: 0, DupWeight: 0},
	}
	m := WeightedMetrics(articles, 0.05)
	assert.Equal(t, 50.0, m.Score)
	assert.Equal(t, 0.0, m.Breadth)
}

func TestWeightedMetrics(t *testing.T) {
	tests := []struct {
		name        string
		articles    []models.Article
		wantScore   float64
		wantBreadth float64
	}{
		{
			name: "single strongly positive article",
			articles: []models.Article{
				{Compound: 0.8, TimeWeight: 1.0, DupWeight: 1.0},
			},
			wantScore:   90.0,
			wantBreadth: 100.0,
		},
		{
			name: "single strongly negative article",
			articles: []models.Article{
				{Compound: -0.8, TimeWeight: 1.0, DupWeight: 1.0},
			},
			wantScore:   10.0,
			wantBreadth: 0.0,
		},
		{
			name: "offsetting articles are neutral",
			articles: []models.Article{
				{Compound: 0.6, TimeWeight: 1.0, DupWeight: 1.0},
				{Compound: -0.6, TimeWeight: 1.0, DupWeight: 1.0},
			},
			wantScore:   50.0,
			wantBreadth: 50.0,
		},
		{
			name: "weights tilt the average",
			articles: []models.Article{
				{Compound: 0.6, TimeWeight: 1.0, DupWeight: 1.0},
				{Compound: -0.6, TimeWeight: 0.5, DupWeight: 0.5},
			},
			// (0.6*1 - 0.6*0.25) / 1.25 = 0.36 -> 68.0
			wantScore:   68.0,
			wantBreadth: 80.0,
		},
		{
			name: "barely positive does not count toward breadth",
			articles: []models.Article{
				{Compound: 0.03, TimeWeight: 1.0, DupWeight: 1.0},
			},
			wantScore:   51.5,
			wantBreadth: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := WeightedMetrics(tt.articles, 0.05)
			assert.InDelta(t, tt.wantScore, m.Score, 1e-9)
			assert.InDelta(t, tt.wantBreadth, m.Breadth, 1e-9)
			assert.GreaterOrEqual(t, m.Score, 0.0)
			assert.LessOrEqual(t, m.Score, 100.0)
		})
	}
}

func TestEffectiveSample(t *testing.T) {
	articles := []models.Article{
		{TimeWeight: 1.0, DupWeight: 1.0},
		{TimeWeight: 0.5, DupWeight: 0.5},
		{TimeWeight: 0.25, DupWeight: 1.0},
	}
	assert.InDelta(t, 1.5, EffectiveSample(articles), 1e-9)
	assert.Equal(t, 0.0, EffectiveSample(nil))
}

func TestSortByImpactAndRecency(t *testing.T) {
	articles := []models.Article{
		{Title: "old neutral", Compound: 0.05, Time: 400},
		{Title: "new neutral", Compound: -0.02, Time: 500},
		{Title: "old impact", Compound: -0.6, Time: 100},
		{Title: "new impact", Compound: 0.5, Time: 300},
	}

	sorted := SortByImpactAndRecency(articles)

	titles := []string{sorted[0].Title, sorted[1].Title, sorted[2].Title, sorted[3].Title}
	assert.Equal(t, []string{"new impact", "old impact", "new neutral", "old neutral"}, titles)
}

func TestClampCompound(t *testing.T) {
	assert.Equal(t, 0.999, ClampCompound(1.0))
	assert.Equal(t, -0.999, ClampCompound(-1.0))
	assert.Equal(t, 0.4, ClampCompound(0.4))
}

func TestScoreDerivation(t *testing.T) {
	// score = round((compound+1)*50, 1) stays inside (0, 100) after clamping
	for _, compound := range []float64{-1.5, -1.0, -0.123, 0, 0.456, 1.0, 2.0} {
		c := ClampCompound(compound)
		score := Round1((c + 1) * 50)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 100.0)
	}
}
