package sentiment

import (
	"math"
	"sort"

	"github.com/ternarybob/tickerpulse/internal/models"
)

// Metrics is the aggregate outcome over a weighted article set.
type Metrics struct {
	Score   float64 // 0..100, 50 = neutral
	Breadth float64 // weighted share of net-positive coverage, %
}

// neutralMetrics is the prior returned for empty or fully discounted
// article sets.
func neutralMetrics() Metrics {
	return Metrics{Score: 50.0, Breadth: 0.0}
}

// WeightedMetrics combines per-article compound scores into the bounded
// composite. Each article contributes time_weight * dup_weight; breadth
// is the weighted share of articles whose compound exceeds posThreshold,
// not a raw count share.
func WeightedMetrics(articles []models.Article, posThreshold float64) Metrics {
	if len(articles) == 0 {
		return neutralMetrics()
	}

	var num, den, posWeight float64
	for _, a := range articles {
		w := a.Weight()
		den += w
		num += a.Compound * w
		if a.Compound > posThreshold {
			posWeight += w
		}
	}

	if den == 0 {
		return neutralMetrics()
	}

	compound := num / den
	return Metrics{
		Score:   Round1((compound + 1) * 50),
		Breadth: Round1(100 * posWeight / den),
	}
}

// EffectiveSample is the decay- and duplicate-discounted article count:
// the sum of combined weights. Stands in for statistical confidence
// without an entropy calculation.
func EffectiveSample(articles []models.Article) float64 {
	var sum float64
	for _, a := range articles {
		sum += a.Weight()
	}
	return sum
}

// SortByImpactAndRecency orders articles for display: non-neutral
// articles (|compound| > 0.1) first, most recent first within each
// bucket.
func SortByImpactAndRecency(articles []models.Article) []models.Article {
	sorted := make([]models.Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		iNeutral := math.Abs(sorted[i].Compound) <= 0.1
		jNeutral := math.Abs(sorted[j].Compound) <= 0.1
		if iNeutral != jNeutral {
			return jNeutral
		}
		return sorted[i].Time > sorted[j].Time
	})
	return sorted
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClampCompound bounds a compound score to [-0.999, 0.999] before the
// 0..100 score derivation, keeping outliers off the scale endpoints.
func ClampCompound(compound float64) float64 {
	return math.Max(-0.999, math.Min(0.999, compound))
}
