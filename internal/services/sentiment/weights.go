package sentiment

import (
	"math"
	"sort"

	"github.com/ternarybob/tickerpulse/internal/models"
)

// TimeWeight returns the exponential recency weight for an article:
// 2^(-ageHours/halfLife). Weight is 1.0 at age zero (future-dated
// articles clamp to zero age) and halves every halfLife hours.
func TimeWeight(articleTime, now int64, halfLifeHours float64) float64 {
	hours := math.Max(0, float64(now-articleTime)/3600)
	return math.Pow(2, -hours/halfLifeHours)
}

// SoftDedupe down-weights near-duplicate titles seen within the
// duplicate window. Articles are processed newest to oldest; an article
// whose dedupe key collides with a more recent one inside the window
// gets the penalty weight, everything else gets 1.0 and registers its
// key. Down-weighting, never removal: echo coverage from multiple
// outlets is discounted but stays visible.
func SoftDedupe(articles []models.Article, dupWindowHours, dupPenalty float64) []models.Article {
	sorted := make([]models.Article, len(articles))
	copy(sorted, articles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Time > sorted[j].Time
	})

	window := int64(dupWindowHours * 3600)
	seen := make(map[string]int64, len(sorted)) // dedupe key -> most recent time

	for i := range sorted {
		key := DedupeKey(sorted[i].Title)
		t := sorted[i].Time

		if last, ok := seen[key]; ok && absInt64(t-last) < window {
			sorted[i].DupWeight = dupPenalty
			continue
		}
		sorted[i].DupWeight = 1.0
		seen[key] = t
	}

	return sorted
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
