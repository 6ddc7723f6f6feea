package sentiment

import (
	"context"
	"sort"
	"time"

	"github.com/ternarybob/tickerpulse/internal/models"
)

// selectWindow implements progressive look-back: try each candidate
// window in ascending order and keep the first whose relevant-article
// count (within the first limit items) reaches minRelevant. When no
// window qualifies, the widest window's items are kept anyway so the
// caller always gets a best-effort result.
//
// Widening only on demand keeps the common case cheap: a liquid ticker
// resolves in the 1-day window without scoring a week of coverage.
func (s *Service) selectWindow(ctx context.Context, ticker string, items []models.NewsItem, now time.Time, limit int) (int, []models.NewsItem) {
	steps := s.config.LookbackDays
	var windowed []models.NewsItem

	for _, days := range steps {
		windowed = filterWindow(items, now, days)

		relevant := 0
		for i, item := range windowed {
			if i >= limit {
				break
			}
			title := CleanTitle(item.Title)
			if title != "" && s.classifier.Relevant(ctx, title, ticker) {
				relevant++
			}
		}

		if relevant >= s.config.MinArticles {
			return days, windowed
		}
	}

	// Best effort: keep whatever the widest window found (possibly zero).
	return steps[len(steps)-1], windowed
}

// filterWindow keeps items published within the look-back window,
// sorted most recent first. The cutoff is strict: time >= now - days.
func filterWindow(items []models.NewsItem, now time.Time, days int) []models.NewsItem {
	cutoff := now.Unix() - int64(days)*86400

	out := make([]models.NewsItem, 0, len(items))
	for _, item := range items {
		if item.Time >= cutoff {
			out = append(out, item)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Time > out[j].Time
	})
	return out
}
