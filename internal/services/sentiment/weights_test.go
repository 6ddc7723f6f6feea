package sentiment

import (
	"math"
	"testing"

	"github.com/ternarybob/tickerpulse/internal/models"
)

func TestTimeWeight(t *testing.T) {
	now := int64(1_700_000_000)

	tests := []struct {
		name        string
		articleTime int64
		want        float64
	}{
		{name: "age zero", articleTime: now, want: 1.0},
		{name: "future-dated clamps to 1", articleTime: now + 3600, want: 1.0},
		{name: "half-life at 24h", articleTime: now - 24*3600, want: 0.5},
		{name: "quarter weight at 48h", articleTime: now - 48*3600, want: 0.25},
		{name: "12h", articleTime: now - 12*3600, want: math.Pow(2, -0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeWeight(tt.articleTime, now, 24)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TimeWeight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeWeightStrictlyDecreasing(t *testing.T) {
	now := int64(1_700_000_000)
	prev := TimeWeight(now, now, 24)
	for age := int64(1); age <= 96; age++ {
		w := TimeWeight(now-age*3600, now, 24)
		if w >= prev {
			t.Fatalf("weight not strictly decreasing at age %dh: %v >= %v", age, w, prev)
		}
		if w <= 0 {
			t.Fatalf("weight must stay positive, got %v at age %dh", w, age)
		}
		prev = w
	}
}

func TestSoftDedupe(t *testing.T) {
	base := int64(1_700_000_000)

	articles := []models.Article{
		{Title: "Apple beats estimates", Time: base, TimeWeight: 1.0},
		{Title: "Apple Beats Estimates!", Time: base - 1800, TimeWeight: 1.0},  // same key, 30m apart
		{Title: "apple beats estimates", Time: base - 4*3600, TimeWeight: 1.0}, // same key, outside 2h window
		{Title: "Microsoft raises guidance", Time: base - 600, TimeWeight: 1.0},
	}

	out := SoftDedupe(articles, 2, 0.5)

	if len(out) != 4 {
		t.Fatalf("soft dedupe must never drop articles, got %d of 4", len(out))
	}

	// Output is newest-first
	byTime := map[int64]models.Article{}
	for _, a := range out {
		byTime[a.Time] = a
	}

	if got := byTime[base].DupWeight; got != 1.0 {
		t.Errorf("newest duplicate keeps weight 1.0, got %v", got)
	}
	if got := byTime[base-1800].DupWeight; got != 0.5 {
		t.Errorf("older duplicate inside window gets penalty, got %v", got)
	}
	if got := byTime[base-4*3600].DupWeight; got != 1.0 {
		t.Errorf("duplicate outside window keeps weight 1.0, got %v", got)
	}
	if got := byTime[base-600].DupWeight; got != 1.0 {
		t.Errorf("unique title keeps weight 1.0, got %v", got)
	}
}

func TestSoftDedupeEffectiveSampleMonotonic(t *testing.T) {
	base := int64(1_700_000_000)

	unique := []models.Article{
		{Title: "Apple beats estimates", Time: base, TimeWeight: 1.0},
		{Title: "Microsoft raises guidance", Time: base - 600, TimeWeight: 1.0},
	}
	duplicated := []models.Article{
		{Title: "Apple beats estimates", Time: base, TimeWeight: 1.0},
		{Title: "Apple beats estimates", Time: base - 600, TimeWeight: 1.0},
	}

	effUnique := EffectiveSample(SoftDedupe(unique, 2, 0.5))
	effDup := EffectiveSample(SoftDedupe(duplicated, 2, 0.5))

	if effDup >= effUnique {
		t.Errorf("duplicate-discounted effective sample %v should be below unique %v", effDup, effUnique)
	}
}
