package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/models"
)

// stubProfiles returns a fixed profile, or an error, for every ticker.
type stubProfiles struct {
	profile models.CompanyProfile
	err     error
	calls   int
}

func (s *stubProfiles) FetchProfile(_ context.Context, _ string) (models.CompanyProfile, error) {
	s.calls++
	return s.profile, s.err
}

func TestClassifierDirectTickerMatch(t *testing.T) {
	c := NewClassifier(nil, common.GetLogger())

	assert.True(t, c.Relevant(context.Background(), "GME short squeeze continues", "GME"))
	assert.True(t, c.Relevant(context.Background(), "Why gme is trending again", "GME"))
}

func TestClassifierStaticMapping(t *testing.T) {
	c := NewClassifier(nil, common.GetLogger())

	tests := []struct {
		title  string
		ticker string
		want   bool
	}{
		{"Apple unveils new iPhone", "AAPL", true},
		{"iPhone sales beat expectations", "AAPL", true},
		{"Azure revenue accelerates", "MSFT", true},
		{"Mark Zuckerberg outlines metaverse plans", "META", true},
		{"Grain futures slip on weather outlook", "AAPL", false},
	}

	for _, tt := range tests {
		got := c.Relevant(context.Background(), tt.title, tt.ticker)
		assert.Equal(t, tt.want, got, "title %q ticker %q", tt.title, tt.ticker)
	}
}

func TestClassifierEmptyInputs(t *testing.T) {
	c := NewClassifier(nil, common.GetLogger())

	assert.False(t, c.Relevant(context.Background(), "", "AAPL"))
	assert.False(t, c.Relevant(context.Background(), "Apple unveils new iPhone", ""))
}

func TestClassifierDynamicKeywords(t *testing.T) {
	profiles := &stubProfiles{
		profile: models.CompanyProfile{
			Name:     "Acme Robotics Inc",
			CEO:      "Jane Doe",
			Industry: "Industrial Automation",
			Sector:   "Industrials",
			Summary:  "Acme builds a cloud platform for factory automation.",
		},
	}
	c := NewClassifier(profiles, common.GetLogger())
	ctx := context.Background()

	// Company name word (suffix "inc" excluded, "acme" too short is not - 4 chars)
	assert.True(t, c.Relevant(ctx, "Robotics maker lands defense contract", "ACMR"))
	// CEO name part
	assert.True(t, c.Relevant(ctx, "Jane Doe steps down as chief executive", "ACMR"))
	// Business vocabulary term found in summary
	assert.True(t, c.Relevant(ctx, "Cloud spending keeps climbing", "ACMR"))
	// Industry string
	assert.True(t, c.Relevant(ctx, "Industrial automation demand rebounds", "ACMR"))
	// Nothing related
	assert.False(t, c.Relevant(ctx, "Coffee prices hit six-month low", "ACMR"))
}

func TestClassifierMemoizesProfileLookup(t *testing.T) {
	profiles := &stubProfiles{profile: models.CompanyProfile{Name: "Acme Robotics Inc"}}
	c := NewClassifier(profiles, common.GetLogger())
	ctx := context.Background()

	c.Relevant(ctx, "Robotics maker lands defense contract", "ACMR")
	c.Relevant(ctx, "Another unrelated headline entirely", "ACMR")
	c.Relevant(ctx, "Robotics again", "ACMR")

	assert.Equal(t, 1, profiles.calls, "profile should be fetched once per ticker")
}

func TestClassifierProfileFailureDegrades(t *testing.T) {
	profiles := &stubProfiles{err: errors.New("provider unreachable")}
	c := NewClassifier(profiles, common.GetLogger())
	ctx := context.Background()

	// Direct ticker match still works
	assert.True(t, c.Relevant(ctx, "ACMR spikes on takeover rumor", "ACMR"))
	// Dynamic derivation degrades to ticker-only, no error surfaces
	assert.False(t, c.Relevant(ctx, "Robotics maker lands defense contract", "ACMR"))
}

func TestFilterKeywords(t *testing.T) {
	in := []string{"apple", "ai", "apple", "x", "cloud"}
	out := filterKeywords(in)
	assert.Equal(t, []string{"apple", "cloud"}, out)
}
