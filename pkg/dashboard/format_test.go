package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"JustNow", 0, "0 secs ago"},
		{"Seconds", 45 * time.Second, "45 secs ago"},
		{"NinetySeconds", 90 * time.Second, "1 mins ago"},
		{"Minutes", 30 * time.Minute, "30 mins ago"},
		{"JustOverAnHour", 3700 * time.Second, "1 hours ago"},
		{"Hours", 5 * time.Hour, "5 hours ago"},
		{"TwentyFiveHours", 25 * time.Hour, "1 days ago"},
		{"Days", 6 * 24 * time.Hour, "6 days ago"},
		{"Months", 40 * 24 * time.Hour, "1 months ago"},
		{"Years", 400 * 24 * time.Hour, "1 years ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, relativeAge(now.Add(-tc.ago), now))
		})
	}

	t.Run("FutureTimestampClampsToZero", func(t *testing.T) {
		assert.Equal(t, "0 secs ago", relativeAge(now.Add(time.Minute), now))
	})
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(0, 0), "empty denominator yields zero, not NaN")
	assert.Equal(t, 0, percent(5, 0))
	assert.Equal(t, 50, percent(1, 2))
	assert.Equal(t, 100, percent(10, 10))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3), "rounded, not truncated")
}

func TestPerformanceBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{89.9, "Above Target"},
		{80, "Above Target"},
		{75, "Meeting Target"},
		{70, "Meeting Target"},
		{65, "Needs Improvement"},
		{60, "Needs Improvement"},
		{59.9, "Below Target"},
		{0, "Below Target"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, performanceBand(tc.score), "score %.1f", tc.score)
	}
}
