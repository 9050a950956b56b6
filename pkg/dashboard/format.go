package dashboard

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// relativeAge renders the wall-clock delta between t and now using the
// largest applicable unit, truncated: 90s is "1 mins ago", 25h is
// "1 days ago".
func relativeAge(t, now time.Time) string {
	delta := now.Sub(t)
	if delta < 0 {
		delta = 0
	}
	secs := int(delta.Seconds())

	switch {
	case secs >= secondsPerYear:
		return fmt.Sprintf("%d years ago", secs/secondsPerYear)
	case secs >= secondsPerMonth:
		return fmt.Sprintf("%d months ago", secs/secondsPerMonth)
	case secs >= secondsPerDay:
		return fmt.Sprintf("%d days ago", secs/secondsPerDay)
	case secs >= secondsPerHour:
		return fmt.Sprintf("%d hours ago", secs/secondsPerHour)
	case secs >= secondsPerMinute:
		return fmt.Sprintf("%d mins ago", secs/secondsPerMinute)
	default:
		return fmt.Sprintf("%d secs ago", secs)
	}
}

// percent computes numerator/denominator as a percentage rounded to the
// nearest integer. Returns 0 for an empty denominator, never NaN.
func percent(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}

// performanceBand maps a numeric score to its display band
func performanceBand(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Above Target"
	case score >= 70:
		return "Meeting Target"
	case score >= 60:
		return "Needs Improvement"
	default:
		return "Below Target"
	}
}
