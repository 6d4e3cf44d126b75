package view

import (
	"fmt"
	"math"
	"time"
)

// DateLayout renders year, month, day and time of day.
const DateLayout = "Jan 2, 2006, 03:04 PM"

// FormatDate renders t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatRelativeTime describes t relative to now, e.g. "in 3 days",
// "tomorrow" or "2 days ago". Differences are floored to whole units.
func FormatRelativeTime(t, now time.Time) string {
	diff := t.Sub(now)
	days := floorDiv(diff, 24*time.Hour)
	hours := floorDiv(diff, time.Hour)
	minutes := floorDiv(diff, time.Minute)

	switch {
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == 1:
		return "tomorrow"
	case days == 0 && hours > 0:
		return fmt.Sprintf("in %d hours", hours)
	case days == 0 && hours == 0 && minutes > 0:
		return fmt.Sprintf("in %d minutes", minutes)
	case days == -1:
		return "yesterday"
	case days < -1:
		return fmt.Sprintf("%d days ago", -days)
	}
	return "now"
}

func floorDiv(d, unit time.Duration) int64 {
	return int64(math.Floor(float64(d) / float64(unit)))
}
