package domain

import "fmt"

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// FormatDelta renders a non-negative duration in milliseconds the way the
// puzzle list shows it, e.g. "45s ago", "3h 12m ago" or "2d ago".
func FormatDelta(ms int64) string {
	switch {
	case ms < msPerMinute:
		return fmt.Sprintf("%ds ago", ms/msPerSecond)
	case ms < msPerHour:
		return fmt.Sprintf("%dm ago", ms/msPerMinute)
	case ms < msPerDay:
		h := ms / msPerHour
		m := (ms % msPerHour) / msPerMinute
		if m == 0 {
			return fmt.Sprintf("%dh ago", h)
		}
		return fmt.Sprintf("%dh %dm ago", h, m)
	}

	days := ms / msPerDay
	h := (ms % msPerDay) / msPerHour
	if h == 0 {
		return fmt.Sprintf("%dd ago", days)
	}
	return fmt.Sprintf("%dd %dh ago", days, h)
}
