// Package polling holds refresh cadences for HTMX-polled fragments.
package polling

import "time"

const (
	// DefaultInterval refreshes kitchen and floor boards.
	DefaultInterval = 30 * time.Second
	// AdminDashboardInterval refreshes the admin analytics cards.
	AdminDashboardInterval = 30 * time.Second
	// AdminOrdersInterval refreshes the admin order board.
	AdminOrdersInterval = 5 * time.Second
)

// Seconds returns the whole-second trigger value for an interval, falling
// back to fallback when interval is not positive. The result is at least 1.
func Seconds(interval, fallback time.Duration) int {
	if interval <= 0 {
		interval = fallback
	}
	seconds := int(interval.Round(time.Second) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}
