package polling

import (
	"testing"
	"time"
)

func TestSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		interval time.Duration
		fallback time.Duration
		want     int
	}{
		{name: "configured", interval: 10 * time.Second, fallback: DefaultInterval, want: 10},
		{name: "zero uses fallback", interval: 0, fallback: DefaultInterval, want: 30},
		{name: "negative uses fallback", interval: -time.Second, fallback: AdminOrdersInterval, want: 5},
		{name: "sub second clamps", interval: 100 * time.Millisecond, fallback: DefaultInterval, want: 1},
		{name: "rounds", interval: 1600 * time.Millisecond, fallback: DefaultInterval, want: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Seconds(tc.interval, tc.fallback); got != tc.want {
				t.Fatalf("Seconds(%v, %v) = %d, want %d", tc.interval, tc.fallback, got, tc.want)
			}
		})
	}
}
