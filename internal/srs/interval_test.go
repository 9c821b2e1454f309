package srs

import "testing"

func TestInterval(t *testing.T) {
	tests := []struct {
		name               string
		level              float64
		difficulty         int
		confidence         int
		daysSinceScheduled int
		reviews            int
		want               int
	}{
		// level 0 gives base interval 1; same-day review doubles it.
		{"first review same day", 0, 3, 3, 0, 1, 2},
		{"no bonus a week late", 0, 3, 3, 7, 1, 1},
		{"hard and unsure collapses to zero", 0, 5, 1, 7, 1, 0},
		{"easy and confident", 2, 1, 5, 7, 4, 11},
		{"young topic capped at a week", 10, 1, 5, 0, 3, 7},
		{"mid topic capped at two weeks", 10, 1, 5, 0, 5, 14},
		{"mature topic capped at sixty days", 10, 1, 5, 0, 10, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interval(tt.level, tt.difficulty, tt.confidence, tt.daysSinceScheduled, tt.reviews)
			if got != tt.want {
				t.Errorf("Interval(%v, %d, %d, %d, %d) = %d, want %d",
					tt.level, tt.difficulty, tt.confidence, tt.daysSinceScheduled, tt.reviews, got, tt.want)
			}
		})
	}
}

func TestIntervalEarlyBonusCapped(t *testing.T) {
	// Reviewing far ahead of schedule must not push the bonus past 2x.
	ahead := Interval(2, 3, 3, -30, 10)
	onTime := Interval(2, 3, 3, 0, 10)
	if ahead != onTime {
		t.Errorf("bonus for very early review = %d, want same as same-day review %d", ahead, onTime)
	}
}

func TestIntervalNeverNegative(t *testing.T) {
	for days := -10; days <= 30; days++ {
		if got := Interval(0, 5, 1, days, 1); got < 0 {
			t.Fatalf("Interval(..., days=%d, ...) = %d, want >= 0", days, got)
		}
	}
}

func TestIntervalCapTiers(t *testing.T) {
	tests := []struct {
		reviews int
		want    int
	}{
		{1, 7}, {3, 7}, {4, 14}, {7, 14}, {8, 60}, {100, 60},
	}
	for _, tt := range tests {
		if got := intervalCap(tt.reviews); got != tt.want {
			t.Errorf("intervalCap(%d) = %d, want %d", tt.reviews, got, tt.want)
		}
	}
}
