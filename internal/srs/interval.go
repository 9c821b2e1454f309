package srs

import "math"

// Interval caps by review count. Young topics are forced back quickly even
// when the raw interval explodes with level.
const (
	earlyReviewCap = 7  // up to 3 reviews
	midReviewCap   = 14 // up to 7 reviews
	matureCap      = 60
)

// Interval computes the number of days until the next review.
//
// The base interval grows exponentially with the topic's level (after the
// current review's increment). Easier ratings and higher confidence stretch
// it; reviewing on or before the scheduled day earns a growth bonus of up to
// 2x. The result is floored at zero (same-day) and capped by review count.
//
// daysSinceScheduled is today minus the previously scheduled review day, in
// whole days; it is negative for an early review.
func Interval(level float64, difficulty, confidence, daysSinceScheduled, reviews int) int {
	base := math.Pow(2, level)
	difficultyFactor := float64(6-difficulty) / 3
	confidenceFactor := float64(confidence) / 3

	early := 1 - float64(daysSinceScheduled)/7
	if early < 0 {
		early = 0
	}
	if early > 1 {
		early = 1
	}
	earlyReviewBonus := 1 + early

	raw := int(base * difficultyFactor * confidenceFactor * earlyReviewBonus)
	if raw < 0 {
		raw = 0
	}
	if limit := intervalCap(reviews); raw > limit {
		raw = limit
	}
	return raw
}

// intervalCap returns the maximum interval in days for a topic with the given
// number of completed reviews.
func intervalCap(reviews int) int {
	switch {
	case reviews <= 3:
		return earlyReviewCap
	case reviews <= 7:
		return midReviewCap
	default:
		return matureCap
	}
}
