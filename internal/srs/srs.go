// Package srs implements the scheduling and review-scoring engine: scoring a
// review, computing the next review date, selecting due topics under the
// daily cap, and maintaining the activity streak.
//
// All functions operate on an in-memory types.Document and perform no I/O.
// The caller supplies validated ratings and the current time, and is
// responsible for persisting the mutated document afterwards.
package srs

import (
	"fmt"
	"strings"
	"time"

	"studytrack/internal/types"
)

// Rating is an operator-supplied difficulty/confidence pair. Both values are
// integers in [1,5]: difficulty 1 is easiest, confidence 5 is most confident.
type Rating struct {
	Difficulty int
	Confidence int
}

// Validate checks both components are in the 1-5 range.
func (r Rating) Validate() error {
	if !ValidRating(r.Difficulty) {
		return fmt.Errorf("difficulty %d: %w", r.Difficulty, types.ErrInvalidRating)
	}
	if !ValidRating(r.Confidence) {
		return fmt.Errorf("confidence %d: %w", r.Confidence, types.ErrInvalidRating)
	}
	return nil
}

// ValidRating reports whether n is a valid 1-5 rating value.
func ValidRating(n int) bool {
	return n >= 1 && n <= 5
}

// AddTopic registers a new topic due for review today. Names are trimmed;
// blank names or subjects are rejected, as are duplicate topic names.
func AddTopic(doc *types.Document, name, subject string, today types.Date) error {
	name = strings.TrimSpace(name)
	subject = strings.TrimSpace(subject)
	if name == "" || subject == "" {
		return types.ErrEmptyName
	}
	if _, ok := doc.Topics[name]; ok {
		return fmt.Errorf("%q: %w", name, types.ErrTopicExists)
	}

	doc.Topics[name] = &types.Topic{
		Subject:    subject,
		Difficulty: types.DefaultDifficulty,
		NextReview: today,
	}
	doc.RebuildSubjects()
	return nil
}

// ReviewResult reports the outcome of a single review.
type ReviewResult struct {
	// Topic is the mutated record.
	Topic *types.Topic

	// Score is the combined review score in [1,5].
	Score float64

	// IntervalDays is the capped interval applied to the next review date.
	IntervalDays int

	// NextReview is the newly scheduled review day.
	NextReview types.Date
}

// Review applies a rated review to the named topic: the level grows by
// score/5, the review counter and history advance, the smoothed difficulty
// moves toward the new rating, the next review date is recomputed, and the
// streak is extended. Returns types.ErrUnknownTopic without mutating anything
// when the topic does not exist.
func Review(doc *types.Document, name string, rating Rating, now time.Time) (*ReviewResult, error) {
	if err := rating.Validate(); err != nil {
		return nil, err
	}
	topic, ok := doc.Topics[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, types.ErrUnknownTopic)
	}

	today := types.DateOf(now)
	// Days relative to the previously scheduled review day. Negative when
	// the topic is reviewed ahead of schedule.
	daysSinceScheduled := today.DaysSince(topic.NextReview)

	score := Score(rating.Difficulty, rating.Confidence)
	topic.Level += score / 5
	topic.Reviews++
	topic.ReviewDates = append(topic.ReviewDates, now)

	interval := Interval(topic.Level, rating.Difficulty, rating.Confidence, daysSinceScheduled, topic.Reviews)
	topic.NextReview = today.AddDays(interval)
	topic.Difficulty = smoothDifficulty(topic.Difficulty, rating.Difficulty)

	doc.TotalReviews++
	UpdateStreak(doc, today, false)

	return &ReviewResult{
		Topic:        topic,
		Score:        score,
		IntervalDays: interval,
		NextReview:   topic.NextReview,
	}, nil
}

// difficultySmoothing is the EMA learning rate applied to a topic's stored
// difficulty after each review.
const difficultySmoothing = 0.2

func smoothDifficulty(current float64, rated int) float64 {
	return current + difficultySmoothing*(float64(rated)-current)
}
