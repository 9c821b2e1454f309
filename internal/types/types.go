// Package types defines the record types stored in the studytrack data file.
// The structures mirror the on-disk JSON document: a map of topics keyed by
// name, a subject index, streak state, and homework records.
package types

import (
	"sort"
	"time"
)

// DefaultDifficulty is the smoothed difficulty assigned to a new topic.
const DefaultDifficulty = 3.0

// Topic holds the scheduling state for a single unit of study material.
// Topics are keyed by name in the document; the name is not repeated inside
// the record.
type Topic struct {
	// Subject groups related topics (e.g. "physics").
	Subject string `json:"subject"`

	// Level is the cumulative mastery indicator. It grows by score/5 on
	// every review and never decreases.
	Level float64 `json:"level"`

	// Difficulty is the smoothed difficulty rating in [1,5], updated with
	// an exponential moving average after each review.
	Difficulty float64 `json:"difficulty"`

	// Reviews counts completed reviews.
	Reviews int `json:"reviews"`

	// NextReview is the day the topic is next due.
	NextReview Date `json:"next_review"`

	// ReviewDates records the timestamp of every past review, in order.
	ReviewDates []time.Time `json:"review_dates"`
}

// Streak tracks consecutive days with at least one qualifying activity.
// Topic reviews and homework completions feed separate last-activity dates
// but share a single current/longest counter pair.
type Streak struct {
	// Current is the length of the running streak in days.
	Current int `json:"current"`

	// Longest is the best streak ever recorded. It never decreases.
	Longest int `json:"longest"`

	// LastReview is the day of the most recent topic review (unset if none).
	LastReview Date `json:"last_review"`

	// LastHomework is the day of the most recent homework completion.
	LastHomework Date `json:"last_homework"`
}

// Homework is a single assignment tracked alongside topics.
type Homework struct {
	// Subject the assignment belongs to.
	Subject string `json:"subject"`

	// Description of the work.
	Description string `json:"description"`

	// DueDate is when the assignment is due.
	DueDate Date `json:"due_date"`

	// Completed marks the assignment done.
	Completed bool `json:"completed"`

	// CompletionDate is the day it was completed, when Completed is true.
	CompletionDate Date `json:"completion_date,omitempty"`
}

// Document is the fully materialized data file. The engine operates on a
// Document in memory; loading and saving it is the storage layer's job.
type Document struct {
	// Topics maps topic name to its scheduling record.
	Topics map[string]*Topic `json:"topics"`

	// TotalReviews counts reviews across all topics.
	TotalReviews int `json:"total_reviews"`

	// Subjects indexes subject name to a sorted list of topic names. It is
	// derived from Topics and rebuilt on load.
	Subjects map[string][]string `json:"subjects"`

	// Streak is the consecutive-activity state.
	Streak Streak `json:"streak"`

	// Homework maps assignment ID to its record.
	Homework map[string]*Homework `json:"homework"`

	// TotalHomeworkCompleted counts completed assignments.
	TotalHomeworkCompleted int `json:"total_homework_completed"`
}

// NewDocument returns an empty document with all maps initialized.
func NewDocument() *Document {
	return &Document{
		Topics:   map[string]*Topic{},
		Subjects: map[string][]string{},
		Homework: map[string]*Homework{},
	}
}

// RebuildSubjects recomputes the subject index from the topic map. The index
// is derived state kept for listing; the topic records are authoritative.
func (d *Document) RebuildSubjects() {
	d.Subjects = map[string][]string{}
	for name, topic := range d.Topics {
		d.Subjects[topic.Subject] = append(d.Subjects[topic.Subject], name)
	}
	for _, names := range d.Subjects {
		sort.Strings(names)
	}
}

// TopicNames returns all topic names in sorted order.
func (d *Document) TopicNames() []string {
	names := make([]string, 0, len(d.Topics))
	for name := range d.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
