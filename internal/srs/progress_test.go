package srs

import (
	"testing"
	"time"

	"studytrack/internal/types"
)

func TestProgress(t *testing.T) {
	doc := types.NewDocument()
	doc.Topics = map[string]*types.Topic{
		"a": {Subject: "math", Reviews: 5},
		"b": {Subject: "math", Reviews: 0},
		"c": {Subject: "art", Reviews: 2},
		"d": {Subject: "art", Reviews: 2},
	}
	doc.TotalReviews = 9
	doc.Homework["1"] = &types.Homework{Subject: "math", Description: "x", Completed: true}
	doc.Homework["2"] = &types.Homework{Subject: "math", Description: "y"}
	doc.TotalHomeworkCompleted = 1

	r := Progress(doc)
	if r.TotalTopics != 4 {
		t.Errorf("TotalTopics = %d, want 4", r.TotalTopics)
	}
	if r.TopicsReviewed != 3 {
		t.Errorf("TopicsReviewed = %d, want 3", r.TopicsReviewed)
	}
	if r.AvgReviewsPerTopic != 2.25 {
		t.Errorf("AvgReviewsPerTopic = %v, want 2.25", r.AvgReviewsPerTopic)
	}
	if r.HomeworkRate != 50 {
		t.Errorf("HomeworkRate = %v, want 50", r.HomeworkRate)
	}
	if len(r.TopReviewed) != 4 {
		t.Fatalf("TopReviewed has %d entries, want 4", len(r.TopReviewed))
	}
	if r.TopReviewed[0].Name != "a" {
		t.Errorf("TopReviewed[0] = %q, want a", r.TopReviewed[0].Name)
	}
	// Ties resolve by name.
	if r.TopReviewed[1].Name != "c" || r.TopReviewed[2].Name != "d" {
		t.Errorf("tie order = %q, %q, want c, d", r.TopReviewed[1].Name, r.TopReviewed[2].Name)
	}
}

func TestProgressEmptyDocument(t *testing.T) {
	r := Progress(types.NewDocument())
	if r.AvgReviewsPerTopic != 0 || r.HomeworkRate != 0 {
		t.Errorf("empty report has non-zero averages: %+v", r)
	}
}

func TestWeeklyReviews(t *testing.T) {
	now := time.Date(2026, time.August, 27, 15, 0, 0, 0, time.UTC)
	today := types.DateOf(now)
	doc := types.NewDocument()
	doc.Topics["a"] = &types.Topic{
		Subject: "math",
		ReviewDates: []time.Time{
			now,
			now.AddDate(0, 0, -1),
			now.AddDate(0, 0, -1),
			now.AddDate(0, 0, -6),
			now.AddDate(0, 0, -10), // outside the window
		},
	}

	counts := WeeklyReviews(doc, today)
	if len(counts) != 7 {
		t.Fatalf("got %d days, want 7", len(counts))
	}
	if counts[0].Day != today.AddDays(-6) || counts[6].Day != today {
		t.Errorf("window = %v..%v, want %v..%v", counts[0].Day, counts[6].Day, today.AddDays(-6), today)
	}
	if counts[6].Count != 1 {
		t.Errorf("today count = %d, want 1", counts[6].Count)
	}
	if counts[5].Count != 2 {
		t.Errorf("yesterday count = %d, want 2", counts[5].Count)
	}
	if counts[0].Count != 1 {
		t.Errorf("oldest-day count = %d, want 1", counts[0].Count)
	}
	total := 0
	for _, dc := range counts {
		total += dc.Count
	}
	if total != 4 {
		t.Errorf("total counted = %d, want 4", total)
	}
}
