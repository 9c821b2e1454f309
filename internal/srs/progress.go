package srs

import (
	"sort"

	"studytrack/internal/types"
)

// Report summarizes overall study progress.
type Report struct {
	TotalTopics        int     `json:"total_topics"`
	TopicsReviewed     int     `json:"topics_reviewed"`
	TotalReviews       int     `json:"total_reviews"`
	AvgReviewsPerTopic float64 `json:"avg_reviews_per_topic"`
	TotalHomework      int     `json:"total_homework"`
	HomeworkCompleted  int     `json:"homework_completed"`
	// HomeworkRate is the completion percentage, 0 when nothing is assigned.
	HomeworkRate float64 `json:"homework_rate"`
	// TopReviewed lists the most-reviewed topics, best first, at most five.
	TopReviewed []TopicReviews `json:"top_reviewed"`
}

// TopicReviews pairs a topic name with its review count for ranking.
type TopicReviews struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Reviews int    `json:"reviews"`
}

// Progress derives a progress report from the document.
func Progress(doc *types.Document) Report {
	r := Report{
		TotalTopics:       len(doc.Topics),
		TotalReviews:      doc.TotalReviews,
		TotalHomework:     len(doc.Homework),
		HomeworkCompleted: doc.TotalHomeworkCompleted,
	}
	for _, topic := range doc.Topics {
		if topic.Reviews > 0 {
			r.TopicsReviewed++
		}
	}
	if r.TotalTopics > 0 {
		r.AvgReviewsPerTopic = float64(r.TotalReviews) / float64(r.TotalTopics)
	}
	if r.TotalHomework > 0 {
		r.HomeworkRate = float64(r.HomeworkCompleted) / float64(r.TotalHomework) * 100
	}

	for name, topic := range doc.Topics {
		r.TopReviewed = append(r.TopReviewed, TopicReviews{
			Name:    name,
			Subject: topic.Subject,
			Reviews: topic.Reviews,
		})
	}
	sort.Slice(r.TopReviewed, func(i, j int) bool {
		if r.TopReviewed[i].Reviews != r.TopReviewed[j].Reviews {
			return r.TopReviewed[i].Reviews > r.TopReviewed[j].Reviews
		}
		return r.TopReviewed[i].Name < r.TopReviewed[j].Name
	})
	if len(r.TopReviewed) > 5 {
		r.TopReviewed = r.TopReviewed[:5]
	}
	return r
}

// DayCount is the number of reviews performed on one calendar day.
type DayCount struct {
	Day   types.Date `json:"day"`
	Count int        `json:"count"`
}

// WeeklyReviews counts reviews per day over the last seven days, oldest
// first, derived from every topic's review history.
func WeeklyReviews(doc *types.Document, today types.Date) []DayCount {
	counts := make([]DayCount, 7)
	index := map[types.Date]int{}
	for i := 0; i < 7; i++ {
		day := today.AddDays(i - 6)
		counts[i] = DayCount{Day: day}
		index[day] = i
	}

	for _, topic := range doc.Topics {
		for _, ts := range topic.ReviewDates {
			if i, ok := index[types.DateOf(ts)]; ok {
				counts[i].Count++
			}
		}
	}
	return counts
}
