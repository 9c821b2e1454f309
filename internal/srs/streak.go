package srs

import "studytrack/internal/types"

// UpdateStreak records a qualifying activity on the given day and adjusts the
// consecutive-day counter. Topic reviews and homework completions keep
// separate last-activity dates but extend one shared counter: activity on
// either track yesterday continues the streak.
//
// The counter resets to 1 only when the triggering track has not already
// been counted today, so a review and a homework completion on the same day
// do not double-count.
func UpdateStreak(doc *types.Document, today types.Date, homework bool) {
	s := &doc.Streak
	yesterday := today.AddDays(-1)

	switch {
	case s.LastReview == yesterday || (homework && s.LastHomework == yesterday):
		s.Current++
		if s.Current > s.Longest {
			s.Longest = s.Current
		}
	case s.LastReview != today && (!homework || s.LastHomework != today):
		s.Current = 1
	}

	if homework {
		s.LastHomework = today
	} else {
		s.LastReview = today
	}
}
