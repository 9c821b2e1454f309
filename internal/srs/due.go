package srs

import (
	"sort"

	"studytrack/internal/types"
)

// DefaultDailyCap is the default maximum number of topics surfaced per day.
const DefaultDailyCap = 3

// Due returns the names of topics whose next review day has arrived, sorted
// by next review date ascending with ties broken by name. An empty subject
// selects across all subjects. Due never mutates the document.
func Due(doc *types.Document, subject string, today types.Date) []string {
	var due []string
	for name, topic := range doc.Topics {
		if subject != "" && topic.Subject != subject {
			continue
		}
		if !topic.NextReview.After(today) {
			due = append(due, name)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		a, b := doc.Topics[due[i]], doc.Topics[due[j]]
		if a.NextReview != b.NextReview {
			return a.NextReview.Before(b.NextReview)
		}
		return due[i] < due[j]
	})
	return due
}

// SelectForToday picks today's review queue. When more topics are due than
// dailyCap allows, the earliest dailyCap topics are kept for today and the
// remainder are pushed to tomorrow by mutating their next review date; the
// caller must persist the document when rescheduled is non-empty. A dailyCap
// of zero or less disables the cap.
func SelectForToday(doc *types.Document, subject string, dailyCap int, today types.Date) (selected, rescheduled []string) {
	due := Due(doc, subject, today)
	if dailyCap <= 0 || len(due) <= dailyCap {
		return due, nil
	}

	selected = due[:dailyCap]
	rescheduled = due[dailyCap:]
	tomorrow := today.AddDays(1)
	for _, name := range rescheduled {
		doc.Topics[name].NextReview = tomorrow
	}
	return selected, rescheduled
}
