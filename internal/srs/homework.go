package srs

import (
	"fmt"
	"strconv"
	"strings"

	"studytrack/internal/types"
)

// AddHomework registers an assignment and returns its ID. IDs are small
// sequential integers rendered as strings, the way they appear as JSON map
// keys in the data file.
func AddHomework(doc *types.Document, subject, description string, due types.Date) (string, error) {
	subject = strings.TrimSpace(subject)
	description = strings.TrimSpace(description)
	if subject == "" || description == "" {
		return "", types.ErrEmptyName
	}

	id := nextHomeworkID(doc)
	doc.Homework[id] = &types.Homework{
		Subject:     subject,
		Description: description,
		DueDate:     due,
	}
	return id, nil
}

// CompleteHomework marks an assignment done on the given day, counting it
// toward the homework total and the streak. Completing an already-completed
// assignment is a no-op and returns false.
func CompleteHomework(doc *types.Document, id string, today types.Date) (bool, error) {
	hw, ok := doc.Homework[id]
	if !ok {
		return false, fmt.Errorf("%q: %w", id, types.ErrUnknownHomework)
	}
	if hw.Completed {
		return false, nil
	}

	hw.Completed = true
	hw.CompletionDate = today
	doc.TotalHomeworkCompleted++
	UpdateStreak(doc, today, true)
	return true, nil
}

// nextHomeworkID picks the smallest integer ID above every existing one, so
// IDs stay unique even after documents are merged or edited by hand.
func nextHomeworkID(doc *types.Document) string {
	max := 0
	for id := range doc.Homework {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
