package export

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"studytrack/internal/types"
)

const (
	topicsSheet   = "Topics"
	homeworkSheet = "Homework"
)

// WriteXLSX exports the document as a spreadsheet with a Topics sheet and a
// Homework sheet.
func WriteXLSX(path string, doc *types.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the topics sheet.
	if err := f.SetSheetName("Sheet1", topicsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeTopicsSheet(f, doc); err != nil {
		return err
	}

	if _, err := f.NewSheet(homeworkSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writeHomeworkSheet(f, doc); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}

func writeTopicsSheet(f *excelize.File, doc *types.Document) error {
	headers := []string{"Topic", "Subject", "Level", "Difficulty", "Reviews", "Next Review"}
	if err := writeRow(f, topicsSheet, 1, headers); err != nil {
		return err
	}

	for i, name := range doc.TopicNames() {
		topic := doc.Topics[name]
		row := []string{
			name,
			topic.Subject,
			strconv.FormatFloat(topic.Level, 'f', 2, 64),
			strconv.FormatFloat(topic.Difficulty, 'f', 2, 64),
			strconv.Itoa(topic.Reviews),
			topic.NextReview.String(),
		}
		if err := writeRow(f, topicsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeHomeworkSheet(f *excelize.File, doc *types.Document) error {
	headers := []string{"ID", "Subject", "Description", "Due", "Status", "Completed On"}
	if err := writeRow(f, homeworkSheet, 1, headers); err != nil {
		return err
	}

	ids := make([]string, 0, len(doc.Homework))
	for id := range doc.Homework {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})

	for i, id := range ids {
		hw := doc.Homework[id]
		status := "Pending"
		if hw.Completed {
			status = "Completed"
		}
		row := []string{
			id,
			hw.Subject,
			hw.Description,
			hw.DueDate.String(),
			status,
			hw.CompletionDate.String(),
		}
		if err := writeRow(f, homeworkSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
