package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteXLSX(path, sampleDoc()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(topicsSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", topicsSheet, err)
	}
	// Header plus two topics, sorted by name.
	if len(rows) != 3 {
		t.Fatalf("Topics sheet has %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Topic" {
		t.Errorf("header[0] = %q, want Topic", rows[0][0])
	}
	if rows[1][0] != "cells" || rows[2][0] != "motion" {
		t.Errorf("topic order = %q, %q, want cells, motion", rows[1][0], rows[2][0])
	}
	if rows[2][4] != "4" {
		t.Errorf("motion reviews cell = %q, want 4", rows[2][4])
	}

	hwRows, err := f.GetRows(homeworkSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", homeworkSheet, err)
	}
	if len(hwRows) != 2 {
		t.Fatalf("Homework sheet has %d rows, want 2", len(hwRows))
	}
	if hwRows[1][4] != "Pending" {
		t.Errorf("homework status = %q, want Pending", hwRows[1][4])
	}
}
