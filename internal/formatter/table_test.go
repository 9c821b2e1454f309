package formatter

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRendersHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, "TOPIC", "SUBJECT")
	table.AddRow("motion", "physics")
	table.AddRow("cells", "science")
	if err := table.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header, separator, two rows):\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "TOPIC") || !strings.Contains(lines[0], "SUBJECT") {
		t.Errorf("header = %q, missing column names", lines[0])
	}
	if !strings.Contains(lines[1], "-----") {
		t.Errorf("separator = %q, want dashes", lines[1])
	}
	if !strings.Contains(lines[2], "motion") || !strings.Contains(lines[2], "physics") {
		t.Errorf("row = %q, missing values", lines[2])
	}
}

func TestTableTruncates(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, "ID", "DESCRIPTION")
	table.SetMaxWidth(1, 10)
	table.AddRow("1", "a very long homework description")
	if err := table.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(buf.String(), "a very ...") {
		t.Errorf("output %q, want truncated description", buf.String())
	}
}

func TestTableMissingValuesPadded(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, "A", "B", "C")
	table.AddRow("only")
	if err := table.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "only") {
		t.Errorf("output %q, missing row value", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"reviews": 3}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"reviews": 3`) {
		t.Errorf("output = %q, want indented JSON", buf.String())
	}
}
