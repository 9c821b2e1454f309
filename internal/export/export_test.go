package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"studytrack/internal/storage"
	"studytrack/internal/types"
)

func sampleDoc() *types.Document {
	today := types.NewDate(2026, time.August, 27)
	doc := types.NewDocument()
	doc.Topics["motion"] = &types.Topic{
		Subject:    "physics",
		Level:      1.4,
		Difficulty: 2.6,
		Reviews:    4,
		NextReview: today.AddDays(3),
	}
	doc.Topics["cells"] = &types.Topic{
		Subject:    "science",
		Difficulty: 3,
		NextReview: today,
	}
	doc.TotalReviews = 4
	doc.Homework["1"] = &types.Homework{
		Subject:     "physics",
		Description: "problem set 4",
		DueDate:     today.AddDays(7),
	}
	return doc
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	doc := sampleDoc()

	if err := WriteJSON(path, doc); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if len(back.Topics) != 2 || back.TotalReviews != 4 {
		t.Errorf("round trip lost data: %d topics, %d reviews", len(back.Topics), back.TotalReviews)
	}
	if back.Topics["motion"].Level != 1.4 {
		t.Errorf("Level = %v, want 1.4", back.Topics["motion"].Level)
	}
	if got := back.Subjects["physics"]; len(got) != 1 || got[0] != "motion" {
		t.Errorf("Subjects not rebuilt: %v", back.Subjects)
	}
}

func TestReadJSONRejectsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"topics": {}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ReadJSON(path)
	if !errors.Is(err, storage.ErrMalformedDocument) {
		t.Errorf("error = %v, want ErrMalformedDocument", err)
	}
}

func TestWriteFilePicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	doc := sampleDoc()

	jsonPath := filepath.Join(dir, "out.json")
	if err := WriteFile(jsonPath, doc); err != nil {
		t.Fatalf("WriteFile json: %v", err)
	}
	if _, err := ReadJSON(jsonPath); err != nil {
		t.Errorf("json export unreadable: %v", err)
	}

	xlsxPath := filepath.Join(dir, "out.xlsx")
	if err := WriteFile(xlsxPath, doc); err != nil {
		t.Fatalf("WriteFile xlsx: %v", err)
	}
	if _, err := os.Stat(xlsxPath); err != nil {
		t.Errorf("xlsx export missing: %v", err)
	}
}
