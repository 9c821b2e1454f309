package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-27")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != NewDate(2026, time.August, 27) {
		t.Errorf("ParseDate = %v, want 2026-08-27", d)
	}

	if _, err := ParseDate("27/08/2026"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, time.August, 27, 23, 59, 0, 0, time.UTC)
	if got := DateOf(ts); got != NewDate(2026, time.August, 27) {
		t.Errorf("DateOf = %v, want 2026-08-27", got)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.August, 27)

	if got := d.AddDays(7); got != NewDate(2026, time.September, 3) {
		t.Errorf("AddDays(7) = %v, want 2026-09-03", got)
	}
	if got := d.AddDays(-27); got != NewDate(2026, time.July, 31) {
		t.Errorf("AddDays(-27) = %v, want 2026-07-31", got)
	}
	if got := d.AddDays(7).DaysSince(d); got != 7 {
		t.Errorf("DaysSince = %d, want 7", got)
	}
	if got := d.DaysSince(d.AddDays(3)); got != -3 {
		t.Errorf("DaysSince (early) = %d, want -3", got)
	}
	if !d.Before(d.AddDays(1)) || d.After(d.AddDays(1)) {
		t.Error("Before/After disagree with AddDays")
	}
}

func TestDateJSON(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{"set", NewDate(2026, time.August, 27), `"2026-08-27"`},
		{"unset", Date{}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var back Date
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back != tt.date {
				t.Errorf("round trip = %v, want %v", back, tt.date)
			}
		})
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"tomorrow"`), &d); err == nil {
		t.Error("Unmarshal accepted a non-date string")
	}
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Error("Unmarshal accepted a number")
	}
}

func TestRebuildSubjects(t *testing.T) {
	doc := NewDocument()
	doc.Topics = map[string]*Topic{
		"motion": {Subject: "physics"},
		"forces": {Subject: "physics"},
		"cells":  {Subject: "science"},
	}
	doc.Subjects = map[string][]string{"stale": {"gone"}}

	doc.RebuildSubjects()
	if len(doc.Subjects) != 2 {
		t.Fatalf("Subjects has %d entries, want 2", len(doc.Subjects))
	}
	phys := doc.Subjects["physics"]
	if len(phys) != 2 || phys[0] != "forces" || phys[1] != "motion" {
		t.Errorf("physics topics = %v, want sorted [forces motion]", phys)
	}
	if _, ok := doc.Subjects["stale"]; ok {
		t.Error("stale subject survived rebuild")
	}
}
