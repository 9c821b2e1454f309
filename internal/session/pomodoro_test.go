package session

import (
	"testing"
	"time"
)

func TestPomodoroPhases(t *testing.T) {
	start := time.Date(2026, time.August, 27, 9, 0, 0, 0, time.UTC)
	pom := NewPomodoro(start, 25*time.Minute, 5*time.Minute)

	tests := []struct {
		name   string
		offset time.Duration
		want   Phase
	}{
		{"session start", 0, Work},
		{"mid work", 10 * time.Minute, Work},
		{"just before break", 24 * time.Minute, Work},
		{"break starts", 25 * time.Minute, Break},
		{"mid break", 27 * time.Minute, Break},
		{"second work phase", 30 * time.Minute, Work},
		{"second break", 56 * time.Minute, Break},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pom.PhaseAt(start.Add(tt.offset)); got != tt.want {
				t.Errorf("PhaseAt(start+%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestPomodoroNextTransition(t *testing.T) {
	start := time.Date(2026, time.August, 27, 9, 0, 0, 0, time.UTC)
	pom := NewPomodoro(start, 25*time.Minute, 5*time.Minute)

	if got := pom.NextTransition(start.Add(10 * time.Minute)); !got.Equal(start.Add(25 * time.Minute)) {
		t.Errorf("NextTransition(mid work) = %v, want first break at +25m", got)
	}
	if got := pom.NextTransition(start.Add(27 * time.Minute)); !got.Equal(start.Add(30 * time.Minute)) {
		t.Errorf("NextTransition(mid break) = %v, want second work at +30m", got)
	}
}

func TestPomodoroDefaults(t *testing.T) {
	start := time.Date(2026, time.August, 27, 9, 0, 0, 0, time.UTC)
	pom := NewPomodoro(start, 0, -time.Minute)

	if got := pom.PhaseAt(start.Add(24 * time.Minute)); got != Work {
		t.Errorf("default work length: PhaseAt(+24m) = %v, want Work", got)
	}
	if got := pom.PhaseAt(start.Add(26 * time.Minute)); got != Break {
		t.Errorf("default break length: PhaseAt(+26m) = %v, want Break", got)
	}
}

func TestPhaseString(t *testing.T) {
	if Work.String() != "work" || Break.String() != "break" {
		t.Errorf("Phase strings = %q/%q, want work/break", Work, Break)
	}
}
