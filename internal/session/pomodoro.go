// Package session paces a timed study session with alternating work and
// break phases. The phase schedule is pure time arithmetic so it can be
// tested without sleeping; the CLI drives it against the real clock.
package session

import "time"

// Phase is the current pomodoro phase.
type Phase int

const (
	// Work is a focus phase: review due topics.
	Work Phase = iota

	// Break is a rest phase: no reviews.
	Break
)

// String returns "work" or "break".
func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "work"
}

// Pomodoro alternates work and break phases from a fixed start time.
type Pomodoro struct {
	work  time.Duration
	brk   time.Duration
	start time.Time
}

// NewPomodoro creates a pomodoro schedule starting at start. Non-positive
// durations fall back to the classic 25/5 minutes.
func NewPomodoro(start time.Time, work, brk time.Duration) *Pomodoro {
	if work <= 0 {
		work = 25 * time.Minute
	}
	if brk <= 0 {
		brk = 5 * time.Minute
	}
	return &Pomodoro{work: work, brk: brk, start: start}
}

// PhaseAt returns the phase at time t. Times before the start count as the
// first work phase.
func (p *Pomodoro) PhaseAt(t time.Time) Phase {
	elapsed := t.Sub(p.start)
	if elapsed < 0 {
		return Work
	}
	cycle := p.work + p.brk
	if elapsed%cycle < p.work {
		return Work
	}
	return Break
}

// NextTransition returns when the phase after t begins.
func (p *Pomodoro) NextTransition(t time.Time) time.Time {
	elapsed := t.Sub(p.start)
	if elapsed < 0 {
		return p.start.Add(p.work)
	}
	cycle := p.work + p.brk
	within := elapsed % cycle
	cycleStart := t.Add(-within)
	if within < p.work {
		return cycleStart.Add(p.work)
	}
	return cycleStart.Add(cycle)
}
