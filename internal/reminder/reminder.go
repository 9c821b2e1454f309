// Package reminder runs a periodic check for due topics and hands the result
// to a Notifier. It is the long-running counterpart of the one-shot due
// command: the loop reloads the data file on every tick so reviews performed
// while it runs are picked up.
package reminder

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"studytrack/internal/srs"
	"studytrack/internal/storage"
	"studytrack/internal/types"
)

// Notifier receives the outcome of a due check.
type Notifier interface {
	// Notify is called with the due topic names, earliest first. It is not
	// called when nothing is due.
	Notify(topics []string) error
}

// Options configure the reminder loop.
type Options struct {
	// Every is the check interval.
	Every time.Duration

	// StartHour and EndHour bound the hours (0-23, inclusive) during which
	// notifications fire. Checks outside the window are skipped.
	StartHour int
	EndHour   int

	// Subject restricts checks to one subject when non-empty.
	Subject string

	// Now returns the current time; defaults to time.Now. Tests override it.
	Now func() time.Time
}

// Scheduler periodically checks the store for due topics.
type Scheduler struct {
	sched    *gocron.Scheduler
	store    *storage.FileStore
	notifier Notifier
	opts     Options
}

// New creates a reminder scheduler reading from store.
func New(store *storage.FileStore, notifier Notifier, opts Options) *Scheduler {
	if opts.Every <= 0 {
		opts.Every = time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Scheduler{
		sched:    gocron.NewScheduler(time.Local),
		store:    store,
		notifier: notifier,
		opts:     opts,
	}
}

// Start begins the periodic check in the background.
func (s *Scheduler) Start() error {
	if _, err := s.sched.Every(s.opts.Every).Do(s.runCheck); err != nil {
		return fmt.Errorf("schedule due check: %w", err)
	}
	s.sched.StartAsync()
	return nil
}

// Stop terminates the loop.
func (s *Scheduler) Stop() {
	s.sched.Stop()
}

// RunManualCheck forces a due check immediately, ignoring the hour window.
func (s *Scheduler) RunManualCheck() error {
	return s.check(s.opts.Now(), false)
}

func (s *Scheduler) runCheck() {
	// Errors inside the loop must not kill the scheduler.
	_ = s.check(s.opts.Now(), true)
}

// check loads the document and notifies about due topics. When honorWindow
// is set, checks outside the configured hours do nothing.
func (s *Scheduler) check(now time.Time, honorWindow bool) error {
	if honorWindow && !s.withinWindow(now.Hour()) {
		return nil
	}

	doc, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load data file: %w", err)
	}

	due := srs.Due(doc, s.opts.Subject, types.DateOf(now))
	if len(due) == 0 {
		return nil
	}
	return s.notifier.Notify(due)
}

func (s *Scheduler) withinWindow(hour int) bool {
	return hour >= s.opts.StartHour && hour <= s.opts.EndHour
}
