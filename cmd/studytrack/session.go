package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"studytrack/internal/session"
	"studytrack/internal/srs"
)

var (
	sessionMinutes int
	sessionSubject string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run a pomodoro-paced study session",
	Long: `Review due topics for a fixed number of minutes, paced by a pomodoro
timer: review during work phases, rest during breaks (session.work_minutes /
session.break_minutes, default 25/5).

Example:
  studytrack session --minutes 60 --subject physics`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().IntVar(&sessionMinutes, "minutes", 25, "Session length in minutes")
	sessionCmd.Flags().StringVar(&sessionSubject, "subject", "", "Only topics of this subject")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sessionMinutes <= 0 {
		return fmt.Errorf("session length must be positive")
	}
	store := openStore(cfg)
	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	start := time.Now()
	end := start.Add(time.Duration(sessionMinutes) * time.Minute)
	pom := session.NewPomodoro(start,
		time.Duration(cfg.Session.WorkMinutes)*time.Minute,
		time.Duration(cfg.Session.BreakMinutes)*time.Minute)

	reviewed := 0
	for {
		now := time.Now()
		if !now.Before(end) {
			break
		}

		if pom.PhaseAt(now) == session.Break {
			fmt.Fprintln(out, "Break time! Take a moment to relax.")
			pause := pom.NextTransition(now).Sub(now)
			if remaining := end.Sub(now); pause > remaining {
				pause = remaining
			}
			time.Sleep(pause)
			continue
		}

		due := srs.Due(doc, sessionSubject, today())
		if len(due) == 0 {
			fmt.Fprintln(out, "No more topics to review. Session ended early.")
			break
		}

		name := due[rand.Intn(len(due))]
		fmt.Fprintf(out, "\nTime remaining: %d minute(s)\n", int(end.Sub(now).Minutes()))
		fmt.Fprintf(out, "Review topic: %s (subject: %s)\n", name, doc.Topics[name].Subject)
		fmt.Fprint(out, "Press Enter when you're ready to rate it...")
		if _, err := in.ReadString('\n'); err != nil {
			break
		}

		difficulty, err := promptRating(in, out, "Rate the difficulty (1-5, where 1 is easiest and 5 is hardest): ")
		if err != nil {
			break
		}
		confidence, err := promptRating(in, out, "Rate your confidence (1-5, where 1 is least confident and 5 is most confident): ")
		if err != nil {
			break
		}

		result, err := srs.Review(doc, name, srs.Rating{Difficulty: difficulty, Confidence: confidence}, time.Now())
		if err != nil {
			return err
		}
		if err := store.Save(doc); err != nil {
			return err
		}
		fmt.Fprintf(out, "Next review of %q in %d day(s).\n", name, result.IntervalDays)
		reviewed++
	}

	fmt.Fprintf(out, "\nSession ended. You reviewed %d topic(s).\n", reviewed)
	return nil
}
