package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"studytrack/internal/reminder"
)

var remindSubject string

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run a foreground reminder loop for due topics",
	Long: `Periodically check the data file and print the topics due for review.
Checks run at the configured interval (remind.every, default 1h) within the
configured hours (remind.start_hour to remind.end_hour). An immediate check
runs on startup. Stop with Ctrl-C.`,
	RunE: runRemind,
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().StringVar(&remindSubject, "subject", "", "Only topics of this subject")
}

// printNotifier writes reminders to the command's stdout.
type printNotifier struct {
	cmd *cobra.Command
}

func (n *printNotifier) Notify(topics []string) error {
	out := n.cmd.OutOrStdout()
	fmt.Fprintf(out, "[%s] %d topic(s) due for review:\n", time.Now().Format("15:04"), len(topics))
	for _, name := range topics {
		fmt.Fprintf(out, "- %s\n", name)
	}
	return nil
}

func runRemind(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	every, err := time.ParseDuration(cfg.Remind.Every)
	if err != nil {
		return fmt.Errorf("parse remind.every: %w", err)
	}

	sched := reminder.New(openStore(cfg), &printNotifier{cmd: cmd}, reminder.Options{
		Every:     every,
		StartHour: cfg.Remind.StartHour,
		EndHour:   cfg.Remind.EndHour,
		Subject:   remindSubject,
	})

	// First check fires right away so the loop is visibly alive.
	if err := sched.RunManualCheck(); err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Reminder loop running (every %s, %02d:00-%02d:59). Ctrl-C to stop.\n",
		every, cfg.Remind.StartHour, cfg.Remind.EndHour)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	fmt.Fprintln(cmd.OutOrStdout(), "\nStopping.")
	return nil
}
