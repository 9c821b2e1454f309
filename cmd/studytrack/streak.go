package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the consecutive-day activity streak",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(openStore(cfg))
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return formatter.WriteJSON(cmd.OutOrStdout(), doc.Streak)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current streak: %d day(s)\n", doc.Streak.Current)
	fmt.Fprintf(out, "Longest streak: %d day(s)\n", doc.Streak.Longest)
	fmt.Fprintf(out, "Last review:    %s\n", orNever(doc.Streak.LastReview.String()))
	fmt.Fprintf(out, "Last homework:  %s\n", orNever(doc.Streak.LastHomework.String()))
	return nil
}

func orNever(s string) string {
	if s == "" {
		return "never"
	}
	return s
}
