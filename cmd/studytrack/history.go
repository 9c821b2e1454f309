package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
	"studytrack/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history <topic>",
	Short: "Show a topic's review history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(openStore(cfg))
	if err != nil {
		return err
	}

	name := args[0]
	topic, ok := doc.Topics[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, types.ErrUnknownTopic)
	}

	if useJSON(cfg) {
		return formatter.WriteJSON(cmd.OutOrStdout(), topic)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Review history for %q:\n", name)
	fmt.Fprintf(out, "Subject:            %s\n", topic.Subject)
	fmt.Fprintf(out, "Current level:      %.2f\n", topic.Level)
	fmt.Fprintf(out, "Total reviews:      %d\n", topic.Reviews)
	fmt.Fprintf(out, "Current difficulty: %.2f\n", topic.Difficulty)
	fmt.Fprintf(out, "Next review:        %s\n", topic.NextReview)

	if len(topic.ReviewDates) == 0 {
		fmt.Fprintln(out, "\nNo past review data available.")
		return nil
	}
	fmt.Fprintln(out, "\nPast reviews:")
	for _, ts := range topic.ReviewDates {
		fmt.Fprintf(out, "- %s\n", ts.Format("2006-01-02 15:04"))
	}
	return nil
}
