package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
	"studytrack/internal/srs"
)

var dueSubject string

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show today's review queue",
	Long: `List topics whose review date has arrived, earliest first.

When more topics are due than max_topics_per_day allows, the overflow is
rescheduled to tomorrow and only today's share is shown.`,
	RunE: runDue,
}

func init() {
	rootCmd.AddCommand(dueCmd)
	dueCmd.Flags().StringVar(&dueSubject, "subject", "", "Only topics of this subject")
}

func runDue(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	selected, rescheduled := srs.SelectForToday(doc, dueSubject, cfg.MaxTopicsPerDay, today())
	if len(rescheduled) > 0 {
		if err := store.Save(doc); err != nil {
			return err
		}
	}

	if useJSON(cfg) {
		return formatter.WriteJSON(cmd.OutOrStdout(), map[string]any{
			"due":         selected,
			"rescheduled": rescheduled,
		})
	}

	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No topics to review today.")
		return nil
	}

	table := formatter.NewTable(cmd.OutOrStdout(), "TOPIC", "SUBJECT", "DUE", "REVIEWS")
	for _, name := range selected {
		topic := doc.Topics[name]
		table.AddRow(name, topic.Subject, topic.NextReview.String(), fmt.Sprintf("%d", topic.Reviews))
	}
	if err := table.Render(); err != nil {
		return err
	}
	if len(rescheduled) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Rescheduled %d topic(s) for tomorrow.\n", len(rescheduled))
	}
	return nil
}
