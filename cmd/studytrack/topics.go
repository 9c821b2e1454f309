package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List all tracked topics",
	RunE:  runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(openStore(cfg))
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return formatter.WriteJSON(cmd.OutOrStdout(), doc.Topics)
	}

	if len(doc.Topics) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No topics added yet.")
		return nil
	}

	table := formatter.NewTable(cmd.OutOrStdout(), "TOPIC", "SUBJECT", "NEXT REVIEW", "DIFFICULTY", "REVIEWS")
	for _, name := range doc.TopicNames() {
		topic := doc.Topics[name]
		table.AddRow(
			name,
			topic.Subject,
			topic.NextReview.String(),
			fmt.Sprintf("%.2f", topic.Difficulty),
			fmt.Sprintf("%d", topic.Reviews),
		)
	}
	return table.Render()
}
