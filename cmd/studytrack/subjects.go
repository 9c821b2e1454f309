package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects and their topic counts",
	RunE:  runSubjects,
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}

func runSubjects(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(openStore(cfg))
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return formatter.WriteJSON(cmd.OutOrStdout(), doc.Subjects)
	}

	if len(doc.Subjects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No subjects yet.")
		return nil
	}

	names := make([]string, 0, len(doc.Subjects))
	for subject := range doc.Subjects {
		names = append(names, subject)
	}
	sort.Strings(names)

	table := formatter.NewTable(cmd.OutOrStdout(), "SUBJECT", "TOPICS")
	for _, subject := range names {
		table.AddRow(subject, fmt.Sprintf("%d", len(doc.Subjects[subject])))
	}
	return table.Render()
}
