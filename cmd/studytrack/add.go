package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/srs"
)

var addCmd = &cobra.Command{
	Use:   "add <topic> <subject>",
	Short: "Add a topic to track",
	Long: `Add a new topic under a subject. The topic is due for review today.

Examples:
  studytrack add "the french revolution" history
  studytrack add motion physics`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	name, subject := args[0], args[1]
	if err := srs.AddTopic(doc, name, subject, today()); err != nil {
		return err
	}
	if err := store.Save(doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added topic %q (subject: %s)\n", name, subject)
	return nil
}
