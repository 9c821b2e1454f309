package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import study data from a JSON export",
	Long: `Replace the current data file with a previously exported JSON document.
The import is validated before anything is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := export.ReadJSON(args[0])
	if err != nil {
		return err
	}
	if err := openStore(cfg).Save(doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Data imported from %s (%d topics)\n", args[0], len(doc.Topics))
	return nil
}
