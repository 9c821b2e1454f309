package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the study data",
	Long: `Export all data to a file. The format follows the extension:
.xlsx writes a spreadsheet with Topics and Homework sheets, anything else
writes the full JSON document.

Examples:
  studytrack export backup.json
  studytrack export report.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(openStore(cfg))
	if err != nil {
		return err
	}

	if err := export.WriteFile(args[0], doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Data exported to %s\n", args[0])
	return nil
}
