package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	output   string
	cfgFile  string
	dataFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "studytrack",
	Short: "Spaced-repetition study tracker",
	Long: `studytrack schedules topic reviews with a spaced-repetition heuristic.

Rate each review's difficulty and confidence (1-5); the interval to the next
review grows with your mastery level and shrinks when material stays hard.
Topics, homework, and streaks live in a single JSON data file.

Daily flow:
  due          Show today's review queue
  review       Review a topic and rate it
  streak       Show your consecutive-day streak

Setup:
  init         Create the data file (optionally seeded with starter topics)
  add          Add a topic to track`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		syncConfigFlagToEnv()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.studytrack/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Data file (default: studytrack.json)")
}

func syncConfigFlagToEnv() {
	path := strings.TrimSpace(cfgFile)
	if path == "" {
		return
	}
	_ = os.Setenv("STUDYTRACK_CONFIG", path)
}
