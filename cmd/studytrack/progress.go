package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
	"studytrack/internal/srs"
)

var progressWeekly bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show overall study progress",
	Long: `Summarize topics, reviews, and homework completion.

With --weekly, show a reviews-per-day histogram for the last seven days
instead.`,
	RunE: runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().BoolVar(&progressWeekly, "weekly", false, "Show the last week's reviews per day")
}

func runProgress(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(openStore(cfg))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if progressWeekly {
		counts := srs.WeeklyReviews(doc, today())
		if useJSON(cfg) {
			return formatter.WriteJSON(out, counts)
		}
		fmt.Fprintln(out, "Weekly progress (reviews per day):")
		for _, dc := range counts {
			fmt.Fprintf(out, "%s: %s (%d)\n", dc.Day, strings.Repeat("#", dc.Count), dc.Count)
		}
		return nil
	}

	report := srs.Progress(doc)
	if useJSON(cfg) {
		return formatter.WriteJSON(out, report)
	}

	fmt.Fprintln(out, "Progress report:")
	fmt.Fprintf(out, "Total topics:                  %d\n", report.TotalTopics)
	fmt.Fprintf(out, "Topics reviewed at least once: %d\n", report.TopicsReviewed)
	fmt.Fprintf(out, "Total reviews:                 %d\n", report.TotalReviews)
	fmt.Fprintf(out, "Average reviews per topic:     %.2f\n", report.AvgReviewsPerTopic)
	fmt.Fprintf(out, "Homework assigned:             %d\n", report.TotalHomework)
	fmt.Fprintf(out, "Homework completed:            %d (%.1f%%)\n", report.HomeworkCompleted, report.HomeworkRate)

	if len(report.TopReviewed) > 0 {
		fmt.Fprintln(out, "\nMost reviewed topics:")
		for _, tr := range report.TopReviewed {
			fmt.Fprintf(out, "- %s (%s): %d reviews\n", tr.Name, tr.Subject, tr.Reviews)
		}
	}
	return nil
}
