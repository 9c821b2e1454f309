package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
	"studytrack/internal/srs"
)

var (
	reviewDifficulty int
	reviewConfidence int
)

var reviewCmd = &cobra.Command{
	Use:   "review <topic>",
	Short: "Review a topic and rate it",
	Long: `Review a topic: rate the difficulty and your confidence (both 1-5)
and get the next review date.

Without flags the ratings are prompted for interactively. Difficulty 1 is
easiest, 5 is hardest; confidence 1 is least confident, 5 is most confident.

Examples:
  studytrack review motion
  studytrack review motion --difficulty 2 --confidence 4`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().IntVar(&reviewDifficulty, "difficulty", 0, "Difficulty rating 1-5 (prompts when omitted)")
	reviewCmd.Flags().IntVar(&reviewConfidence, "confidence", 0, "Confidence rating 1-5 (prompts when omitted)")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	rating, err := collectRating(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	result, err := srs.Review(doc, args[0], rating, time.Now())
	if err != nil {
		return err
	}
	if err := store.Save(doc); err != nil {
		return err
	}

	if useJSON(cfg) {
		return formatter.WriteJSON(cmd.OutOrStdout(), result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reviewed %q (score %.1f). Next review in %d day(s), on %s.\n",
		args[0], result.Score, result.IntervalDays, result.NextReview)
	return nil
}

// collectRating resolves the rating pair from flags, prompting for any value
// not supplied.
func collectRating(in io.Reader, out io.Writer) (srs.Rating, error) {
	reader := bufio.NewReader(in)
	rating := srs.Rating{Difficulty: reviewDifficulty, Confidence: reviewConfidence}

	var err error
	if rating.Difficulty == 0 {
		rating.Difficulty, err = promptRating(reader, out, "Rate the difficulty (1-5, where 1 is easiest and 5 is hardest): ")
		if err != nil {
			return srs.Rating{}, err
		}
	}
	if rating.Confidence == 0 {
		rating.Confidence, err = promptRating(reader, out, "Rate your confidence (1-5, where 1 is least confident and 5 is most confident): ")
		if err != nil {
			return srs.Rating{}, err
		}
	}
	return rating, rating.Validate()
}

// promptRating asks until it reads an integer in [1,5]. EOF aborts.
func promptRating(reader *bufio.Reader, out io.Writer, prompt string) (int, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("read rating: %w", err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && srs.ValidRating(n) {
			return n, nil
		}
		fmt.Fprintln(out, "Please enter a number between 1 and 5.")

		if err != nil {
			return 0, fmt.Errorf("read rating: %w", err)
		}
	}
}
