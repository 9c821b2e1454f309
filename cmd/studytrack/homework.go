package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"studytrack/internal/formatter"
	"studytrack/internal/srs"
	"studytrack/internal/types"
)

var (
	hwSubject     string
	hwDescription string
	hwDue         string
	hwCompleted   string
)

var homeworkCmd = &cobra.Command{
	Use:     "homework",
	Aliases: []string{"hw"},
	Short:   "Track homework assignments",
	Long: `Track homework alongside topics. Completing homework counts toward the
daily activity streak, on its own track.`,
}

var homeworkAddCmd = &cobra.Command{
	Use:   "add <subject> <description> <due-date>",
	Short: "Add a homework assignment",
	Long: `Add an assignment with a YYYY-MM-DD due date.

Example:
  studytrack homework add physics "problem set 4" 2026-09-03`,
	Args: cobra.ExactArgs(3),
	RunE: runHomeworkAdd,
}

var homeworkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List homework assignments",
	RunE:  runHomeworkList,
}

var homeworkDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark an assignment completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runHomeworkDone,
}

var homeworkEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an assignment",
	Long: `Change an assignment's fields. Only the flags given are changed.

Example:
  studytrack homework edit 2 --due 2026-09-10 --completed false`,
	Args: cobra.ExactArgs(1),
	RunE: runHomeworkEdit,
}

func init() {
	rootCmd.AddCommand(homeworkCmd)
	homeworkCmd.AddCommand(homeworkAddCmd, homeworkListCmd, homeworkDoneCmd, homeworkEditCmd)

	homeworkEditCmd.Flags().StringVar(&hwSubject, "subject", "", "New subject")
	homeworkEditCmd.Flags().StringVar(&hwDescription, "description", "", "New description")
	homeworkEditCmd.Flags().StringVar(&hwDue, "due", "", "New due date (YYYY-MM-DD)")
	homeworkEditCmd.Flags().StringVar(&hwCompleted, "completed", "", "Set completion (true/false)")
}

func runHomeworkAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	due, err := types.ParseDate(args[2])
	if err != nil {
		return err
	}
	id, err := srs.AddHomework(doc, args[0], args[1], due)
	if err != nil {
		return err
	}
	if err := store.Save(doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Homework added with ID %s\n", id)
	return nil
}

func runHomeworkList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(openStore(cfg))
	if err != nil {
		return err
	}

	if useJSON(cfg) {
		return formatter.WriteJSON(cmd.OutOrStdout(), doc.Homework)
	}

	if len(doc.Homework) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No homework assigned.")
		return nil
	}

	table := formatter.NewTable(cmd.OutOrStdout(), "ID", "SUBJECT", "DESCRIPTION", "DUE", "STATUS")
	table.SetMaxWidth(2, 40)
	for _, id := range homeworkIDs(doc) {
		hw := doc.Homework[id]
		status := "Pending"
		if hw.Completed {
			status = "Completed"
		}
		table.AddRow(id, hw.Subject, hw.Description, hw.DueDate.String(), status)
	}
	return table.Render()
}

func runHomeworkDone(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	completed, err := srs.CompleteHomework(doc, args[0], today())
	if err != nil {
		return err
	}
	if !completed {
		fmt.Fprintf(cmd.OutOrStdout(), "Homework %s was already completed.\n", args[0])
		return nil
	}
	if err := store.Save(doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Homework %s marked as completed.\n", args[0])
	return nil
}

func runHomeworkEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	hw, ok := doc.Homework[args[0]]
	if !ok {
		return fmt.Errorf("%q: %w", args[0], types.ErrUnknownHomework)
	}

	if hwSubject != "" {
		hw.Subject = hwSubject
	}
	if hwDescription != "" {
		hw.Description = hwDescription
	}
	if hwDue != "" {
		due, err := types.ParseDate(hwDue)
		if err != nil {
			return err
		}
		hw.DueDate = due
	}
	if hwCompleted != "" {
		done, err := strconv.ParseBool(hwCompleted)
		if err != nil {
			return fmt.Errorf("parse --completed: %w", err)
		}
		hw.Completed = done
	}

	if err := store.Save(doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Homework %s updated.\n", args[0])
	return nil
}

// homeworkIDs returns homework IDs in numeric order.
func homeworkIDs(doc *types.Document) []string {
	ids := make([]string, 0, len(doc.Homework))
	for id := range doc.Homework {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}
