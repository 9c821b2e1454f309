package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studytrack/embedded"
	"studytrack/internal/srs"
	"studytrack/internal/types"
)

var initSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data file",
	Long: `Create the JSON data file if it does not exist.

With --seed, a built-in starter topic list is added so there is something to
review right away. Seeding an existing data file only adds topics that are
not already present.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initSeed, "seed", false, "Seed the starter topic list")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)

	doc, err := loadDocument(store)
	if err != nil {
		return err
	}

	added := 0
	if initSeed {
		starters, err := embedded.StarterTopics()
		if err != nil {
			return err
		}
		day := today()
		for _, t := range starters {
			switch err := srs.AddTopic(doc, t.Name, t.Subject, day); {
			case errors.Is(err, types.ErrTopicExists):
				continue
			case err != nil:
				return err
			default:
				added++
			}
		}
	}

	if err := store.Save(doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s (%d topics", store.Path, len(doc.Topics))
	if initSeed {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d seeded", added)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ")")
	return nil
}
