package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [summaries|quizzes]",
	Short: "List saved summaries and quiz results",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleteIdx, _ := cmd.Flags().GetInt("delete")

		cat := store.CategorySummary
		if len(args) == 1 {
			switch args[0] {
			case "summaries":
				cat = store.CategorySummary
			case "quizzes":
				cat = store.CategoryQuiz
			default:
				return fmt.Errorf("unknown category %q (summaries, quizzes)", args[0])
			}
		}

		e, closeEnv, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer closeEnv()

		ctx := cmd.Context()

		if deleteIdx > 0 {
			if err := e.history.Delete(ctx, cat, deleteIdx-1); err != nil {
				return err
			}
			fmt.Printf("Deleted entry %d from %s.\n", deleteIdx, cat)
			return nil
		}

		records, err := e.store.History().List(ctx, cat)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Printf("No saved %s yet.\n", categoryNoun(cat))
			return nil
		}

		fmt.Printf("%-3s  %-12s  %s\n", "#", "Date", "Title")
		fmt.Println(strings.Repeat("─", 60))
		for i, rec := range records {
			fmt.Printf("%-3d  %-12s  %s\n",
				i+1, rec.CreatedAt.Format("2006-01-02"), rec.Title)
		}
		return nil
	},
}

func categoryNoun(cat store.Category) string {
	if cat == store.CategoryQuiz {
		return "quizzes"
	}
	return "summaries"
}

func init() {
	historyCmd.Flags().Int("delete", 0, "Delete the entry at this position (1-based)")
}
