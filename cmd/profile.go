package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/progress"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show level, XP, badges, and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closeEnv, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer closeEnv()

		ctx := cmd.Context()
		p, err := e.progress.Profile(ctx)
		if err != nil {
			return err
		}
		stats, err := e.progress.Stats(ctx)
		if err != nil {
			return err
		}

		nextXP := progress.XPForLevel(p.Level + 1)
		fmt.Printf("Level %d  (%d / %d XP, %.0f%% to next)\n",
			p.Level, p.XP, nextXP, progress.ProgressFraction(p.XP, p.Level)*100)

		fmt.Println("\nBadges")
		fmt.Println(strings.Repeat("─", 40))
		if len(p.Badges) == 0 {
			fmt.Println("None yet. Summaries, quizzes, and plans earn them.")
		} else {
			for _, b := range p.Badges {
				name := b.Name[string(e.lang)]
				if name == "" {
					name = b.Name[string(i18n.English)]
				}
				fmt.Printf("%s %-20s  %s\n", b.Icon, name, b.UnlockedAt.Format("Jan 02, 2006"))
			}
		}

		fmt.Println("\nActivity")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Summaries: %d\n", stats.Summary)
		fmt.Printf("Quizzes:   %d\n", stats.Quiz)
		fmt.Printf("Plans:     %d\n", stats.Plan)
		return nil
	},
}
