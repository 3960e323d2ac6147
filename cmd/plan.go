package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan <subjects>",
	Short: "Generate a one-week study plan",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, _ := cmd.Flags().GetInt("hours")
		goal, _ := cmd.Flags().GetString("goal")

		e, closeEnv, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer closeEnv()

		provider, err := e.provider(cmd.Context())
		if err != nil {
			return fmt.Errorf("AI provider not configured: %w", err)
		}
		svc := plan.NewService(provider, e.progress, e.log)

		fmt.Println("Generating study plan...")
		result, err := svc.Generate(cmd.Context(), plan.Input{
			Subjects:    strings.Join(args, ", "),
			HoursPerDay: hours,
			Goal:        goal,
			Language:    e.lang,
		})
		if err != nil {
			return err
		}

		p := result.Plan
		fmt.Printf("\n%s\n%s\n", p.Title, strings.Repeat("─", len(p.Title)))
		for _, day := range p.Schedule {
			fmt.Printf("\n%s\n", day.Day)
			for _, s := range day.Sessions {
				line := fmt.Sprintf("  %s  %s — %s", s.Time, s.Subject, s.Activity)
				if s.Notes != "" {
					line += " (" + s.Notes + ")"
				}
				fmt.Println(line)
			}
		}

		for _, b := range result.Unlocked {
			fmt.Printf("\n%s Badge unlocked: %s\n", b.Icon, b.Name.In(e.lang))
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Int("hours", 2, "Available study hours per day")
	planCmd.Flags().String("goal", "", "What the plan should work toward (e.g. final exams)")
}
