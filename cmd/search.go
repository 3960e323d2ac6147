package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Ask a question answered with web search grounding",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closeEnv, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer closeEnv()

		provider, err := e.provider(cmd.Context())
		if err != nil {
			return fmt.Errorf("AI provider not configured: %w", err)
		}
		svc := search.NewService(provider, e.log)

		result, err := svc.Query(cmd.Context(), strings.Join(args, " "), e.lang)
		if err != nil {
			return err
		}

		fmt.Println(result.Text)
		if len(result.Sources) > 0 {
			fmt.Println("\nSources:")
			for _, src := range result.Sources {
				fmt.Printf("  - %s (%s)\n", src.Title, src.URL)
			}
		}
		if !result.Grounded {
			fmt.Println("\n(Web grounding was unavailable; answered from model knowledge.)")
		}
		return nil
	},
}
