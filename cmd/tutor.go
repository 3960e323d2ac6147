package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/tutor"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Chat with the AI tutor",
	Long: "Tutor starts an interactive chat session. Modes change how the tutor\n" +
		"answers: normal, thinking, research, search, study.",
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		mode := tutor.Mode(modeFlag)
		if !mode.Valid() {
			return fmt.Errorf("invalid mode %q (normal, thinking, research, search, study)", modeFlag)
		}

		e, closeEnv, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer closeEnv()

		provider, err := e.provider(cmd.Context())
		if err != nil {
			return fmt.Errorf("AI provider not configured: %w", err)
		}
		session := tutor.NewSession(provider, mode, e.lang, e.log)

		fmt.Printf("Tutor session (%s mode). Type 'exit' to quit.\n\n", session.Mode())

		reader := bufio.NewReader(cmd.InOrStdin())
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				return nil
			}

			reply, err := session.Send(cmd.Context(), line, nil)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}

			fmt.Println("\n" + reply.Text)
			if len(reply.Sources) > 0 {
				fmt.Println("\nSources:")
				for _, src := range reply.Sources {
					fmt.Printf("  - %s (%s)\n", src.Title, src.URL)
				}
			}
			fmt.Println()
		}
	},
}

func init() {
	tutorCmd.Flags().StringP("mode", "m", string(tutor.ModeNormal), "Chat mode: normal, thinking, research, search, study")
}
