package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "durus",
	Short: "AI study companion for the terminal",
	Long:  "Durus — AI-native terminal app for summarizing lessons, taking quizzes, planning study, and chatting with a tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DURUS_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Interface language: ar, en, fr, es (persisted)")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DURUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLanguage picks the interface language: --lang flag, then the
// stored preference, then English. A valid flag value is persisted.
func resolveLanguage(ctx context.Context, cmd *cobra.Command, st *store.Store) i18n.Language {
	if code, _ := cmd.Flags().GetString("lang"); code != "" {
		lang := i18n.Language(code)
		if lang.Valid() {
			_ = st.Preferences().SetLanguage(ctx, code)
			return lang
		}
	}
	if code := os.Getenv("DURUS_LANG"); code != "" {
		if lang := i18n.Language(code); lang.Valid() {
			return lang
		}
	}
	if code, err := st.Preferences().Language(ctx); err == nil && code != "" {
		if lang := i18n.Language(code); lang.Valid() {
			return lang
		}
	}
	return i18n.English
}
