package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/llm"
	"github.com/amink/durus/internal/speech"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Convert text to speech and save it as a WAV file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		voice, _ := cmd.Flags().GetString("voice")
		out, _ := cmd.Flags().GetString("out")

		provider, err := llm.NewSpeechProviderFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("speech provider not configured: %w", err)
		}
		svc := speech.NewService(provider)

		fmt.Println("Synthesizing...")
		result, err := svc.SpeakToFile(cmd.Context(), strings.Join(args, " "), voice, out)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s (%.1fs at %d Hz)\n",
			result.Path, result.Duration.Seconds(), result.SampleRate)
		return nil
	},
}

func init() {
	speakCmd.Flags().String("voice", "", "Voice name (provider default when empty)")
	speakCmd.Flags().StringP("out", "o", "speech.wav", "Output WAV file path")
}
