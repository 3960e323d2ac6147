package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
	"github.com/amink/durus/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize lesson content from a file or stdin",
	Long: "Summarize reads lesson text from the given file (or stdin when omitted)\n" +
		"and prints a study summary. PDF and image files are sent to the model\n" +
		"as attachments.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		exam, _ := cmd.Flags().GetBool("exam")

		level := i18n.EducationLevel(levelFlag)
		if !level.Valid() {
			return fmt.Errorf("invalid level %q (primary, middle, high, university)", levelFlag)
		}

		e, closeEnv, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer closeEnv()

		input := summarize.Input{
			Level:    level,
			Language: e.lang,
			Mode:     summarize.ModeStandard,
		}
		if exam {
			input.Mode = summarize.ModeExamReview
		}

		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			if mime := attachmentMIME(args[0]); mime != "" {
				input.Attachment = &llm.Attachment{
					MIMEType: mime,
					Data:     data,
					Name:     filepath.Base(args[0]),
				}
				input.Content = "Summarize the attached lesson material."
			} else {
				input.Content = string(data)
			}
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			input.Content = string(data)
		}

		provider, err := e.provider(cmd.Context())
		if err != nil {
			return fmt.Errorf("AI provider not configured: %w", err)
		}
		svc := summarize.NewService(provider, e.progress, e.history, e.log)

		result, err := svc.Generate(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Println(result.Markdown)
		for _, b := range result.Unlocked {
			fmt.Printf("\n%s Badge unlocked: %s\n", b.Icon, b.Name.In(e.lang))
		}
		return nil
	},
}

// attachmentMIME returns the attachment MIME type for binary lesson
// material, or "" when the file should be read as plain text.
func attachmentMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}

func init() {
	summarizeCmd.Flags().String("level", string(i18n.High), "Education level: primary, middle, high, university")
	summarizeCmd.Flags().Bool("exam", false, "Produce an exam review sheet instead of a standard summary")
}
