package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Take an AI-generated quiz on a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		count, _ := cmd.Flags().GetInt("count")

		level := i18n.EducationLevel(levelFlag)
		if !level.Valid() {
			return fmt.Errorf("invalid level %q (primary, middle, high, university)", levelFlag)
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
		svc := quiz.NewService(provider, e.progress, e.history, e.log)

		fmt.Println("Generating quiz...")
		q, err := svc.Generate(cmd.Context(), quiz.GenerateInput{
			Topic:    strings.Join(args, " "),
			Level:    level,
			Count:    count,
			Language: e.lang,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n%s\n\n", q.Title, strings.Repeat("─", len(q.Title)))

		reader := bufio.NewReader(cmd.InOrStdin())
		answers := make([]quiz.Answer, len(q.Questions))
		for i, question := range q.Questions {
			fmt.Printf("Q%d. %s\n", i+1, question.Question)
			a, err := promptAnswer(reader, question)
			if err != nil {
				return err
			}
			answers[i] = a
			fmt.Println()
		}

		result, err := svc.Submit(cmd.Context(), q, answers, e.lang)
		if err != nil {
			return err
		}

		fmt.Printf("Score: %.1f / %d (%d of %d correct)\n",
			result.Score.Scaled, result.Score.Max, result.Score.Raw, result.Score.Total)

		if len(result.Incorrect) > 0 {
			fmt.Println("\nMissed questions:")
			for _, line := range result.Incorrect {
				fmt.Println("  " + line)
			}
		}
		if result.Feedback.Note != "" {
			fmt.Printf("\n%s\n", result.Feedback.Note)
		}
		if len(result.Feedback.ReviewTopics) > 0 {
			fmt.Println("\nWorth reviewing:")
			for _, topic := range result.Feedback.ReviewTopics {
				fmt.Println("  - " + topic)
			}
		}
		for _, b := range result.Unlocked {
			fmt.Printf("\n%s Badge unlocked: %s\n", b.Icon, b.Name.In(e.lang))
		}
		return nil
	},
}

// promptAnswer collects one answer appropriate to the question type.
func promptAnswer(reader *bufio.Reader, q quiz.Question) (quiz.Answer, error) {
	switch q.Type {
	case quiz.Matching:
		matches := make(map[string]string, len(q.MatchingPairs))
		if len(q.MatchingPairs) > 0 {
			fmt.Println("  Options:", strings.Join(rightSides(q.MatchingPairs), ", "))
		}
		for _, pair := range q.MatchingPairs {
			line, err := promptLine(reader, fmt.Sprintf("  %s matches: ", pair.Left))
			if err != nil {
				return quiz.Answer{}, err
			}
			matches[pair.Left] = line
		}
		return quiz.Answer{Matches: matches}, nil

	case quiz.Table:
		cells := make(map[string]string)
		if len(q.TableHeaders) > 0 {
			fmt.Println("  Columns:", strings.Join(q.TableHeaders, " | "))
		}
		for r, row := range q.TableRows {
			for c := range row {
				if !quiz.TableBlank(r, c) {
					continue
				}
				line, err := promptLine(reader, fmt.Sprintf("  Row %d, %s: ", r+1, columnName(q.TableHeaders, c)))
				if err != nil {
					return quiz.Answer{}, err
				}
				cells[fmt.Sprintf("%d-%d", r, c)] = line
			}
		}
		return quiz.Answer{Cells: cells}, nil

	default:
		if len(q.Options) > 0 {
			for _, opt := range q.Options {
				fmt.Println("    " + opt)
			}
		}
		line, err := promptLine(reader, "  Your answer: ")
		if err != nil {
			return quiz.Answer{}, err
		}
		return quiz.Answer{Text: line}, nil
	}
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func rightSides(pairs []quiz.Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Right
	}
	return out
}

func columnName(headers []string, col int) string {
	if col < len(headers) {
		return headers[col]
	}
	return fmt.Sprintf("column %d", col+1)
}

func init() {
	quizCmd.Flags().String("level", string(i18n.High), "Education level: primary, middle, high, university")
	quizCmd.Flags().IntP("count", "n", 5, "Number of questions")
}
