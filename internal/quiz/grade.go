package quiz

import (
	"fmt"
	"math"
	"strings"

	"github.com/amink/durus/internal/i18n"
)

// TableBlank reports whether the table cell at (row, col) is one the
// learner must fill in. The pattern scatters blanks across the table so
// roughly a third of the cells are hidden.
func TableBlank(row, col int) bool {
	return (row+col)%3 == 1
}

// Correct reports whether the answer to q is correct.
func Correct(q Question, a Answer) bool {
	switch q.Type {
	case Matching:
		if len(q.MatchingPairs) == 0 {
			return false
		}
		for _, pair := range q.MatchingPairs {
			if a.Matches[pair.Left] != pair.Right {
				return false
			}
		}
		return true

	case Table:
		for r, row := range q.TableRows {
			for c, cell := range row {
				if !TableBlank(r, c) {
					continue
				}
				key := fmt.Sprintf("%d-%d", r, c)
				if !equalFold(a.Cells[key], cell) {
					return false
				}
			}
		}
		return true

	case ShortAnswer:
		// Short answers are not auto-gradable; any substantive attempt
		// counts and the ideal answer is shown for self-assessment.
		return len([]rune(strings.TrimSpace(a.Text))) > 3

	default:
		return equalFold(a.Text, q.CorrectAnswer)
	}
}

// equalFold compares two answers ignoring case and surrounding space.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Grade scores the whole quiz. Answers are matched to questions by index;
// missing answers grade as incorrect.
func Grade(q *Quiz, answers []Answer) Score {
	raw := 0
	for i, question := range q.Questions {
		var a Answer
		if i < len(answers) {
			a = answers[i]
		}
		if Correct(question, a) {
			raw++
		}
	}
	return scale(raw, len(q.Questions), q.Level)
}

// scale projects a raw count onto the level's grading scale: out of 10
// for primary school, out of 20 otherwise, rounded to one decimal.
func scale(raw, total int, level i18n.EducationLevel) Score {
	max := 20
	if level == i18n.Primary {
		max = 10
	}
	s := Score{Raw: raw, Total: total, Max: max}
	if total > 0 {
		s.Scaled = math.Round(float64(raw)/float64(total)*float64(max)*10) / 10
	}
	return s
}

// Incorrect returns a prompt-ready description of each wrongly answered
// question, for the AI evaluation step.
func Incorrect(q *Quiz, answers []Answer) []string {
	var out []string
	for i, question := range q.Questions {
		var a Answer
		if i < len(answers) {
			a = answers[i]
		}
		if !Correct(question, a) {
			out = append(out, fmt.Sprintf("Q: %s (Type: %s)", question.Question, question.Type))
		}
	}
	return out
}
