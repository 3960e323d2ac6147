// Package quiz generates quizzes through the AI gateway and grades the
// learner's answers locally.
package quiz

import "github.com/amink/durus/internal/i18n"

// QuestionType enumerates the supported question forms.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	FillBlank      QuestionType = "fill_blank"
	ShortAnswer    QuestionType = "short_answer"
	Matching       QuestionType = "matching"
	Table          QuestionType = "table"
)

// Pair is one left/right match in a matching question.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Question is a single quiz question. Fields beyond Question and Type are
// populated according to the type.
type Question struct {
	Question      string       `json:"question"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	MatchingPairs []Pair       `json:"matchingPairs,omitempty"`
	TableHeaders  []string     `json:"tableHeaders,omitempty"`
	TableRows     [][]string   `json:"tableRows,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
}

// Quiz is a generated quiz.
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`

	// Request parameters, kept for grading and history.
	Topic string              `json:"topic,omitempty"`
	Level i18n.EducationLevel `json:"level,omitempty"`
}

// Answer is the learner's response to one question. Exactly one field is
// meaningful, selected by the question's type.
type Answer struct {
	// Text answers multiple_choice, true_false, fill_blank and short_answer.
	Text string

	// Matches maps each left item to the chosen right item.
	Matches map[string]string

	// Cells maps "row-col" coordinates to the value typed into that blank.
	Cells map[string]string
}

// Feedback is the AI's post-quiz performance analysis.
type Feedback struct {
	Note         string   `json:"note"`
	ReviewTopics []string `json:"reviewTopics"`
}

// Score is the graded outcome of a quiz.
type Score struct {
	Raw    int     // questions answered correctly
	Total  int     // question count
	Scaled float64 // raw projected onto the grading scale, one decimal
	Max    int     // grading scale ceiling: 10 for primary, 20 otherwise
}
