package quiz

import (
	"testing"

	"github.com/amink/durus/internal/i18n"
)

func TestTableBlank(t *testing.T) {
	blanks := [][2]int{{0, 1}, {1, 0}, {1, 3}, {2, 2}}
	filled := [][2]int{{0, 0}, {0, 2}, {1, 1}, {2, 0}}
	for _, c := range blanks {
		if !TableBlank(c[0], c[1]) {
			t.Errorf("cell (%d,%d) should be a blank", c[0], c[1])
		}
	}
	for _, c := range filled {
		if TableBlank(c[0], c[1]) {
			t.Errorf("cell (%d,%d) should be given", c[0], c[1])
		}
	}
}

func TestCorrect_TextTypes(t *testing.T) {
	q := Question{Type: MultipleChoice, CorrectAnswer: "Paris"}
	tests := []struct {
		answer string
		want   bool
	}{
		{"Paris", true},
		{"paris", true},
		{"  PARIS  ", true},
		{"London", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Correct(q, Answer{Text: tt.answer}); got != tt.want {
			t.Errorf("Correct(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestCorrect_TrueFalseAndFillBlank(t *testing.T) {
	tf := Question{Type: TrueFalse, CorrectAnswer: "True"}
	if !Correct(tf, Answer{Text: "true"}) {
		t.Error("true_false should compare case-insensitively")
	}
	fb := Question{Type: FillBlank, CorrectAnswer: "mitochondria"}
	if !Correct(fb, Answer{Text: " Mitochondria "}) {
		t.Error("fill_blank should ignore surrounding space")
	}
}

func TestCorrect_ShortAnswer(t *testing.T) {
	q := Question{Type: ShortAnswer, CorrectAnswer: "ideal answer"}
	tests := []struct {
		answer string
		want   bool
	}{
		{"a thoughtful response", true},
		{"abcd", true},
		{"abc", false},
		{"   ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Correct(q, Answer{Text: tt.answer}); got != tt.want {
			t.Errorf("short answer %q = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestCorrect_Matching(t *testing.T) {
	q := Question{Type: Matching, MatchingPairs: []Pair{
		{Left: "H2O", Right: "Water"},
		{Left: "NaCl", Right: "Salt"},
	}}

	if !Correct(q, Answer{Matches: map[string]string{"H2O": "Water", "NaCl": "Salt"}}) {
		t.Error("all pairs matched should be correct")
	}
	if Correct(q, Answer{Matches: map[string]string{"H2O": "Water", "NaCl": "Water"}}) {
		t.Error("one wrong pair should fail the whole question")
	}
	if Correct(q, Answer{Matches: map[string]string{"H2O": "Water"}}) {
		t.Error("missing pair should fail")
	}
	if Correct(Question{Type: Matching}, Answer{}) {
		t.Error("matching question with no pairs cannot be scored")
	}
}

func TestCorrect_Table(t *testing.T) {
	q := Question{
		Type:         Table,
		TableHeaders: []string{"Element", "Symbol"},
		TableRows: [][]string{
			{"Hydrogen", "H"}, // (0,1) blank
			{"Oxygen", "O"},   // (1,0) blank
		},
	}

	if !Correct(q, Answer{Cells: map[string]string{"0-1": "h", "1-0": " oxygen "}}) {
		t.Error("blank cells matched case-insensitively should be correct")
	}
	if Correct(q, Answer{Cells: map[string]string{"0-1": "H", "1-0": "Nitrogen"}}) {
		t.Error("one wrong blank should fail the question")
	}
	if Correct(q, Answer{Cells: map[string]string{"0-1": "H"}}) {
		t.Error("missing blank should fail")
	}
}

func TestGrade_Scaling(t *testing.T) {
	quizOf := func(level i18n.EducationLevel) *Quiz {
		return &Quiz{
			Level: level,
			Questions: []Question{
				{Type: TrueFalse, CorrectAnswer: "True"},
				{Type: TrueFalse, CorrectAnswer: "True"},
				{Type: TrueFalse, CorrectAnswer: "False"},
			},
		}
	}
	answers := []Answer{{Text: "True"}, {Text: "True"}, {Text: "True"}} // 2 of 3

	s := Grade(quizOf(i18n.Primary), answers)
	if s.Raw != 2 || s.Max != 10 {
		t.Errorf("primary score = %+v, want raw 2 max 10", s)
	}
	if s.Scaled != 6.7 {
		t.Errorf("primary scaled = %v, want 6.7", s.Scaled)
	}

	s = Grade(quizOf(i18n.High), answers)
	if s.Max != 20 {
		t.Errorf("high school max = %d, want 20", s.Max)
	}
	if s.Scaled != 13.3 {
		t.Errorf("high school scaled = %v, want 13.3", s.Scaled)
	}
}

func TestGrade_MissingAnswers(t *testing.T) {
	q := &Quiz{
		Level: i18n.High,
		Questions: []Question{
			{Type: TrueFalse, CorrectAnswer: "True"},
			{Type: TrueFalse, CorrectAnswer: "True"},
		},
	}
	s := Grade(q, []Answer{{Text: "True"}})
	if s.Raw != 1 {
		t.Errorf("raw = %d, want 1 (unanswered grades as wrong)", s.Raw)
	}
}

func TestGrade_EmptyQuiz(t *testing.T) {
	s := Grade(&Quiz{Level: i18n.High}, nil)
	if s.Scaled != 0 || s.Raw != 0 {
		t.Errorf("empty quiz score = %+v, want zeros", s)
	}
}

func TestIncorrect(t *testing.T) {
	q := &Quiz{
		Questions: []Question{
			{Question: "2+2?", Type: FillBlank, CorrectAnswer: "4"},
			{Question: "Capital of France?", Type: MultipleChoice, CorrectAnswer: "Paris"},
		},
	}
	got := Incorrect(q, []Answer{{Text: "5"}, {Text: "Paris"}})
	if len(got) != 1 {
		t.Fatalf("incorrect = %v, want 1 entry", got)
	}
	if got[0] != "Q: 2+2? (Type: fill_blank)" {
		t.Errorf("entry = %q", got[0])
	}
}
