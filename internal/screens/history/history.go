package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	histsvc "github.com/amink/durus/internal/history"
	"github.com/amink/durus/internal/router"
	"github.com/amink/durus/internal/screen"
	"github.com/amink/durus/internal/store"
	"github.com/amink/durus/internal/ui/layout"
	"github.com/amink/durus/internal/ui/theme"
)

type historyLoadedMsg struct {
	Summaries []store.HistoryRecord
	Quizzes   []store.HistoryRecord
	Err       error
}

type deletedMsg struct {
	Err error
}

// HistoryScreen displays past summaries and quiz results.
type HistoryScreen struct {
	svc       *histsvc.Service
	summaries []store.HistoryRecord
	quizzes   []store.HistoryRecord
	category  store.Category
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *histsvc.Service) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		category: store.CategorySummary,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.loadCmd()
}

func (s *HistoryScreen) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		summaries, err := s.svc.Summaries(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		quizzes, err := s.svc.Quizzes(ctx)
		if err != nil {
			return historyLoadedMsg{Summaries: summaries}
		}
		return historyLoadedMsg{Summaries: summaries, Quizzes: quizzes}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Summaries/Quizzes"},
		{Key: "Enter", Description: "Details"},
		{Key: "D", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) current() []store.HistoryRecord {
	if s.category == store.CategoryQuiz {
		return s.quizzes
	}
	return s.summaries
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.summaries = msg.Summaries
			s.quizzes = msg.Quizzes
		}
		s.loaded = true
		if s.selected >= len(s.current()) {
			s.selected = 0
		}
		return s, nil

	case deletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.expanded = make(map[int]bool)
		return s, s.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			if s.category == store.CategorySummary {
				s.category = store.CategoryQuiz
			} else {
				s.category = store.CategorySummary
			}
			s.selected = 0
			s.expanded = make(map[int]bool)
			return s, nil
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.current())-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.current()) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
			return s, nil
		case "d", "D":
			if len(s.current()) == 0 {
				return s, nil
			}
			cat, idx := s.category, s.selected
			return s, func() tea.Msg {
				return deletedMsg{Err: s.svc.Delete(context.Background(), cat, idx)}
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")

	tabLabel := func(cat store.Category, label string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.category == cat {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		return style.Render(label)
	}
	tabs := tabLabel(store.CategorySummary, "Summaries") + "    " +
		tabLabel(store.CategoryQuiz, "Quizzes")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tabs))
	b.WriteString("\n\n")

	records := s.current()
	if len(records) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing here yet. Go study!"))
		return b.String()
	}

	for i, rec := range records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, rec.CreatedAt.Format("Jan 02, 2006"), rec.Title)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range recordDetails(rec) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// recordDetails renders the saved payload of a record for the expanded view.
func recordDetails(rec store.HistoryRecord) []string {
	if rec.Category == store.CategoryQuiz {
		var details []string
		if topic, ok := rec.Payload["topic"].(string); ok && topic != "" {
			details = append(details, "Topic: "+topic)
		}
		score, sok := rec.Payload["score"].(float64)
		max, mok := rec.Payload["max"].(float64)
		if sok && mok {
			details = append(details, fmt.Sprintf("Score: %.1f / %.0f", score, max))
		}
		if note, ok := rec.Payload["note"].(string); ok && note != "" {
			details = append(details, "Note: "+note)
		}
		if len(details) == 0 {
			details = append(details, "No details saved")
		}
		return details
	}

	content, _ := rec.Payload["content"].(string)
	content = strings.TrimSpace(content)
	if content == "" {
		return []string{"No preview available"}
	}
	lines := strings.SplitN(content, "\n", 4)
	if len(lines) > 3 {
		lines = lines[:3]
		lines = append(lines, "...")
	}
	return lines
}
