package summarizer

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/router"
	"github.com/amink/durus/internal/screen"
	"github.com/amink/durus/internal/summarize"
	"github.com/amink/durus/internal/ui/components"
	"github.com/amink/durus/internal/ui/layout"
	"github.com/amink/durus/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseWorking
	phaseDone
)

type generatedMsg struct {
	Result *summarize.Result
	Err    error
}

// SummarizerScreen collects content and renders the generated summary.
type SummarizerScreen struct {
	svc  *summarize.Service
	lang i18n.Language

	input    components.TextInput
	mode     summarize.Mode
	levelIdx int

	phase  phase
	result *summarize.Result
	errMsg string
}

var _ screen.Screen = (*SummarizerScreen)(nil)
var _ screen.KeyHintProvider = (*SummarizerScreen)(nil)

// New creates a new SummarizerScreen.
func New(svc *summarize.Service, lang i18n.Language) *SummarizerScreen {
	return &SummarizerScreen{
		svc:   svc,
		lang:  lang,
		input: components.NewTextInput("Paste lesson text or describe a topic...", false, 0),
		mode:  summarize.ModeStandard,
	}
}

func (s *SummarizerScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SummarizerScreen) Title() string {
	return "Summarize"
}

func (s *SummarizerScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "Tab", Description: "Mode"},
			{Key: "Ctrl+L", Description: "Level"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "N", Description: "New summary"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SummarizerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseInput
		} else {
			s.result = msg.Result
			s.phase = phaseDone
		}
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseInput:
			switch msg.String() {
			case "esc":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case "tab":
				if s.mode == summarize.ModeStandard {
					s.mode = summarize.ModeExamReview
				} else {
					s.mode = summarize.ModeStandard
				}
				return s, nil
			case "ctrl+l":
				s.levelIdx = (s.levelIdx + 1) % len(i18n.Levels)
				return s, nil
			case "enter":
				if s.svc == nil {
					s.errMsg = "AI provider not configured. Set DURUS_GEMINI_API_KEY and restart."
					return s, nil
				}
				content := strings.TrimSpace(s.input.Value())
				if content == "" {
					s.errMsg = "Nothing to summarize yet."
					return s, nil
				}
				s.errMsg = ""
				s.phase = phaseWorking
				return s, s.generateCmd(content)
			}

		case phaseDone:
			switch msg.String() {
			case "esc":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case "n", "N":
				s.result = nil
				s.errMsg = ""
				s.phase = phaseInput
				s.input = components.NewTextInput("Paste lesson text or describe a topic...", false, 0)
				return s, s.input.Init()
			}
			return s, nil

		case phaseWorking:
			return s, nil
		}
	}

	if s.phase == phaseInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SummarizerScreen) generateCmd(content string) tea.Cmd {
	mode := s.mode
	level := i18n.Levels[s.levelIdx]
	return func() tea.Msg {
		result, err := s.svc.Generate(context.Background(), summarize.Input{
			Content:  content,
			Level:    level,
			Language: s.lang,
			Mode:     mode,
		})
		return generatedMsg{Result: result, Err: err}
	}
}

func (s *SummarizerScreen) View(width, height int) string {
	switch s.phase {
	case phaseWorking:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Summarizing... this can take a few seconds."))

	case phaseDone:
		var b strings.Builder
		b.WriteString(theme.Title.Render(s.result.Title) + "\n\n")
		b.WriteString(theme.Body.Render(s.result.Markdown))
		for _, badge := range s.result.Unlocked {
			b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("%s Badge unlocked: %s", badge.Icon, badge.Name.In(s.lang))))
		}
		return lipgloss.NewStyle().Width(width).Padding(1, 4).Render(b.String())

	default:
		var b strings.Builder
		b.WriteString(theme.Body.Bold(true).Render("What should I summarize?") + "\n\n")
		b.WriteString(s.input.View() + "\n\n")

		modeLabel := "Standard summary"
		if s.mode == summarize.ModeExamReview {
			modeLabel = "Exam review sheet"
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Mode: %s   Level: %s",
			modeLabel, i18n.Levels[s.levelIdx])) + "\n")

		if s.errMsg != "" {
			b.WriteString("\n" + theme.Incorrect.Render(s.errMsg) + "\n")
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}
}
