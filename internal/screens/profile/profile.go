package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/router"
	"github.com/amink/durus/internal/screen"
	"github.com/amink/durus/internal/store"
	"github.com/amink/durus/internal/ui/components"
	"github.com/amink/durus/internal/ui/layout"
	"github.com/amink/durus/internal/ui/theme"
)

type profileLoadedMsg struct {
	Profile *store.ProfileRecord
	Stats   *store.ActionStatsRecord
	Err     error
}

// ProfileScreen shows the learner's level, XP, badges, and activity.
type ProfileScreen struct {
	svc     *progress.Service
	lang    i18n.Language
	profile *store.ProfileRecord
	stats   *store.ActionStatsRecord
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(svc *progress.Service, lang i18n.Language) *ProfileScreen {
	return &ProfileScreen{svc: svc, lang: lang}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		p, err := s.svc.Profile(ctx)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		stats, err := s.svc.Stats(ctx)
		if err != nil {
			return profileLoadedMsg{Profile: p, Stats: &store.ActionStatsRecord{}}
		}
		return profileLoadedMsg{Profile: p, Stats: stats}
	}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.profile = msg.Profile
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case progress.Update:
		if msg.Profile != nil {
			s.profile = msg.Profile
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading profile...")
	}

	var b strings.Builder

	level := s.profile.Level
	xp := s.profile.XP
	nextXP := progress.XPForLevel(level + 1)

	b.WriteString(theme.Title.Render(fmt.Sprintf("Level %d", level)) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d / %d XP", xp, nextXP)) + "\n\n")

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}
	bar := components.NewProgressBar("", progress.ProgressFraction(xp, level), true, barWidth)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render("Badges") + "\n")
	if len(s.profile.Badges) == 0 {
		b.WriteString(theme.Hint.Render("  None yet. Summaries, quizzes, and plans earn them.") + "\n")
	} else {
		for _, badge := range s.profile.Badges {
			name := badge.Name[string(s.lang)]
			if name == "" {
				name = badge.Name[string(i18n.English)]
			}
			line := fmt.Sprintf("  %s %s  %s",
				badge.Icon, name, badge.UnlockedAt.Format("Jan 02, 2006"))
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Bold(true).Render("Activity") + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Summaries: %d", s.stats.Summary)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Quizzes:   %d", s.stats.Quiz)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Plans:     %d", s.stats.Plan)) + "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
