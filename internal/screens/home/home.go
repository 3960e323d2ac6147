package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amink/durus/internal/history"
	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/router"
	"github.com/amink/durus/internal/screen"
	historyscreen "github.com/amink/durus/internal/screens/history"
	"github.com/amink/durus/internal/screens/profile"
	"github.com/amink/durus/internal/screens/summarizer"
	"github.com/amink/durus/internal/summarize"
	"github.com/amink/durus/internal/ui/components"
	"github.com/amink/durus/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	level      int
	xp         int
	badgeCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(progressSvc *progress.Service, summarizeSvc *summarize.Service, historySvc *history.Service, lang i18n.Language) *HomeScreen {
	// Load the profile for the stats line. A storage failure just leaves
	// the stats at their defaults.
	var level, xp, badgeCount int
	level = 1
	if progressSvc != nil {
		if p, err := progressSvc.Profile(context.Background()); err == nil {
			level = p.Level
			xp = p.XP
			badgeCount = len(p.Badges)
		}
	}

	items := []components.MenuItem{
		{Label: "SUMMARIZE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summarizer.New(summarizeSvc, lang)}
			}
		}},
		{Label: "MY PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(progressSvc, lang)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(historySvc)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		level:      level,
		xp:         xp,
		badgeCount: badgeCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if pm, ok := msg.(progress.Update); ok {
		if pm.Profile != nil {
			h.level = pm.Profile.Level
			h.xp = pm.Profile.XP
			h.badgeCount = len(pm.Profile.Badges)
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("D U R U S")
	subtitle := theme.Subtitle.Render("Your study companion")

	stats := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Level %d   %d XP   %d badge%s",
			h.level, h.xp, h.badgeCount, plural(h.badgeCount)))

	sections := []string{
		title,
		subtitle,
		"",
		stats,
		"",
		h.menu.View(),
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
