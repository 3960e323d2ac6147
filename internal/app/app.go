package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amink/durus/internal/history"
	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/router"
	"github.com/amink/durus/internal/screen"
	"github.com/amink/durus/internal/screens/home"
	"github.com/amink/durus/internal/summarize"
	"github.com/amink/durus/internal/ui/layout"
)

// Deps carries the services the screens need.
type Deps struct {
	Progress  *progress.Service
	Summarize *summarize.Service
	History   *history.Service
	Lang      i18n.Language
}

// profileLoadedMsg carries the initial header stats.
type profileLoadedMsg struct {
	level int
	xp    int
}

// progressMsg forwards a gamification update into the event loop.
type progressMsg struct {
	update progress.Update
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
	level  int
	xp     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Progress, deps.Summarize, deps.History, deps.Lang)
	return AppModel{
		deps:   deps,
		router: router.New(homeScreen),
		level:  1,
	}
}

func (m AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := m.deps.Progress.Profile(context.Background())
		if err != nil {
			return profileLoadedMsg{level: 1}
		}
		return profileLoadedMsg{level: p.Level, xp: p.XP}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileLoadedMsg:
		m.level = msg.level
		m.xp = msg.xp
		return m, nil

	case progressMsg:
		if msg.update.Profile != nil {
			m.level = msg.update.Profile.Level
			m.xp = msg.update.Profile.XP
		}
		// Screens may want the update too, e.g. to refresh stat lines.
		return m, m.router.Update(msg.update)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.level, m.xp, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. Gamification updates are streamed
// into the event loop so the header stats stay live.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))

	unsubscribe := deps.Progress.Subscribe(func(u progress.Update) {
		p.Send(progressMsg{update: u})
	})
	defer unsubscribe()

	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
