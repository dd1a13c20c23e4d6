// Package app wires the session store, the gateway, and the screen router
// into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/progress"
	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/screens/home"
	"github.com/prepnova/prepnova/internal/screens/welcome"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/ui/layout"
)

// Options carries the dependencies for the TUI.
type Options struct {
	Session *session.Store
	Gateway *gateway.Client
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	session *session.Store
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates an AppModel starting at the welcome screen. The
// welcome and home screens reference each other through factories.
func newAppModel(opts Options) AppModel {
	var welcomeFactory func() screen.Screen
	homeFactory := func() screen.Screen {
		return home.New(opts.Gateway, opts.Session, welcomeFactory)
	}
	welcomeFactory = func() screen.Screen {
		return welcome.New(opts.Session, homeFactory)
	}

	return AppModel{
		session: opts.Session,
		router:  router.New(welcomeFactory()),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
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

	// The welcome screen renders full-bleed, no chrome.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	p := m.session.Current().Profile
	header := layout.RenderHeader(title, p.Level,
		progress.XPIntoLevel(p.XP), progress.XPToNextLevel(p.XP), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("starting ui")

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		log.Error("ui exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	log.Info("ui exited")
	return nil
}
