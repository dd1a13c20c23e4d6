package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/progress"
	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/screens/achievements"
	"github.com/prepnova/prepnova/internal/screens/analytics"
	"github.com/prepnova/prepnova/internal/screens/history"
	"github.com/prepnova/prepnova/internal/screens/mentor"
	"github.com/prepnova/prepnova/internal/screens/placeholder"
	"github.com/prepnova/prepnova/internal/screens/roadmap"
	"github.com/prepnova/prepnova/internal/screens/trial"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/ui/components"
	"github.com/prepnova/prepnova/internal/ui/layout"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

// defaultRoadmapSkills seeds the roadmap request until the user has run a
// resume analysis with `prepnova analyze`.
var defaultRoadmapSkills = []string{"Data Structures", "System Design", "Algorithms"}

// HomeScreen is base camp: the profile card and the gateway into every
// zone of the app.
type HomeScreen struct {
	gw             *gateway.Client
	session        *session.Store
	welcomeFactory func() screen.Screen
	menu           components.Menu
	visited        map[string]bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the base camp screen. welcomeFactory builds the welcome
// screen for the post-logout transition without a package cycle.
func New(gw *gateway.Client, sess *session.Store, welcomeFactory func() screen.Screen) *HomeScreen {
	s := &HomeScreen{
		gw:             gw,
		session:        sess,
		welcomeFactory: welcomeFactory,
		visited:        make(map[string]bool),
	}

	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "⚔  Trial Grounds", Action: func() tea.Cmd {
			return s.enterZone("trial", func() screen.Screen { return trial.New(s.gw, s.session) })
		}},
		{Label: "🗺  Star Charts", Action: func() tea.Cmd {
			return s.enterZone("roadmap", func() screen.Screen { return roadmap.New(s.gw, defaultRoadmapSkills) })
		}},
		{Label: "📡  Mission Control", Action: func() tea.Cmd {
			return s.enterZone("mentor", func() screen.Screen { return mentor.New(s.gw) })
		}},
		{Label: "📊  Flight Analytics", Action: func() tea.Cmd {
			return s.enterZone("analytics", func() screen.Screen { return analytics.New(s.gw) })
		}},
		{Label: "🏆  Trophy Bay", Action: func() tea.Cmd {
			return s.enterZone("achievements", func() screen.Screen { return achievements.New(s.session) })
		}},
		{Label: "📜  Mission Log", Action: func() tea.Cmd {
			return s.enterZone("history", func() screen.Screen { return history.New(s.session) })
		}},
		{Label: "🔐  Code Vault", Action: func() tea.Cmd {
			return s.enterZone("vault", func() screen.Screen { return placeholder.New("Code Vault") })
		}},
		{Label: "🚪  Log Out", Action: func() tea.Cmd {
			s.session.Logout(context.Background())
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: s.welcomeFactory()}
			}
		}},
		{Label: "✖  Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return s
}

// enterZone pushes the zone's screen, counting the first visit toward
// exploration progress.
func (s *HomeScreen) enterZone(zone string, build func() screen.Screen) tea.Cmd {
	if !s.visited[zone] {
		s.visited[zone] = true
		s.session.ExploreZone(context.Background())
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: build()}
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Base Camp"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	p := s.session.Current().Profile

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.profileCard(p)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}

func (s *HomeScreen) profileCard(p session.Profile) string {
	cardWidth := 44

	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%s %s", p.AvatarGlyph, p.DisplayName))
	title := lipgloss.NewStyle().Foreground(theme.Secondary).Render(p.Title)
	level := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(
		fmt.Sprintf("LVL %d", p.Level))

	into := progress.XPIntoLevel(p.XP)
	span := progress.XPToNextLevel(p.XP)
	bar := components.NewProgressBar("", float64(into)/float64(span), false, cardWidth-4).View()
	xpLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("✦ %d/%d XP", into, span))

	stats := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Trials %d   Zones %d   Trophies %d",
			len(p.History), p.ZonesExplored, len(p.Achievements)))

	body := lipgloss.JoinVertical(lipgloss.Center,
		name+"  "+level,
		title,
		"",
		bar,
		xpLine,
		stats,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(cardWidth).
		Render(body)
}
