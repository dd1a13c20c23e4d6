package roadmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/ui/layout"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

type roadmapLoadedMsg struct {
	Roadmap gateway.Roadmap
}

// RoadmapScreen renders the week-by-week learning plan.
type RoadmapScreen struct {
	gw       *gateway.Client
	skills   []string
	roadmap  gateway.Roadmap
	selected int
	loaded   bool
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates a RoadmapScreen seeded with the skills to plan around.
func New(gw *gateway.Client, skills []string) *RoadmapScreen {
	return &RoadmapScreen{gw: gw, skills: skills}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return roadmapLoadedMsg{Roadmap: s.gw.GenerateRoadmap(context.Background(), s.skills)}
	}
}

func (s *RoadmapScreen) Title() string {
	return "Star Charts"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Week"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		s.roadmap = msg.Roadmap
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			if s.selected > 0 {
				s.selected--
			}
		case "right", "l":
			if s.selected < len(s.roadmap.Weeks)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *RoadmapScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Plotting your course..."))
	}
	if len(s.roadmap.Weeks) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("No roadmap available."))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.roadmap.Goal)))
	b.WriteString("\n\n")

	// Week tabs.
	var tabs []string
	for i, w := range s.roadmap.Weeks {
		label := fmt.Sprintf("Week %d", w.Week)
		if i == s.selected {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "    ")))
	b.WriteString("\n\n")

	week := s.roadmap.Weeks[s.selected]

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(week.Theme)))
	b.WriteString("\n\n")

	for _, topic := range week.Topics {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("• "+topic)))
		b.WriteString("\n")
	}

	if len(week.Resources) > 0 {
		b.WriteString("\n")
		for _, res := range week.Resources {
			line := fmt.Sprintf("↗ %s  %s", res.Title,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(res.URL))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
