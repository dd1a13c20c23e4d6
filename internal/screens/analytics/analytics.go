package analytics

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/ui/components"
	"github.com/prepnova/prepnova/internal/ui/layout"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

type reportLoadedMsg struct {
	Report gateway.AnalyticsReport
}

// AnalyticsScreen shows aggregate performance from the backend. When the
// backend is unreachable the gateway serves its substitute, so this screen
// always has something to render.
type AnalyticsScreen struct {
	gw     *gateway.Client
	report gateway.AnalyticsReport
	loaded bool
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates a new AnalyticsScreen.
func New(gw *gateway.Client) *AnalyticsScreen {
	return &AnalyticsScreen{gw: gw}
}

func (s *AnalyticsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return reportLoadedMsg{Report: s.gw.Analytics(context.Background())}
	}
}

func (s *AnalyticsScreen) Title() string {
	return "Flight Analytics"
}

func (s *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		s.report = msg.Report
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *AnalyticsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Crunching telemetry..."))
	}

	var b strings.Builder

	summary := fmt.Sprintf(
		"Trials: %d    Avg score: %.0f%%    XP earned: %d    Streak: %d days",
		s.report.TrialsCompleted,
		s.report.AverageScore*100,
		s.report.XPEarned,
		s.report.StreakDays,
	)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(summary)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-20, 50)
	for _, topic := range s.report.Topics {
		label := fmt.Sprintf("%-18s", topic.Topic)
		bar := components.NewProgressBar(label, topic.Accuracy, true, barWidth)
		row := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (%d attempts)", topic.Attempts))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
