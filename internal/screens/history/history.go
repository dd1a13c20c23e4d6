package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/ui/layout"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

// HistoryScreen displays past trial completions, newest first.
type HistoryScreen struct {
	store        *session.Store
	scrollOffset int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(store *session.Store) *HistoryScreen {
	return &HistoryScreen{store: store}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "Mission Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.store.Current().Profile.History)-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	history := s.store.Current().Profile.History

	if len(history) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No trials completed yet. Launch one from base camp!"))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n%d trials completed\n", len(history))))
	b.WriteString("\n")

	// Newest first.
	records := make([]session.CompletionRecord, len(history))
	for i, rec := range history {
		records[len(history)-1-i] = rec
	}

	maxVisible := height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	if start > len(records)-1 {
		start = len(records) - 1
	}
	end := start + maxVisible
	if end > len(records) {
		end = len(records)
	}

	for _, rec := range records[start:end] {
		line := fmt.Sprintf("  %-32s %-12s grade %-2s +%d XP",
			rec.TrialName, rec.Date, rec.Grade, rec.XPAwarded)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if rec.Grade == "S" {
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(records) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(records)-end)))
	}

	return b.String()
}
