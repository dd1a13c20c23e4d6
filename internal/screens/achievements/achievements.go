package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/achievements"
	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/ui/layout"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

// AchievementsScreen lists the catalog with earned and locked entries.
type AchievementsScreen struct {
	store        *session.Store
	scrollOffset int
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(store *session.Store) *AchievementsScreen {
	return &AchievementsScreen{store: store}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Trophy Bay"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(achievements.All())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	profile := s.store.Current().Profile

	granted := make(map[string]session.Achievement, len(profile.Achievements))
	for _, a := range profile.Achievements {
		granted[a.ID] = a
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned %d of %d\n", len(profile.Achievements), len(achievements.All()))))
	b.WriteString("\n")

	all := achievements.All()
	maxVisible := height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	if start > len(all)-1 {
		start = len(all) - 1
	}
	end := start + maxVisible
	if end > len(all) {
		end = len(all)
	}

	for _, def := range all[start:end] {
		var line string
		if a, ok := granted[def.ID]; ok {
			line = fmt.Sprintf("  %s  %-18s %-38s %s", def.Icon, def.Name, def.Description, a.GrantedAt)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		} else {
			line = fmt.Sprintf("  🔒  %-18s %-38s", def.Name, def.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
