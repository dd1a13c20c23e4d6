package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

// PlaceholderScreen stands in for zones that have no dedicated screen yet.
type PlaceholderScreen struct {
	name string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a placeholder for the named zone.
func New(name string) *PlaceholderScreen {
	return &PlaceholderScreen{name: name}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Title() string {
	return p.name
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render(p.name + " is still under construction.\n\nPress Esc to head back.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
