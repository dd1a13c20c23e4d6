package mentor

import (
	"context"
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

const transcriptLimit = 50

type replyMsg struct {
	Reply gateway.ChatReply
}

type turn struct {
	Role string
	Text string
}

// MentorScreen is the AI mentor chat.
type MentorScreen struct {
	gw      *gateway.Client
	input   components.TextInput
	turns   []turn
	waiting bool
}

var _ screen.Screen = (*MentorScreen)(nil)
var _ screen.KeyHintProvider = (*MentorScreen)(nil)

// New creates a MentorScreen.
func New(gw *gateway.Client) *MentorScreen {
	return &MentorScreen{
		gw:    gw,
		input: components.NewTextInput("Ask your mentor anything...", 0),
	}
}

func (s *MentorScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *MentorScreen) Title() string {
	return "Mission Control"
}

func (s *MentorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MentorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		s.appendTurn(turn{Role: "mentor", Text: msg.Reply.Reply})
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if s.waiting {
				return s, nil
			}
			text := strings.TrimSpace(s.input.Value())
			if text == "" {
				return s, nil
			}
			s.appendTurn(turn{Role: "you", Text: text})
			s.input.Reset()
			s.waiting = true
			return s, s.sendCmd(text)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *MentorScreen) sendCmd(text string) tea.Cmd {
	ctx := s.recentContext()
	return func() tea.Msg {
		return replyMsg{Reply: s.gw.Chat(context.Background(), text, ctx)}
	}
}

// appendTurn adds a turn and trims the transcript to its cap.
func (s *MentorScreen) appendTurn(t turn) {
	s.turns = append(s.turns, t)
	if len(s.turns) > transcriptLimit {
		s.turns = s.turns[len(s.turns)-transcriptLimit:]
	}
}

// recentContext flattens the last few turns into the context string the
// backend uses for conversational continuity.
func (s *MentorScreen) recentContext() string {
	start := 0
	if len(s.turns) > 6 {
		start = len(s.turns) - 6
	}
	var parts []string
	for _, t := range s.turns[start:] {
		parts = append(parts, t.Role+": "+t.Text)
	}
	return strings.Join(parts, "\n")
}

func (s *MentorScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	innerWidth := min(width-8, 72)
	if innerWidth < 20 {
		innerWidth = 20
	}

	youStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	mentorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(innerWidth)

	if len(s.turns) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Your mentor is standing by. Ask about interviews, skills, or strategy.")))
		b.WriteString("\n")
	}

	// Show as many recent turns as fit, leaving room for the input row.
	budget := height - 7
	var lines []string
	for i := len(s.turns) - 1; i >= 0; i-- {
		t := s.turns[i]
		label := youStyle.Render("You")
		if t.Role == "mentor" {
			label = mentorStyle.Render("Mentor")
		}
		block := label + "\n" + textStyle.Render(t.Text) + "\n"
		h := lipgloss.Height(block)
		if budget-h < 0 {
			break
		}
		budget -= h
		lines = append([]string{block}, lines...)
	}
	for _, l := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.waiting {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Mentor is typing...")))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	}
	b.WriteString("\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
