package trial

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
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/ui/components"
	"github.com/prepnova/prepnova/internal/ui/layout"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

const questionsPerTrial = 5

// topics offered for a mock trial.
var topics = []string{
	"Data Structures",
	"System Design",
	"Algorithms",
	"Databases",
	"Networking",
}

type phase int

const (
	phaseTopic phase = iota
	phaseLoading
	phaseQuestion
	phaseFeedback
	phaseDone
)

type testLoadedMsg struct {
	Test gateway.Test
}

type gradedMsg struct {
	Result gateway.AnswerResult
}

// TrialScreen runs a multiple-choice mock trial fetched from the gateway.
type TrialScreen struct {
	gw      *gateway.Client
	session *session.Store

	phase    phase
	topics   components.Menu
	test     gateway.Test
	index    int
	choice   components.MultiChoice
	result   gateway.AnswerResult
	correct  int
	recorded bool
}

var _ screen.Screen = (*TrialScreen)(nil)
var _ screen.KeyHintProvider = (*TrialScreen)(nil)

// New creates a TrialScreen.
func New(gw *gateway.Client, sess *session.Store) *TrialScreen {
	s := &TrialScreen{gw: gw, session: sess}

	items := make([]components.MenuItem, len(topics))
	for i, topic := range topics {
		topic := topic
		items[i] = components.MenuItem{
			Label: topic,
			Action: func() tea.Cmd {
				return s.loadTest(topic)
			},
		}
	}
	s.topics = components.NewMenu(items)
	return s
}

func (s *TrialScreen) Init() tea.Cmd {
	return nil
}

func (s *TrialScreen) Title() string {
	return "Trial Grounds"
}

func (s *TrialScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abort"},
		}
	case phaseFeedback, phaseDone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *TrialScreen) loadTest(topic string) tea.Cmd {
	s.phase = phaseLoading
	return func() tea.Msg {
		return testLoadedMsg{
			Test: s.gw.GenerateTest(context.Background(), topic, gateway.TestMCQ, questionsPerTrial),
		}
	}
}

func (s *TrialScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case testLoadedMsg:
		s.test = msg.Test
		s.index = 0
		s.correct = 0
		if len(s.test.MCQ) == 0 {
			s.phase = phaseTopic
			return s, nil
		}
		s.startQuestion()
		return s, nil

	case gradedMsg:
		s.result = msg.Result
		if s.result.Correct {
			s.correct++
		}
		s.phase = phaseFeedback
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseTopic:
			if msg.String() == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			var cmd tea.Cmd
			s.topics, cmd = s.topics.Update(msg)
			return s, cmd

		case phaseQuestion:
			if msg.String() == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			wasSubmitted := s.choice.Submitted
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			if s.choice.Submitted && !wasSubmitted {
				return s, s.gradeCmd()
			}
			return s, cmd

		case phaseFeedback:
			if msg.String() == "enter" {
				s.index++
				if s.index >= len(s.test.MCQ) {
					s.finish()
				} else {
					s.startQuestion()
				}
			}
			return s, nil

		case phaseDone:
			if msg.String() == "enter" || msg.String() == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *TrialScreen) startQuestion() {
	q := s.test.MCQ[s.index]
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	s.phase = phaseQuestion
}

// gradeCmd submits the chosen answer to the backend. When submission
// fails, the verdict comes from the embedded answer key instead.
func (s *TrialScreen) gradeCmd() tea.Cmd {
	q := s.test.MCQ[s.index]
	testID := s.test.ID
	answer := s.choice.ChosenOption()
	localCorrect := s.choice.IsCorrect()

	return func() tea.Msg {
		res, err := s.gw.SubmitAnswer(context.Background(), testID, q.ID, answer)
		if err != nil {
			res = gateway.AnswerResult{
				Correct:     localCorrect,
				Explanation: q.Explanation,
			}
		}
		return gradedMsg{Result: res}
	}
}

func (s *TrialScreen) finish() {
	s.phase = phaseDone
	if s.recorded {
		return
	}
	s.recorded = true

	total := len(s.test.MCQ)
	accuracy := float64(s.correct) / float64(total)
	s.session.RecordCompletion(context.Background(), session.CompletionRecord{
		TrialName: s.test.Topic + " Trial",
		Grade:     progress.GradeForScore(accuracy),
		XPAwarded: progress.XPForTrial(accuracy, total),
	})
}

func (s *TrialScreen) View(width, height int) string {
	switch s.phase {
	case phaseTopic:
		return s.viewTopics(width)
	case phaseLoading:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Preparing your trial..."))
	case phaseQuestion, phaseFeedback:
		return s.viewQuestion(width)
	case phaseDone:
		return s.viewSummary(width, height)
	}
	return ""
}

func (s *TrialScreen) viewTopics(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Choose your trial")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.topics.View()))
	return b.String()
}

func (s *TrialScreen) viewQuestion(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Question %d of %d", s.index+1, len(s.test.MCQ)))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.phase == phaseFeedback {
		b.WriteString("\n")
		verdict := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✗ Not quite.")
		if s.result.Correct {
			verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ Correct!")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		b.WriteString("\n")
		if s.result.Explanation != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-8, 64)).
					Render(s.result.Explanation)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *TrialScreen) viewSummary(width, height int) string {
	total := len(s.test.MCQ)
	accuracy := float64(s.correct) / float64(total)
	grade := progress.GradeForScore(accuracy)
	xp := progress.XPForTrial(accuracy, total)

	gradeStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if grade == "S" {
		gradeStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Trial Complete"),
		"",
		fmt.Sprintf("%d / %d correct", s.correct, total),
		"Grade  " + gradeStyle.Render(grade),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("+%d XP", xp)),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
