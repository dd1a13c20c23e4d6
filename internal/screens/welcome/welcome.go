package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/ui/components"
	"github.com/prepnova/prepnova/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const rocketArt = `       ▲
      ╱█╲
     ╱███╲
     │███│
     │█◉█│
     │███│
    ╱█████╲
    ‾╱▂▂▂╲‾
      ▼▼▼`

// twinkle frames cycle beside the rocket
var twinkleFrames = []string{"✦", "✧"}

// avatarGlyphs are the options offered during onboarding.
var avatarGlyphs = []string{"🧑‍🚀", "🤖", "🦉", "🐉", "⚡"}

type tickMsg time.Time

type stage int

const (
	stageSplash stage = iota
	stageCallSign
	stageAvatar
)

// WelcomeScreen shows the splash animation, runs first-time onboarding,
// and transitions to base camp.
type WelcomeScreen struct {
	session     *session.Store
	homeFactory func() screen.Screen

	stage        stage
	elapsed      time.Duration
	tickCount    int
	transitioned bool

	nameInput components.TextInput
	avatars   components.Menu
	callSign  string
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once the session is authenticated and onboarded.
func New(sess *session.Store, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		session:     sess,
		homeFactory: homeFactory,
		nameInput:   components.NewTextInput("Enter your call sign", session.MaxDisplayNameLen),
	}

	items := make([]components.MenuItem, len(avatarGlyphs))
	for i, glyph := range avatarGlyphs {
		glyph := glyph
		items[i] = components.MenuItem{
			Label: glyph,
			Action: func() tea.Cmd {
				return w.completeOnboarding(glyph)
			},
		}
	}
	w.avatars = components.NewMenu(items)
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		if w.stage != stageSplash {
			return w, nil
		}
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		switch w.stage {
		case stageSplash:
			// Only transition once the full animation has played.
			if w.elapsed < totalDur {
				return w, nil
			}
			cur := w.session.Current()
			if cur.Authenticated && cur.Profile.Onboarded {
				return w, w.transition()
			}
			w.stage = stageCallSign
			return w, w.nameInput.Init()

		case stageCallSign:
			if msg.String() == "enter" {
				name := strings.TrimSpace(w.nameInput.Value())
				if name == "" {
					return w, nil
				}
				w.callSign = name
				w.stage = stageAvatar
				return w, nil
			}
			var cmd tea.Cmd
			w.nameInput, cmd = w.nameInput.Update(msg)
			return w, cmd

		case stageAvatar:
			var cmd tea.Cmd
			w.avatars, cmd = w.avatars.Update(msg)
			return w, cmd
		}
	}

	return w, nil
}

func (w *WelcomeScreen) completeOnboarding(glyph string) tea.Cmd {
	ctx := context.Background()
	w.session.Login(ctx, session.Profile{
		DisplayName: w.callSign,
		AvatarGlyph: glyph,
	})
	w.session.CompleteOnboarding(ctx)
	return w.transition()
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	switch w.stage {
	case stageCallSign:
		return w.viewCallSign(width, height)
	case stageAvatar:
		return w.viewAvatar(width, height)
	}
	return w.viewSplash(width, height)
}

func (w *WelcomeScreen) viewSplash(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(rocketArt)

	if w.elapsed >= phase1End {
		frame := w.tickCount % len(twinkleFrames)
		twinkle := twinkleFrames[frame]

		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(twinkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Primary).Render(twinkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = s1 + "  " + lines[1] + "  " + s2
		}
		if len(lines) > 5 {
			lines[5] = s2 + "  " + lines[5] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)
	sections = append(sections, "")
	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Your career launch sequence starts here.")
	sections = append(sections, tagline)

	if w.elapsed >= totalDur {
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) viewCallSign(width, height int) string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("What should we call you, cadet?")
	content := lipgloss.JoinVertical(lipgloss.Center,
		prompt,
		"",
		w.nameInput.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) viewAvatar(width, height int) string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Pick your avatar, " + w.callSign)
	content := lipgloss.JoinVertical(lipgloss.Center,
		prompt,
		"",
		w.avatars.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
