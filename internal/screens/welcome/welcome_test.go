package welcome

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/store"
)

// stubScreen stands in for base camp.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Base Camp" }

func newTestWelcome(sess *session.Store) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(sess, factory), &callCount
}

func newSession() *session.Store {
	return session.New(store.NewAdapter(store.NewMemorySlotRepo(), nil), nil)
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func typeText(w *WelcomeScreen, text string) {
	for _, r := range text {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSplashWaitsForFullAnimation(t *testing.T) {
	sess := newSession()
	sess.Initialize(context.Background())
	w, callCount := newTestWelcome(sess)

	sendTicks(w, 3)
	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("keypress mid-animation should do nothing")
	}
	if *callCount != 0 {
		t.Errorf("factory should not run yet, got %d calls", *callCount)
	}
}

func TestOnboardedUserSkipsStraightToHome(t *testing.T) {
	sess := newSession()
	ctx := context.Background()
	sess.Login(ctx, session.Profile{DisplayName: "Nova"})
	sess.CompleteOnboarding(ctx)

	w, callCount := newTestWelcome(sess)
	sendTicks(w, 30)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command after the animation")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNewUserGoesThroughOnboarding(t *testing.T) {
	sess := newSession()
	sess.Initialize(context.Background())
	w, callCount := newTestWelcome(sess)
	sendTicks(w, 30)

	// Past the splash: unknown user lands on the call-sign prompt.
	w.Update(tea.KeyPressMsg{Code: ' '})
	if w.stage != stageCallSign {
		t.Fatalf("expected call-sign stage, got %v", w.stage)
	}

	// Empty names are rejected.
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if w.stage != stageCallSign {
		t.Fatal("empty call sign should not advance")
	}

	typeText(w, "Nova")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if w.stage != stageAvatar {
		t.Fatalf("expected avatar stage, got %v", w.stage)
	}

	// Picking an avatar logs in and transitions.
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("avatar selection should produce a command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}

	cur := sess.Current()
	if !cur.Authenticated {
		t.Error("onboarding should authenticate the session")
	}
	if cur.Profile.DisplayName != "Nova" {
		t.Errorf("expected call sign Nova, got %q", cur.Profile.DisplayName)
	}
	if !cur.Profile.Onboarded {
		t.Error("onboarding flag should be set")
	}
	if cur.Profile.AvatarGlyph != avatarGlyphs[0] {
		t.Errorf("expected first avatar glyph, got %q", cur.Profile.AvatarGlyph)
	}
}

func TestSplashShowsBanner(t *testing.T) {
	sess := newSession()
	sess.Initialize(context.Background())
	w, _ := newTestWelcome(sess)
	sendTicks(w, 30)

	view := w.View(100, 40)
	if !strings.Contains(view, "press any key") {
		t.Error("completed splash should show the continue hint")
	}
}

func TestTitleEmpty(t *testing.T) {
	sess := newSession()
	w, _ := newTestWelcome(sess)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
