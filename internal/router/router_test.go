package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prepnova/prepnova/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "welcome"}
	r := New(s1)

	s2 := &stubScreen{title: "trial"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "trial" {
		t.Errorf("expected active 'trial', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "welcome"}
	r := New(s1)

	r.Push(&stubScreen{title: "trial"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "welcome" {
		t.Errorf("expected active 'welcome', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("pop at depth 1 should be a no-op, got depth %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	home := &stubScreen{title: "home"}
	r.Replace(home)

	if r.Depth() != 1 {
		t.Errorf("replace should keep depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
	if !home.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "trial"}})
	if r.Active().Title() != "trial" {
		t.Errorf("PushScreenMsg not handled, active %q", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "results"}})
	if r.Active().Title() != "results" || r.Depth() != 2 {
		t.Errorf("ReplaceScreenMsg not handled, active %q depth %d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "welcome" {
		t.Errorf("PopScreenMsg not handled, active %q", r.Active().Title())
	}
}
