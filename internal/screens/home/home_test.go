package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/screen"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/store"
)

func newTestHome() (*HomeScreen, *session.Store) {
	sess := session.New(store.NewAdapter(store.NewMemorySlotRepo(), nil), nil)
	sess.Login(context.Background(), session.Profile{DisplayName: "Nova"})
	gw := gateway.NewClient(gateway.Config{BaseURL: "http://127.0.0.1:0", Timeout: time.Second}, nil)
	return New(gw, sess, func() screen.Screen { return nil }), sess
}

func TestEnterZoneCountsFirstVisitOnly(t *testing.T) {
	s, sess := newTestHome()

	cmd := s.enterZone("trial", func() screen.Screen { return nil })
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if got := sess.Current().Profile.ZonesExplored; got != 1 {
		t.Errorf("first visit should count, got %d", got)
	}

	s.enterZone("trial", func() screen.Screen { return nil })
	if got := sess.Current().Profile.ZonesExplored; got != 1 {
		t.Errorf("repeat visit should not count, got %d", got)
	}

	s.enterZone("roadmap", func() screen.Screen { return nil })
	if got := sess.Current().Profile.ZonesExplored; got != 2 {
		t.Errorf("a new zone should count, got %d", got)
	}
}

func TestMenuSelectionPushesScreen(t *testing.T) {
	s, _ := newTestHome()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting the first menu item should produce a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestViewShowsProfileCard(t *testing.T) {
	s, _ := newTestHome()
	view := s.View(100, 40)

	if !strings.Contains(view, "Nova") {
		t.Error("profile card should show the call sign")
	}
	if !strings.Contains(view, "LVL 1") {
		t.Error("profile card should show the level")
	}
}
