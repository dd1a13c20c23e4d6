package trial

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/router"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/store"
)

func newTestTrial(t *testing.T) (*TrialScreen, *session.Store) {
	t.Helper()

	// A dead server: every gateway call fails over to its substitute and
	// answer grading falls back to the embedded key.
	srv := httptest.NewServer(nil)
	srv.Close()

	sess := session.New(store.NewAdapter(store.NewMemorySlotRepo(), nil), nil)
	sess.Login(context.Background(), session.Profile{DisplayName: "Nova"})

	gw := gateway.NewClient(gateway.Config{BaseURL: srv.URL, Timeout: time.Second}, nil)
	return New(gw, sess), sess
}

func fixedTest() gateway.Test {
	return gateway.Test{
		ID:    "t-1",
		Topic: "Algorithms",
		Kind:  gateway.TestMCQ,
		MCQ: []gateway.MCQQuestion{
			{ID: "q-1", Prompt: "1+1?", Options: []string{"1", "2"}, CorrectIndex: 1, Explanation: "two"},
			{ID: "q-2", Prompt: "2+2?", Options: []string{"4", "5"}, CorrectIndex: 0, Explanation: "four"},
		},
	}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// answerCurrent submits the currently selected option and applies the
// resulting graded message.
func answerCurrent(t *testing.T, s *TrialScreen) {
	t.Helper()
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("submitting an answer should produce a command")
	}
	msg := cmd()
	graded, ok := msg.(gradedMsg)
	if !ok {
		t.Fatalf("expected gradedMsg, got %T", msg)
	}
	s.Update(graded)
}

func TestTrialGradesLocallyWhenBackendDown(t *testing.T) {
	s, _ := newTestTrial(t)
	s.Update(testLoadedMsg{Test: fixedTest()})

	if s.phase != phaseQuestion {
		t.Fatalf("expected question phase, got %v", s.phase)
	}

	// Select the correct option for q-1 (index 1).
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	answerCurrent(t, s)

	if s.phase != phaseFeedback {
		t.Fatalf("expected feedback phase, got %v", s.phase)
	}
	if !s.result.Correct {
		t.Error("locally graded answer should be correct")
	}
	if s.result.Explanation != "two" {
		t.Errorf("local grading should use the embedded explanation, got %q", s.result.Explanation)
	}
}

func TestTrialRecordsCompletion(t *testing.T) {
	s, sess := newTestTrial(t)
	s.Update(testLoadedMsg{Test: fixedTest()})

	// q-1: pick the wrong option (index 0).
	answerCurrent(t, s)
	s.Update(enter())

	// q-2: index 0 is correct.
	answerCurrent(t, s)
	s.Update(enter())

	if s.phase != phaseDone {
		t.Fatalf("expected done phase, got %v", s.phase)
	}

	p := sess.Current().Profile
	if len(p.History) != 1 {
		t.Fatalf("expected one completion record, got %d", len(p.History))
	}
	rec := p.History[0]
	if rec.TrialName != "Algorithms Trial" {
		t.Errorf("unexpected trial name %q", rec.TrialName)
	}
	// 1 of 2 correct: grade C, half-accuracy XP.
	if rec.Grade != "C" {
		t.Errorf("expected grade C, got %q", rec.Grade)
	}
	if rec.XPAwarded <= 0 {
		t.Errorf("expected XP award, got %d", rec.XPAwarded)
	}
	if p.XP != rec.XPAwarded {
		t.Errorf("XP not applied to the profile: %d vs %d", p.XP, rec.XPAwarded)
	}
}

func TestTrialDoneDismissesToBaseCamp(t *testing.T) {
	s, _ := newTestTrial(t)
	s.Update(testLoadedMsg{Test: gateway.Test{
		ID:    "t-1",
		Topic: "Go",
		Kind:  gateway.TestMCQ,
		MCQ:   []gateway.MCQQuestion{{ID: "q", Prompt: "?", Options: []string{"a"}, CorrectIndex: 0}},
	}})

	answerCurrent(t, s)
	s.Update(enter())

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a pop command from the summary")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestTrialRecordsOnlyOnce(t *testing.T) {
	s, sess := newTestTrial(t)
	s.Update(testLoadedMsg{Test: fixedTest()})

	answerCurrent(t, s)
	s.Update(enter())
	answerCurrent(t, s)
	s.Update(enter())

	// Extra keys on the summary must not duplicate the record.
	s.finish()

	if got := len(sess.Current().Profile.History); got != 1 {
		t.Errorf("expected exactly one record, got %d", got)
	}
}
