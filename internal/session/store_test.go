package session

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepnova/prepnova/internal/achievements"
	"github.com/prepnova/prepnova/internal/store"
)

func newTestStore() (*Store, *store.MemorySlotRepo) {
	repo := store.NewMemorySlotRepo()
	return New(store.NewAdapter(repo, nil), nil), repo
}

func slotValue(t *testing.T, repo *store.MemorySlotRepo, key string) (string, bool) {
	t.Helper()
	v, ok, err := repo.Load(context.Background(), key)
	if err != nil {
		t.Fatalf("load %s: %v", key, err)
	}
	return v, ok
}

func TestInitializeEmptyMedium(t *testing.T) {
	s, _ := newTestStore()
	sess := s.Initialize(context.Background())

	if sess.Authenticated {
		t.Error("expected anonymous session on empty medium")
	}
	want := DefaultProfile()
	if sess.Profile.DisplayName != want.DisplayName || sess.Profile.Level != want.Level {
		t.Errorf("expected default profile, got %+v", sess.Profile)
	}
}

func TestInitializeCorruptProfile(t *testing.T) {
	s, repo := newTestStore()
	repo.Save(context.Background(), UserSlot, "{not json")
	repo.Save(context.Background(), AuthSlot, "true")

	sess := s.Initialize(context.Background())

	if sess.Profile.DisplayName != DefaultProfile().DisplayName {
		t.Errorf("corrupt profile should fall back to defaults, got %+v", sess.Profile)
	}
	if !sess.Authenticated {
		t.Error("auth slot is independent of the profile slot")
	}
}

func TestInitializeAuthRequiresExactTrue(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"TRUE", false},
		{"1", false},
		{"", false},
	}
	for _, tc := range cases {
		s, repo := newTestStore()
		repo.Save(context.Background(), AuthSlot, tc.value)
		sess := s.Initialize(context.Background())
		if sess.Authenticated != tc.want {
			t.Errorf("auth value %q: got %v, want %v", tc.value, sess.Authenticated, tc.want)
		}
	}
}

func TestLoginMergesOverDefaults(t *testing.T) {
	s, repo := newTestStore()

	sess := s.Login(context.Background(), Profile{DisplayName: "Nova", XP: 300})

	if sess.Profile.DisplayName != "Nova" {
		t.Errorf("expected display name Nova, got %q", sess.Profile.DisplayName)
	}
	if sess.Profile.Title != DefaultProfile().Title {
		t.Errorf("unset fields should come from defaults, got title %q", sess.Profile.Title)
	}
	if !sess.Authenticated {
		t.Error("login should authenticate")
	}

	if v, _ := slotValue(t, repo, AuthSlot); v != "true" {
		t.Errorf("auth slot should hold the literal \"true\", got %q", v)
	}
	raw, ok := slotValue(t, repo, UserSlot)
	if !ok {
		t.Fatal("user slot should be persisted on login")
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("persisted profile is not JSON: %v", err)
	}
	if p.DisplayName != "Nova" {
		t.Errorf("persisted profile lost the display name: %+v", p)
	}
}

func TestLoginSeedsWelcomeOnce(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	first := s.Login(ctx, Profile{DisplayName: "Nova"})
	if !first.Profile.HasAchievement(achievements.WelcomeAboardID) {
		t.Fatal("login should seed the welcome achievement")
	}
	grantedAt := first.Profile.Achievements[0].GrantedAt

	second := s.Login(ctx, Profile{
		DisplayName:  "Nova",
		Achievements: first.Profile.Achievements,
	})

	count := 0
	for _, a := range second.Profile.Achievements {
		if a.ID == achievements.WelcomeAboardID {
			count++
			if a.GrantedAt != grantedAt {
				t.Errorf("re-login changed GrantedAt: %q -> %q", grantedAt, a.GrantedAt)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one welcome achievement, got %d", count)
	}
}

func TestLoginInitializeRoundTrip(t *testing.T) {
	s, repo := newTestStore()
	ctx := context.Background()

	logged := s.Login(ctx, Profile{DisplayName: "Orbit", AvatarGlyph: "🤖", XP: 520})

	fresh := New(store.NewAdapter(repo, nil), nil)
	loaded := fresh.Initialize(ctx)

	if loaded.Profile.DisplayName != logged.Profile.DisplayName ||
		loaded.Profile.AvatarGlyph != logged.Profile.AvatarGlyph ||
		loaded.Profile.XP != logged.Profile.XP {
		t.Errorf("round trip lost data:\nlogged  %+v\nloaded  %+v", logged.Profile, loaded.Profile)
	}
	if !loaded.Authenticated {
		t.Error("round trip should keep the session authenticated")
	}
}

func TestLogoutKeepsProfileSlot(t *testing.T) {
	s, repo := newTestStore()
	ctx := context.Background()

	s.Login(ctx, Profile{DisplayName: "Nova"})
	before, _ := slotValue(t, repo, UserSlot)

	s.Logout(ctx)

	after, ok := slotValue(t, repo, UserSlot)
	if !ok || after != before {
		t.Error("logout must leave the user slot byte-identical")
	}
	if v, _ := slotValue(t, repo, AuthSlot); v != "false" {
		t.Errorf("auth slot should hold \"false\" after logout, got %q", v)
	}
	if s.Current().Authenticated {
		t.Error("session should be anonymous after logout")
	}
}

func TestLogoutWhileAnonymous(t *testing.T) {
	s, repo := newTestStore()
	s.Initialize(context.Background())

	s.Logout(context.Background())

	if v, _ := slotValue(t, repo, AuthSlot); v != "false" {
		t.Errorf("expected auth slot \"false\", got %q", v)
	}
}

func TestSingleFieldUpdatesLeaveRestUntouched(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	s.Login(ctx, Profile{DisplayName: "Nova", Title: "Recruit", XP: 100})
	before := s.Current().Profile

	s.UpdateAvatar(ctx, "🦉")

	after := s.Current().Profile
	if after.AvatarGlyph != "🦉" {
		t.Errorf("avatar not updated: %q", after.AvatarGlyph)
	}
	if after.DisplayName != before.DisplayName || after.Title != before.Title ||
		after.XP != before.XP || after.Level != before.Level ||
		len(after.Achievements) != len(before.Achievements) {
		t.Errorf("update touched unrelated fields:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestUpdateDisplayNameClamps(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	s.Login(ctx, Profile{})

	long := strings.Repeat("é", MaxDisplayNameLen+10)
	s.UpdateDisplayName(ctx, long)

	got := s.Current().Profile.DisplayName
	if n := len([]rune(got)); n != MaxDisplayNameLen {
		t.Errorf("expected %d runes, got %d", MaxDisplayNameLen, n)
	}
}

func TestGrantAchievementIdempotent(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	s.Login(ctx, Profile{})

	first := Achievement{ID: "flawless_run", Name: "Flawless Run", GrantedAt: "2026-01-15"}
	s.GrantAchievement(ctx, first)
	s.GrantAchievement(ctx, Achievement{ID: "flawless_run", GrantedAt: "2026-08-30"})

	p := s.Current().Profile
	count := 0
	for _, a := range p.Achievements {
		if a.ID == "flawless_run" {
			count++
			if a.GrantedAt != "2026-01-15" {
				t.Errorf("re-grant replaced GrantedAt: %q", a.GrantedAt)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected one entry for the ID, got %d", count)
	}
}

func TestGrantAchievementFillsGrantedAt(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	s.Login(ctx, Profile{})

	s.GrantAchievement(ctx, Achievement{ID: "pathfinder", Name: "Pathfinder"})

	p := s.Current().Profile
	for _, a := range p.Achievements {
		if a.ID == "pathfinder" && a.GrantedAt == "" {
			t.Error("grant should stamp GrantedAt when empty")
		}
	}
}

func TestRecordCompletionAppliesProgress(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	s.Login(ctx, Profile{})

	s.RecordCompletion(ctx, CompletionRecord{TrialName: "Algorithms Trial", Grade: "S", XPAwarded: 300})

	p := s.Current().Profile
	if len(p.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(p.History))
	}
	if p.History[0].Date == "" {
		t.Error("record should be stamped with a date")
	}
	if p.XP != 300 {
		t.Errorf("expected 300 XP, got %d", p.XP)
	}
	if p.Level != 2 {
		t.Errorf("300 XP should reach level 2, got %d", p.Level)
	}
	if !p.HasAchievement(achievements.FirstContactID) {
		t.Error("first trial should earn first_contact")
	}
	if !p.HasAchievement(achievements.FlawlessRunID) {
		t.Error("S grade should earn flawless_run")
	}
}

func TestExploreZoneEarnsPathfinder(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	s.Login(ctx, Profile{})

	for i := 0; i < 5; i++ {
		s.ExploreZone(ctx)
	}

	p := s.Current().Profile
	if p.ZonesExplored != 5 {
		t.Errorf("expected 5 zones, got %d", p.ZonesExplored)
	}
	if !p.HasAchievement(achievements.PathfinderID) {
		t.Error("five zones should earn pathfinder")
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	s.Login(ctx, Profile{})
	s.RecordCompletion(ctx, CompletionRecord{TrialName: "Trial", Grade: "B", XPAwarded: 50})

	snap := s.Current()
	snap.Profile.History[0].Grade = "mutated"
	snap.Profile.Achievements[0].Name = "mutated"

	p := s.Current().Profile
	if p.History[0].Grade == "mutated" || p.Achievements[0].Name == "mutated" {
		t.Error("Current must return a defensive copy")
	}
}

func TestSubscribeNotified(t *testing.T) {
	s, _ := newTestStore()
	var got []Session
	s.Subscribe(func(sess Session) { got = append(got, sess) })

	s.Login(context.Background(), Profile{DisplayName: "Nova"})

	if len(got) != 1 {
		t.Fatalf("expected one notification, got %d", len(got))
	}
	if got[0].Profile.DisplayName != "Nova" {
		t.Errorf("notification carries stale state: %+v", got[0].Profile)
	}
}
