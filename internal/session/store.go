// Package session owns the in-memory session state and its synchronization
// with the persistent slots. Every mutating operation re-persists through
// the store adapter so the in-memory and stored representations stay
// consistent.
//
// All operations are fail-open: they never return errors to the view
// layer. A corrupt or unavailable medium degrades to defaults, and failed
// writes are absorbed (and logged) by the adapter.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prepnova/prepnova/internal/achievements"
	"github.com/prepnova/prepnova/internal/progress"
	"github.com/prepnova/prepnova/internal/store"
)

// Slot keys in the persistent medium.
const (
	UserSlot = "prepnova_user"
	AuthSlot = "prepnova_auth"
)

const dateLayout = "2006-01-02"

// Store is the authoritative client-side session state. Construct one with
// New and pass it to whatever composition root needs it; there is no
// package-level singleton.
type Store struct {
	mu      sync.Mutex
	adapter *store.Adapter
	log     *zap.Logger
	cur     Session
	subs    []func(Session)
}

// New creates a session store over the given adapter. A nil logger
// defaults to zap.NewNop().
func New(adapter *store.Adapter, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{adapter: adapter, log: log}
}

// Initialize reads both slots and sets the current session. A missing or
// unparseable user slot yields the default profile; the auth slot means
// authenticated only when it holds exactly "true".
func (s *Store) Initialize(ctx context.Context) Session {
	profile := DefaultProfile()
	if raw, ok := s.adapter.Load(ctx, UserSlot); ok {
		var p Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.log.Warn("stored profile unparseable, using defaults", zap.Error(err))
		} else {
			profile = p
			if profile.Level < 1 {
				profile.Level = 1
			}
		}
	}

	auth, _ := s.adapter.Load(ctx, AuthSlot)

	s.mu.Lock()
	s.cur = Session{Profile: profile, Authenticated: auth == "true"}
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(out)
	return out
}

// Login merges the partial profile over the default profile, seeds the
// welcome achievement if absent, marks the session authenticated, and
// persists both slots.
func (s *Store) Login(ctx context.Context, partial Profile) Session {
	s.mu.Lock()
	p := merge(partial)
	if !p.HasAchievement(achievements.WelcomeAboardID) {
		def, _ := achievements.Lookup(achievements.WelcomeAboardID)
		p.Achievements = append(p.Achievements, Achievement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			GrantedAt:   time.Now().Format(dateLayout),
		})
	}
	s.cur = Session{Profile: p, Authenticated: true}
	s.persistProfileLocked(ctx)
	s.adapter.Save(ctx, AuthSlot, "true")
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(out)
	return out
}

// Logout flips the authentication flag and persists it. The profile slot
// is deliberately left untouched: profile data survives logout and comes
// back on the next login for the same storage medium. Logging out while
// already anonymous is a harmless no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.cur.Authenticated = false
	s.adapter.Save(ctx, AuthSlot, "false")
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(out)
}

// UpdateAvatar replaces the avatar glyph and persists the profile.
func (s *Store) UpdateAvatar(ctx context.Context, glyph string) {
	s.mutate(ctx, func(p *Profile) {
		p.AvatarGlyph = glyph
	})
}

// UpdateDisplayName replaces the display name, clamped to the rune limit,
// and persists the profile.
func (s *Store) UpdateDisplayName(ctx context.Context, name string) {
	s.mutate(ctx, func(p *Profile) {
		p.DisplayName = clampName(name)
	})
}

// UpdateTitle replaces the title and persists the profile.
func (s *Store) UpdateTitle(ctx context.Context, title string) {
	s.mutate(ctx, func(p *Profile) {
		p.Title = title
	})
}

// CompleteOnboarding marks onboarding done and persists the profile.
func (s *Store) CompleteOnboarding(ctx context.Context) {
	s.mutate(ctx, func(p *Profile) {
		p.Onboarded = true
	})
}

// GrantAchievement inserts the achievement unless its ID is already
// present. Re-granting an existing ID is a no-op: no duplicate entry, the
// original GrantedAt stands, and the profile is not re-persisted.
func (s *Store) GrantAchievement(ctx context.Context, a Achievement) {
	s.mu.Lock()
	if s.cur.Profile.HasAchievement(a.ID) {
		s.mu.Unlock()
		return
	}
	if a.GrantedAt == "" {
		a.GrantedAt = time.Now().Format(dateLayout)
	}
	s.cur.Profile.Achievements = append(s.cur.Profile.Achievements, a)
	s.persistProfileLocked(ctx)
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(out)
}

// RecordCompletion appends a finished trial to the history, applies its XP
// to level progression, evaluates achievement rules, and persists.
func (s *Store) RecordCompletion(ctx context.Context, rec CompletionRecord) {
	if rec.Date == "" {
		rec.Date = time.Now().Format(dateLayout)
	}
	s.mu.Lock()
	p := &s.cur.Profile
	p.History = append(p.History, rec)
	if rec.XPAwarded > 0 {
		p.XP += rec.XPAwarded
	}
	p.Level = progress.LevelForXP(p.XP)
	s.applyRulesLocked(rec.Grade)
	s.persistProfileLocked(ctx)
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(out)
}

// ExploreZone bumps the explored-zone counter, evaluates achievement
// rules, and persists.
func (s *Store) ExploreZone(ctx context.Context) {
	s.mu.Lock()
	s.cur.Profile.ZonesExplored++
	s.applyRulesLocked("")
	s.persistProfileLocked(ctx)
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(out)
}

// Current returns a copy of the current session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback invoked after every state change with a
// copy of the new session. Callbacks run on the mutating goroutine and
// must not call back into the store.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// mutate runs a single-field update under the lock and persists.
func (s *Store) mutate(ctx context.Context, fn func(*Profile)) {
	s.mu.Lock()
	fn(&s.cur.Profile)
	s.persistProfileLocked(ctx)
	out := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(out)
}

// applyRulesLocked grants any catalog entries the profile now satisfies.
// Existing grants keep their original GrantedAt.
func (s *Store) applyRulesLocked(lastGrade string) {
	p := &s.cur.Profile
	earned := achievements.EarnedBy(achievements.Snapshot{
		Level:           p.Level,
		TrialsCompleted: len(p.History),
		ZonesExplored:   p.ZonesExplored,
		LastGrade:       lastGrade,
	})
	for _, def := range earned {
		if p.HasAchievement(def.ID) {
			continue
		}
		p.Achievements = append(p.Achievements, Achievement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			GrantedAt:   time.Now().Format(dateLayout),
		})
	}
}

func (s *Store) persistProfileLocked(ctx context.Context) {
	raw, err := json.Marshal(s.cur.Profile)
	if err != nil {
		// Profile contains only plain values; this cannot happen in
		// practice, but the operation still must not fail.
		s.log.Error("marshal profile", zap.Error(err))
		return
	}
	s.adapter.Save(ctx, UserSlot, string(raw))
}

func (s *Store) snapshotLocked() Session {
	return Session{
		Profile:       s.cur.Profile.clone(),
		Authenticated: s.cur.Authenticated,
	}
}

func (s *Store) notify(sess Session) {
	s.mu.Lock()
	subs := make([]func(Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(sess)
	}
}
