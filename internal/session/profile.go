package session

// MaxDisplayNameLen is the rune limit for display names. Longer names are
// clamped, never rejected: session operations do not fail.
const MaxDisplayNameLen = 24

// Achievement is a granted catalog entry. ID is the uniqueness key; a
// profile holds at most one entry per ID.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	GrantedAt   string `json:"grantedAt"`
}

// CompletionRecord is one finished trial. History is append-only and keeps
// insertion order.
type CompletionRecord struct {
	TrialName string `json:"trialName"`
	Date      string `json:"date"`
	Grade     string `json:"grade"`
	XPAwarded int    `json:"xpAwarded"`
}

// Profile is the persisted per-user state.
type Profile struct {
	AvatarGlyph   string             `json:"avatarGlyph"`
	DisplayName   string             `json:"displayName"`
	Title         string             `json:"title"`
	Level         int                `json:"level"`
	XP            int                `json:"xp"`
	ZonesExplored int                `json:"zonesExplored"`
	History       []CompletionRecord `json:"history"`
	Onboarded     bool               `json:"onboarded"`
	Achievements  []Achievement      `json:"achievements"`
}

// Session combines the profile with the authentication flag. The flag is
// independent of the profile: logging out leaves the profile in place.
type Session struct {
	Profile       Profile
	Authenticated bool
}

// DefaultProfile returns the profile used when nothing is persisted or the
// stored record cannot be parsed.
func DefaultProfile() Profile {
	return Profile{
		AvatarGlyph: "🧑‍🚀",
		DisplayName: "Cadet",
		Title:       "Recruit",
		Level:       1,
	}
}

// merge overlays the non-zero fields of p onto the default profile. This
// is deliberately an overwrite-with-defaults merge, not a merge over the
// previously stored profile.
func merge(p Profile) Profile {
	out := DefaultProfile()
	if p.AvatarGlyph != "" {
		out.AvatarGlyph = p.AvatarGlyph
	}
	if p.DisplayName != "" {
		out.DisplayName = clampName(p.DisplayName)
	}
	if p.Title != "" {
		out.Title = p.Title
	}
	if p.Level > 0 {
		out.Level = p.Level
	}
	if p.XP > 0 {
		out.XP = p.XP
	}
	if p.ZonesExplored > 0 {
		out.ZonesExplored = p.ZonesExplored
	}
	if len(p.History) > 0 {
		out.History = p.History
	}
	if p.Onboarded {
		out.Onboarded = true
	}
	if len(p.Achievements) > 0 {
		out.Achievements = p.Achievements
	}
	return out
}

func clampName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxDisplayNameLen {
		return name
	}
	return string(runes[:MaxDisplayNameLen])
}

// clone makes a deep copy so callers never share slices with the store.
func (p Profile) clone() Profile {
	out := p
	if p.History != nil {
		out.History = make([]CompletionRecord, len(p.History))
		copy(out.History, p.History)
	}
	if p.Achievements != nil {
		out.Achievements = make([]Achievement, len(p.Achievements))
		copy(out.Achievements, p.Achievements)
	}
	return out
}

// HasAchievement reports whether the profile holds an entry with the ID.
func (p Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
