// Package achievements defines the fixed achievement catalog and the rules
// that decide when each entry is earned. It is a leaf package: the session
// store consults it after progress mutations and owns the granted records.
package achievements

// Definition describes one achievement in the catalog.
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// Catalog IDs. WelcomeAboardID is special: the session store seeds it on
// every first login rather than through a progress rule.
const (
	WelcomeAboardID = "welcome_aboard"
	FirstContactID  = "first_contact"
	FlawlessRunID   = "flawless_run"
	PathfinderID    = "pathfinder"
	RisingStarID    = "rising_star"
	NovaVeteranID   = "nova_veteran"
)

var catalog = map[string]Definition{
	WelcomeAboardID: {
		ID:          WelcomeAboardID,
		Name:        "Welcome Aboard",
		Description: "Joined the PrepNova crew",
		Icon:        "🚀",
	},
	FirstContactID: {
		ID:          FirstContactID,
		Name:        "First Contact",
		Description: "Completed your first trial",
		Icon:        "🎯",
	},
	FlawlessRunID: {
		ID:          FlawlessRunID,
		Name:        "Flawless Run",
		Description: "Finished a trial with a perfect grade",
		Icon:        "💯",
	},
	PathfinderID: {
		ID:          PathfinderID,
		Name:        "Pathfinder",
		Description: "Explored five zones of the station",
		Icon:        "🧭",
	},
	RisingStarID: {
		ID:          RisingStarID,
		Name:        "Rising Star",
		Description: "Reached level 5",
		Icon:        "⭐",
	},
	NovaVeteranID: {
		ID:          NovaVeteranID,
		Name:        "Nova Veteran",
		Description: "Reached level 10",
		Icon:        "🌟",
	},
}

// Lookup returns the catalog definition for an ID.
func Lookup(id string) (Definition, bool) {
	d, ok := catalog[id]
	return d, ok
}

// All returns every catalog entry in display order.
func All() []Definition {
	ids := []string{
		WelcomeAboardID, FirstContactID, FlawlessRunID,
		PathfinderID, RisingStarID, NovaVeteranID,
	}
	out := make([]Definition, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog[id])
	}
	return out
}

// Snapshot is the slice of profile state the rules need.
type Snapshot struct {
	Level           int
	TrialsCompleted int
	ZonesExplored   int
	LastGrade       string
}

// EarnedBy returns the catalog entries whose conditions the snapshot
// satisfies. The caller filters out entries already granted.
func EarnedBy(s Snapshot) []Definition {
	var earned []Definition
	if s.TrialsCompleted >= 1 {
		earned = append(earned, catalog[FirstContactID])
	}
	if s.LastGrade == "S" {
		earned = append(earned, catalog[FlawlessRunID])
	}
	if s.ZonesExplored >= 5 {
		earned = append(earned, catalog[PathfinderID])
	}
	if s.Level >= 5 {
		earned = append(earned, catalog[RisingStarID])
	}
	if s.Level >= 10 {
		earned = append(earned, catalog[NovaVeteranID])
	}
	return earned
}
