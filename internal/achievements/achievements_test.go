package achievements

import "testing"

func TestLookup(t *testing.T) {
	d, ok := Lookup(WelcomeAboardID)
	if !ok || d.Name == "" || d.Icon == "" {
		t.Errorf("expected a complete definition, got %+v (ok=%v)", d, ok)
	}

	if _, ok := Lookup("no_such_id"); ok {
		t.Error("unknown ID should not resolve")
	}
}

func TestAllCoversCatalog(t *testing.T) {
	all := All()
	if len(all) != len(catalog) {
		t.Errorf("All returned %d entries, catalog has %d", len(all), len(catalog))
	}
	seen := map[string]bool{}
	for _, d := range all {
		if seen[d.ID] {
			t.Errorf("duplicate ID %q in All()", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestEarnedBy(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		want []string
	}{
		{"fresh profile", Snapshot{Level: 1}, nil},
		{"first trial", Snapshot{Level: 1, TrialsCompleted: 1, LastGrade: "B"}, []string{FirstContactID}},
		{"perfect grade", Snapshot{Level: 1, TrialsCompleted: 2, LastGrade: "S"}, []string{FirstContactID, FlawlessRunID}},
		{"explorer", Snapshot{Level: 1, ZonesExplored: 5}, []string{PathfinderID}},
		{"level five", Snapshot{Level: 5}, []string{RisingStarID}},
		{"level ten includes five", Snapshot{Level: 10}, []string{RisingStarID, NovaVeteranID}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			earned := EarnedBy(tc.snap)
			ids := map[string]bool{}
			for _, d := range earned {
				ids[d.ID] = true
			}
			if len(earned) != len(tc.want) {
				t.Errorf("got %d entries, want %d (%v)", len(earned), len(tc.want), earned)
			}
			for _, id := range tc.want {
				if !ids[id] {
					t.Errorf("missing expected achievement %q", id)
				}
			}
		})
	}
}
