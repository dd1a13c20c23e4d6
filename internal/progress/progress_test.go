package progress

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{-10, 1},
		{0, 1},
		{249, 1},
		{250, 2},
		{749, 2},
		{750, 3},
		{1500, 4},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestXPIntoLevelConsistentWithLevel(t *testing.T) {
	for _, xp := range []int{0, 100, 250, 600, 1499, 3000} {
		into := XPIntoLevel(xp)
		span := XPToNextLevel(xp)
		if into < 0 || into >= span {
			t.Errorf("xp %d: into %d out of range [0, %d)", xp, into, span)
		}
	}
}

func TestGradeForScore(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     string
	}{
		{1.0, "S"},
		{0.95, "S"},
		{0.9, "A"},
		{0.8, "B"},
		{0.6, "C"},
		{0.2, "D"},
		{0, "D"},
	}
	for _, tc := range cases {
		if got := GradeForScore(tc.accuracy); got != tc.want {
			t.Errorf("GradeForScore(%v) = %q, want %q", tc.accuracy, got, tc.want)
		}
	}
}

func TestXPForTrial(t *testing.T) {
	if got := XPForTrial(1.0, 5); got != 150 {
		t.Errorf("perfect run of 5 should award 150, got %d", got)
	}
	if got := XPForTrial(0, 5); got != 50 {
		t.Errorf("a zero-accuracy run still awards the base, got %d", got)
	}
	if got := XPForTrial(0.8, 0); got != 0 {
		t.Errorf("no questions, no XP, got %d", got)
	}
}
