// Package progress holds the XP and leveling math shared by the session
// store and the view layer.
package progress

// xpPerLevel is the XP required to advance from level n to n+1.
// Level 1→2 costs 250, 2→3 costs 500, and so on.
const xpPerLevel = 250

// LevelForXP returns the level reached with the given total XP.
// Levels start at 1; negative XP is treated as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := 1
	need := xpPerLevel
	for xp >= need {
		xp -= need
		level++
		need = xpPerLevel * level
	}
	return level
}

// XPIntoLevel returns how much XP has been earned within the current level.
func XPIntoLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	need := xpPerLevel
	for xp >= need {
		xp -= need
		need += xpPerLevel
	}
	return xp
}

// XPToNextLevel returns the total XP span of the current level, i.e. the
// amount needed to go from the level floor to the next level.
func XPToNextLevel(xp int) int {
	return xpPerLevel * LevelForXP(xp)
}

// GradeForScore maps an accuracy ratio (0.0-1.0) to a letter grade.
func GradeForScore(accuracy float64) string {
	switch {
	case accuracy >= 0.95:
		return "S"
	case accuracy >= 0.85:
		return "A"
	case accuracy >= 0.70:
		return "B"
	case accuracy >= 0.50:
		return "C"
	default:
		return "D"
	}
}

// XPForTrial returns the XP award for a trial with the given accuracy,
// scaled by question count.
func XPForTrial(accuracy float64, questions int) int {
	if questions <= 0 {
		return 0
	}
	base := 20 * questions
	bonus := int(float64(base) * accuracy)
	return base/2 + bonus
}
