// Package xp maps cumulative experience points to levels. Pure
// functions only: level is always recomputed from total XP wherever XP
// changes, never incremented independently, so it can't drift.
package xp

// PointsPerLevel is the fixed XP cost of each level.
const PointsPerLevel = 500

// Level returns the level for a cumulative XP total. Level 1 starts at
// 0 XP; each level costs PointsPerLevel.
func Level(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/PointsPerLevel + 1
}

// NextLevelAt returns the XP total at which the next level is reached.
func NextLevelAt(totalXP int) int {
	return Level(totalXP) * PointsPerLevel
}

// ProgressInLevel returns how far through the current level the total
// is, as a fraction in [0, 1).
func ProgressInLevel(totalXP int) float64 {
	if totalXP < 0 {
		return 0
	}
	return float64(totalXP%PointsPerLevel) / float64(PointsPerLevel)
}
