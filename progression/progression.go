// Package progression holds the pure leveling rules: XP to level, level
// to rank, streaks, and unlock gates. Nothing in here touches the
// database; services feed it values and persist the results.
package progression

// XPPerLevel is the fixed width of one level band.
const XPPerLevel = 100

// Rank labels, lowest to highest.
const (
	RankF       = "F-Rank"
	RankE       = "E-Rank"
	RankD       = "D-Rank"
	RankC       = "C-Rank"
	RankB       = "B-Rank"
	RankA       = "A-Rank"
	RankS       = "S-Rank"
	RankMonarch = "Monarch"
)

// CalculateLevel maps total XP to a level. Level 1 starts at 0 XP and
// every level spans exactly XPPerLevel. Negative input is treated as 0.
func CalculateLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// CalculateRank maps a level to its rank label. Thresholds are
// inclusive upper bounds per band of ten levels; everything above
// level 70 is Monarch.
func CalculateRank(level int) string {
	switch {
	case level <= 10:
		return RankF
	case level <= 20:
		return RankE
	case level <= 30:
		return RankD
	case level <= 40:
		return RankC
	case level <= 50:
		return RankB
	case level <= 60:
		return RankA
	case level <= 70:
		return RankS
	default:
		return RankMonarch
	}
}

// XPForNextLevel returns the total XP at which the next level begins.
func XPForNextLevel(xp int) int {
	return CalculateLevel(xp) * XPPerLevel
}

// XPProgress returns how far through the current level band the given
// XP sits, as a percentage in [0, 100).
func XPProgress(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	inLevel := xp - (CalculateLevel(xp)-1)*XPPerLevel
	return float64(inLevel) / float64(XPPerLevel) * 100
}

// LevelUpResult reports a level comparison between two XP totals.
type LevelUpResult struct {
	LeveledUp bool
	OldLevel  int
	NewLevel  int
}

// CheckLevelUp compares the level before and after an XP change.
// A single award can skip several levels; the result carries the jump
// as-is rather than stepping through intermediate levels.
func CheckLevelUp(oldXP, newXP int) LevelUpResult {
	oldLevel := CalculateLevel(oldXP)
	newLevel := CalculateLevel(newXP)
	return LevelUpResult{
		LeveledUp: newLevel > oldLevel,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
	}
}

// RankUpResult reports a rank comparison between two levels.
type RankUpResult struct {
	RankedUp bool
	OldRank  string
	NewRank  string
}

// CheckRankUp compares the rank before and after a level change.
func CheckRankUp(oldLevel, newLevel int) RankUpResult {
	oldRank := CalculateRank(oldLevel)
	newRank := CalculateRank(newLevel)
	return RankUpResult{
		RankedUp: oldRank != newRank,
		OldRank:  oldRank,
		NewRank:  newRank,
	}
}

// AwardResult is the full delta produced by applying an XP award.
type AwardResult struct {
	NewXP     int
	NewLevel  int
	NewRank   string
	OldLevel  int
	OldRank   string
	LeveledUp bool
	RankedUp  bool
}

// ApplyAward adds amount to oldXP and recomputes level and rank.
// This is the only mutation rule for XP; callers persist NewXP,
// NewLevel and NewRank together so the stored triple stays consistent.
func ApplyAward(oldXP, amount int) AwardResult {
	newXP := oldXP + amount
	levelUp := CheckLevelUp(oldXP, newXP)
	rankUp := CheckRankUp(levelUp.OldLevel, levelUp.NewLevel)
	return AwardResult{
		NewXP:     newXP,
		NewLevel:  levelUp.NewLevel,
		NewRank:   rankUp.NewRank,
		OldLevel:  levelUp.OldLevel,
		OldRank:   rankUp.OldRank,
		LeveledUp: levelUp.LeveledUp,
		RankedUp:  rankUp.RankedUp,
	}
}
