package progression

// lockedLevel gates ranks with no entry in the unlock table. S-Rank and
// Monarch domains deliberately resolve here, which makes them
// unreachable through the level check alone.
const lockedLevel = 999

var rankUnlockLevels = map[string]int{
	RankF: 1,
	RankE: 11,
	RankD: 21,
	RankC: 31,
	RankB: 41,
	RankA: 51,
}

// RequiredLevelForRank returns the minimum level needed to enter a
// domain of the given rank. Unknown ranks require level 999.
func RequiredLevelForRank(rank string) int {
	if lvl, ok := rankUnlockLevels[rank]; ok {
		return lvl
	}
	return lockedLevel
}

// IsDomainUnlocked reports whether a user at userLevel can enter a
// domain gated at domainRank.
func IsDomainUnlocked(domainRank string, userLevel int) bool {
	return userLevel >= RequiredLevelForRank(domainRank)
}
