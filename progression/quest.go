package progression

// QuestComplete reports whether every challenge required by a quest is
// in the completed set. Order does not matter and a quest with no
// required challenges is vacuously complete.
func QuestComplete(challengeIDs, completedChallenges []string) bool {
	if len(challengeIDs) == 0 {
		return true
	}
	completed := make(map[string]struct{}, len(completedChallenges))
	for _, id := range completedChallenges {
		completed[id] = struct{}{}
	}
	for _, id := range challengeIDs {
		if _, ok := completed[id]; !ok {
			return false
		}
	}
	return true
}

// UnionChallenge adds id to the completed set if absent and reports
// whether the set changed. Applying it twice never duplicates the id.
func UnionChallenge(completedChallenges []string, id string) ([]string, bool) {
	for _, c := range completedChallenges {
		if c == id {
			return completedChallenges, false
		}
	}
	return append(completedChallenges, id), true
}
