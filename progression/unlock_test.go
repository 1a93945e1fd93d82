package progression

import "testing"

func TestIsDomainUnlocked(t *testing.T) {
	tests := []struct {
		rank  string
		level int
		want  bool
	}{
		{RankF, 1, true},
		{RankE, 10, false},
		{RankE, 11, true},
		{RankB, 40, false},
		{RankB, 41, true},
		{RankA, 51, true},
		// No unlock entries above A-Rank: locked short of level 999.
		{RankS, 71, false},
		{RankMonarch, 100, false},
		{RankS, 999, true},
		{"made-up-rank", 500, false},
	}

	for _, tc := range tests {
		if got := IsDomainUnlocked(tc.rank, tc.level); got != tc.want {
			t.Errorf("IsDomainUnlocked(%q, %d) = %v, want %v", tc.rank, tc.level, got, tc.want)
		}
	}
}

func TestRequiredLevelForRank_Unknown(t *testing.T) {
	if got := RequiredLevelForRank("Z-Rank"); got != 999 {
		t.Errorf("RequiredLevelForRank(Z-Rank) = %d, want 999", got)
	}
}
