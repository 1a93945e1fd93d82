package progression

import "testing"

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{999, 10},
		{1000, 11},
		{-5, 1},
	}

	for _, tc := range tests {
		if got := CalculateLevel(tc.xp); got != tc.want {
			t.Errorf("CalculateLevel(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestCalculateLevel_NonDecreasing(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 10000; xp += 7 {
		lvl := CalculateLevel(xp)
		if lvl < 1 {
			t.Fatalf("CalculateLevel(%d) = %d, want >= 1", xp, lvl)
		}
		if lvl < prev {
			t.Fatalf("CalculateLevel decreased at xp=%d: %d -> %d", xp, prev, lvl)
		}
		prev = lvl
	}
}

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, RankF},
		{10, RankF},
		{11, RankE},
		{20, RankE},
		{21, RankD},
		{40, RankC},
		{41, RankB},
		{60, RankA},
		{70, RankS},
		{71, RankMonarch},
		{999, RankMonarch},
	}

	for _, tc := range tests {
		if got := CalculateRank(tc.level); got != tc.want {
			t.Errorf("CalculateRank(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestXPProgress_Bounds(t *testing.T) {
	for xp := 0; xp <= 5000; xp++ {
		p := XPProgress(xp)
		if p < 0 || p >= 100 {
			t.Fatalf("XPProgress(%d) = %f, want in [0,100)", xp, p)
		}
	}
}

func TestXPForNextLevel(t *testing.T) {
	if got := XPForNextLevel(0); got != 100 {
		t.Errorf("XPForNextLevel(0) = %d, want 100", got)
	}
	if got := XPForNextLevel(250); got != 300 {
		t.Errorf("XPForNextLevel(250) = %d, want 300", got)
	}
}

func TestCheckLevelUp_MultiLevelJump(t *testing.T) {
	res := CheckLevelUp(95, 250)
	if !res.LeveledUp {
		t.Fatal("expected level up")
	}
	if res.OldLevel != 1 || res.NewLevel != 3 {
		t.Errorf("got %d -> %d, want 1 -> 3", res.OldLevel, res.NewLevel)
	}
}

func TestCheckLevelUp_NoChange(t *testing.T) {
	res := CheckLevelUp(10, 90)
	if res.LeveledUp {
		t.Error("did not expect level up within the same band")
	}
}

func TestCheckRankUp(t *testing.T) {
	res := CheckRankUp(10, 11)
	if !res.RankedUp || res.OldRank != RankF || res.NewRank != RankE {
		t.Errorf("CheckRankUp(10, 11) = %+v", res)
	}

	res = CheckRankUp(11, 19)
	if res.RankedUp {
		t.Errorf("CheckRankUp(11, 19) ranked up unexpectedly: %+v", res)
	}
}

func TestApplyAward_SequentialAssociativity(t *testing.T) {
	base := 45

	first := ApplyAward(base, 30)
	second := ApplyAward(first.NewXP, 70)
	once := ApplyAward(base, 100)

	if second.NewXP != once.NewXP || second.NewLevel != once.NewLevel || second.NewRank != once.NewRank {
		t.Errorf("sequential awards diverged: 30+70 -> (%d, %d, %s), 100 -> (%d, %d, %s)",
			second.NewXP, second.NewLevel, second.NewRank,
			once.NewXP, once.NewLevel, once.NewRank)
	}
}

func TestApplyAward_Delta(t *testing.T) {
	res := ApplyAward(95, 155)
	if res.NewXP != 250 || res.OldLevel != 1 || res.NewLevel != 3 || !res.LeveledUp {
		t.Errorf("ApplyAward(95, 155) = %+v", res)
	}
	if res.RankedUp {
		t.Error("level 3 is still F-Rank, no rank up expected")
	}
}
