package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var streakNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestAdvanceStreak_FirstActivity(t *testing.T) {
	res := AdvanceStreak(0, nil, streakNow)

	assert.Equal(t, 1, res.Streak)
	assert.True(t, res.Incremented)
	assert.True(t, res.IsNewStreak)
	assert.Equal(t, streakNow, res.LastActivity)
}

func TestAdvanceStreak_SameDay(t *testing.T) {
	last := streakNow.Add(-3 * time.Hour)
	res := AdvanceStreak(4, &last, streakNow)

	assert.Equal(t, 4, res.Streak)
	assert.True(t, res.Maintained)
	assert.False(t, res.Incremented)
	assert.False(t, res.IsNewStreak)
	// Repeated same-day calls keep refreshing the activity timestamp.
	assert.Equal(t, streakNow, res.LastActivity)
}

func TestAdvanceStreak_NextDay(t *testing.T) {
	last := streakNow.AddDate(0, 0, -1)
	res := AdvanceStreak(4, &last, streakNow)

	assert.Equal(t, 5, res.Streak)
	assert.True(t, res.Maintained)
	assert.True(t, res.Incremented)
}

func TestAdvanceStreak_NextDayCrossesMidnight(t *testing.T) {
	// 23:50 yesterday to 00:10 today is a 20 minute gap but still a
	// one day difference on calendar days.
	last := time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 0, 10, 0, 0, time.UTC)

	res := AdvanceStreak(2, &last, now)
	assert.Equal(t, 3, res.Streak)
	assert.True(t, res.Incremented)
}

func TestAdvanceStreak_Lapsed(t *testing.T) {
	last := streakNow.AddDate(0, 0, -5)
	res := AdvanceStreak(12, &last, streakNow)

	assert.Equal(t, 1, res.Streak)
	assert.False(t, res.Maintained)
	assert.True(t, res.Incremented)
	assert.True(t, res.IsNewStreak)
}

func TestAdvanceStreak_SameDayIdempotent(t *testing.T) {
	last := streakNow.AddDate(0, 0, -1)
	first := AdvanceStreak(4, &last, streakNow)

	// Second qualifying action on the same day must not increment again.
	second := AdvanceStreak(first.Streak, &first.LastActivity, streakNow.Add(time.Hour))
	assert.Equal(t, first.Streak, second.Streak)
	assert.False(t, second.Incremented)
}
