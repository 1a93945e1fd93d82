package progression

import "time"

// StreakResult describes one streak transition.
type StreakResult struct {
	Streak       int
	Maintained   bool
	Incremented  bool
	IsNewStreak  bool
	LastActivity time.Time
}

// AdvanceStreak applies one qualifying activity to a streak counter.
// Day boundaries are midnight-to-midnight in now's location. Same-day
// repeats keep the streak as is, a gap of exactly one day increments
// it, anything longer resets it to 1. LastActivity always comes back
// as now; the same-day case refreshes it idempotently.
func AdvanceStreak(streak int, lastActivity *time.Time, now time.Time) StreakResult {
	if lastActivity == nil {
		return StreakResult{
			Streak:       1,
			Maintained:   true,
			Incremented:  true,
			IsNewStreak:  true,
			LastActivity: now,
		}
	}

	daysDiff := daysBetween(*lastActivity, now)

	res := StreakResult{Streak: streak, LastActivity: now}
	switch {
	case daysDiff == 0:
		res.Maintained = true
	case daysDiff == 1:
		res.Streak = streak + 1
		res.Maintained = true
		res.Incremented = true
	default:
		res.Streak = 1
		res.Incremented = true
	}
	res.IsNewStreak = res.Streak == 1 && !res.Maintained
	return res
}

func daysBetween(from, to time.Time) int {
	return int(midnight(to).Sub(midnight(from)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
