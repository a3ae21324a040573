package services

import (
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

// StreakHistoryLimit bounds how much food-log history the streak walk
// ever looks at.
const StreakHistoryLimit = 100

// CalculateStreak computes the consecutive-day logging streak ending at
// today or yesterday. Timestamps are reduced to distinct calendar days
// as stored; an entry-free day breaks the streak immediately, except
// that the still-in-progress current day is forgiven while yesterday
// holds the chain.
func CalculateStreak(timestamps []time.Time, now time.Time) int {
	if len(timestamps) == 0 {
		return 0
	}

	days := make(map[string]bool, len(timestamps))
	for _, ts := range timestamps {
		days[domain.DayKey(ts)] = true
	}

	today := domain.DayKey(now)
	yesterday := domain.DayKey(now.AddDate(0, 0, -1))

	if !days[today] && !days[yesterday] {
		return 0
	}

	cursor := now
	if !days[today] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days[domain.DayKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
