package domain

import "time"

const DayKeyLayout = "2006-01-02"

// DayBounds returns the boundaries of the calendar day containing t:
// local midnight and 23:59:59.999 in t's location. Every "today"
// computation in the system goes through this function so that food,
// water and weight logs all agree on what a day is.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// DayKey truncates a timestamp to its calendar-day string (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// AgeAt returns full years between birth and now, accounting for whether
// the birthday has already happened this year.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
