package money

import (
	"fmt"
	"time"
)

// Cadence is the spacing between consecutive installment due dates.
type Cadence string

const (
	Monthly  Cadence = "monthly"
	Weekly   Cadence = "weekly"
	Biweekly Cadence = "biweekly"
)

// ParseCadence maps a wire value to a Cadence. The empty string means Monthly.
func ParseCadence(s string) (Cadence, error) {
	switch Cadence(s) {
	case "", Monthly:
		return Monthly, nil
	case Weekly:
		return Weekly, nil
	case Biweekly:
		return Biweekly, nil
	default:
		return "", fmt.Errorf("unknown cadence %q", s)
	}
}

// ScheduleDueDates returns n due dates starting at anchor.
//
// Monthly steps are always computed from the anchor's day of month and clamped
// to the length of the target month, so a 31st anchor yields Feb 28 (or 29)
// and then Mar 31 again rather than drifting to the 28th.
func ScheduleDueDates(anchor time.Time, n int, cadence Cadence) []time.Time {
	if n < 1 {
		return nil
	}

	dates := make([]time.Time, n)
	for i := 0; i < n; i++ {
		switch cadence {
		case Weekly:
			dates[i] = anchor.AddDate(0, 0, 7*i)
		case Biweekly:
			dates[i] = anchor.AddDate(0, 0, 14*i)
		default:
			dates[i] = addMonthsClamped(anchor, i)
		}
	}
	return dates
}

func addMonthsClamped(t time.Time, months int) time.Time {
	// Normalize to the first of the target month, then clamp the day.
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
