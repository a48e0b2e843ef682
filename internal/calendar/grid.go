// Package calendar computes the month-view layout: a fixed 6x7 Sunday-first
// grid, per-week horizontal bar placement for date-ranged items, and the
// upcoming-schedule list. Everything here is a pure function of its inputs;
// "today" always comes in as an argument.
package calendar

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

type Day struct {
	Date    time.Time
	InMonth bool // false for prev/next-month padding cells
}

type Week struct {
	Days [7]Day
}

func (w Week) Start() time.Time { return w.Days[0].Date }
func (w Week) End() time.Time   { return w.Days[6].Date }

// MonthGrid builds the 42-cell grid for a month: trailing days of the
// previous month pad the first row up to the month's starting weekday
// (0=Sunday), then every day of the month, then leading days of the next
// month up to 42 cells. Always 6 weeks, even when the month fits in 5;
// the trailing week may be entirely padding.
func MonthGrid(year int, month time.Month) [6]Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())

	var days []Day
	for i := lead; i > 0; i-- {
		days = append(days, Day{Date: first.AddDate(0, 0, -i)})
	}
	for d := 0; d < daysInMonth(year, month); d++ {
		days = append(days, Day{Date: first.AddDate(0, 0, d), InMonth: true})
	}
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; len(days) < 42; i++ {
		days = append(days, Day{Date: next.AddDate(0, 0, i)})
	}

	var weeks [6]Week
	for i := range weeks {
		copy(weeks[i].Days[:], days[i*7:i*7+7])
	}
	return weeks
}

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is the last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
