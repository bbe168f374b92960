package planner

import "time"

const DateFormat = "2006-01-02"

// WeekStart returns the Monday of the ISO week containing t, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	monday := t.AddDate(0, 0, 1-isoWeekday(t))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// isoWeekday maps time.Weekday to ISO numbering, 1=Monday .. 7=Sunday.
func isoWeekday(t time.Time) int {
	d := int(t.Weekday())
	if d == 0 {
		return 7
	}
	return d
}
