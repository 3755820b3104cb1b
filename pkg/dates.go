package pkg

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateOf returns the calendar day of t (in t's location) as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in loc as UTC midnight.
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date [%s], expected %s: %w", s, DateLayout, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween counts whole calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)).Hours() / 24)
}

// WeekStart returns the Monday of the ISO week containing day.
func WeekStart(day time.Time) time.Time {
	day = DateOf(day)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// DayRange returns the instants bounding the calendar day in loc as [from, to).
func DayRange(day time.Time, loc *time.Location) (from, to time.Time) {
	return DaysRange(day, day.AddDate(0, 0, 1), loc)
}

// DaysRange returns the instants from the start of startDay to the start of
// endDay in loc.
func DaysRange(startDay, endDay time.Time, loc *time.Location) (from, to time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := startDay.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, loc)
	y, m, d = endDay.Date()
	to = time.Date(y, m, d, 0, 0, 0, 0, loc)
	return from, to
}
