package timex

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownDayKind is returned by First and Last for an undefined DayKind.
var ErrUnknownDayKind = errors.New("unknown day kind")

// DayKind selects a calendar day relative to a month, a year or a week.
// The weekday kinds of a month line up with time.Weekday; the year kinds
// are the month kinds with the yearBit set.
type DayKind int

const (
	SundayOfMonth DayKind = iota
	MondayOfMonth
	TuesdayOfMonth
	WednesdayOfMonth
	ThursdayOfMonth
	FridayOfMonth
	SaturdayOfMonth
	DayOfMonth
)

const yearBit DayKind = 0b1000

const (
	SundayOfYear DayKind = yearBit + iota
	MondayOfYear
	TuesdayOfYear
	WednesdayOfYear
	ThursdayOfYear
	FridayOfYear
	SaturdayOfYear
	DayOfYear
	DayOfWeek
)

func (k DayKind) String() string {
	switch {
	case k >= SundayOfMonth && k <= SaturdayOfMonth:
		return time.Weekday(k).String() + "OfMonth"
	case k == DayOfMonth:
		return "DayOfMonth"
	case k >= SundayOfYear && k <= SaturdayOfYear:
		return time.Weekday(k&^yearBit).String() + "OfYear"
	case k == DayOfYear:
		return "DayOfYear"
	case k == DayOfWeek:
		return "DayOfWeek"
	}
	return fmt.Sprintf("DayKind(%d)", int(k))
}

// Midnight returns the start of t's day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SetClock returns midnight of t's day plus d.
func SetClock(t time.Time, d time.Duration) time.Time {
	return Midnight(t).Add(d)
}

// Clock carries optional time-of-day components for SetTime. Nil fields
// keep the component of the original time.
type Clock struct {
	Hour, Minute, Second, Nanosecond *int
}

// SetTime replaces the components of t's time of day named in c.
// Out-of-range values normalise the way time.Date does.
func SetTime(t time.Time, c Clock) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond()
	pick(&h, c.Hour)
	pick(&mi, c.Minute)
	pick(&s, c.Second)
	pick(&ns, c.Nanosecond)
	return time.Date(y, mo, d, h, mi, s, ns, t.Location())
}

// SetDate replaces the named date components of t, keeping its time of day.
// A zero year, month or day keeps the original component.
func SetDate(t time.Time, year int, month time.Month, day int) time.Time {
	y, mo, d := t.Date()
	if year != 0 {
		y = year
	}
	if month != 0 {
		mo = month
	}
	if day != 0 {
		d = day
	}
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), t.Location())
}

func pick(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// Int returns a pointer to v, for filling Clock literals.
func Int(v int) *int { return &v }

// Next returns midnight of the first day strictly after t that falls on wd.
func Next(t time.Time, wd time.Weekday) time.Time {
	diff := int(wd) - int(t.Weekday())
	if diff <= 0 {
		diff += 7
	}
	return Midnight(t).AddDate(0, 0, diff)
}

// Previous returns midnight of the last day strictly before t that falls on wd.
func Previous(t time.Time, wd time.Weekday) time.Time {
	diff := int(wd) - int(t.Weekday())
	if diff >= 0 {
		diff -= 7
	}
	return Midnight(t).AddDate(0, 0, diff)
}

// First returns midnight of the first day of the given kind in t's month,
// year or week (weeks start on Sunday).
func First(t time.Time, kind DayKind) (time.Time, error) {
	day := Midnight(t)
	switch {
	case kind >= SundayOfMonth && kind <= DayOfMonth:
		return firstFrom(day.AddDate(0, 0, 1-day.Day()), kind), nil
	case kind >= SundayOfYear && kind <= DayOfYear:
		return firstFrom(SetDate(day, 0, time.January, 1), kind&^yearBit), nil
	case kind == DayOfWeek:
		if day.Weekday() == time.Sunday {
			return day, nil
		}
		return Previous(day, time.Sunday), nil
	}
	return time.Time{}, fmt.Errorf("first %v: %w", kind, ErrUnknownDayKind)
}

// firstFrom returns start itself for DayOfMonth, otherwise the first day on
// or after start that falls on the weekday of kind.
func firstFrom(start time.Time, kind DayKind) time.Time {
	if kind == DayOfMonth || start.Weekday() == time.Weekday(kind) {
		return start
	}
	return Next(start, time.Weekday(kind))
}

// Last returns midnight of the last day of the given kind in t's month,
// year or week (weeks end on Saturday).
func Last(t time.Time, kind DayKind) (time.Time, error) {
	day := Midnight(t)
	switch {
	case kind >= SundayOfMonth && kind <= DayOfMonth:
		firstOfNext := day.AddDate(0, 1, 1-day.Day())
		return lastFrom(firstOfNext.AddDate(0, 0, -1), kind), nil
	case kind >= SundayOfYear && kind <= DayOfYear:
		return lastFrom(SetDate(day, 0, time.December, 31), kind&^yearBit), nil
	case kind == DayOfWeek:
		if day.Weekday() == time.Saturday {
			return day, nil
		}
		return Next(day, time.Saturday), nil
	}
	return time.Time{}, fmt.Errorf("last %v: %w", kind, ErrUnknownDayKind)
}

// lastFrom returns end itself for DayOfMonth, otherwise the last day on or
// before end that falls on the weekday of kind.
func lastFrom(end time.Time, kind DayKind) time.Time {
	if kind == DayOfMonth || end.Weekday() == time.Weekday(kind) {
		return end
	}
	return Previous(end, time.Weekday(kind))
}
