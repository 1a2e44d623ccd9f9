package timex

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2024-02-14 is a Wednesday; 2024-01-01 a Monday; 2024-12-31 a Tuesday.
var valentine = time.Date(2024, time.February, 14, 15, 30, 45, 500, time.UTC)

func TestFirstLast(t *testing.T) {
	tests := []struct {
		kind       DayKind
		first      time.Time
		last       time.Time
		kindString string
	}{
		{DayOfMonth, date(2024, 2, 1), date(2024, 2, 29), "DayOfMonth"},
		{ThursdayOfMonth, date(2024, 2, 1), date(2024, 2, 29), "ThursdayOfMonth"},
		{MondayOfMonth, date(2024, 2, 5), date(2024, 2, 26), "MondayOfMonth"},
		{FridayOfMonth, date(2024, 2, 2), date(2024, 2, 23), "FridayOfMonth"},
		{DayOfYear, date(2024, 1, 1), date(2024, 12, 31), "DayOfYear"},
		{SundayOfYear, date(2024, 1, 7), date(2024, 12, 29), "SundayOfYear"},
		{MondayOfYear, date(2024, 1, 1), date(2024, 12, 30), "MondayOfYear"},
		{TuesdayOfYear, date(2024, 1, 2), date(2024, 12, 31), "TuesdayOfYear"},
		{DayOfWeek, date(2024, 2, 11), date(2024, 2, 17), "DayOfWeek"},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if tc.kind.String() != tc.kindString {
				t.Fatalf("String = %q, want %q", tc.kind.String(), tc.kindString)
			}
			first, err := First(valentine, tc.kind)
			if err != nil {
				t.Fatalf("First: %v", err)
			}
			if !first.Equal(tc.first) {
				t.Errorf("First(%v) = %v, want %v", tc.kind, first, tc.first)
			}
			last, err := Last(valentine, tc.kind)
			if err != nil {
				t.Fatalf("Last: %v", err)
			}
			if !last.Equal(tc.last) {
				t.Errorf("Last(%v) = %v, want %v", tc.kind, last, tc.last)
			}
		})
	}

	if _, err := First(valentine, DayKind(42)); !errors.Is(err, ErrUnknownDayKind) {
		t.Fatalf("First(42) error = %v", err)
	}
	if _, err := Last(valentine, DayKind(-1)); !errors.Is(err, ErrUnknownDayKind) {
		t.Fatalf("Last(-1) error = %v", err)
	}
}

func TestNextPrevious(t *testing.T) {
	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"next same weekday", Next(valentine, time.Wednesday), date(2024, 2, 21)},
		{"next later weekday", Next(valentine, time.Friday), date(2024, 2, 16)},
		{"next earlier weekday", Next(valentine, time.Monday), date(2024, 2, 19)},
		{"previous same weekday", Previous(valentine, time.Wednesday), date(2024, 2, 7)},
		{"previous earlier weekday", Previous(valentine, time.Monday), date(2024, 2, 12)},
		{"previous later weekday", Previous(valentine, time.Saturday), date(2024, 2, 10)},
	}
	for _, tc := range tests {
		if !tc.got.Equal(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestSetTimeAndDate(t *testing.T) {
	got := SetTime(valentine, Clock{Hour: Int(9)})
	want := time.Date(2024, 2, 14, 9, 30, 45, 500, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SetTime hour = %v, want %v", got, want)
	}

	got = SetTime(valentine, Clock{Minute: Int(0), Second: Int(0), Nanosecond: Int(0)})
	want = time.Date(2024, 2, 14, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SetTime minute = %v, want %v", got, want)
	}

	got = SetClock(valentine, 90*time.Minute)
	want = time.Date(2024, 2, 14, 1, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SetClock = %v, want %v", got, want)
	}

	got = SetDate(valentine, 2023, 0, 1)
	want = time.Date(2023, 2, 1, 15, 30, 45, 500, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SetDate = %v, want %v", got, want)
	}

	loc := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2024, 6, 1, 23, 0, 0, 0, loc)
	if m := Midnight(local); m.Location() != loc || m.Day() != 1 || m.Hour() != 0 {
		t.Errorf("Midnight lost location or day: %v", m)
	}
}
