package timeutil

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the calendar date format used throughout the store.
	// ISO dates sort lexicographically in chronological order.
	DateLayout = "2006-01-02"
	// TimeLayout is the zero-padded 24-hour time-of-day format.
	TimeLayout = "15:04:05"
	// MinuteLayout is the time-of-day format used for cutoff settings.
	MinuteLayout = "15:04"
)

// Clock produces the current instant. Injected into services so that
// time-dependent behavior is testable.
type Clock interface {
	Now() time.Time
}

// ZonedClock is a Clock that reports the system time in one fixed civil zone,
// regardless of the zone the process runs in.
type ZonedClock struct {
	loc *time.Location
}

func NewZonedClock(loc *time.Location) ZonedClock {
	return ZonedClock{loc: loc}
}

func (c ZonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FormatDate renders t as a calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders the time-of-day of t with seconds.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatMinute renders the time-of-day of t without seconds.
func FormatMinute(t time.Time) string {
	return t.Format(MinuteLayout)
}

// ParseTimeOnDate combines a calendar date string with a time-of-day string
// ("15:04" or "15:04:05") into an instant in the given location.
func ParseTimeOnDate(date string, timeStr string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	t, err := time.Parse(MinuteLayout, timeStr)
	if err != nil {
		t, err = time.Parse(TimeLayout, timeStr)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", timeStr, err)
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

// MinuteOfDay converts an "HH:MM" or "HH:MM:SS" string to minutes since midnight.
func MinuteOfDay(timeStr string) (int, error) {
	t, err := time.Parse(MinuteLayout, timeStr)
	if err != nil {
		t, err = time.Parse(TimeLayout, timeStr)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", timeStr, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// NormalizeToSeconds pads an "HH:MM" string to "HH:MM:SS". Strings that already
// carry seconds are returned unchanged.
func NormalizeToSeconds(timeStr string) string {
	if len(timeStr) == len(MinuteLayout) {
		return timeStr + ":00"
	}
	return timeStr
}

// HoursBetween computes the duration between two instants in hours, rounded to
// two decimal places and clamped at zero.
func HoursBetween(checkIn, checkOut time.Time) decimal.Decimal {
	hours := decimal.NewFromFloat(checkOut.Sub(checkIn).Hours()).Round(2)
	if hours.IsNegative() {
		return decimal.Zero
	}
	return hours
}
