package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// sheetEpoch is day zero of spreadsheet serial dates. Starting at 1899-12-30 instead of
// 1900-01-01 absorbs the fictitious 1900-02-29 of the spreadsheet calendar.
var sheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var sheetMonths = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

var (
	// 9:30am, 9:30 PM, 9am, 14:00, 9
	timeOfDayPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
)

// TimeOfDay is a wall clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Hours returns the time as fractional hours, 9:30pm is 21.5.
func (t TimeOfDay) Hours() float64 {
	return float64(t.Hour) + float64(t.Minute)/60
}

// Format renders the time the way the configuration sheet writes it, e.g. "9:30pm".
func (t TimeOfDay) Format() string {
	suffix := "am"
	if t.Hour >= 12 {
		suffix = "pm"
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, t.Minute, suffix)
}

// ParseTimeOfDay parses "H:MMam", "H:MM pm", "Ham" and 24 hour "HH:MM" strings.
// With an am/pm marker the hour is taken modulo 12, so "12:15am" is 0:15 and "12pm" is noon.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, ".", "")

	m := timeOfDayPattern.FindStringSubmatch(normalized)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return TimeOfDay{}, err
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil {
			return TimeOfDay{}, err
		}
	}
	if minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}

	switch m[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, fmt.Errorf("hour %d out of range for 12-hour format", hour)
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
	default:
		if hour > 23 {
			return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// TimeToHours converts a sheet time like "9:30pm" into fractional hours (21.5).
func TimeToHours(s string) (float64, error) {
	timeOfDay, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	return timeOfDay.Hours(), nil
}

// SerialToDate converts a spreadsheet serial into local midnight of that calendar day in loc.
// The fractional (time of day) part of the serial is dropped.
func SerialToDate(serial float64, loc *time.Location) time.Time {
	days := int(math.Floor(serial))
	day := sheetEpoch.AddDate(0, 0, days)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
}

// DateToSerial is the inverse of SerialToDate for the calendar day of date.
func DateToSerial(date time.Time) float64 {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return float64((day.Unix() - sheetEpoch.Unix()) / 86400)
}

// ParseSheetDate resolves a "Closed on" style value. The value is either a spreadsheet serial
// ("45988", "45988.5") or a string like "Thu Nov 27 2025". timeOfDay is optional and only
// applies to the string form.
func ParseSheetDate(value, timeOfDay string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if math.IsNaN(serial) || math.IsInf(serial, 0) {
			return time.Time{}, fmt.Errorf("invalid serial %q", value)
		}
		return SerialToDate(serial, loc), nil
	}

	fields := strings.Fields(value)
	if len(fields) < 4 {
		return time.Time{}, fmt.Errorf("expected \"<Weekday> <Mon> <DD> <YYYY>\", got %q", value)
	}

	month := monthIndex(fields[1])
	if month < 0 {
		return time.Time{}, fmt.Errorf("unknown month %q", fields[1])
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", fields[2], err)
	}
	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q: %w", fields[3], err)
	}

	var clock TimeOfDay
	if strings.TrimSpace(timeOfDay) != "" {
		clock, err = ParseTimeOfDay(timeOfDay)
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(year, time.Month(month+1), day, clock.Hour, clock.Minute, 0, 0, loc), nil
}

func monthIndex(name string) int {
	name = strings.ToLower(name)
	if len(name) < 3 {
		return -1
	}
	for i, month := range sheetMonths {
		if name[:3] == month {
			return i
		}
	}
	return -1
}

// IsSameDate compares calendar day, month and year, ignoring the time of day.
func IsSameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
