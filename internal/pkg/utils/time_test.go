package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "colon am", input: "9:30am", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "colon pm", input: "9:30pm", want: TimeOfDay{Hour: 21, Minute: 30}},
		{name: "space before marker", input: "9:30 PM", want: TimeOfDay{Hour: 21, Minute: 30}},
		{name: "hour only", input: "2pm", want: TimeOfDay{Hour: 14}},
		{name: "midnight", input: "12:00am", want: TimeOfDay{Hour: 0}},
		{name: "noon", input: "12:00pm", want: TimeOfDay{Hour: 12}},
		{name: "dotted marker", input: "8:15 p.m.", want: TimeOfDay{Hour: 20, Minute: 15}},
		{name: "24 hour", input: "14:05", want: TimeOfDay{Hour: 14, Minute: 5}},
		{name: "surrounding blanks", input: "  7:00am ", want: TimeOfDay{Hour: 7}},
		{name: "hour out of range", input: "13:00pm", wantErr: true},
		{name: "minute out of range", input: "9:75am", wantErr: true},
		{name: "24 hour out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "noonish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayFormatRoundTrip(t *testing.T) {
	for _, input := range []string{"9:30am", "12:00am", "12:45pm", "11:59pm", "1:05pm", "6am", "18:20"} {
		t.Run(input, func(t *testing.T) {
			first, err := TimeToHours(input)
			require.NoError(t, err)

			parsed, err := ParseTimeOfDay(input)
			require.NoError(t, err)
			second, err := TimeToHours(parsed.Format())
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestTimeToHours(t *testing.T) {
	hours, err := TimeToHours("9:30pm")
	require.NoError(t, err)
	assert.Equal(t, 21.5, hours)

	hours, err = TimeToHours("11am")
	require.NoError(t, err)
	assert.Equal(t, 11.0, hours)
}

func TestSerialToDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	tests := []struct {
		serial float64
		want   time.Time
	}{
		{serial: 1, want: time.Date(1899, time.December, 31, 0, 0, 0, 0, loc)},
		{serial: 25569, want: time.Date(1970, time.January, 1, 0, 0, 0, 0, loc)},
		{serial: 45988, want: time.Date(2025, time.November, 27, 0, 0, 0, 0, loc)},
		{serial: 45988.75, want: time.Date(2025, time.November, 27, 0, 0, 0, 0, loc)},
		{serial: 46016, want: time.Date(2025, time.December, 25, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		got := SerialToDate(tt.serial, loc)
		assert.True(t, tt.want.Equal(got), "serial %v: want %v, got %v", tt.serial, tt.want, got)
	}
}

func TestSerialRoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	for serial := 1.0; serial < 80000; serial += 97 {
		assert.Equal(t, serial, DateToSerial(SerialToDate(serial, loc)), "serial %v", serial)
		assert.Equal(t, serial, DateToSerial(SerialToDate(serial+0.4, time.UTC)), "serial %v with time of day", serial)
	}
}

func TestParseSheetDate(t *testing.T) {
	loc := time.UTC

	t.Run("Serial String", func(t *testing.T) {
		got, err := ParseSheetDate("45988", "", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.November, 27, 0, 0, 0, 0, loc), got)
	})

	t.Run("Human String", func(t *testing.T) {
		got, err := ParseSheetDate("Thu Nov 27 2025", "", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.November, 27, 0, 0, 0, 0, loc), got)
	})

	t.Run("Human String With Time", func(t *testing.T) {
		got, err := ParseSheetDate("Wed Dec 24 2025", "3:30 pm", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.December, 24, 15, 30, 0, 0, loc), got)
	})

	t.Run("Long Month Name", func(t *testing.T) {
		got, err := ParseSheetDate("Thursday January 1 2026", "", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, loc), got)
	})

	t.Run("Unknown Month", func(t *testing.T) {
		_, err := ParseSheetDate("Thu Foo 27 2025", "", loc)
		assert.Error(t, err)
	})

	t.Run("Too Few Fields", func(t *testing.T) {
		_, err := ParseSheetDate("Nov 27", "", loc)
		assert.Error(t, err)
	})

	t.Run("Invalid Time", func(t *testing.T) {
		_, err := ParseSheetDate("Thu Nov 27 2025", "later", loc)
		assert.Error(t, err)
	})

	t.Run("NaN Serial", func(t *testing.T) {
		_, err := ParseSheetDate("NaN", "", loc)
		assert.Error(t, err)
	})
}

func TestIsSameDate(t *testing.T) {
	morning := time.Date(2025, time.November, 27, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, time.November, 27, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, time.November, 28, 0, 0, 0, 0, time.UTC)
	nextYear := time.Date(2026, time.November, 27, 8, 0, 0, 0, time.UTC)

	assert.True(t, IsSameDate(morning, night))
	assert.False(t, IsSameDate(night, nextDay))
	assert.False(t, IsSameDate(morning, nextYear))
}

func TestParseCSV(t *testing.T) {
	assert.Equal(t, []string{"/", "order", "reservation"}, ParseCSV(" /, order ,,reservation "))
	assert.Empty(t, ParseCSV(""))
}

func TestHasAnySuffix(t *testing.T) {
	suffixes := []string{"/", "order", "reservation"}
	assert.True(t, HasAnySuffix("/", suffixes))
	assert.True(t, HasAnySuffix("/locations/downtown/order", suffixes))
	assert.True(t, HasAnySuffix("/reservation", suffixes))
	assert.False(t, HasAnySuffix("/menu", suffixes))
}
