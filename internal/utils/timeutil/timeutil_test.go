package timeutil_test

import (
	"testing"
	"time"

	"github.com/martapiva/presenze_tracker_app/internal/utils/timeutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOnDate(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name    string
		date    string
		timeStr string
		want    time.Time
		wantErr bool
	}{
		{
			name:    "time with seconds",
			date:    "2024-03-01",
			timeStr: "09:30:15",
			want:    time.Date(2024, 3, 1, 9, 30, 15, 0, loc),
		},
		{
			name:    "time without seconds",
			date:    "2024-03-01",
			timeStr: "18:00",
			want:    time.Date(2024, 3, 1, 18, 0, 0, 0, loc),
		},
		{
			name:    "invalid date",
			date:    "01-03-2024",
			timeStr: "09:00",
			wantErr: true,
		},
		{
			name:    "invalid time",
			date:    "2024-03-01",
			timeStr: "9am",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeutil.ParseTimeOnDate(tt.date, tt.timeStr, loc)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestHoursBetween(t *testing.T) {
	loc := time.UTC
	at := func(h, m int) time.Time {
		return time.Date(2024, 3, 1, h, m, 0, 0, loc)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     decimal.Decimal
	}{
		{
			name:     "standard work day",
			checkIn:  at(9, 0),
			checkOut: at(17, 30),
			want:     decimal.NewFromFloat(8.5),
		},
		{
			name:     "rounds to two decimals",
			checkIn:  at(9, 0),
			checkOut: time.Date(2024, 3, 1, 17, 20, 0, 0, loc),
			want:     decimal.NewFromFloat(8.33),
		},
		{
			name:     "zero duration",
			checkIn:  at(9, 0),
			checkOut: at(9, 0),
			want:     decimal.Zero,
		},
		{
			name:     "negative clamps to zero",
			checkIn:  at(17, 0),
			checkOut: at(9, 0),
			want:     decimal.Zero,
		},
		{
			name:     "spans midnight",
			checkIn:  at(20, 0),
			checkOut: time.Date(2024, 3, 2, 18, 0, 0, 0, loc),
			want:     decimal.NewFromInt(22),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeutil.HoursBetween(tt.checkIn, tt.checkOut)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestNormalizeToSeconds(t *testing.T) {
	assert.Equal(t, "18:00:00", timeutil.NormalizeToSeconds("18:00"))
	assert.Equal(t, "18:00:30", timeutil.NormalizeToSeconds("18:00:30"))
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		timeStr string
		want    int
		wantErr bool
	}{
		{timeStr: "00:00", want: 0},
		{timeStr: "18:00", want: 1080},
		{timeStr: "23:59:59", want: 1439},
		{timeStr: "late", wantErr: true},
	}

	for _, tt := range tests {
		got, err := timeutil.MinuteOfDay(tt.timeStr)
		if tt.wantErr {
			assert.Error(t, err, tt.timeStr)
			continue
		}
		require.NoError(t, err, tt.timeStr)
		assert.Equal(t, tt.want, got, tt.timeStr)
	}
}

func TestZonedClock(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	clock := timeutil.NewZonedClock(rome)
	now := clock.Now()

	assert.Equal(t, rome.String(), now.Location().String())
}

func TestFormatHelpers(t *testing.T) {
	instant := time.Date(2024, 3, 1, 18, 5, 9, 0, time.UTC)
	assert.Equal(t, "2024-03-01", timeutil.FormatDate(instant))
	assert.Equal(t, "18:05:09", timeutil.FormatTime(instant))
	assert.Equal(t, "18:05", timeutil.FormatMinute(instant))
}
