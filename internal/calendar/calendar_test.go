package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock фиксирует "сейчас" для тестов
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

func TestNew_UnknownTimezone(t *testing.T) {
	_, err := New(RealClock{}, "Not/AZone")
	assert.Error(t, err)
}

func TestToday_FixedTimezone(t *testing.T) {
	// 00:30 UTC 2 марта = 21:30 1 марта в Сан-Паулу (UTC-3):
	// день определяется таймзоной сервиса, не сервера
	clock := fakeClock{now: time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)}
	cal, err := New(clock, "America/Sao_Paulo")
	require.NoError(t, err)

	assert.Equal(t, Date(2026, 3, 1), cal.Today())
}

func TestToday_NormalizedToMidnight(t *testing.T) {
	clock := fakeClock{now: time.Date(2026, 3, 2, 15, 45, 12, 0, time.UTC)}
	cal, err := New(clock, "America/Sao_Paulo")
	require.NoError(t, err)

	today := cal.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.UTC, today.Location())
}

func TestWeekOf(t *testing.T) {
	cal, err := New(RealClock{}, "America/Sao_Paulo")
	require.NoError(t, err)

	tests := []struct {
		name      string
		date      time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday maps to its monday..sunday",
			date:      Date(2026, 3, 4),
			wantStart: Date(2026, 3, 2),
			wantEnd:   Date(2026, 3, 8),
		},
		{
			name:      "monday is its own week start",
			date:      Date(2026, 3, 2),
			wantStart: Date(2026, 3, 2),
			wantEnd:   Date(2026, 3, 8),
		},
		{
			name:      "sunday belongs to the preceding monday",
			date:      Date(2026, 3, 8),
			wantStart: Date(2026, 3, 2),
			wantEnd:   Date(2026, 3, 8),
		},
		{
			name:      "week spanning a month boundary",
			date:      Date(2026, 3, 31),
			wantStart: Date(2026, 3, 30),
			wantEnd:   Date(2026, 4, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := cal.WeekOf(tt.date)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestISOWeekday(t *testing.T) {
	// 2 марта 2026 - понедельник
	for offset, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		got := ISOWeekday(Date(2026, 3, 2).AddDate(0, 0, offset))
		assert.Equal(t, want, got)
	}
}

func TestNormalize(t *testing.T) {
	d := time.Date(2026, 3, 4, 17, 30, 5, 999, time.UTC)
	assert.Equal(t, Date(2026, 3, 4), Normalize(d))
}
