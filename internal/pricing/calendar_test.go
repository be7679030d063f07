package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		n, err := Nights(date(2026, time.March, 2), date(2026, time.March, 5))
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		checkIn := time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, time.March, 4, 11, 0, 0, 0, time.UTC)
		n, err := Nights(checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("same day is rejected", func(t *testing.T) {
		_, err := Nights(date(2026, time.March, 2), date(2026, time.March, 2))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("reversed range is rejected", func(t *testing.T) {
		_, err := Nights(date(2026, time.March, 5), date(2026, time.March, 2))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestHasWeekendNight(t *testing.T) {
	// 2 Mar 2026 is a Monday
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"monday to thursday", date(2026, time.March, 2), date(2026, time.March, 5), false},
		{"wednesday to friday excludes checkout day", date(2026, time.March, 4), date(2026, time.March, 6), false},
		{"friday night included", date(2026, time.March, 6), date(2026, time.March, 7), true},
		{"saturday night included", date(2026, time.March, 7), date(2026, time.March, 8), true},
		{"sunday night only", date(2026, time.March, 8), date(2026, time.March, 9), false},
		{"week-long stay", date(2026, time.March, 2), date(2026, time.March, 9), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasWeekendNight(tc.checkIn, tc.checkOut))
		})
	}
}
