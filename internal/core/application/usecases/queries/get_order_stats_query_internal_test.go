package queries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{name: "growth", current: 15000, previous: 10000, want: 50},
		{name: "decline", current: 5000, previous: 10000, want: -50},
		{name: "no previous revenue", current: 5000, previous: 0, want: 100},
		{name: "no revenue at all", current: 0, previous: 0, want: 0},
		{name: "flat", current: 7000, previous: 7000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, revenueChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestGetOrderStatsQuery_MonthBounds(t *testing.T) {
	t.Run("should wrap across the year", func(t *testing.T) {
		q, err := NewGetOrderStatsQuery(time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		previous, current, next := q.monthBounds()

		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), previous)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), current)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("should require a reference time", func(t *testing.T) {
		_, err := NewGetOrderStatsQuery(time.Time{})

		require.Error(t, err)
	})
}
