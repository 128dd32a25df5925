package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardEntry_Record(t *testing.T) {
	tests := []struct {
		name             string
		outcomes         []bool
		scores           []int
		expectedWins     int
		expectedWinRate  int
		expectedAvgScore int
	}{
		{
			name:             "first win",
			outcomes:         []bool{true},
			scores:           []int{240},
			expectedWins:     1,
			expectedWinRate:  100,
			expectedAvgScore: 240,
		},
		{
			name:             "first loss",
			outcomes:         []bool{false},
			scores:           []int{127},
			expectedWins:     0,
			expectedWinRate:  0,
			expectedAvgScore: 127,
		},
		{
			name:             "one win one loss",
			outcomes:         []bool{true, false},
			scores:           []int{250, 150},
			expectedWins:     1,
			expectedWinRate:  50,
			expectedAvgScore: 200,
		},
		{
			name:             "two of three rounds up",
			outcomes:         []bool{true, true, false},
			scores:           []int{200, 201, 201},
			expectedWins:     2,
			expectedWinRate:  67,
			expectedAvgScore: 201,
		},
		{
			name:             "one of three rounds down",
			outcomes:         []bool{false, true, false},
			scores:           []int{100, 100, 100},
			expectedWins:     1,
			expectedWinRate:  33,
			expectedAvgScore: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewLeaderboardEntry(1, "CleverThinker42")
			for i, won := range tt.outcomes {
				entry.Record(won, tt.scores[i])
			}

			assert.Equal(t, len(tt.outcomes), entry.TotalBattles)
			assert.Equal(t, tt.expectedWins, entry.Wins)
			assert.Equal(t, tt.expectedWinRate, entry.WinRate)
			assert.Equal(t, tt.expectedAvgScore, entry.AvgScore)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodAllTime, ParsePeriod("all-time"))
	assert.Equal(t, PeriodMonthly, ParsePeriod("monthly"))
	assert.Equal(t, PeriodWeekly, ParsePeriod("weekly"))
	assert.Equal(t, PeriodAllTime, ParsePeriod("yearly"))
	assert.Equal(t, PeriodAllTime, ParsePeriod(""))
}

func TestPeriod_Since(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	assert.True(t, PeriodAllTime.Since(now).IsZero())
	assert.Equal(t, time.Date(2026, 3, 24, 12, 0, 0, 0, time.UTC), PeriodWeekly.Since(now))
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), PeriodMonthly.Since(now))
}
