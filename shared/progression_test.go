package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{10000, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestXPForLevelRoundTrips(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(1))
	assert.Equal(t, 100, XPForLevel(2))
	assert.Equal(t, 400, XPForLevel(3))

	for level := 1; level <= 10; level++ {
		xp := XPForLevel(level)
		assert.Equal(t, level, LevelForXP(xp), "level=%d", level)
	}
}

func TestComputeStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	sameDay := now.Add(-2 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)

	assert.Equal(t, 5, ComputeStreak(5, nil, now), "no recorded activity keeps the stored value")
	assert.Equal(t, 5, ComputeStreak(5, &sameDay, now))
	assert.Equal(t, 5, ComputeStreak(5, &yesterday, now), "reads never increment")
	assert.Equal(t, 0, ComputeStreak(5, &lastWeek, now), "a gap invalidates the streak")
}

func TestComputeStreakUsesCalendarDays(t *testing.T) {
	// 23:30 yesterday to 00:30 today is one hour apart but one calendar day.
	now := time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC)
	lateYesterday := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 3, ComputeStreak(3, &lateYesterday, now))

	twoDaysBack := time.Date(2026, 3, 8, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 0, ComputeStreak(3, &twoDaysBack, now))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "Just now"},
		{now.Add(-time.Minute), "1 minute ago"},
		{now.Add(-45 * time.Minute), "45 minutes ago"},
		{now.Add(-time.Hour), "1 hour ago"},
		{now.Add(-23 * time.Hour), "23 hours ago"},
		{now.Add(-30 * time.Hour), "Yesterday"},
		{now.AddDate(0, 0, -3), "3 days ago"},
		{now.AddDate(0, 0, -10), "2/28/2026"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeAgo(tt.at, now))
	}
}
