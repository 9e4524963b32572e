package shared

import (
	"fmt"
	"math"
	"time"
)

// StartOfDay truncates t to local midnight. Streaks work on calendar days,
// not rolling 24h windows.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeStreak derives the effective streak at read time. It only ever
// invalidates a stale streak; incrementing happens on the write path when a
// qualifying activity lands on a new day.
func ComputeStreak(storedStreak int, lastActiveAt *time.Time, today time.Time) int {
	if lastActiveAt == nil {
		return storedStreak
	}

	diffDays := int(StartOfDay(today).Sub(StartOfDay(*lastActiveAt)).Hours() / 24)
	if diffDays > 1 {
		return 0
	}
	return storedStreak
}

// LevelForXP maps total XP to a level. The curve is quadratic: 1 at 0 XP,
// 2 at 100, 3 at 400, 4 at 900 and so on.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Sqrt(float64(xp)/100)) + 1
}

// XPForLevel returns the total XP needed to reach level.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// TimeAgo renders a timestamp as a relative display string.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)

	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d minute%s ago", mins, plural(mins))
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("1/2/2006")
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
