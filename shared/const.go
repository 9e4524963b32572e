package shared

const (
	UserID    = "user_id"
	UserEmail = "user_email"
	UserName  = "user_name"

	CategoryLearning  = "learning"
	CategoryStreak    = "streak"
	CategoryChallenge = "challenge"
	CategoryXP        = "xp"

	ActivityLesson      = "lesson"
	ActivityChallenge   = "challenge"
	ActivityAchievement = "achievement"

	// XP awarded for first-time completions. Achievement bonuses come
	// from the achievement definition itself.
	LessonXPReward    = 50
	ChallengeXPReward = 100
)

// Identity is the authenticated caller as carried in the bearer token claims.
type Identity struct {
	UserID string
	Email  string
	Name   string
}
