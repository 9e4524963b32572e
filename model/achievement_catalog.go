package model

import "encoding/json"

// DefaultAchievements returns the built-in badge catalog. Used to seed an
// empty achievements table.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			Slug:        "first-lesson",
			Title:       "First Steps",
			Description: "Complete your first lesson",
			Icon:        "book-open",
			Category:    "learning",
			Requirement: mustRequirement(AchievementRequirement{LessonsCompleted: 1}),
			XPReward:    25,
			IsActive:    true,
		},
		{
			Slug:        "week-streak",
			Title:       "Week Warrior",
			Description: "7-day learning streak",
			Icon:        "flame",
			Category:    "streak",
			Requirement: mustRequirement(AchievementRequirement{StreakDays: 7}),
			XPReward:    100,
			IsActive:    true,
		},
		{
			Slug:        "first-challenge",
			Title:       "Problem Solver",
			Description: "Solve your first challenge",
			Icon:        "code",
			Category:    "challenge",
			Requirement: mustRequirement(AchievementRequirement{ChallengesSolved: 1}),
			XPReward:    50,
			IsActive:    true,
		},
		{
			Slug:        "ten-lessons",
			Title:       "Dedicated Learner",
			Description: "Complete 10 lessons",
			Icon:        "star",
			Category:    "learning",
			Requirement: mustRequirement(AchievementRequirement{LessonsCompleted: 10}),
			XPReward:    100,
			IsActive:    true,
		},
		{
			Slug:        "all-beginner",
			Title:       "Beginner Master",
			Description: "Complete all beginner lessons",
			Icon:        "award",
			Category:    "learning",
			Requirement: mustRequirement(AchievementRequirement{LessonsCompleted: 16}),
			XPReward:    250,
			IsActive:    true,
		},
		{
			Slug:        "month-streak",
			Title:       "Monthly Champion",
			Description: "30-day learning streak",
			Icon:        "trophy",
			Category:    "streak",
			Requirement: mustRequirement(AchievementRequirement{StreakDays: 30}),
			XPReward:    500,
			IsActive:    true,
		},
		{
			Slug:        "xp-1000",
			Title:       "XP Collector",
			Description: "Earn 1,000 total XP",
			Icon:        "zap",
			Category:    "xp",
			Requirement: mustRequirement(AchievementRequirement{TotalXP: 1000}),
			XPReward:    150,
			IsActive:    true,
		},
	}
}

func mustRequirement(req AchievementRequirement) json.RawMessage {
	b, err := json.Marshal(req)
	if err != nil {
		panic(err)
	}
	return b
}
