package dto

import "time"

// Dashboard DTOs
type DashboardResponse struct {
	User                DashboardUser            `json:"user"`
	LessonsCompleted    int                      `json:"lessons_completed"`
	ChallengesSolved    int                      `json:"challenges_solved"`
	CompletedLessons    []string                 `json:"completed_lessons"` // "moduleId/lessonId" keys
	CompletedChallenges []string                 `json:"completed_challenges"`
	Achievements        []EarnedAchievement      `json:"achievements"`
	NextLesson          *NextLessonResponse      `json:"next_lesson"`
	RecentActivity      []RecentActivityResponse `json:"recent_activity"`
}

type DashboardUser struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Image      string    `json:"image"`
	XP         int       `json:"xp"`
	Level      int       `json:"level"`
	Streak     int       `json:"streak"`
	JoinedDate time.Time `json:"joined_date"`
}

type EarnedAchievement struct {
	ID          string    `json:"id"` // catalog slug
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}

type NextLessonResponse struct {
	ModuleID string `json:"module_id"`
	LessonID string `json:"lesson_id"`
	Title    string `json:"title"`
}

type RecentActivityResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"` // lesson, challenge, achievement
	Title string `json:"title"`
	Time  string `json:"time"` // relative, e.g. "2 hours ago"
	XP    int    `json:"xp"`
}
