package model

import "time"

// LessonProgress is one user's state for one catalog lesson. The ids come
// from the static curriculum, there is no lessons table to reference.
type LessonProgress struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"not null;uniqueIndex:idx_lesson_progress,priority:1"`
	ModuleID    string     `json:"module_id" gorm:"not null;uniqueIndex:idx_lesson_progress,priority:2"`
	LessonID    string     `json:"lesson_id" gorm:"not null;uniqueIndex:idx_lesson_progress,priority:3"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	TimeSpent   int        `json:"time_spent" gorm:"default:0"` // cumulative seconds
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ChallengeProgress tracks attempts at a coding challenge. Code holds the
// last submission regardless of outcome; BestTime only ever improves.
type ChallengeProgress struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"not null;uniqueIndex:idx_challenge_progress,priority:1"`
	ChallengeID string     `json:"challenge_id" gorm:"not null;uniqueIndex:idx_challenge_progress,priority:2"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	Attempts    int        `json:"attempts" gorm:"default:0"`
	Code        string     `json:"code" gorm:"type:text"`
	BestTime    *int       `json:"best_time"` // seconds
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
