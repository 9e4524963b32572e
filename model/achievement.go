package model

import (
	"encoding/json"
	"time"
)

// Achievement is a badge definition. Requirement is a JSON object whose shape
// depends on Category, e.g. {"lessonsCompleted":1} or {"streakDays":7}.
type Achievement struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	Slug        string          `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Category    string          `json:"category"` // learning, streak, challenge, xp
	Requirement json.RawMessage `json:"requirement" gorm:"type:text"`
	XPReward    int             `json:"xp_reward" gorm:"default:0"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UserAchievement records a grant. The unique index makes grants idempotent
// under concurrent check runs.
type UserAchievement struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_achievement,priority:1"`
	AchievementID string    `json:"achievement_id" gorm:"not null;uniqueIndex:idx_user_achievement,priority:2"`
	EarnedAt      time.Time `json:"earned_at"`
	CreatedAt     time.Time `json:"created_at"`

	Achievement Achievement `json:"achievement" gorm:"foreignKey:AchievementID"`
}

// AchievementRequirement is the decoded form of Achievement.Requirement.
// A zero value means the threshold is absent for that category.
type AchievementRequirement struct {
	LessonsCompleted int `json:"lessonsCompleted,omitempty"`
	StreakDays       int `json:"streakDays,omitempty"`
	ChallengesSolved int `json:"challengesSolved,omitempty"`
	TotalXP          int `json:"totalXp,omitempty"`
}

// Decoded parses the requirement payload, tolerating an empty blob.
func (a *Achievement) Decoded() (AchievementRequirement, error) {
	var req AchievementRequirement
	if len(a.Requirement) == 0 {
		return req, nil
	}
	err := json.Unmarshal(a.Requirement, &req)
	return req, err
}
