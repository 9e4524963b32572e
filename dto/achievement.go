package dto

import "time"

type AchievementResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	XPReward    int        `json:"xp_reward"`
	Category    string     `json:"category"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
}

type CheckAchievementsResponse struct {
	NewlyEarned []string `json:"newly_earned"`
	Message     string   `json:"message"`
}
