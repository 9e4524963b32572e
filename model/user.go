package model

import "time"

// User mirrors an identity-provider account plus its progression state.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	// Email can be empty: some identity tokens carry no email claim, and the
	// provider owns email uniqueness, not this mirror.
	Email        string     `json:"email" gorm:"index"`
	Name         string     `json:"name"`
	Image        string     `json:"image"`
	XP           int        `json:"xp" gorm:"default:0"`
	Level        int        `json:"level" gorm:"default:1"`
	Streak       int        `json:"streak" gorm:"default:0"`
	LastActiveAt *time.Time `json:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
