package model

import "time"

// MediaAsset is an object stored in the media bucket.
type MediaAsset struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	ObjectKey   string    `json:"object_key" gorm:"uniqueIndex;not null"`
	Bucket      string    `json:"bucket" gorm:"not null"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LessonMedia attaches an asset to a catalog lesson in a given role
// (video, thumbnail).
type LessonMedia struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ModuleID  string    `json:"module_id" gorm:"not null;uniqueIndex:idx_lesson_media,priority:1"`
	LessonID  string    `json:"lesson_id" gorm:"not null;uniqueIndex:idx_lesson_media,priority:2"`
	Role      string    `json:"role" gorm:"not null;uniqueIndex:idx_lesson_media,priority:3"`
	AssetID   string    `json:"asset_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	Asset MediaAsset `json:"asset" gorm:"foreignKey:AssetID"`
}
