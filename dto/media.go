package dto

// Media DTOs
type MediaUploadResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type MediaAssetResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileSize int64  `json:"file_size"`
}

type LessonMediaResponse struct {
	ModuleID string                         `json:"module_id"`
	LessonID string                         `json:"lesson_id"`
	Media    map[string]*MediaAssetResponse `json:"media"` // key: video, thumbnail
}
