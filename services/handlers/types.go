package handlers

import (
	"mime/multipart"

	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
)

type ProgressServiceInterface interface {
	GetLessonProgress(userID string) ([]model.LessonProgress, error)
	GetChallengeProgress(userID string) ([]model.ChallengeProgress, error)
	RecordLessonProgress(identity shared.Identity, req dto.LessonProgressRequest) (*model.LessonProgress, error)
	RecordChallengeProgress(identity shared.Identity, req dto.ChallengeProgressRequest) (*model.ChallengeProgress, error)
}

type AchievementServiceInterface interface {
	GetAchievements(userID string) ([]dto.AchievementResponse, error)
	CheckAchievements(userID string) (*dto.CheckAchievementsResponse, error)
}

type DashboardServiceInterface interface {
	GetDashboard(identity shared.Identity) (*dto.DashboardResponse, error)
	InvalidateDashboard(userID string)
}

type CatalogServiceInterface interface {
	Curriculum() dto.CurriculumResponse
	Challenges() []dto.ChallengeSummaryResponse
	Challenge(challengeID string) *dto.ChallengeDetailResponse
}

type ExecuteServiceInterface interface {
	Execute(req dto.ExecuteRequest) (*dto.ExecuteResponse, error)
}

type WebhookServiceInterface interface {
	HandleIdentityEvent(headers dto.WebhookHeaders, body []byte) error
}

type MediaServiceInterface interface {
	UploadLessonVideo(identity shared.Identity, moduleID, lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadLessonThumbnail(identity shared.Identity, moduleID, lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	GetLessonMedia(moduleID, lessonID string) (*dto.LessonMediaResponse, error)
}
