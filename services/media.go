package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
	log "github.com/sirupsen/logrus"
)

// MediaService attaches videos and thumbnails to catalog lessons, storing the
// bytes in MinIO and the bookkeeping rows in postgres.
type MediaService struct {
	context.DefaultService
	sqlSvc     *PostgresService
	minioSvc   *MinIOService
	catalogSvc *CatalogService
}

const MEDIA_SVC = "media_svc"

const (
	MediaRoleVideo     = "video"
	MediaRoleThumbnail = "thumbnail"
)

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	svc.catalogSvc = svc.Service(CATALOG_SVC).(*CatalogService)
	return nil
}

func (svc *MediaService) UploadLessonVideo(identity shared.Identity, moduleID, lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidVideoFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid video file format. Supported: MP4, MOV, WEBM")
	}

	if file.Size > 500*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Video file too large. Maximum size: 500MB")
	}

	return svc.uploadLessonFile(identity, moduleID, lessonID, MediaRoleVideo, file)
}

func (svc *MediaService) UploadLessonThumbnail(identity shared.Identity, moduleID, lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP")
	}

	if file.Size > 2*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Thumbnail file too large. Maximum size: 2MB")
	}

	return svc.uploadLessonFile(identity, moduleID, lessonID, MediaRoleThumbnail, file)
}

func (svc *MediaService) uploadLessonFile(identity shared.Identity, moduleID, lessonID, role string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.catalogSvc.LessonExists(moduleID, lessonID) {
		return nil, shared.NewNotFoundError(nil, "Lesson not found")
	}

	ext := filepath.Ext(file.Filename)
	objectKey := fmt.Sprintf("%ss/%s/%s_%d%s", role, moduleID, lessonID, time.Now().Unix(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if _, err := svc.minioSvc.UploadFile(objectKey, src, file.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to upload file to storage")
	}

	id, _ := uuid.NewV7()
	asset := &model.MediaAsset{
		ID:          id.String(),
		ObjectKey:   objectKey,
		Bucket:      svc.minioSvc.GetBucketName(),
		ContentType: contentType,
		SizeBytes:   file.Size,
		UploadedBy:  identity.UserID,
	}

	if err := svc.sqlSvc.CreateMediaAsset(asset); err != nil {
		// Keep the bucket consistent with the table.
		if delErr := svc.minioSvc.DeleteFile(objectKey); delErr != nil {
			log.Printf("Failed to remove orphaned object %s: %v", objectKey, delErr)
		}
		return nil, shared.NewInternalError(err, "Failed to save media asset")
	}

	if err := svc.sqlSvc.UpsertLessonMedia(&model.LessonMedia{
		ModuleID: moduleID,
		LessonID: lessonID,
		Role:     role,
		AssetID:  asset.ID,
	}); err != nil {
		return nil, shared.NewInternalError(err, "Failed to link media to lesson")
	}

	url, err := svc.minioSvc.GetFileURL(objectKey, 24*time.Hour)
	if err != nil {
		log.Printf("Failed to generate presigned URL: %v", err)
	}

	log.Printf("Uploaded %s for lesson %s/%s: %s", role, moduleID, lessonID, objectKey)

	return &dto.MediaUploadResponse{
		ID:       asset.ID,
		URL:      url,
		FileName: file.Filename,
		FileType: role,
		FileSize: file.Size,
	}, nil
}

func (svc *MediaService) GetLessonMedia(moduleID, lessonID string) (*dto.LessonMediaResponse, error) {
	if !svc.catalogSvc.LessonExists(moduleID, lessonID) {
		return nil, shared.NewNotFoundError(nil, "Lesson not found")
	}

	rows, err := svc.sqlSvc.GetLessonMedia(moduleID, lessonID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to fetch lesson media")
	}

	response := &dto.LessonMediaResponse{
		ModuleID: moduleID,
		LessonID: lessonID,
		Media:    make(map[string]*dto.MediaAssetResponse),
	}

	for _, row := range rows {
		url, err := svc.minioSvc.GetFileURL(row.Asset.ObjectKey, 24*time.Hour)
		if err != nil {
			log.Printf("Failed to generate presigned URL for %s: %v", row.Asset.ObjectKey, err)
			continue
		}
		response.Media[row.Role] = &dto.MediaAssetResponse{
			ID:       row.Asset.ID,
			URL:      url,
			FileSize: row.Asset.SizeBytes,
		}
	}

	return response, nil
}

func (svc *MediaService) isValidVideoFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	validExts := []string{".mp4", ".mov", ".webm", ".mkv"}

	for _, validExt := range validExts {
		if ext == validExt {
			return true
		}
	}
	return false
}

func (svc *MediaService) isValidImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	validExts := []string{".jpg", ".jpeg", ".png", ".webp"}

	for _, validExt := range validExts {
		if ext == validExt {
			return true
		}
	}
	return false
}
