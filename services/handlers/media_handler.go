package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload lesson video
// @Description Upload a video for a catalog lesson
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param moduleId path string true "Module ID"
// @Param lessonId path string true "Lesson ID"
// @Param video formData file true "Video file"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/media/lessons/{moduleId}/{lessonId}/video [post]
func (h *MediaHandler) UploadLessonVideo(c *fiber.Ctx) error {
	identity := identityFromContext(c)

	file, err := c.FormFile("video")
	if err != nil {
		return shared.NewBadRequestError(err, "Video file is required")
	}

	result, err := h.mediaSvc.UploadLessonVideo(identity, c.Params("moduleId"), c.Params("lessonId"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Upload lesson thumbnail
// @Description Upload a thumbnail image for a catalog lesson
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param moduleId path string true "Module ID"
// @Param lessonId path string true "Lesson ID"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/media/lessons/{moduleId}/{lessonId}/thumbnail [post]
func (h *MediaHandler) UploadLessonThumbnail(c *fiber.Ctx) error {
	identity := identityFromContext(c)

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return shared.NewBadRequestError(err, "Thumbnail file is required")
	}

	result, err := h.mediaSvc.UploadLessonThumbnail(identity, c.Params("moduleId"), c.Params("lessonId"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Get lesson media
// @Description Get the media attached to a catalog lesson, keyed by role
// @Tags media
// @Accept json
// @Produce json
// @Param moduleId path string true "Module ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} shared.Response{data=dto.LessonMediaResponse}
// @Router /api/v1/media/lessons/{moduleId}/{lessonId} [get]
func (h *MediaHandler) GetLessonMedia(c *fiber.Ctx) error {
	media, err := h.mediaSvc.GetLessonMedia(c.Params("moduleId"), c.Params("lessonId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", media)
}
