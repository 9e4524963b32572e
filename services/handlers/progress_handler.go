package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/shared"
)

type ProgressHandler struct {
	progressSvc  ProgressServiceInterface
	dashboardSvc DashboardServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface, dashboardSvc DashboardServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc:  progressSvc,
		dashboardSvc: dashboardSvc,
	}
}

// @Summary Get lesson progress
// @Description Get all lesson progress rows for the authenticated user
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]model.LessonProgress}
// @Router /api/v1/progress/lessons [get]
func (h *ProgressHandler) GetLessonProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	rows, err := h.progressSvc.GetLessonProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", rows)
}

// @Summary Record lesson progress
// @Description Upsert progress for a lesson. First completion awards XP and advances the streak
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param progressRequest body dto.LessonProgressRequest true "Lesson progress"
// @Success 200 {object} shared.Response{data=model.LessonProgress}
// @Router /api/v1/progress/lessons [post]
func (h *ProgressHandler) RecordLessonProgress(c *fiber.Ctx) error {
	identity := identityFromContext(c)

	var req dto.LessonProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	row, err := h.progressSvc.RecordLessonProgress(identity, req)
	if err != nil {
		return err
	}

	h.dashboardSvc.InvalidateDashboard(identity.UserID)
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", row)
}

// @Summary Get challenge progress
// @Description Get all challenge progress rows for the authenticated user
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]model.ChallengeProgress}
// @Router /api/v1/progress/challenges [get]
func (h *ProgressHandler) GetChallengeProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	rows, err := h.progressSvc.GetChallengeProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", rows)
}

// @Summary Record challenge progress
// @Description Upsert progress for a challenge. Every call counts an attempt, first solve awards XP
// @Tags progress
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param progressRequest body dto.ChallengeProgressRequest true "Challenge progress"
// @Success 200 {object} shared.Response{data=model.ChallengeProgress}
// @Router /api/v1/progress/challenges [post]
func (h *ProgressHandler) RecordChallengeProgress(c *fiber.Ctx) error {
	identity := identityFromContext(c)

	var req dto.ChallengeProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	row, err := h.progressSvc.RecordChallengeProgress(identity, req)
	if err != nil {
		return err
	}

	h.dashboardSvc.InvalidateDashboard(identity.UserID)
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", row)
}
