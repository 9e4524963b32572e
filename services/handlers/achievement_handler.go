package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/shared"
)

type AchievementHandler struct {
	achievementSvc AchievementServiceInterface
	dashboardSvc   DashboardServiceInterface
}

func NewAchievementHandler(achievementSvc AchievementServiceInterface, dashboardSvc DashboardServiceInterface) *AchievementHandler {
	return &AchievementHandler{
		achievementSvc: achievementSvc,
		dashboardSvc:   dashboardSvc,
	}
}

// @Summary List achievements
// @Description Get the full achievement catalog with earned state for the authenticated user
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.AchievementResponse}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) GetAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	achievements, err := h.achievementSvc.GetAchievements(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", achievements)
}

// @Summary Check achievements
// @Description Evaluate all unearned achievements against the user's stats and grant the ones that qualify
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.CheckAchievementsResponse}
// @Router /api/v1/achievements/check [post]
func (h *AchievementHandler) CheckAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	result, err := h.achievementSvc.CheckAchievements(userID)
	if err != nil {
		return err
	}

	if len(result.NewlyEarned) > 0 {
		h.dashboardSvc.InvalidateDashboard(userID)
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
