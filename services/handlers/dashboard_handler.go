package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/shared"
)

type DashboardHandler struct {
	dashboardSvc DashboardServiceInterface
}

func NewDashboardHandler(dashboardSvc DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

// @Summary Get dashboard
// @Description Get the home-screen view model: profile, completion sets, badges, next lesson and recent activity
// @Tags dashboard
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.DashboardResponse}
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	identity := identityFromContext(c)

	dashboard, err := h.dashboardSvc.GetDashboard(identity)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dashboard)
}
