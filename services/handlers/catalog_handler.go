package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/shared"
)

type CatalogHandler struct {
	catalogSvc CatalogServiceInterface
}

func NewCatalogHandler(catalogSvc CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogSvc: catalogSvc,
	}
}

// @Summary Get curriculum
// @Description Get the full lesson catalog grouped by module
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.CurriculumResponse}
// @Router /api/v1/curriculum [get]
func (h *CatalogHandler) GetCurriculum(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=300")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.catalogSvc.Curriculum())
}

// @Summary List challenges
// @Description Get all coding challenges without solutions
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.ChallengeSummaryResponse}
// @Router /api/v1/challenges [get]
func (h *CatalogHandler) GetChallenges(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=300")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.catalogSvc.Challenges())
}

// @Summary Get challenge detail
// @Description Get a single challenge with starter code, test cases, hints and solution
// @Tags catalog
// @Accept json
// @Produce json
// @Param challengeId path string true "Challenge ID"
// @Success 200 {object} shared.Response{data=dto.ChallengeDetailResponse}
// @Router /api/v1/challenges/{challengeId} [get]
func (h *CatalogHandler) GetChallenge(c *fiber.Ctx) error {
	challenge := h.catalogSvc.Challenge(c.Params("challengeId"))
	if challenge == nil {
		return shared.NewNotFoundError(nil, "Challenge not found")
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", challenge)
}
