package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/shared"
)

type ExecuteHandler struct {
	executeSvc ExecuteServiceInterface
}

func NewExecuteHandler(executeSvc ExecuteServiceInterface) *ExecuteHandler {
	return &ExecuteHandler{
		executeSvc: executeSvc,
	}
}

// @Summary Execute code
// @Description Compile and run a Go snippet on the remote playground
// @Tags execute
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param executeRequest body dto.ExecuteRequest true "Code to run"
// @Success 200 {object} shared.Response{data=dto.ExecuteResponse}
// @Router /api/v1/execute [post]
func (h *ExecuteHandler) Execute(c *fiber.Ctx) error {
	var req dto.ExecuteRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	result, err := h.executeSvc.Execute(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
