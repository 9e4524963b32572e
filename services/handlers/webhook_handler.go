package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gopherpath/gopherpath_api/dto"
	"github.com/gopherpath/gopherpath_api/shared"
)

type WebhookHandler struct {
	webhookSvc WebhookServiceInterface
}

func NewWebhookHandler(webhookSvc WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{
		webhookSvc: webhookSvc,
	}
}

// @Summary Identity webhook
// @Description Receive signed user lifecycle events from the identity provider
// @Tags webhooks
// @Accept json
// @Produce json
// @Param svix-id header string true "Message ID"
// @Param svix-timestamp header string true "Unix timestamp"
// @Param svix-signature header string true "Message signature"
// @Success 200 {object} shared.Response
// @Router /api/v1/webhooks/identity [post]
func (h *WebhookHandler) HandleIdentityEvent(c *fiber.Ctx) error {
	headers := dto.WebhookHeaders{
		ID:        c.Get("svix-id"),
		Timestamp: c.Get("svix-timestamp"),
		Signature: c.Get("svix-signature"),
	}

	if err := h.webhookSvc.HandleIdentityEvent(headers, c.Body()); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}
