package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrbot/backend/internal/service"
	"github.com/hrbot/backend/internal/util"
)

// clerkEvent mirrors the subset of Clerk's webhook payload that
// provisioning consumes.
type clerkEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

type WebhookHandler struct {
	provisioning *service.ProvisioningService
}

func RegisterWebhooks(e *echo.Echo, provisioning *service.ProvisioningService) {
	handler := &WebhookHandler{provisioning: provisioning}

	group := e.Group("/api/webhooks")
	group.POST("/clerk", handler.clerk)
}

// clerk consumes Clerk events. Event types other than user.created are
// acknowledged without side effects.
// TODO: verify the svix signature headers before trusting the payload.
func (h *WebhookHandler) clerk(c echo.Context) error {
	var event clerkEvent
	if err := c.Bind(&event); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if event.Type == "user.created" {
		emails := make([]string, 0, len(event.Data.EmailAddresses))
		for _, addr := range event.Data.EmailAddresses {
			emails = append(emails, addr.EmailAddress)
		}
		_, err := h.provisioning.ProvisionEmployee(c.Request().Context(), service.NewUserEvent{
			ClerkID:   event.Data.ID,
			Emails:    emails,
			FirstName: event.Data.FirstName,
			LastName:  event.Data.LastName,
		})
		if err != nil {
			c.Logger().Errorf("provision employee: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("Failed to create employee"))
		}
	}

	return c.JSON(http.StatusOK, util.Data("received", true))
}
