package httpserver

import (
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"github.com/kijanigreens/storefront/internal/logging"
	"github.com/kijanigreens/storefront/internal/models"
	"github.com/kijanigreens/storefront/internal/service"
	"github.com/kijanigreens/storefront/internal/transport"
)

type ContactHTTP struct {
	Svc *service.ContactService
}

func (h *ContactHTTP) CreateMessage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact.create_message")

	var req transport.ContactMessageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_contact_message_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact message data")
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		l.Warn("create_contact_message_error", "status", 400, "reason", "name, email and message required")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact message data")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		l.Warn("create_contact_message_error", "status", 400, "reason", "invalid email", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact message data")
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	created, err := h.Svc.CreateContactMessage(ctx, &msg)
	if err != nil {
		l.Error("create_contact_message_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to submit contact message")
	}

	l.Info("contact_message_created", "id", created.ID)
	return c.JSON(http.StatusCreated, created)
}
