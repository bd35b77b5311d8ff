package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// NotificationDrainer hands out a recipient's pending notifications once.
type NotificationDrainer interface {
	Drain(ctx context.Context, recipient string) ([]domain.Notification, error)
}

// NotificationHandler serves the confirmation toasts queued for the caller.
type NotificationHandler struct {
	inbox NotificationDrainer
}

func NewNotificationHandler(inbox NotificationDrainer) *NotificationHandler {
	return &NotificationHandler{inbox: inbox}
}

// Drain handles GET /v1/notifications. Returned notifications are removed.
//
// @Summary      Pending notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[notificationResponse]
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) Drain(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	items, err := h.inbox.Drain(c.Request().Context(), sess.Email)
	if err != nil {
		return err
	}

	data := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		data = append(data, notificationResponse{ID: n.ID, Title: n.Title, Message: n.Message, CreatedAt: n.CreatedAt.UTC()})
	}
	return c.JSON(http.StatusOK, listResponse[notificationResponse]{Data: data, Total: len(data)})
}
