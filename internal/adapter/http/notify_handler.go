package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	notifyuc "sacco-backend/internal/usecase/notify"
)

type NotifyHandler struct{ uc *notifyuc.Usecase }

func NewNotifyHandler(uc *notifyuc.Usecase) *NotifyHandler { return &NotifyHandler{uc: uc} }

type notificationsResp struct {
	Events []notifyuc.Event `json:"events"`
}

// GetNotifications is the polling edge for the approval tracker. Each
// distinct X-Session-Id keeps its own last-seen view; the first poll of a
// session seeds it and returns no events.
func (h *NotifyHandler) GetNotifications(c echo.Context) error {
	sessionID := strings.TrimSpace(c.Request().Header.Get("X-Session-Id"))
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing X-Session-Id"})
	}
	events, err := h.uc.Poll(c.Request().Context(), sessionID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	if events == nil {
		events = []notifyuc.Event{}
	}
	return c.JSON(http.StatusOK, notificationsResp{Events: events})
}
