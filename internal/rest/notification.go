package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/response"
)

// NotificationHandler represent the httphandler for notification
type NotificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		Service: svc,
	}
}

// Fetch lists the caller's notifications, newest article first.
func (h *NotificationHandler) Fetch(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	notifications, err := h.Service.FetchByUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Notification, len(notifications))
	for i := range notifications {
		res[i] = response.NewNotificationFromDomain(&notifications[i])
	}
	c.JSON(http.StatusOK, res)
}

// MarkRead marks one of the caller's notifications as read. Repeating
// the call is a no-op success.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.MarkRead(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// Counts answers the caller's total and unread notification counts.
func (h *NotificationHandler) Counts(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	counts, err := h.Service.Counts(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}
