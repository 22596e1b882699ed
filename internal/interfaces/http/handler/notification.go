package handler

import (
	notifapp "github.com/optivista/backend/internal/application/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification API endpoints
type NotificationHandler struct {
	BaseHandler
	notifications *notifapp.Dispatcher
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *notifapp.Dispatcher) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// Create handles POST /notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req notifapp.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.notifications.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /notifications/:id
func (h *NotificationHandler) Get(c *gin.Context) {
	resp, err := h.notifications.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /notifications, optionally filtered by ?patient= or ?pending=true
func (h *NotificationHandler) List(c *gin.Context) {
	if patientID := c.Query("patient"); patientID != "" {
		resp, err := h.notifications.ListByPatient(c.Request.Context(), patientID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}
	if c.Query("pending") == "true" {
		resp, err := h.notifications.ListPending(c.Request.Context())
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}
	resp, err := h.notifications.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Send handles POST /notifications/:id/send. Retrying a failed notification
// goes through here as well.
func (h *NotificationHandler) Send(c *gin.Context) {
	resp, err := h.notifications.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
