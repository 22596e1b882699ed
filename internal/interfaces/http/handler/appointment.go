package handler

import (
	"time"

	clinicapp "github.com/optivista/backend/internal/application/clinic"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment API endpoints
type AppointmentHandler struct {
	BaseHandler
	appointments *clinicapp.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(appointments *clinicapp.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// Create handles POST /appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req clinicapp.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.appointments.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	resp, err := h.appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /appointments, optionally filtered by ?patient= or ?date=
func (h *AppointmentHandler) List(c *gin.Context) {
	if patientID := c.Query("patient"); patientID != "" {
		resp, err := h.appointments.ListByPatient(c.Request.Context(), patientID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}
	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			h.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		resp, err := h.appointments.ListByDate(c.Request.Context(), day)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}
	resp, err := h.appointments.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Reschedule handles PUT /appointments/:id/schedule
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req struct {
		ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.appointments.Reschedule(c.Request.Context(), c.Param("id"), req.ScheduledAt)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Complete handles POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.appointments.Complete(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel handles POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	resp, err := h.appointments.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
