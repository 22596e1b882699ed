package handler

import (
	clinicapp "github.com/optivista/backend/internal/application/clinic"

	"github.com/gin-gonic/gin"
)

// ConsultationHandler handles consultation API endpoints
type ConsultationHandler struct {
	BaseHandler
	consultations *clinicapp.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler
func NewConsultationHandler(consultations *clinicapp.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

// Create handles POST /consultations
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req clinicapp.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.consultations.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /consultations/:id
func (h *ConsultationHandler) Get(c *gin.Context) {
	resp, err := h.consultations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /consultations, optionally filtered by ?patient=
func (h *ConsultationHandler) List(c *gin.Context) {
	if patientID := c.Query("patient"); patientID != "" {
		resp, err := h.consultations.ListByPatient(c.Request.Context(), patientID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}
	resp, err := h.consultations.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateDiagnosis handles PUT /consultations/:id/diagnosis
func (h *ConsultationHandler) UpdateDiagnosis(c *gin.Context) {
	var req struct {
		Diagnosis    string            `json:"diagnosis" binding:"required"`
		Prescription map[string]string `json:"prescription"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.consultations.UpdateDiagnosis(c.Request.Context(), c.Param("id"), req.Diagnosis, req.Prescription)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /consultations/:id
func (h *ConsultationHandler) Delete(c *gin.Context) {
	if err := h.consultations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
