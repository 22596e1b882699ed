package handler

import (
	clinicapp "github.com/optivista/backend/internal/application/clinic"

	"github.com/gin-gonic/gin"
)

// PatientHandler handles patient API endpoints
type PatientHandler struct {
	BaseHandler
	patients *clinicapp.PatientService
}

// NewPatientHandler creates a new PatientHandler
func NewPatientHandler(patients *clinicapp.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// Create handles POST /patients
func (h *PatientHandler) Create(c *gin.Context) {
	var req clinicapp.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.patients.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /patients/:id
func (h *PatientHandler) Get(c *gin.Context) {
	resp, err := h.patients.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /patients
func (h *PatientHandler) List(c *gin.Context) {
	resp, err := h.patients.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /patients/:id
func (h *PatientHandler) Update(c *gin.Context) {
	var req clinicapp.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.patients.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /patients/:id
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.patients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
