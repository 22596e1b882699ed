package handler

import (
	clinicapp "github.com/optivista/backend/internal/application/clinic"

	"github.com/gin-gonic/gin"
)

// OptometristHandler handles optometrist API endpoints
type OptometristHandler struct {
	BaseHandler
	optometrists *clinicapp.OptometristService
}

// NewOptometristHandler creates a new OptometristHandler
func NewOptometristHandler(optometrists *clinicapp.OptometristService) *OptometristHandler {
	return &OptometristHandler{optometrists: optometrists}
}

// Create handles POST /optometrists
func (h *OptometristHandler) Create(c *gin.Context) {
	var req clinicapp.CreateOptometristRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.optometrists.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /optometrists/:id
func (h *OptometristHandler) Get(c *gin.Context) {
	resp, err := h.optometrists.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /optometrists
func (h *OptometristHandler) List(c *gin.Context) {
	resp, err := h.optometrists.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /optometrists/:id
func (h *OptometristHandler) Delete(c *gin.Context) {
	if err := h.optometrists.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
