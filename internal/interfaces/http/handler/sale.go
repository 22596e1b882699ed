package handler

import (
	"strconv"

	salesapp "github.com/optivista/backend/internal/application/sales"
	"github.com/optivista/backend/internal/domain/sales"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles sale API endpoints
type SaleHandler struct {
	BaseHandler
	sales *salesapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(sales *salesapp.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// Create handles POST /sales
func (h *SaleHandler) Create(c *gin.Context) {
	var req salesapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.sales.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	resp, err := h.sales.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /sales, optionally filtered by ?patient=
func (h *SaleHandler) List(c *gin.Context) {
	if patientID := c.Query("patient"); patientID != "" {
		resp, err := h.sales.ListByPatient(c.Request.Context(), patientID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}
	resp, err := h.sales.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem handles POST /sales/:id/items
func (h *SaleHandler) AddItem(c *gin.Context) {
	var req salesapp.SaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.sales.AddItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem handles DELETE /sales/:id/items/:index
func (h *SaleHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.BadRequest(c, "index must be an integer")
		return
	}
	resp, err := h.sales.RemoveItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Transition handles POST /sales/:id/transition
func (h *SaleHandler) Transition(c *gin.Context) {
	var req salesapp.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.sales.Transition(c.Request.Context(), c.Param("id"), sales.SaleStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
