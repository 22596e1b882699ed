package handler

import (
	catalogapp "github.com/optivista/backend/internal/application/catalog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InventoryHandler handles inventory API endpoints
type InventoryHandler struct {
	BaseHandler
	inventory *catalogapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventory *catalogapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// Create handles POST /inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	var req catalogapp.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.inventory.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /inventory/:id
func (h *InventoryHandler) Get(c *gin.Context) {
	resp, err := h.inventory.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /inventory, optionally filtered by ?search= or ?category=
func (h *InventoryHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		resp, err := h.inventory.ListByCategory(c.Request.Context(), category)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}
	resp, err := h.inventory.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AdjustStock handles POST /inventory/:id/stock
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.inventory.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdatePrice handles PUT /inventory/:id/price
func (h *InventoryHandler) UpdatePrice(c *gin.Context) {
	var req struct {
		Price decimal.Decimal `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.inventory.UpdatePrice(c.Request.Context(), c.Param("id"), req.Price)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /inventory/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.inventory.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
