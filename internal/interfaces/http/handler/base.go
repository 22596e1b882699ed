package handler

import (
	"errors"
	"net/http"

	"github.com/optivista/backend/internal/domain/shared"
	"github.com/optivista/backend/internal/interfaces/http/dto"

	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("BAD_REQUEST", message))
}

// HandleError maps domain errors to their HTTP status
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("INTERNAL", "Internal server error"))
		return
	}

	status := http.StatusUnprocessableEntity
	switch domainErr.Code {
	case shared.ErrNotFound.Code:
		status = http.StatusNotFound
	case shared.ErrConflict.Code:
		status = http.StatusConflict
	case shared.ErrInvalidStateTransition.Code:
		status = http.StatusConflict
	case shared.ErrStoreUnavailable.Code:
		status = http.StatusServiceUnavailable
	case shared.ErrInvalidInput.Code:
		status = http.StatusBadRequest
	}
	c.JSON(status, dto.NewErrorResponse(domainErr.Code, domainErr.Message))
}
