package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/optivista/backend/internal/domain/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var h BaseHandler
	h.HandleError(c, err)
	return w
}

func TestBaseHandler_HandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{shared.ErrNotFound, http.StatusNotFound},
		{shared.ErrConflict, http.StatusConflict},
		{shared.ErrInvalidStateTransition, http.StatusConflict},
		{shared.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{shared.ErrInvalidInput, http.StatusBadRequest},
		{shared.NewDomainError("INSUFFICIENT_STOCK", "Stock cannot go negative"), http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		w := recordError(t, tc.err)
		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
		assert.Contains(t, w.Body.String(), `"success":false`)
	}
}

func TestBaseHandler_HandleError_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("loading sale: %w", shared.ErrNotFound)
	w := recordError(t, wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBaseHandler_HandleError_UnknownErrorIsInternal(t *testing.T) {
	w := recordError(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details never leak into the response body
	assert.NotContains(t, w.Body.String(), "boom")
}
