package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemHandler_Health(t *testing.T) {
	h := NewSystemHandler("baerenfell-backend", "test")

	router := newTestRouter()
	router.GET("/health", h.Health)

	w := performRequest(router, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.True(t, response.Success)

	data, ok := response.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "baerenfell-backend", data["service"])
}
