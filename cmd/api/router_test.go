package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stillform-backend/internal/config"
	"stillform-backend/pkg/cache"
	"stillform-backend/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckMemoryStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := &container.Container{
		Config: &config.Config{App: config.AppConfig{Version: "1.2.3"}},
		Cache:  cache.NewNoop(),
	}

	r := gin.New()
	r.GET("/api/health", healthCheckHandler(c))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status   string                 `json:"status"`
		Version  string                 `json:"version"`
		Services map[string]interface{} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Equal(t, "memory", body.Services["store"])
	assert.Equal(t, "disabled", body.Services["redis"])
	assert.Equal(t, false, body.Services["storage"])
}
