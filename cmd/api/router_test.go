package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-api/internal/config"
	"bookcatalog-api/internal/infrastructure/database"
	"bookcatalog-api/internal/shared/response"
	"bookcatalog-api/pkg/container"
)

type healthyCache struct{}

func (healthyCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (healthyCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (healthyCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (healthyCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (healthyCache) Ping(ctx context.Context) error { return nil }

func TestHealthCheckDegradedUsesErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{App: config.AppConfig{Name: "Book Catalog API"}}
	c := &container.Container{
		Config: cfg,
		// No pool behind the wrapper, so the database probe fails.
		DB:    database.NewPostgresDB(cfg.Database),
		Cache: healthyCache{},
	}

	r := gin.New()
	r.GET("/api/v1/health", healthCheckHandler(c))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The envelope must agree with the status line.
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SERVICE_UNAVAILABLE", resp.Error.Code)

	details, ok := resp.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "degraded", details["status"])
	assert.Equal(t, "unreachable", details["database"])
	assert.Equal(t, "ok", details["cache"])
}
