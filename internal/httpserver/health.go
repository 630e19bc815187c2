package httpserver

import (
	"context"
	"net/http"
	"time"

	"ha-ai-bridge/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants.
const (
	ServiceName  = "ha-ai-bridge"
	readyTimeout = 5 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "healthy",
		"version":   srv.version,
		"service":   ServiceName,
		"timestamp": response.Now(),
	})
}

// readyCheck reports ready once Home Assistant answers.
// @Summary Readiness Check
// @Description Check if the API can reach Home Assistant
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.ErrorResp "Home Assistant unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.platform != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := srv.platform.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "readyCheck: %v", err)
			response.Error(c, http.StatusServiceUnavailable, err)
			return
		}
	}

	response.OK(c, gin.H{
		"status":    "ready",
		"version":   srv.version,
		"service":   ServiceName,
		"timestamp": response.Now(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "alive",
		"version":   srv.version,
		"service":   ServiceName,
		"timestamp": response.Now(),
	})
}
