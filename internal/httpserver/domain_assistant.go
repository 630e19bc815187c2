package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "ha-ai-bridge/internal/assistant/delivery/http"
)

// setupAssistantDomain registers /api/control, /api/conversation, /api/analyze,
// /api/automation-suggest, /api/devices and /api/status.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
