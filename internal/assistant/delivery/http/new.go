package http

import (
	"github.com/gin-gonic/gin"

	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Control(c *gin.Context)
	Converse(c *gin.Context)
	ConversationHistory(c *gin.Context)
	Analyze(c *gin.Context)
	SuggestAutomation(c *gin.Context)
	Devices(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
