package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods under rg (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/control", h.Control)
	rg.POST("/conversation", h.Converse)
	rg.GET("/conversation", h.ConversationHistory)
	rg.POST("/analyze", h.Analyze)
	rg.POST("/automation-suggest", h.SuggestAutomation)
	rg.GET("/devices", h.Devices)
	rg.GET("/status", h.Status)
}
