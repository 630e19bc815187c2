package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"ha-ai-bridge/internal/model"
	"ha-ai-bridge/pkg/response"
)

// Control godoc
// @Summary     Execute a natural-language command
// @Description Interprets the command, dispatches every resulting action concurrently and returns per-action outcomes in intent order.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body     controlReq true "Command"
// @Success     200  {object} controlResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     502  {object} response.ErrorResp "AI service unavailable or malformed"
// @Failure     503  {object} response.ErrorResp "Device registry unavailable"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/control [POST]
func (h *handler) Control(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processControlReq(c)
	if err != nil {
		h.abort(c, "processControlReq", err)
		return
	}

	out, err := h.uc.Control(ctx, req.scope(), req.toInput())
	if err != nil {
		h.abort(c, "uc.Control", err)
		return
	}

	response.OK(c, newControlResp(out))
}

// Converse godoc
// @Summary     Conversational exchange
// @Description Sends a free-text message with the recent session history and returns the reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body     converseReq true "Message"
// @Success     200  {object} converseResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     502  {object} response.ErrorResp "AI service unavailable or malformed"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/conversation [POST]
func (h *handler) Converse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConverseReq(c)
	if err != nil {
		h.abort(c, "processConverseReq", err)
		return
	}

	out, err := h.uc.Converse(ctx, req.scope(), req.toInput())
	if err != nil {
		h.abort(c, "uc.Converse", err)
		return
	}

	response.OK(c, newConverseResp(out))
}

// ConversationHistory godoc
// @Summary     Session transcript
// @Description Returns every retained turn of a session.
// @Tags        Assistant
// @Produce     json
// @Param       session_id query    string false "Session id (default: default)"
// @Success     200        {object} historyResp
// @Router      /api/conversation [GET]
func (h *handler) ConversationHistory(c *gin.Context) {
	sc := model.NewScope(c.Query("session_id"))
	response.OK(c, newHistoryResp(sc.SessionID, h.uc.History(c.Request.Context(), sc)))
}

// Analyze godoc
// @Summary     Analyze an image
// @Description Analyzes the supplied base64 image, or a fresh snapshot of the camera entity when none is supplied.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body     analyzeReq true "Analysis request"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     403  {object} response.ErrorResp "Image recognition disabled"
// @Failure     502  {object} response.ErrorResp "Upstream failure"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, img, err := h.processAnalyzeReq(c)
	if err != nil {
		h.abort(c, "processAnalyzeReq", err)
		return
	}

	out, err := h.uc.AnalyzeImage(ctx, req.scope(), req.toInput(img))
	if err != nil {
		h.abort(c, "uc.AnalyzeImage", err)
		return
	}

	response.OK(c, newAnalyzeResp(out))
}

// SuggestAutomation godoc
// @Summary     Suggest an automation
// @Description Proposes a Home Assistant automation, including ready-to-paste YAML, for a trigger and action.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body     suggestReq true "Trigger and action"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     403  {object} response.ErrorResp "Automation suggestions disabled"
// @Failure     502  {object} response.ErrorResp "AI service unavailable or malformed"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/automation-suggest [POST]
func (h *handler) SuggestAutomation(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		h.abort(c, "processSuggestReq", err)
		return
	}

	out, err := h.uc.SuggestAutomation(ctx, req.scope(), req.toInput())
	if err != nil {
		h.abort(c, "uc.SuggestAutomation", err)
		return
	}

	response.OK(c, newSuggestResp(out))
}

// Devices godoc
// @Summary     List devices
// @Description Returns the cached device snapshot, refreshing it when stale.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} devicesResp
// @Failure     503 {object} response.ErrorResp "Device registry unavailable"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/devices [GET]
func (h *handler) Devices(c *gin.Context) {
	out, err := h.uc.Devices(c.Request.Context())
	if err != nil {
		h.abort(c, "uc.Devices", err)
		return
	}

	response.OK(c, newDevicesResp(out))
}

// Status godoc
// @Summary     Bridge status
// @Description Reports version, feature flags and the cached device count.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Status(c.Request.Context()), time.Now()))
}
