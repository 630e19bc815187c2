package http

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ha-ai-bridge/internal/assistant"
)

const (
	maxImageSize       = 10 << 20
	maxAnalyzeBodySize = 16 << 20
)

// bindJSON binds the request body; malformed JSON becomes errInvalidBody.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

func (h *handler) processControlReq(c *gin.Context) (controlReq, error) {
	var req controlReq
	return req, bindJSON(c, &req)
}

func (h *handler) processConverseReq(c *gin.Context) (converseReq, error) {
	var req converseReq
	return req, bindJSON(c, &req)
}

func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, []byte, error) {
	var req analyzeReq
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAnalyzeBodySize)
	if err := bindJSON(c, &req); err != nil {
		return req, nil, err
	}
	if req.ImageBase64 == "" {
		return req, nil, nil
	}
	if n := base64.StdEncoding.DecodedLen(len(req.ImageBase64)); n > maxImageSize {
		return req, nil, fmt.Errorf("%w: image_base64 decodes to %d bytes, limit %d", assistant.ErrInvalidImage, n, maxImageSize)
	}
	img, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return req, nil, fmt.Errorf("%w: image_base64: %v", assistant.ErrInvalidImage, err)
	}
	return req, img, nil
}

func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	return req, bindJSON(c, &req)
}
