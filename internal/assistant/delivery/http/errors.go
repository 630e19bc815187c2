package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/device"
	"ha-ai-bridge/internal/intent"
	"ha-ai-bridge/pkg/homeassistant"
	"ha-ai-bridge/pkg/response"
)

var errInvalidBody = errors.New("invalid request body")

// mapError translates domain/use-case errors into an HTTP status.
func mapError(err error) int {
	var apiErr *homeassistant.APIError
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, assistant.ErrEmptyCommand),
		errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrMissingField),
		errors.Is(err, assistant.ErrInvalidImage),
		errors.Is(err, intent.ErrEmptyImage),
		errors.Is(err, homeassistant.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, assistant.ErrFeatureDisabled):
		return http.StatusForbidden
	case errors.Is(err, device.ErrRegistryUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, intent.ErrUpstreamUnavailable),
		errors.Is(err, intent.ErrUpstreamMalformed),
		errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abort writes the error body. Unknown errors are logged and hidden from the caller.
func (h *handler) abort(c *gin.Context, op string, err error) {
	status := mapError(err)
	if status == http.StatusInternalServerError {
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	h.l.Warnf(c.Request.Context(), "%s: %v", op, err)
	response.Error(c, status, err)
}
