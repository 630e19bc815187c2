package homeassistant

import (
	"net/http"
	"time"
)

// Config holds connection settings for a Home Assistant instance.
type Config struct {
	URL            string
	Token          string
	Timeout        time.Duration
	CameraCacheTTL time.Duration

	// HTTPClient overrides the oauth2-backed client. Used by tests.
	HTTPClient *http.Client
}

// State is one entry of GET /api/states.
type State struct {
	EntityID    string         `json:"entity_id"`
	State       string         `json:"state"`
	Attributes  map[string]any `json:"attributes"`
	LastChanged time.Time      `json:"last_changed"`
	LastUpdated time.Time      `json:"last_updated"`
}

// Image is a camera frame returned by the camera proxy.
type Image struct {
	Data     []byte
	MIMEType string
}
