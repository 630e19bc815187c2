package homeassistant

import "time"

const (
	// DefaultTimeout bounds every call when Config.Timeout is unset.
	DefaultTimeout = 10 * time.Second

	// MaxCameraFrameSize caps the bytes read from one camera frame.
	MaxCameraFrameSize = 10 << 20

	// cameraCacheSize is the number of camera entities whose last snapshot is kept.
	cameraCacheSize = 32

	pathAPIRoot     = "/api/"
	pathStates      = "/api/states"
	pathServices    = "/api/services/%s/%s"
	pathCameraProxy = "/api/camera_proxy/%s"
)
