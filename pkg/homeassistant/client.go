package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
)

// Client is the HTTP wrapper for the Home Assistant REST API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cameras    *expirable.LRU[string, Image]
}

// New creates a Home Assistant client authenticated with a long-lived bearer token.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.Token == "" && cfg.HTTPClient == nil {
		return nil, ErrMissingToken
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), src)
		httpClient.Timeout = cfg.Timeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		httpClient: httpClient,
	}
	if cfg.CameraCacheTTL > 0 {
		c.cameras = expirable.NewLRU[string, Image](cameraCacheSize, nil, cfg.CameraCacheTTL)
	}
	return c, nil
}

// Ping checks that the API is reachable and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, pathAPIRoot, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// GetStates fetches every entity state via GET /api/states.
func (c *Client) GetStates(ctx context.Context) ([]State, error) {
	resp, err := c.do(ctx, http.MethodGet, pathStates, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var states []State
	if err := json.NewDecoder(resp.Body).Decode(&states); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	for i, s := range states {
		if s.EntityID == "" {
			return nil, fmt.Errorf("%w: state %d has no entity_id", ErrDecodeResponse, i)
		}
	}
	return states, nil
}

// CallService invokes POST /api/services/{domain}/{service} with data as the body.
func (c *Client) CallService(ctx context.Context, domain, service string, data map[string]any) error {
	if domain == "" || service == "" {
		return fmt.Errorf("%w: domain and service are required", ErrInvalidArgument)
	}
	if data == nil {
		data = map[string]any{}
	}

	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("homeassistant: failed to marshal service data: %w", err)
	}

	path := fmt.Sprintf(pathServices, url.PathEscape(domain), url.PathEscape(service))
	resp, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// CameraSnapshot returns the current frame of a camera entity.
// Frames are cached per entity for Config.CameraCacheTTL.
func (c *Client) CameraSnapshot(ctx context.Context, entityID string) (Image, error) {
	if !strings.HasPrefix(entityID, "camera.") {
		return Image{}, fmt.Errorf("%w: %q is not a camera entity", ErrInvalidArgument, entityID)
	}
	if c.cameras != nil {
		if img, ok := c.cameras.Get(entityID); ok {
			return img, nil
		}
	}

	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf(pathCameraProxy, url.PathEscape(entityID)), nil)
	if err != nil {
		return Image{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxCameraFrameSize+1))
	if err != nil {
		return Image{}, fmt.Errorf("homeassistant: failed to read camera frame: %w", err)
	}
	if len(data) > MaxCameraFrameSize {
		return Image{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrFrameTooLarge, entityID, MaxCameraFrameSize)
	}
	img := Image{Data: data, MIMEType: resp.Header.Get("Content-Type")}
	if img.MIMEType == "" {
		img.MIMEType = http.DetectContentType(data)
	}

	if c.cameras != nil {
		c.cameras.Add(entityID, img)
	}
	return img, nil
}

// do sends the request and returns the response when the status is 2xx.
// The caller owns resp.Body.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("homeassistant: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("homeassistant: %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, nil
}
