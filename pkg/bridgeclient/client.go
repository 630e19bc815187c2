package bridgeclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Config configures a Client.
type Config struct {
	// Addr is the bridge base URL, e.g. http://homeassistant.local:8099.
	Addr string
	// SessionID is sent with every session-scoped call. Empty means the bridge default.
	SessionID  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the bridge HTTP API.
type Client struct {
	base       string
	sessionID  string
	httpClient *http.Client
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddr
	}
	if !strings.Contains(cfg.Addr, "://") {
		cfg.Addr = "http://" + cfg.Addr
	}
	if _, err := url.Parse(cfg.Addr); err != nil {
		return nil, fmt.Errorf("bridgeclient: invalid address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		base:       strings.TrimRight(cfg.Addr, "/"),
		sessionID:  cfg.SessionID,
		httpClient: httpClient,
	}, nil
}

// Control submits a natural-language command.
func (c *Client) Control(ctx context.Context, command string) (*CommandResult, error) {
	var out CommandResult
	body := map[string]string{"command": command, "session_id": c.sessionID}
	if err := c.do(ctx, http.MethodPost, "/api/control", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMessage runs one conversational exchange.
func (c *Client) SendMessage(ctx context.Context, message string) (*ConversationReply, error) {
	var out ConversationReply
	body := map[string]string{"message": message, "session_id": c.sessionID}
	if err := c.do(ctx, http.MethodPost, "/api/conversation", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns the session transcript.
func (c *Client) History(ctx context.Context) (*History, error) {
	var out History
	path := "/api/conversation"
	if c.sessionID != "" {
		path += "?session_id=" + url.QueryEscape(c.sessionID)
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeImage asks the bridge to analyze an image or a camera snapshot.
func (c *Client) AnalyzeImage(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	body := map[string]string{
		"entity_id":  req.EntityID,
		"prompt":     req.Prompt,
		"session_id": c.sessionID,
	}
	if len(req.Image) > 0 {
		body["image_base64"] = base64.StdEncoding.EncodeToString(req.Image)
		body["mime_type"] = req.MIMEType
	}

	var out Analysis
	if err := c.do(ctx, http.MethodPost, "/api/analyze", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SuggestAutomation asks for an automation proposal.
func (c *Client) SuggestAutomation(ctx context.Context, trigger, action string) (*SuggestionResult, error) {
	var out SuggestionResult
	body := map[string]string{"trigger": trigger, "action": action, "session_id": c.sessionID}
	if err := c.do(ctx, http.MethodPost, "/api/automation-suggest", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Devices returns the bridge's device snapshot.
func (c *Client) Devices(ctx context.Context) (*Devices, error) {
	var out Devices
	if err := c.do(ctx, http.MethodGet, "/api/devices", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status returns the bridge status.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var out Status
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("bridgeclient: marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("bridgeclient: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bridgeclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("bridgeclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return nil
}
