package twinsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// SpotAPI defines the operations the action layer and UI need from the
// backend. Implemented by *Client; fakes implement it in tests.
type SpotAPI interface {
	ListSpots(ctx context.Context) ([]Spot, error)
	GetSpot(ctx context.Context, id int64) (*SpotDetail, error)
	CheckSpot(ctx context.Context, id int64) (*CheckResult, error)
	ResetSpot(ctx context.Context, id int64) (*ResetResult, error)
	SnoozeSpot(ctx context.Context, id int64, minutes int) (*SnoozeResult, error)
	UnsnoozeSpot(ctx context.Context, id int64) (*MessageResult, error)
	DeleteSpot(ctx context.Context, id int64) (*MessageResult, error)
	CheckAllSpots(ctx context.Context) (*CheckAllResponse, error)
}

// Ensure Client implements SpotAPI at compile time.
var _ SpotAPI = (*Client)(nil)

// Client talks to the TwinSync Spot HTTP API.
//
// The base path (ingress prefix) is fixed at construction and applied to
// every request exactly once. Requests carry no client-side timeout; each
// call is a single best-effort attempt bound to the caller's context.
type Client struct {
	baseURL   *url.URL
	basePath  string
	http      *http.Client
	userAgent string
	token     string
}

const (
	defaultServerURL = "http://127.0.0.1:8099"
	defaultUserAgent = "spotctl/0.1"

	// Snooze duration used when the caller does not pick one.
	DefaultSnoozeMinutes = 30
)

// APIError is the uniform failure representation for non-success responses.
// Message is the response body text when non-empty, otherwise "HTTP <status>".
// No distinction is made between 4xx and 5xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// NewClient builds a Client for the given server URL and resolved base path.
// An empty token disables the Authorization header.
func NewClient(serverURL, basePath, token string) (*Client, error) {
	base, err := parseServerURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		basePath:  strings.TrimSuffix(basePath, "/"),
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		token:     token,
	}, nil
}

// ListSpots retrieves all spots.
func (c *Client) ListSpots(ctx context.Context) ([]Spot, error) {
	var payload SpotListResponse
	if err := c.Call(ctx, http.MethodGet, "/api/spots", nil, &payload, nil); err != nil {
		return nil, err
	}
	return payload.Spots, nil
}

// GetSpot retrieves a single spot with its memory and recent checks.
func (c *Client) GetSpot(ctx context.Context, id int64) (*SpotDetail, error) {
	var payload SpotDetail
	if err := c.Call(ctx, http.MethodGet, fmt.Sprintf("/api/spots/%d", id), nil, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CheckSpot runs a vision check against the spot's reference image.
func (c *Client) CheckSpot(ctx context.Context, id int64) (*CheckResult, error) {
	var payload CheckResult
	if err := c.Call(ctx, http.MethodPost, fmt.Sprintf("/api/spots/%d/check", id), nil, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ResetSpot marks the spot as fixed and returns the updated streak.
func (c *Client) ResetSpot(ctx context.Context, id int64) (*ResetResult, error) {
	var payload ResetResult
	if err := c.Call(ctx, http.MethodPost, fmt.Sprintf("/api/spots/%d/reset", id), nil, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SnoozeSpot pauses checks on a spot. Non-positive minutes selects the
// backend's default window of DefaultSnoozeMinutes.
func (c *Client) SnoozeSpot(ctx context.Context, id int64, minutes int) (*SnoozeResult, error) {
	if minutes <= 0 {
		minutes = DefaultSnoozeMinutes
	}
	body := map[string]int{"minutes": minutes}
	var payload SnoozeResult
	if err := c.Call(ctx, http.MethodPost, fmt.Sprintf("/api/spots/%d/snooze", id), body, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UnsnoozeSpot cancels an active snooze.
func (c *Client) UnsnoozeSpot(ctx context.Context, id int64) (*MessageResult, error) {
	var payload MessageResult
	if err := c.Call(ctx, http.MethodPost, fmt.Sprintf("/api/spots/%d/unsnooze", id), nil, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteSpot removes a spot permanently.
func (c *Client) DeleteSpot(ctx context.Context, id int64) (*MessageResult, error) {
	var payload MessageResult
	if err := c.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/spots/%d", id), nil, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CheckAllSpots runs a check on every non-snoozed spot.
func (c *Client) CheckAllSpots(ctx context.Context) (*CheckAllResponse, error) {
	var payload CheckAllResponse
	if err := c.Call(ctx, http.MethodPost, "/api/check-all", nil, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SaveHAToken stores a Home Assistant long-lived access token on the backend.
func (c *Client) SaveHAToken(ctx context.Context, token string) (*TokenResult, error) {
	body := map[string]string{"token": token}
	var payload TokenResult
	if err := c.Call(ctx, http.MethodPost, "/api/settings/ha-token", body, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ListCameras retrieves the cameras known to Home Assistant.
func (c *Client) ListCameras(ctx context.Context) ([]Camera, error) {
	var payload CamerasResponse
	if err := c.Call(ctx, http.MethodGet, "/api/cameras", nil, &payload, nil); err != nil {
		return nil, err
	}
	return payload.Cameras, nil
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var payload HealthResponse
	if err := c.Call(ctx, http.MethodGet, "/api/health", nil, &payload, nil); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Call performs a single request against endpoint, prefixed with the
// resolved base path. body, when non-nil, is JSON-encoded. headers are
// applied after the defaults and may override them. A non-2xx status is
// returned as *APIError before any decode is attempted; on success the JSON
// body is decoded into dest when dest is non-nil.
func (c *Client) Call(ctx context.Context, method, endpoint string, body, dest any, headers http.Header) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	rel := &url.URL{Path: c.basePath + endpoint}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, values := range headers {
		req.Header.Del(k)
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		msg := string(text)
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseServerURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	// The ingress prefix, when present, is carried in basePath; the base URL
	// keeps only scheme and host.
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
