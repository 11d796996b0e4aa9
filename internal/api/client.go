package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/student-admin-panel/pkg/errors"
)

// Observer receives one measurement per upstream call.
type Observer interface {
	ObserveUpstream(operation string, err error, duration time.Duration)
}

// Config tunes the upstream client.
type Config struct {
	BaseURL               string
	ProfileEndpoints      []string
	ProfileAttemptTimeout time.Duration
}

// Client wraps authenticated HTTP calls against the student API. It performs
// no retries and imposes no global timeout; callers own the request context.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	logger           *zap.Logger
	observer         Observer
	profileEndpoints []string
	profileTimeout   time.Duration
}

// New constructs a Client.
func New(cfg Config, httpClient *http.Client, logger *zap.Logger, observer Observer) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	endpoints := cfg.ProfileEndpoints
	if len(endpoints) == 0 {
		endpoints = []string{"/auth/me", "/user", "/teacher", "/users/me"}
	}
	timeout := cfg.ProfileAttemptTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:       httpClient,
		logger:           logger,
		observer:         observer,
		profileEndpoints: endpoints,
		profileTimeout:   timeout,
	}
}

// errorBody is the structured failure payload the backend is expected to send.
type errorBody struct {
	Error string `json:"error"`
}

// do issues one request and decodes the response. The body is parsed
// regardless of status: on non-2xx the parsed error string (or fallback) is
// surfaced; transport failures become a distinct network-error condition.
func (c *Client) do(ctx context.Context, operation, token, method, path string, query url.Values, payload, out interface{}, fallback string) error {
	start := time.Now()
	err := c.doRequest(ctx, token, method, path, query, payload, out, fallback)
	if c.observer != nil {
		c.observer.ObserveUpstream(operation, err, time.Since(start))
	}
	if err != nil {
		c.logger.Warn("upstream call failed",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
	}
	return err
}

func (c *Client) doRequest(ctx context.Context, token, method, path string, query url.Values, payload, out interface{}, fallback string) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to encode payload")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrNetwork.Code, 0, appErrors.ErrNetwork.Message)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrNetwork.Code, 0, appErrors.ErrNetwork.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallback
		var parsed errorBody
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != "" {
			message = parsed.Error
		}
		code := appErrors.ErrUpstream.Code
		if resp.StatusCode == http.StatusNotFound {
			code = appErrors.ErrNotFound.Code
		}
		return appErrors.New(code, resp.StatusCode, message)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, resp.StatusCode, "unexpected response body")
		}
	}
	return nil
}
