// Package cms is the HTTP client adapter for the content backend.
//
// Every call goes through Client.do, which attaches the bearer token held
// by the session, tags the request with an X-Request-ID, opens a client
// span, records Prometheus metrics and waits on the optional outbound rate
// limiter. Failures are returned as *APIError or *TransportError and are
// never retried.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cmsdesk/internal/observability/logging"
	"cmsdesk/internal/observability/metrics"
	"cmsdesk/internal/observability/tracing"
	"cmsdesk/internal/requestid"
	"cmsdesk/internal/session"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Client talks to the content backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	limiter    *rateLimiter
}

// NewClient builds a client. sess may be nil, in which case no request
// carries a bearer token.
func NewClient(cfg Config, sess *session.Session) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cms client config: %w", err)
	}

	transport := &requestid.Transport{
		Base: &tracing.Transport{Base: http.DefaultTransport},
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		session: sess,
		limiter: newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}, nil
}

// BaseURL returns the backend origin the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one backend call.
type request struct {
	resource  string // metrics label, e.g. "articles"
	method    string
	path      string
	query     string
	body      any
	anonymous bool // never attach the bearer token
}

// do executes req and decodes a 2xx JSON body into out (when out is non-nil).
func (c *Client) do(ctx context.Context, req request, out any) error {
	ctx, id := requestid.Ensure(ctx)
	logger := logging.WithFields(logging.WithRequestID(ctx, logging.FromContext(ctx)), map[string]interface{}{
		"resource": req.resource,
		"method":   req.method,
		"path":     req.path,
	})

	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: "wait for rate limiter", Err: err}
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", req.resource, err)
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + req.path
	if req.query != "" {
		target += "?" + req.query
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestid.RequestIDHeader, id)
	if token, ok := c.token(); ok && !req.anonymous {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.RecordClientRequest(req.resource, req.method, "error", time.Since(start), 0)
		logger.Error("backend request failed", slog.Any("error", err))
		return &TransportError{Op: req.method + " " + req.path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	duration := time.Since(start)
	metrics.RecordClientRequest(req.resource, req.method, strconv.Itoa(resp.StatusCode), duration, len(respBody))
	if err != nil {
		return &TransportError{Op: "read response body", Err: err}
	}

	logger.Debug("backend request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, respBody)
		logger.Warn("backend rejected request",
			slog.Int("status", resp.StatusCode),
			slog.String("error", apiErr.Message))
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrInvalidResponse, req.resource, err)
	}
	return nil
}

func (c *Client) token() (string, bool) {
	if c.session == nil {
		return "", false
	}
	return c.session.Token()
}
