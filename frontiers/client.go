package frontiers

// Frontiers REST API client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	cfgpkg "github.com/ucsb-cs156/frontiers-tui/config"
	"github.com/ucsb-cs156/frontiers-tui/debugdump"
	"github.com/ucsb-cs156/frontiers-tui/logging"
)

// Track last-seen raw capture settings to log changes once per process
var (
	rawCfgMu        sync.Mutex
	rawCfgInit      bool
	lastRawEnabled  bool
	lastRawPath     string
	lastRawMaxBytes int
)

// Authenticator represents an interface for acquiring bearer tokens for the API
type Authenticator interface {
	GetValidToken(ctx context.Context) (*oauth2.Token, error)
}

// Upload describes a multipart file upload attached to a Request.
type Upload struct {
	Field    string
	Filename string
	Content  []byte
}

// Request describes one API call: method, path relative to the base URL,
// query parameters, and at most one of a JSON body or a multipart upload.
// Write endpoints carry their payload in Params; Multipart is reserved for
// CSV uploads.
type Request struct {
	Method    string
	Path      string
	Params    url.Values
	JSON      any
	Multipart *Upload
}

// StatusError is returned for non-2xx responses so callers can branch on
// specific status codes (a 403 on delete gets its own message, for example).
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err wraps a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Client represents a Frontiers API client
type Client struct {
	httpClient *http.Client
	baseURL    string
	auth       Authenticator
	token      *oauth2.Token
	mu         sync.Mutex // Protects token field from concurrent access
}

// NewClient creates a new Frontiers client with a fixed token.
func NewClient(token *oauth2.Token, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewClientWithAuthenticator creates a new Frontiers client that acquires and
// refreshes its token on demand through the authenticator.
func NewClientWithAuthenticator(authenticator Authenticator, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token:   nil, // Will be acquired on-demand
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    authenticator,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes the request and returns the raw response body for 2xx statuses.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, error) {
	token, err := c.getValidToken(ctx)
	if err != nil {
		logging.Error("API token acquisition failed", "error", err.Error())
		return nil, fmt.Errorf("failed to get valid authentication token: %w", err)
	}

	reqURL := c.baseURL + r.Path
	if len(r.Params) > 0 {
		reqURL = reqURL + "?" + r.Params.Encode()
	}

	var bodyBytes []byte
	contentType := ""
	switch {
	case r.Multipart != nil:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, ferr := w.CreateFormFile(r.Multipart.Field, r.Multipart.Filename)
		if ferr != nil {
			logging.Error("API multipart build failed", "error", ferr.Error())
			return nil, fmt.Errorf("failed to build multipart body: %w", ferr)
		}
		if _, werr := part.Write(r.Multipart.Content); werr != nil {
			logging.Error("API multipart write failed", "error", werr.Error())
			return nil, fmt.Errorf("failed to write multipart body: %w", werr)
		}
		if cerr := w.Close(); cerr != nil {
			return nil, fmt.Errorf("failed to finalize multipart body: %w", cerr)
		}
		bodyBytes = buf.Bytes()
		contentType = w.FormDataContentType()
	case r.JSON != nil:
		bodyBytes, err = json.Marshal(r.JSON)
		if err != nil {
			logging.Error("API request marshal failed", "method", r.Method, "path", r.Path, "error", err.Error())
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		contentType = "application/json"
	}

	timeoutSet, deadlineStr := computeDeadlineFields(ctx)
	logging.Debug("API preflight",
		"method", r.Method,
		"url", reqURL,
		"body_bytes", fmt.Sprintf("%d", len(bodyBytes)),
		"timeout_set", timeoutSet,
		"deadline", deadlineStr,
	)

	var bodyReader io.Reader
	if len(bodyBytes) > 0 {
		bodyReader = bytes.NewReader(bodyBytes)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL, bodyReader)
	if err != nil {
		logging.Error("API request creation failed", "method", r.Method, "url", reqURL, "error", err.Error())
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	rawEnabled, resolvedPath, maxBytes := getRawCaptureConfig()
	checkAndLogRawConfigChange(rawEnabled, resolvedPath, maxBytes)
	if rawEnabled {
		writeRawRequestCapture(req, bodyBytes, maxBytes, resolvedPath)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		sel := ""
		if ctx.Err() != nil {
			sel = ctx.Err().Error()
		}
		logging.Error("API request failed", "method", r.Method, "url", reqURL, "error", err.Error(), "ctxErr", sel)
		if rawEnabled {
			writeRawTransportError(req, bodyBytes, maxBytes, resolvedPath, err, time.Since(start))
		}
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Error("API read response failed", "method", r.Method, "url", reqURL, "error", err.Error())
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	dur := time.Since(start)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logging.Error("API error response",
			"method", r.Method,
			"url", reqURL,
			"status", fmt.Sprintf("%d", resp.StatusCode),
			"duration_ms", fmt.Sprintf("%d", dur.Milliseconds()),
			"resp_bytes", fmt.Sprintf("%d", len(respBody)),
		)
		if rawEnabled {
			writeRawHTTPResult(req, bodyBytes, resp, respBody, maxBytes, resolvedPath, dur, fmt.Sprintf("API request failed with status %d", resp.StatusCode))
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	logging.Info("API request success",
		"method", r.Method,
		"url", reqURL,
		"status", fmt.Sprintf("%d", resp.StatusCode),
		"duration_ms", fmt.Sprintf("%d", dur.Milliseconds()),
		"resp_bytes", fmt.Sprintf("%d", len(respBody)),
	)
	if rawEnabled {
		writeRawHTTPResult(req, bodyBytes, resp, respBody, maxBytes, resolvedPath, dur, "")
	}

	return respBody, nil
}

// DoJSON executes the request and unmarshals the response body into out.
// A nil out discards the body.
func (c *Client) DoJSON(ctx context.Context, r Request, out any) error {
	body, err := c.Do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		logging.Error("API response parse failed", "method", r.Method, "path", r.Path, "resp_bytes", fmt.Sprintf("%d", len(body)), "error", err.Error())
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// getValidToken returns the fixed token or acquires one through the authenticator.
func (c *Client) getValidToken(ctx context.Context) (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != nil && c.token.AccessToken != "" {
		return c.token, nil
	}
	if c.auth == nil {
		return nil, fmt.Errorf("no token available and no authenticator configured")
	}
	token, err := c.auth.GetValidToken(ctx)
	if err != nil {
		return nil, err
	}
	c.token = token
	return token, nil
}

// computeDeadlineFields returns (timeout_set, deadline) strings for logging.
func computeDeadlineFields(ctx context.Context) (string, string) {
	if d, ok := ctx.Deadline(); ok {
		return "true", d.Format(time.RFC3339)
	}
	return "false", ""
}

// getRawCaptureConfig reads config/env to determine raw capture enablement and resolves path.
func getRawCaptureConfig() (bool, string, int) {
	cfg := cfgpkg.LoadConfigWithArgs(nil)
	if !cfg.DebugHTTPRawEnable {
		return false, "", cfg.DebugHTTPRawMaxBytes
	}
	resolvedPath, rerr := debugdump.ResolvePath(cfg.DebugHTTPRawFile)
	if rerr != nil {
		logging.Warn("Raw capture path resolution failed", "error", rerr.Error())
		return false, "", cfg.DebugHTTPRawMaxBytes
	}
	return true, resolvedPath, cfg.DebugHTTPRawMaxBytes
}

// checkAndLogRawConfigChange logs when the raw capture settings change (old -> new) once per process run.
func checkAndLogRawConfigChange(enabled bool, path string, maxBytes int) {
	rawCfgMu.Lock()
	defer rawCfgMu.Unlock()
	if !rawCfgInit {
		rawCfgInit = true
		lastRawEnabled = enabled
		lastRawPath = path
		lastRawMaxBytes = maxBytes
		return
	}
	changed := false
	enabledOld := lastRawEnabled
	pathOld := lastRawPath
	maxBytesOld := lastRawMaxBytes
	if enabled != lastRawEnabled {
		changed = true
		lastRawEnabled = enabled
	}
	if strings.TrimSpace(path) != strings.TrimSpace(lastRawPath) {
		changed = true
		lastRawPath = path
	}
	if maxBytes != lastRawMaxBytes {
		changed = true
		lastRawMaxBytes = maxBytes
	}
	if changed {
		logging.Info("http_raw_dump_settings_changed",
			"enabled_old", fmt.Sprintf("%t", enabledOld),
			"enabled_new", fmt.Sprintf("%t", enabled),
			"path_old", pathOld,
			"path_new", path,
			"max_bytes_old", fmt.Sprintf("%d", maxBytesOld),
			"max_bytes_new", fmt.Sprintf("%d", maxBytes),
		)
	}
}

// writeRawRequestCapture writes the initial request-only capture and logs a start event.
func writeRawRequestCapture(req *http.Request, body []byte, maxBytes int, path string) {
	hdrs := map[string]string{
		"content-type":  req.Header.Get("Content-Type"),
		"authorization": req.Header.Get("Authorization"),
	}
	red := debugdump.RedactHeaders(hdrs)
	bodyStr, bodyLen, truncated := debugdump.FormatBodyPrettyJSON(body, maxBytes)
	cap := debugdump.RawCapture{
		Version:    1,
		CapturedAt: debugdump.Now(),
		Request: debugdump.RawRequest{
			StartedAt: debugdump.Now(),
			Method:    req.Method,
			URL:       req.URL.String(),
			Headers:   red,
			Body:      bodyStr,
			BodyBytes: bodyLen,
			Truncated: truncated,
		},
		Response: nil,
		Error:    nil,
	}
	if werr := debugdump.WriteCapture(path, cap); werr != nil {
		logging.Warn("Raw dump request write failed", "error", werr.Error())
		return
	}
	logging.Info("http_raw_dump_started", "path", path, "body_bytes", fmt.Sprintf("%d", bodyLen))
}

// writeRawTransportError writes a full capture with request details and the transport error.
func writeRawTransportError(req *http.Request, body []byte, maxBytes int, path string, cause error, dur time.Duration) {
	hdrs := map[string]string{
		"content-type":  req.Header.Get("Content-Type"),
		"authorization": req.Header.Get("Authorization"),
	}
	red := debugdump.RedactHeaders(hdrs)
	bodyStr, bodyLen, truncated := debugdump.FormatBodyPrettyJSON(body, maxBytes)
	cap := debugdump.RawCapture{
		Version:    1,
		CapturedAt: debugdump.Now(),
		Request: debugdump.RawRequest{
			StartedAt: debugdump.Now(),
			Method:    req.Method,
			URL:       req.URL.String(),
			Headers:   red,
			Body:      bodyStr,
			BodyBytes: bodyLen,
			Truncated: truncated,
		},
		Response: nil,
		Error:    &debugdump.RawError{Message: cause.Error()},
	}
	if werr := debugdump.WriteCapture(path, cap); werr != nil {
		logging.Warn("Raw dump error write failed", "error", werr.Error())
		return
	}
	logging.Info("http_raw_dump_error", "path", path, "duration_ms", fmt.Sprintf("%d", dur.Milliseconds()))
}

// writeRawHTTPResult writes a full request/response capture; errMsg is empty on success.
func writeRawHTTPResult(req *http.Request, reqBody []byte, resp *http.Response, respBody []byte, maxBytes int, path string, dur time.Duration, errMsg string) {
	reqHdrs := debugdump.RedactHeaders(map[string]string{
		"content-type":  req.Header.Get("Content-Type"),
		"authorization": req.Header.Get("Authorization"),
	})
	respHdrs := debugdump.RedactHeaders(map[string]string{
		"content-type": resp.Header.Get("Content-Type"),
	})
	reqStr, reqLen, reqTrunc := debugdump.FormatBodyPrettyJSON(reqBody, maxBytes)
	respStr, respLen, respTrunc := debugdump.FormatBodyPrettyJSON(respBody, maxBytes)
	cap := debugdump.RawCapture{
		Version:    1,
		CapturedAt: debugdump.Now(),
		Request: debugdump.RawRequest{
			StartedAt: debugdump.Now(),
			Method:    req.Method,
			URL:       req.URL.String(),
			Headers:   reqHdrs,
			Body:      reqStr,
			BodyBytes: reqLen,
			Truncated: reqTrunc,
		},
		Response: &debugdump.RawResponse{
			CompletedAt: debugdump.Now(),
			Status:      resp.StatusCode,
			DurationMs:  dur.Milliseconds(),
			Headers:     respHdrs,
			Body:        respStr,
			BodyBytes:   respLen,
			Truncated:   respTrunc,
		},
	}
	if errMsg != "" {
		cap.Error = &debugdump.RawError{Message: errMsg}
	}
	if werr := debugdump.WriteCapture(path, cap); werr != nil {
		logging.Warn("Raw dump result write failed", "error", werr.Error())
	}
}
